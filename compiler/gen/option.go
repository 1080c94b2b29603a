package gen

import (
	"errors"
	"runtime"
)

// DefaultHeader is the comment placed at the top of every generated file.
const DefaultHeader = "Code generated by filterql. DO NOT EDIT."

// Config carries the generation settings shared by the SDL and Go
// emitters.
type Config struct {
	// Header is the file header comment.
	Header string
	// Target is the output directory of the generation pass.
	Target string
	// Package is the Go import path of the target directory. Generated
	// model packages use it to reference the shared predicate package.
	Package string
	// DateAlias is the scalar name emitted for date fields.
	DateAlias string
	// DateTimeAlias is the scalar name emitted for datetime fields.
	DateTimeAlias string
	// MetaType is the name of the pagination metadata type referenced by
	// results wrappers.
	MetaType string
	// ReuseTypes makes every results wrapper reference the model's
	// Pascal base name instead of a generated fields type.
	ReuseTypes bool
	// Workers bounds the parallelism of the generation pass.
	Workers int
	// Cache stores model digests between runs so unchanged models are
	// skipped. Nil means a file-backed cache under Target.
	Cache Cache
}

// newConfig returns a Config with the default aliases and worker count.
func newConfig() *Config {
	return &Config{
		Header:        DefaultHeader,
		DateAlias:     "Date",
		DateTimeAlias: "DateTime",
		MetaType:      "PageInfo",
		Workers:       runtime.GOMAXPROCS(0),
	}
}

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the Go import path of the target directory.
// For example: "github.com/org/project/internal/gen".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithDateAlias sets the scalar name emitted for date fields.
func WithDateAlias(name string) Option {
	return func(c *Config) error {
		if !validName(name) {
			return NewConfigError("DateAlias", name, "not a legal GraphQL type name")
		}
		c.DateAlias = name
		return nil
	}
}

// WithDateTimeAlias sets the scalar name emitted for datetime fields.
func WithDateTimeAlias(name string) Option {
	return func(c *Config) error {
		if !validName(name) {
			return NewConfigError("DateTimeAlias", name, "not a legal GraphQL type name")
		}
		c.DateTimeAlias = name
		return nil
	}
}

// WithMetaType sets the name of the pagination metadata type referenced
// by results wrappers.
func WithMetaType(name string) Option {
	return func(c *Config) error {
		if !validName(name) {
			return NewConfigError("MetaType", name, "not a legal GraphQL type name")
		}
		c.MetaType = name
		return nil
	}
}

// WithReuseTypes makes results wrappers reference existing declared
// types instead of generated fields types.
func WithReuseTypes(reuse bool) Option {
	return func(c *Config) error {
		c.ReuseTypes = reuse
		return nil
	}
}

// WithWorkers bounds the parallelism of the generation pass.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "worker count must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithCache sets the snapshot store used to skip unchanged models.
func WithCache(cache Cache) Option {
	return func(c *Config) error {
		if cache == nil {
			return NewConfigError("Cache", nil, "cache cannot be nil")
		}
		c.Cache = cache
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options applied on top
// of the defaults.
func NewConfig(opts ...Option) (*Config, error) {
	c := newConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
