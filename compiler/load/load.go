// Package load reads generation manifests. A manifest is a YAML document
// (conventionally models.yaml) declaring the models to generate, and is
// the input channel of the codegen pass. The runtime API never reads
// files.
package load

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/filterql/compiler/gen"
	"github.com/syssam/filterql/schema/field"
)

// Manifest is a parsed models.yaml document: the generation defaults
// plus the declared models.
type Manifest struct {
	// Package is the Go import path of the target directory.
	Package string `yaml:"package,omitempty"`
	// Target is the output directory of the generation pass.
	Target string `yaml:"target,omitempty"`
	// Header overrides the generated file header comment.
	Header string `yaml:"header,omitempty"`
	// Models lists the declared models.
	Models []*Model `yaml:"models"`

	path string
}

// Model is one declared model of a manifest.
type Model struct {
	Name string `yaml:"name"`
	// Reuse makes the model's results wrapper reference an existing
	// declared type instead of a generated fields type.
	Reuse  bool     `yaml:"reuse,omitempty"`
	Fields []*Field `yaml:"fields"`
}

// Field is one declared field of a model. Type carries the manifest tag
// name: id, integer, float, string, boolean, date, datetime, uuid, json
// or enum.
type Field struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	EnumName string   `yaml:"enum_name,omitempty"`
	Values   []string `yaml:"values,omitempty"`
}

// Error is a manifest loading failure with its position context.
type Error struct {
	Path    string // manifest file, when known
	Model   string
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("load: ")
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	if e.Model != "" {
		b.WriteString("model ")
		b.WriteString(e.Model)
		b.WriteString(": ")
	}
	if e.Field != "" {
		b.WriteString("field ")
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsError reports whether the error is a load Error.
func IsError(err error) bool {
	var loadErr *Error
	return errors.As(err, &loadErr)
}

// Parse decodes a manifest document. Unknown keys are rejected so typos
// in a manifest fail loudly instead of being dropped.
func Parse(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		return nil, &Error{Message: "decode manifest", Cause: err}
	}
	return m, nil
}

// ParseFile reads and decodes the manifest at path.
func ParseFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Message: "open manifest", Cause: err}
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		var loadErr *Error
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}
	m.path = path
	return m, nil
}

// Types converts the declared models into generation inputs.
func (m *Manifest) Types() ([]*gen.Type, error) {
	if len(m.Models) == 0 {
		return nil, &Error{Path: m.path, Message: "manifest declares no models"}
	}
	types := make([]*gen.Type, 0, len(m.Models))
	for i, mod := range m.Models {
		if mod == nil {
			return nil, &Error{Path: m.path, Message: fmt.Sprintf("model %d is empty", i)}
		}
		t, err := mod.Type()
		if err != nil {
			var loadErr *Error
			if errors.As(err, &loadErr) {
				loadErr.Path = m.path
			}
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// Options returns the generator options carried by the manifest header:
// the target directory, package path and file header when declared.
func (m *Manifest) Options() []gen.Option {
	var opts []gen.Option
	if m.Target != "" {
		opts = append(opts, gen.WithTarget(m.Target))
	}
	if m.Package != "" {
		opts = append(opts, gen.WithPackage(m.Package))
	}
	if m.Header != "" {
		opts = append(opts, gen.WithHeader(m.Header))
	}
	return opts
}

// Type converts one declared model into a generation input.
func (mod *Model) Type() (*gen.Type, error) {
	if mod.Name == "" {
		return nil, &Error{Message: "model name required"}
	}
	specs := make([]field.Spec, 0, len(mod.Fields))
	for i, f := range mod.Fields {
		if f == nil {
			return nil, &Error{Model: mod.Name, Message: fmt.Sprintf("field %d is empty", i)}
		}
		spec, err := f.Spec()
		if err != nil {
			var loadErr *Error
			if errors.As(err, &loadErr) {
				loadErr.Model = mod.Name
			}
			return nil, err
		}
		specs = append(specs, spec)
	}
	t, err := gen.NewType(mod.Name, specs)
	if err != nil {
		return nil, &Error{Model: mod.Name, Message: "invalid model", Cause: err}
	}
	t.Reuse = mod.Reuse
	return t, nil
}

// Spec converts one declared field into its field spec.
func (f *Field) Spec() (field.Spec, error) {
	if f.Name == "" {
		return field.Spec{}, &Error{Message: "field name required"}
	}
	t, err := field.ParseType(f.Type)
	if err != nil {
		return field.Spec{}, &Error{Field: f.Name, Message: "invalid type", Cause: err}
	}
	return field.Spec{
		Name:       f.Name,
		Type:       t,
		EnumName:   f.EnumName,
		EnumValues: f.Values,
	}, nil
}

// LoadTypes parses the manifest at path and converts its models, as one
// step. Generator construction stays with the caller so extra options
// can be layered over the manifest's own.
func LoadTypes(path string) ([]*gen.Type, error) {
	m, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return m.Types()
}
