package gen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Generator builds and writes the artifacts of a set of model types.
// It is created once and may run Generate repeatedly; unchanged models
// are skipped via the snapshot cache.
type Generator struct {
	cfg    *Config
	types  []*Type
	writer *Writer
}

// New creates a Generator for the given types with the options applied
// on top of the defaults.
func New(types []*Type, opts ...Option) (*Generator, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, NewSchemaError("", "", "no models to generate", nil)
	}
	seen := make(map[string]bool, len(types))
	for _, t := range types {
		if t == nil {
			return nil, NewSchemaError("", "", "nil model type", nil)
		}
		if seen[t.Name] {
			return nil, NewSchemaError(t.Name, "", "model declared more than once", nil)
		}
		seen[t.Name] = true
	}
	return &Generator{cfg: cfg, types: types, writer: NewWriter(cfg.Target)}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() *Config { return g.cfg }

// Types returns the model types in declaration order.
func (g *Generator) Types() []*Type { return g.types }

// Metrics returns the metrics of the last Generate pass.
func (g *Generator) Metrics() WriterMetrics { return g.writer.Metrics() }

// Generate writes every artifact under the target directory: the shared
// predicate package and common schema document, plus one Go package and
// one schema document per model, generated in parallel with bounded
// workers. Models whose digest matches the previous snapshot and whose
// outputs are still on disk are skipped.
func (g *Generator) Generate(ctx context.Context) error {
	switch {
	case g.cfg.Target == "":
		return NewConfigError("Target", nil, "target directory required")
	case g.cfg.Package == "":
		return NewConfigError("Package", nil, "package import path required")
	}
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return NewGenerationError("target", g.cfg.Target, "create target directory", err)
	}
	g.writer.reset()

	cache := g.cfg.Cache
	if cache == nil {
		cache = FileCache(filepath.Join(g.cfg.Target, ".filterql.snapshot"))
	}
	prev, err := cache.Load()
	if err != nil {
		slog.Warn("filterql: snapshot load failed, regenerating all models", "err", err)
		prev = Snapshot{}
	}

	var (
		mu   sync.Mutex
		next = make(Snapshot, len(g.types))
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)

	eg.Go(func() error {
		var buf bytes.Buffer
		if err := g.genPredicateFile().Render(&buf); err != nil {
			return NewGenerationError("predicate", "predicate/predicate.go", "render", err)
		}
		return g.writer.WriteGo(filepath.Join("predicate", "predicate.go"), buf.Bytes())
	})
	eg.Go(func() error {
		sdl := FormatSchema(g.BuildCommon())
		return g.writer.WriteText(filepath.Join("graphql", "common.graphql"), []byte(sdl))
	})

	for _, t := range g.types {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			sum, err := g.digest(t)
			if err != nil {
				return NewGenerationError("snapshot", "", "digest model "+t.Name, err)
			}
			if prev[t.Name] == sum && g.outputsExist(t) {
				g.writer.modelSkipped()
				mu.Lock()
				next[t.Name] = sum
				mu.Unlock()
				return nil
			}
			var buf bytes.Buffer
			if err := g.genModelFile(t).Render(&buf); err != nil {
				return NewGenerationError("model", g.modelGoFile(t), "render", err)
			}
			if err := g.writer.WriteGo(g.modelGoFile(t), buf.Bytes()); err != nil {
				return err
			}
			sdl := FormatSchema(g.BuildModel(t))
			if err := g.writer.WriteText(g.modelSchemaFile(t), []byte(sdl)); err != nil {
				return err
			}
			mu.Lock()
			next[t.Name] = sum
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	if err := cache.Store(next); err != nil {
		return NewGenerationError("snapshot", "", "store snapshot", err)
	}
	return nil
}

// modelGoFile returns the model's Go file path relative to the target.
func (g *Generator) modelGoFile(t *Type) string {
	return filepath.Join(t.PackageDir(), t.PackageDir()+".go")
}

// modelSchemaFile returns the model's schema document path relative to
// the target.
func (g *Generator) modelSchemaFile(t *Type) string {
	return filepath.Join("graphql", t.PackageDir()+".graphql")
}

// outputsExist reports if both of the model's artifacts are on disk. A
// matching digest only skips generation when they are.
func (g *Generator) outputsExist(t *Type) bool {
	for _, name := range []string{g.modelGoFile(t), g.modelSchemaFile(t)} {
		if _, err := os.Stat(filepath.Join(g.cfg.Target, name)); err != nil {
			return false
		}
	}
	return true
}
