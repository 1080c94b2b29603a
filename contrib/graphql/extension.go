package graphql

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vektah/gqlparser/v2/ast"

	filterql "github.com/syssam/filterql"
	"github.com/syssam/filterql/compiler/gen"
	"github.com/syssam/filterql/compiler/load"
)

// SchemaHook runs against the merged schema document before it is
// formatted and written. Hooks can add directives, extra types, or
// rewrite definitions in place.
type SchemaHook func(doc *ast.SchemaDocument) error

// Extension drives a generation pass and produces the artifacts a
// gqlgen project consumes: the generated Go packages, one merged
// .graphql schema, and an updated gqlgen.yml.
//
// Usage:
//
//	ex, err := graphql.NewExtension(
//	    graphql.WithManifest("./models.yaml"),
//	    graphql.WithSchemaPath("./gen/graphql/schema.graphql"),
//	    graphql.WithConfigPath("./gqlgen.yml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ex.Generate(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
type Extension struct {
	types      []*gen.Type
	genOpts    []gen.Option
	schemaPath string
	configPath string

	// annotations maps model base names to per-field schema overrides.
	annotations map[string]map[string]Annotation

	// hooks run against the merged document, after annotations.
	hooks []SchemaHook
}

// ExtensionOption is a function that configures the Extension.
type ExtensionOption func(*Extension) error

// NewExtension creates a new gqlgen extension with the given options.
// At least one model must be provided, either directly through
// WithModels or from a manifest through WithManifest.
func NewExtension(opts ...ExtensionOption) (*Extension, error) {
	ex := &Extension{}
	for _, opt := range opts {
		if err := opt(ex); err != nil {
			return nil, err
		}
	}
	if len(ex.types) == 0 {
		return nil, fmt.Errorf("graphql: extension requires at least one model, use WithModels or WithManifest")
	}
	return ex, nil
}

// Generate runs the generation pass, writes the merged schema file,
// and updates the gqlgen configuration when a config path is set.
func (e *Extension) Generate(ctx context.Context) error {
	g, err := gen.New(e.types, e.genOpts...)
	if err != nil {
		return err
	}
	if err := g.Generate(ctx); err != nil {
		return err
	}
	doc, err := e.buildDoc(g)
	if err != nil {
		return err
	}
	schemaPath := e.schemaPath
	if schemaPath == "" {
		schemaPath = filepath.Join(g.Config().Target, "graphql", "schema.graphql")
	}
	if dir := filepath.Dir(schemaPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create schema directory: %w", err)
		}
	}
	if err := os.WriteFile(schemaPath, []byte(gen.FormatSchema(doc)), 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	if e.configPath != "" {
		cfg, err := LoadGQLGenConfig(e.configPath)
		if err != nil {
			return err
		}
		cfg.InjectFilterBindings(g.Config(), schemaPath)
		if err := SaveGQLGenConfig(e.configPath, cfg); err != nil {
			return err
		}
	}
	return nil
}

// SDL returns the merged schema with annotations and hooks applied,
// without writing any file.
func (e *Extension) SDL() (string, error) {
	g, err := gen.New(e.types, e.genOpts...)
	if err != nil {
		return "", err
	}
	doc, err := e.buildDoc(g)
	if err != nil {
		return "", err
	}
	return gen.FormatSchema(doc), nil
}

func (e *Extension) buildDoc(g *gen.Generator) (*ast.SchemaDocument, error) {
	doc := g.BuildSchema()
	e.applyAnnotations(doc)
	for _, hook := range e.hooks {
		if err := hook(doc); err != nil {
			return nil, fmt.Errorf("schema hook: %w", err)
		}
	}
	return doc, nil
}

// applyAnnotations rewrites the merged document according to the
// per-field overrides. Overrides touch only the schema served to
// gqlgen; the generated packages and the runtime filter keys keep the
// declared names, so a skipped field stays queryable through the Go
// API while the GraphQL layer rejects it.
func (e *Extension) applyAnnotations(doc *ast.SchemaDocument) {
	for base, fields := range e.annotations {
		n := gen.NamesOf(base)
		// Both lookups can miss: reused models have no fields type and
		// models without filterable fields have no filter input.
		fieldsDef := doc.Definitions.ForName(n.Fields)
		filterDef := doc.Definitions.ForName(n.Filter)
		for name, ann := range fields {
			if ann.Skip {
				if fieldsDef != nil {
					removeField(fieldsDef, name)
				}
				if filterDef != nil {
					dropFilterKeys(filterDef, name, 0, false)
				}
				continue
			}
			if ann.HasOps && filterDef != nil {
				dropFilterKeys(filterDef, name, ann.Ops, true)
			}
			if ann.Alias != "" && fieldsDef != nil {
				if fd := fieldsDef.Fields.ForName(name); fd != nil {
					fd.Name = ann.Alias
				}
			}
		}
		// Input objects and object types must keep at least one field.
		var prune []string
		if filterDef != nil && len(filterDef.Fields) == 0 {
			prune = append(prune, filterDef.Name)
		}
		if fieldsDef != nil && len(fieldsDef.Fields) == 0 {
			prune = append(prune, fieldsDef.Name, n.Results)
		}
		if len(prune) > 0 {
			removeDefs(doc, prune...)
		}
	}
}

// removeField drops the named field from an object type definition.
func removeField(def *ast.Definition, name string) {
	kept := def.Fields[:0]
	for _, fd := range def.Fields {
		if fd.Name != name {
			kept = append(kept, fd)
		}
	}
	def.Fields = kept
}

// dropFilterKeys removes filter input entries of one field. With
// restrict set, entries whose operator is in keep survive; otherwise
// every entry of the field goes. Keys match exactly, so a field named
// "created" never shadows "created_at".
func dropFilterKeys(def *ast.Definition, field string, keep filterql.OpSet, restrict bool) {
	drop := make(map[string]bool)
	for _, op := range filterql.AllOps() {
		if restrict && keep.Has(op) {
			continue
		}
		drop[field+"_"+op.Suffix()] = true
	}
	kept := def.Fields[:0]
	for _, fd := range def.Fields {
		if !drop[fd.Name] {
			kept = append(kept, fd)
		}
	}
	def.Fields = kept
}

// removeDefs drops the named definitions from the document.
func removeDefs(doc *ast.SchemaDocument, names ...string) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}
	kept := doc.Definitions[:0]
	for _, def := range doc.Definitions {
		if !drop[def.Name] {
			kept = append(kept, def)
		}
	}
	doc.Definitions = kept
}

// WithModels adds models to the generation pass.
func WithModels(types ...*gen.Type) ExtensionOption {
	return func(e *Extension) error {
		e.types = append(e.types, types...)
		return nil
	}
}

// WithManifest loads models and generator options from a YAML
// manifest. Options declared in the manifest apply before options
// added through WithGeneratorOptions, so the latter win.
func WithManifest(path string) ExtensionOption {
	return func(e *Extension) error {
		m, err := load.ParseFile(path)
		if err != nil {
			return err
		}
		types, err := m.Types()
		if err != nil {
			return err
		}
		e.types = append(e.types, types...)
		e.genOpts = append(e.genOpts, m.Options()...)
		return nil
	}
}

// WithGeneratorOptions appends options for the generation pass.
//
// Example:
//
//	graphql.WithGeneratorOptions(
//	    gen.WithTarget("./gen"),
//	    gen.WithPackage("myapp/gen"),
//	)
func WithGeneratorOptions(opts ...gen.Option) ExtensionOption {
	return func(e *Extension) error {
		e.genOpts = append(e.genOpts, opts...)
		return nil
	}
}

// WithSchemaPath sets the output path of the merged .graphql schema.
// If not set, the schema is written to graphql/schema.graphql under
// the generation target.
func WithSchemaPath(path string) ExtensionOption {
	return func(e *Extension) error {
		e.schemaPath = path
		return nil
	}
}

// WithConfigPath sets the path of the gqlgen.yml to update after
// generation. A missing file is created. The configuration is loaded
// and saved during Generate, so edits between runs survive.
func WithConfigPath(path string) ExtensionOption {
	return func(e *Extension) error {
		e.configPath = path
		return nil
	}
}

// WithAnnotations registers per-field schema overrides for one model.
// The model is addressed by its declared base name and fields by their
// declared names. Repeated calls for the same field merge.
//
// Example:
//
//	graphql.WithAnnotations("user", map[string]graphql.Annotation{
//	    "password_hash": graphql.Skip(),
//	    "email":         graphql.Ops(filterql.OpEQ, filterql.OpIn),
//	    "uid":           graphql.Alias("externalId"),
//	})
func WithAnnotations(model string, fields map[string]Annotation) ExtensionOption {
	return func(e *Extension) error {
		if e.annotations == nil {
			e.annotations = make(map[string]map[string]Annotation)
		}
		merged := e.annotations[model]
		if merged == nil {
			merged = make(map[string]Annotation, len(fields))
		}
		for name, ann := range fields {
			merged[name] = merged[name].Merge(ann)
		}
		e.annotations[model] = merged
		return nil
	}
}

// WithSchemaHook adds hooks that run after annotations, in order.
//
// Example:
//
//	graphql.WithSchemaHook(func(doc *ast.SchemaDocument) error {
//	    doc.Directives = append(doc.Directives, &ast.DirectiveDefinition{
//	        Name:      "auth",
//	        Locations: []ast.DirectiveLocation{ast.LocationFieldDefinition},
//	    })
//	    return nil
//	})
func WithSchemaHook(hooks ...SchemaHook) ExtensionOption {
	return func(e *Extension) error {
		e.hooks = append(e.hooks, hooks...)
		return nil
	}
}
