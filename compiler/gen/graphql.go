package gen

import (
	"bytes"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/syssam/filterql/schema/field"
)

// FormatSchema renders a schema document as SDL.
func FormatSchema(doc *ast.SchemaDocument) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)
	return buf.String()
}

// BuildCommon builds the shared document: the scalar aliases and the
// pagination types reused across models.
func (g *Generator) BuildCommon() *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	seen := make(map[string]bool, 4)
	for _, s := range []string{"UUID", "JSON", g.cfg.DateAlias, g.cfg.DateTimeAlias} {
		if seen[s] {
			continue
		}
		seen[s] = true
		doc.Definitions = append(doc.Definitions, &ast.Definition{
			Kind: ast.Scalar,
			Name: s,
		})
	}
	doc.Definitions = append(doc.Definitions,
		&ast.Definition{
			Kind:        ast.Object,
			Name:        g.cfg.MetaType,
			Description: fmt.Sprintf("%s reports the pagination state of a results page.", g.cfg.MetaType),
			Fields: ast.FieldList{
				{Name: "page", Type: ast.NamedType("Int", nil)},
				{Name: "pageSize", Type: ast.NamedType("Int", nil)},
				{Name: "totalCount", Type: ast.NamedType("Int", nil)},
				{Name: "totalPages", Type: ast.NamedType("Int", nil)},
				{Name: "hasNext", Type: ast.NamedType("Boolean", nil)},
				{Name: "hasPrev", Type: ast.NamedType("Boolean", nil)},
			},
		},
		&ast.Definition{
			Kind:        ast.InputObject,
			Name:        "PageInput",
			Description: "PageInput selects a page of results.",
			Fields: ast.FieldList{
				{Name: "page", Type: ast.NamedType("Int", nil)},
				{Name: "pageSize", Type: ast.NamedType("Int", nil)},
			},
		},
	)
	return doc
}

// BuildModel builds one model's document: its enum types, the custom
// fields type (unless the model reuses an existing one), the results
// wrapper and the filter input.
func (g *Generator) BuildModel(t *Type) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	for _, f := range t.Fields() {
		if !f.IsEnum() {
			continue
		}
		def := &ast.Definition{Kind: ast.Enum, Name: f.EnumType()}
		for _, v := range f.Spec.EnumValues {
			def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{Name: v})
		}
		doc.Definitions = append(doc.Definitions, def)
	}
	if !g.reuse(t) {
		def := &ast.Definition{
			Kind:        ast.Object,
			Name:        t.FieldsType(),
			Description: fmt.Sprintf("%s is the queryable field set of the %s model.", t.FieldsType(), t.Name),
		}
		for _, f := range t.Fields() {
			def.Fields = append(def.Fields, &ast.FieldDefinition{
				Name: f.Name(),
				Type: ast.NamedType(g.typeName(f), nil),
			})
		}
		doc.Definitions = append(doc.Definitions, def)
	}
	doc.Definitions = append(doc.Definitions, &ast.Definition{
		Kind:        ast.Object,
		Name:        t.ResultsType(),
		Description: fmt.Sprintf("%s pairs a page of %s rows with pagination metadata.", t.ResultsType(), t.Name),
		Fields: ast.FieldList{
			{Name: t.ListField(), Type: ast.ListType(ast.NamedType(g.elemType(t), nil), nil)},
			{Name: "pageInfo", Type: ast.NamedType(g.cfg.MetaType, nil)},
		},
	})
	if in := g.filterInput(t); in != nil {
		doc.Definitions = append(doc.Definitions, in)
	}
	return doc
}

// filterInput builds the filter input definition: one entry per field
// per applicable operator, list-typed for in/nin and Boolean for nil.
// GraphQL forbids empty input objects, so a model whose fields are all
// opaque gets no filter input.
func (g *Generator) filterInput(t *Type) *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.InputObject,
		Name:        t.FilterInput(),
		Description: fmt.Sprintf("%s filters %s queries by field and operator.", t.FilterInput(), t.Name),
	}
	for _, f := range t.Fields() {
		base := g.typeName(f)
		for _, op := range f.Ops().List() {
			fd := &ast.FieldDefinition{Name: f.Name() + "_" + op.Suffix()}
			switch {
			case op.Variadic():
				fd.Type = ast.ListType(ast.NamedType(base, nil), nil)
			case op.Niladic():
				fd.Type = ast.NamedType("Boolean", nil)
			default:
				fd.Type = ast.NamedType(base, nil)
			}
			def.Fields = append(def.Fields, fd)
		}
	}
	if len(def.Fields) == 0 {
		return nil
	}
	return def
}

// BuildSchema merges the common document and every model document into
// one schema. Duplicate definitions keep their first occurrence, so an
// enum type shared by several models is declared once.
func (g *Generator) BuildSchema() *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	seen := make(map[string]bool)
	merge := func(src *ast.SchemaDocument) {
		for _, def := range src.Definitions {
			if seen[def.Name] {
				continue
			}
			seen[def.Name] = true
			doc.Definitions = append(doc.Definitions, def)
		}
	}
	merge(g.BuildCommon())
	for _, t := range g.types {
		merge(g.BuildModel(t))
	}
	return doc
}

// SDL renders the full merged schema, for in-process use at startup.
func (g *Generator) SDL() string {
	return FormatSchema(g.BuildSchema())
}

// reuse reports if the model references an existing declared type
// instead of a generated fields type.
func (g *Generator) reuse(t *Type) bool {
	return t.Reuse || g.cfg.ReuseTypes
}

// elemType returns the element type of the model's results list.
func (g *Generator) elemType(t *Type) string {
	if g.reuse(t) {
		return t.TypeName()
	}
	return t.FieldsType()
}

// typeName maps a field to its GraphQL type, substituting the configured
// scalar aliases for date, datetime, uuid and json.
func (g *Generator) typeName(f *Field) string {
	switch f.Spec.Type {
	case field.TypeID:
		return "ID"
	case field.TypeInt:
		return "Int"
	case field.TypeFloat:
		return "Float"
	case field.TypeBool:
		return "Boolean"
	case field.TypeDate:
		return g.cfg.DateAlias
	case field.TypeDateTime:
		return g.cfg.DateTimeAlias
	case field.TypeUUID:
		return "UUID"
	case field.TypeJSON:
		return "JSON"
	case field.TypeEnum:
		return f.EnumType()
	default:
		return "String"
	}
}
