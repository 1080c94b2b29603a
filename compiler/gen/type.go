package gen

import (
	"strings"

	"github.com/syssam/filterql"
	"github.com/syssam/filterql/schema/field"
)

// Type is one model prepared for generation: the compiled filter model
// plus the naming derived from its base name. Types are immutable after
// construction except for the Reuse flag, which the manifest loader sets
// per model.
type Type struct {
	// Name is the model's base name as declared, e.g. "user".
	Name string

	// Reuse marks the model as reusing an existing declared GraphQL
	// type: the results wrapper references the Pascal base name directly
	// and no fields type is emitted.
	Reuse bool

	model  *filterql.Model
	fields []*Field
}

// NewType compiles a model for generation. The field specs are validated
// the same way the runtime validates them, the base name must map to a
// legal GraphQL identifier, and at least one field is required.
func NewType(name string, specs []field.Spec) (*Type, error) {
	if name == "" {
		return nil, NewSchemaError("", "", "model name required", nil)
	}
	if !validName(pascal(name)) {
		return nil, NewSchemaError(name, "", "name does not map to a legal GraphQL identifier", nil)
	}
	if len(specs) == 0 {
		return nil, NewSchemaError(name, "", "model declares no fields", nil)
	}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, NewSchemaError(name, s.Name, "invalid field spec", err)
		}
	}
	m, err := filterql.NewModel(name, specs)
	if err != nil {
		return nil, NewSchemaError(name, "", "invalid model", err)
	}
	t := &Type{Name: name, model: m}
	for _, s := range m.Fields() {
		t.fields = append(t.fields, &Field{Spec: s, typ: t})
	}
	pascals := make(map[string]bool, len(t.fields))
	for _, f := range t.fields {
		if reservedNames[f.PascalName()] {
			return nil, NewSchemaError(name, f.Name(), "field name collides with a generated declaration", nil)
		}
		pascals[f.PascalName()] = true
	}
	for _, f := range t.fields {
		if f.IsEnum() && pascals[f.EnumType()] {
			return nil, NewSchemaError(name, f.Name(), "enum type name collides with a generated field helper", nil)
		}
	}
	return t, nil
}

// reservedNames are Pascal field names that would collide with the
// fixed declarations of a generated model package.
var reservedNames = map[string]bool{
	"Label":   true,
	"Columns": true,
	"Fields":  true,
	"Model":   true,
	"Filter":  true,
}

// MustType calls NewType and panics on error.
func MustType(name string, specs []field.Spec) *Type {
	t, err := NewType(name, specs)
	if err != nil {
		panic(err)
	}
	return t
}

// TypeOf compiles a Type from a model definition.
func TypeOf(d filterql.Definition) (*Type, error) {
	return NewType(d.Name(), d.Fields())
}

// Model returns the compiled filter model.
func (t *Type) Model() *filterql.Model { return t.model }

// Fields returns the model's fields in declaration order.
func (t *Type) Fields() []*Field { return t.fields }

// TypeName returns the Pascal form of the base name, e.g. "User".
func (t *Type) TypeName() string { return pascal(t.Name) }

// FieldsType returns the name of the generated custom fields type,
// e.g. "UserFields".
func (t *Type) FieldsType() string { return t.TypeName() + "Fields" }

// ResultsType returns the name of the generated results wrapper,
// e.g. "UserResults".
func (t *Type) ResultsType() string { return t.TypeName() + "Results" }

// FilterInput returns the name of the generated filter input,
// e.g. "UserFilter".
func (t *Type) FilterInput() string { return t.TypeName() + "Filter" }

// ElemType returns the type the results wrapper lists: the fields type,
// or the Pascal base name when the model reuses an existing type.
func (t *Type) ElemType() string {
	if t.Reuse {
		return t.TypeName()
	}
	return t.FieldsType()
}

// ListField returns the name of the results wrapper's list field: the
// pluralized camel base name, e.g. "users".
func (t *Type) ListField() string { return plural(camel(t.Name)) }

// PackageDir returns the directory (and package) name of the model's
// generated Go package, e.g. "userprofile" for "user_profile".
func (t *Type) PackageDir() string { return strings.ToLower(t.TypeName()) }

// Field is one declared field of a Type with its generation naming.
type Field struct {
	// Spec is the caller-supplied declaration.
	Spec field.Spec

	typ *Type
}

// Name returns the declared field name.
func (f *Field) Name() string { return f.Spec.Name }

// Type returns the declared type tag.
func (f *Field) Type() field.Type { return f.Spec.Type }

// PascalName returns the Pascal form of the field name, e.g. "CreatedAt".
func (f *Field) PascalName() string { return pascal(f.Spec.Name) }

// Constant returns the column constant name in the generated package,
// e.g. "FieldCreatedAt".
func (f *Field) Constant() string { return "Field" + f.PascalName() }

// Ops returns the operator set the field exposes in the filter input.
func (f *Field) Ops() filterql.OpSet { return filterql.OpsFor(f.Spec.Type) }

// IsEnum reports if the field is an enum.
func (f *Field) IsEnum() bool { return f.Spec.Type == field.TypeEnum }

// EnumType returns the name of the field's enum type: the Pascal form of
// the declared enum name when present, otherwise the model and field
// names joined, e.g. "UserStatus".
func (f *Field) EnumType() string {
	if f.Spec.EnumName != "" {
		return pascal(f.Spec.EnumName)
	}
	return f.typ.TypeName() + f.PascalName()
}

// EnumConst returns the generated Go constant name of an enum value,
// e.g. "UserStatusActive" for "active".
func (f *Field) EnumConst(v string) string {
	return f.EnumType() + pascal(v)
}
