// Package filterql builds GraphQL-style filter schemas and translates
// filter maps into SQL predicates.
//
// A Model is compiled once from a name and a list of field specs. At
// generation time it drives the schema output under compiler/gen; at
// request time Model.Filter folds a `{"<field>_<op>": value}` map into a
// single AND-composed predicate on a dialect/sql selector:
//
//	m := filterql.MustModel("user", []field.Spec{
//		field.ID("id"),
//		field.Int("age"),
//		field.String("email"),
//	})
//	s := sql.Select("*").From(sql.Table("users"))
//	s, err := m.Filter(s, map[string]any{"age_gte": "21", "email_nil": "true"})
package filterql

import (
	"errors"
	"fmt"
	"sort"

	"github.com/syssam/filterql/schema/field"
)

// Definition describes a filterable model: a name plus its declared
// fields. It is the narrow adapter for types that own their field
// metadata; callers with a plain field list use NewModel directly.
type Definition interface {
	// Name returns the model's base name, e.g. "user".
	Name() string
	// Fields returns the declared field specs.
	Fields() []field.Spec
}

// Schema is an embeddable default Definition. Its methods return zero
// values, so embedding types override exactly what they declare.
type Schema struct{}

// Name returns the zero model name.
func (Schema) Name() string { return "" }

// Fields returns no fields.
func (Schema) Fields() []field.Spec { return nil }

// A Model is the compiled form of a model definition: validated field
// specs in declaration order with an index by name. Models are immutable
// after construction and safe for concurrent use.
type Model struct {
	name   string
	fields []field.Spec
	index  map[string]int
}

// NewModel compiles a model from its base name and field specs. The
// specs are validated and copied, so later mutation of the input slice
// does not affect the model.
func NewModel(name string, fields []field.Spec) (*Model, error) {
	if name == "" {
		return nil, errors.New("filterql: model name required")
	}
	if err := field.Validate(fields); err != nil {
		return nil, fmt.Errorf("filterql: model %s: %w", name, err)
	}
	m := &Model{
		name:   name,
		fields: append([]field.Spec(nil), fields...),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range m.fields {
		m.index[f.Name] = i
	}
	return m, nil
}

// MustModel calls NewModel and panics on error. It simplifies
// package-level model variables in generated and hand-written code.
func MustModel(name string, fields []field.Spec) *Model {
	m, err := NewModel(name, fields)
	if err != nil {
		panic(err)
	}
	return m
}

// ModelOf compiles a Model from a Definition.
func ModelOf(d Definition) (*Model, error) {
	return NewModel(d.Name(), d.Fields())
}

// Name returns the model's base name.
func (m *Model) Name() string { return m.name }

// Fields returns a copy of the field specs in declaration order.
func (m *Model) Fields() []field.Spec {
	return append([]field.Spec(nil), m.fields...)
}

// Len returns the number of declared fields.
func (m *Model) Len() int { return len(m.fields) }

// Spec returns the field spec declared under name.
func (m *Model) Spec(name string) (field.Spec, bool) {
	i, ok := m.index[name]
	if !ok {
		return field.Spec{}, false
	}
	return m.fields[i], true
}

// Ops returns the operator set applicable to the named field.
func (m *Model) Ops(name string) (OpSet, bool) {
	f, ok := m.Spec(name)
	if !ok {
		return OpsNone, false
	}
	return OpsFor(f.Type), true
}

// FilterKeys enumerates every filter key the model accepts, in field
// declaration order and canonical operator order. This is the exact key
// set the generated filter-input type declares.
func (m *Model) FilterKeys() []string {
	keys := make([]string, 0, len(m.fields)*int(endOps))
	for _, f := range m.fields {
		for _, op := range OpsFor(f.Type).List() {
			keys = append(keys, f.Name+"_"+op.Suffix())
		}
	}
	return keys
}

// Parse resolves a filter map into conditions without building SQL.
// Keys are processed in sorted order so the output is deterministic.
// Entries with nil values are skipped, as are entries whose value
// coerces to unset. Any invalid key, unknown field, inapplicable
// operator or uncoercible value aborts the whole parse.
func (m *Model) Parse(filter map[string]any) ([]Condition, error) {
	if len(filter) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	conds := make([]Condition, 0, len(keys))
	for _, k := range keys {
		v := filter[k]
		if v == nil {
			continue
		}
		name, op, err := SplitKey(k)
		if err != nil {
			return nil, err
		}
		f, ok := m.Spec(name)
		if !ok {
			return nil, NewUnknownFieldError(m.name, name)
		}
		if !OpsFor(f.Type).Has(op) {
			return nil, NewOperatorError(name, op)
		}
		cv, ok, err := coerceValue(f, op, v)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		conds = append(conds, Condition{Field: f, Op: op, Value: cv})
	}
	return conds, nil
}
