// Package schema provides table descriptors, live-database inspection
// and schema validation for filterable models.
package schema

import (
	"fmt"

	"github.com/syssam/filterql/schema/field"
)

// Table is a database table description. Descriptors feed validation
// and convert to field specs for the filter runtime.
type Table struct {
	Name        string
	Columns     []*Column
	PrimaryKey  []*Column
	Indexes     []*Index
	ForeignKeys []*ForeignKey
}

// NewTable returns a table descriptor with the given name.
func NewTable(name string) *Table {
	return &Table{Name: name}
}

// AddColumn appends a column to the table.
func (t *Table) AddColumn(c *Column) *Table {
	t.Columns = append(t.Columns, c)
	return t
}

// AddPrimary appends a column to the table and marks it as part of the
// primary key.
func (t *Table) AddPrimary(c *Column) *Table {
	t.AddColumn(c)
	t.PrimaryKey = append(t.PrimaryKey, c)
	return t
}

// AddIndex appends an index over the named columns. Unknown column
// names are kept as detached references and reported by validation.
func (t *Table) AddIndex(name string, unique bool, columns ...string) *Table {
	idx := &Index{Name: name, Unique: unique}
	for _, name := range columns {
		c, ok := t.Column(name)
		if !ok {
			c = &Column{Name: name}
		}
		idx.Columns = append(idx.Columns, c)
	}
	t.Indexes = append(t.Indexes, idx)
	return t
}

// AddForeignKey appends a foreign key to the table.
func (t *Table) AddForeignKey(fk *ForeignKey) *Table {
	t.ForeignKeys = append(t.ForeignKeys, fk)
	return t
}

// Column returns the table column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Specs converts the table columns to field specs, in declaration
// order. The result plugs straight into model construction.
func (t *Table) Specs() []field.Spec {
	specs := make([]field.Spec, 0, len(t.Columns))
	for _, c := range t.Columns {
		specs = append(specs, c.Spec())
	}
	return specs
}

// Column is a table column description.
type Column struct {
	Name     string
	Type     field.Type
	Nullable bool
	Unique   bool
	// Size bounds variable-length types, zero means driver default.
	Size    int64
	Default any
	// Enums lists the allowed values for enum columns.
	Enums []string
}

// Spec returns the field spec describing the column.
func (c *Column) Spec() field.Spec {
	f := field.Spec{Name: c.Name, Type: c.Type}
	if c.Type == field.TypeEnum {
		f.EnumValues = append([]string(nil), c.Enums...)
	}
	return f
}

// Index is a table index description.
type Index struct {
	Name    string
	Unique  bool
	Columns []*Column
}

// ForeignKey is a foreign-key constraint description.
type ForeignKey struct {
	Symbol     string
	Columns    []*Column
	RefTable   *Table
	RefColumns []*Column
	OnUpdate   ReferenceOption
	OnDelete   ReferenceOption
}

// ReferenceOption is a referential action for ON UPDATE and ON DELETE.
type ReferenceOption string

// Reference options.
const (
	NoAction   ReferenceOption = "NO ACTION"
	Restrict   ReferenceOption = "RESTRICT"
	Cascade    ReferenceOption = "CASCADE"
	SetNull    ReferenceOption = "SET NULL"
	SetDefault ReferenceOption = "SET DEFAULT"
)

// ConstName returns the symbol of the foreign key, deriving one from
// the first column when no symbol was set.
func (fk *ForeignKey) ConstName() string {
	if fk.Symbol != "" {
		return fk.Symbol
	}
	if len(fk.Columns) > 0 {
		return fmt.Sprintf("%s_fkey", fk.Columns[0].Name)
	}
	return ""
}
