package schema

import (
	"context"
	"fmt"
	"strings"

	"ariga.io/atlas/sql/migrate"
	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	atlas "ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"

	"github.com/syssam/filterql/dialect"
	"github.com/syssam/filterql/dialect/sql"
	"github.com/syssam/filterql/schema/field"
)

// Inspect introspects a live table and returns its columns as field
// specs, in column order. The result plugs straight into model
// construction, so filters can be served for existing databases
// without hand-written field lists:
//
//	specs, err := schema.Inspect(ctx, drv, "products")
//	if err != nil {
//	    return err
//	}
//	model, err := filterql.NewModel("products", specs)
func Inspect(ctx context.Context, drv *sql.Driver, table string) ([]field.Spec, error) {
	inspector, err := openInspector(drv)
	if err != nil {
		return nil, err
	}
	s, err := inspector.InspectSchema(ctx, "", &atlas.InspectOptions{
		Mode:   atlas.InspectTables,
		Tables: []string{table},
	})
	if err != nil {
		return nil, fmt.Errorf("schema: inspect %q: %w", table, err)
	}
	t, ok := s.Table(table)
	if !ok {
		return nil, fmt.Errorf("schema: table %q not found", table)
	}
	pk := pkColumns(t)
	specs := make([]field.Spec, 0, len(t.Columns))
	for _, c := range t.Columns {
		f, err := columnSpec(c, pk)
		if err != nil {
			return nil, err
		}
		specs = append(specs, f)
	}
	return specs, nil
}

// openInspector returns the atlas driver matching the connection
// dialect.
func openInspector(drv *sql.Driver) (migrate.Driver, error) {
	switch d := drv.Dialect(); d {
	case dialect.MySQL:
		return mysql.Open(drv.Conn)
	case dialect.Postgres:
		return postgres.Open(drv.Conn)
	case dialect.SQLite:
		return sqlite.Open(drv.Conn)
	default:
		return nil, fmt.Errorf("schema: unsupported dialect %q", d)
	}
}

// pkColumns returns the names of the primary key columns.
func pkColumns(t *atlas.Table) map[string]bool {
	pk := make(map[string]bool)
	if t.PrimaryKey == nil {
		return pk
	}
	for _, part := range t.PrimaryKey.Parts {
		if part.C != nil {
			pk[part.C.Name] = true
		}
	}
	return pk
}

// columnSpec maps an inspected column to a field spec. A single-column
// integer primary key becomes an id field.
func columnSpec(c *atlas.Column, pk map[string]bool) (field.Spec, error) {
	f := field.Spec{Name: c.Name}
	switch ct := c.Type.Type.(type) {
	case *atlas.IntegerType:
		f.Type = field.TypeInt
		if len(pk) == 1 && pk[c.Name] {
			f.Type = field.TypeID
		}
	case *atlas.FloatType:
		f.Type = field.TypeFloat
	case *atlas.DecimalType:
		f.Type = field.TypeFloat
	case *atlas.StringType:
		f.Type = field.TypeString
	case *atlas.BoolType:
		f.Type = field.TypeBool
	case *atlas.TimeType:
		if strings.EqualFold(ct.T, "date") {
			f.Type = field.TypeDate
		} else {
			f.Type = field.TypeDateTime
		}
	case *atlas.EnumType:
		f.Type = field.TypeEnum
		f.EnumValues = append([]string(nil), ct.Values...)
		// MySQL reports the literal "enum" keyword, Postgres the name
		// of the user-defined type.
		if !strings.EqualFold(ct.T, "enum") {
			f.EnumName = ct.T
		}
	case *atlas.UUIDType:
		f.Type = field.TypeUUID
	case *atlas.JSONType:
		f.Type = field.TypeJSON
	default:
		return field.Spec{}, fmt.Errorf("schema: column %q: unsupported type %T (%s)", c.Name, c.Type.Type, c.Type.Raw)
	}
	return f, nil
}
