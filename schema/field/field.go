package field

import (
	"fmt"
	"regexp"
	"time"
)

// A Type is the tag of a filterable field. The set is closed: every model
// field carries exactly one of the tags below, and all coercion, operator
// and schema-generation rules key off it.
type Type uint8

// Type tags.
const (
	TypeInvalid Type = iota
	TypeID
	TypeInt
	TypeFloat
	TypeString
	TypeBool
	TypeDate
	TypeDateTime
	TypeUUID
	TypeJSON
	TypeEnum
	endTypes
)

var typeNames = [endTypes]string{
	TypeInvalid:  "invalid",
	TypeID:       "id",
	TypeInt:      "integer",
	TypeFloat:    "float",
	TypeString:   "string",
	TypeBool:     "boolean",
	TypeDate:     "date",
	TypeDateTime: "datetime",
	TypeUUID:     "uuid",
	TypeJSON:     "json",
	TypeEnum:     "enum",
}

// String returns the tag name as it appears in manifests and messages.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("invalid(%d)", t)
}

// Valid reports if the type is a usable tag.
func (t Type) Valid() bool { return t > TypeInvalid && t < endTypes }

// Numeric reports if the type is backed by a numeric value.
func (t Type) Numeric() bool {
	return t == TypeID || t == TypeInt || t == TypeFloat
}

// Temporal reports if the type is backed by a point in time.
func (t Type) Temporal() bool {
	return t == TypeDate || t == TypeDateTime
}

// Ordered reports if values of the type support ordering comparisons.
// Booleans and opaque JSON documents do not.
func (t Type) Ordered() bool {
	return t.Valid() && t != TypeBool && t != TypeJSON
}

// Filterable reports if the type participates in filter inputs at all.
// JSON fields are opaque and are dropped from generated filters.
func (t Type) Filterable() bool {
	return t.Valid() && t != TypeJSON
}

// ParseType resolves a tag name (as written in manifests) to its Type.
func ParseType(s string) (Type, error) {
	for t := TypeID; t < endTypes; t++ {
		if typeNames[t] == s {
			return t, nil
		}
	}
	return TypeInvalid, fmt.Errorf("field: unknown type %q", s)
}

// Accepted layouts for date and datetime values, tried in order.
const (
	LayoutDateTime = "2006-01-02 15:04:05"
	LayoutDate     = "2006-01-02"
)

// ParseTime parses a date or datetime string against the accepted layouts,
// full timestamp first, bare date as fallback.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(LayoutDateTime, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(LayoutDate, s)
}

// A Spec declares one filterable, returnable attribute of a model.
// Specs are immutable values: the chainable methods return copies.
type Spec struct {
	// Name is the attribute name in snake_case. It is also the column
	// name predicates are built against.
	Name string
	// Type is the attribute's type tag.
	Type Type
	// EnumName overrides the generated enum type name for TypeEnum
	// specs. Empty means the name is derived from the field name.
	EnumName string
	// EnumValues holds the accepted values of a TypeEnum spec.
	EnumValues []string
}

// ID declares an id field.
func ID(name string) Spec { return Spec{Name: name, Type: TypeID} }

// Int declares an integer field.
func Int(name string) Spec { return Spec{Name: name, Type: TypeInt} }

// Float declares a float field.
func Float(name string) Spec { return Spec{Name: name, Type: TypeFloat} }

// String declares a string field.
func String(name string) Spec { return Spec{Name: name, Type: TypeString} }

// Bool declares a boolean field.
func Bool(name string) Spec { return Spec{Name: name, Type: TypeBool} }

// Date declares a date field.
func Date(name string) Spec { return Spec{Name: name, Type: TypeDate} }

// DateTime declares a datetime field.
func DateTime(name string) Spec { return Spec{Name: name, Type: TypeDateTime} }

// UUID declares a uuid field.
func UUID(name string) Spec { return Spec{Name: name, Type: TypeUUID} }

// JSON declares an opaque json field. JSON fields appear in result types
// but never in filter inputs.
func JSON(name string) Spec { return Spec{Name: name, Type: TypeJSON} }

// Enum declares an enum field. Use Values to set the accepted values:
//
//	field.Enum("status").Values("pending", "active", "archived")
func Enum(name string) Spec { return Spec{Name: name, Type: TypeEnum} }

// Values returns a copy of the spec with the given enum values.
func (s Spec) Values(vs ...string) Spec {
	s.EnumValues = append([]string(nil), vs...)
	return s
}

// Named returns a copy of the spec with an explicit enum type name.
func (s Spec) Named(ident string) Spec {
	s.EnumName = ident
	return s
}

var nameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Validate reports whether the spec is well formed: a snake_case name, a
// valid type tag, and enum values if and only if the spec is an enum.
func (s Spec) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("field: spec with empty name")
	case !nameRe.MatchString(s.Name):
		return fmt.Errorf("field %q: name must be snake_case", s.Name)
	case !s.Type.Valid():
		return fmt.Errorf("field %q: invalid type tag %d", s.Name, s.Type)
	case s.Type == TypeEnum && len(s.EnumValues) == 0:
		return fmt.Errorf("field %q: enum field declared without values", s.Name)
	case s.Type != TypeEnum && len(s.EnumValues) > 0:
		return fmt.Errorf("field %q: values declared on non-enum field of type %s", s.Name, s.Type)
	case s.Type != TypeEnum && s.EnumName != "":
		return fmt.Errorf("field %q: enum name declared on non-enum field of type %s", s.Name, s.Type)
	}
	return nil
}

// String returns the "name:type" form used in error messages and logs.
func (s Spec) String() string {
	return s.Name + ":" + s.Type.String()
}

// Validate checks a whole spec list: each spec must be valid and names
// must not repeat.
func Validate(specs []Spec) error {
	seen := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("field %q: declared more than once", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}
