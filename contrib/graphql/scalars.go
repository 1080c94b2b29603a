package graphql

import (
	"fmt"
	"io"
	"strconv"
	"time"

	gql "github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"

	"github.com/syssam/filterql/schema/field"
)

// MarshalDate renders a date value in the layout the runtime accepts for
// date operands.
func MarshalDate(t time.Time) gql.Marshaler {
	return gql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, strconv.Quote(t.Format(field.LayoutDate)))
	})
}

// UnmarshalDate parses a date value. Both the datetime and the bare date
// layouts are accepted, in that order, matching the runtime's operand
// coercion.
func UnmarshalDate(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("graphql: Date must be a string, got %T", v)
	}
	return field.ParseTime(s)
}

// MarshalDateTime renders a datetime value in the layout the runtime
// accepts for datetime operands.
func MarshalDateTime(t time.Time) gql.Marshaler {
	return gql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, strconv.Quote(t.Format(field.LayoutDateTime)))
	})
}

// UnmarshalDateTime parses a datetime value through the same ordered
// layout list as UnmarshalDate.
func UnmarshalDateTime(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("graphql: DateTime must be a string, got %T", v)
	}
	return field.ParseTime(s)
}

// MarshalUUID renders a UUID in its canonical string form.
func MarshalUUID(u uuid.UUID) gql.Marshaler {
	return gql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, strconv.Quote(u.String()))
	})
}

// UnmarshalUUID parses a UUID value.
func UnmarshalUUID(v any) (uuid.UUID, error) {
	switch v := v.(type) {
	case string:
		return uuid.Parse(v)
	case []byte:
		return uuid.ParseBytes(v)
	default:
		return uuid.Nil, fmt.Errorf("graphql: UUID must be a string, got %T", v)
	}
}

// MarshalJSON renders an opaque JSON value. JSON fields are map-backed;
// they appear in fields types but expose no filter operators.
func MarshalJSON(m map[string]any) gql.Marshaler {
	return gql.MarshalMap(m)
}

// UnmarshalJSON accepts an opaque JSON value.
func UnmarshalJSON(v any) (map[string]any, error) {
	return gql.UnmarshalMap(v)
}
