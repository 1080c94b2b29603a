package filterql

import (
	"strconv"
	"strings"

	"github.com/syssam/filterql/schema/field"
)

// coerceValue converts a raw filter value to the shape the predicate for
// f and op expects. The second return reports if a predicate should be
// built at all: empty strings on integer, boolean and nil comparisons
// mean "unset" and skip the entry instead of comparing against a zero
// value. Values are transformed only where the table below says so,
// everything else passes through unchanged.
func coerceValue(f field.Spec, op Op, v any) (any, bool, error) {
	switch {
	case op == OpIsNil:
		b, ok := truthy(v)
		return b, ok, nil
	case op.Variadic():
		vs, err := coerceList(f, v)
		if err != nil {
			return nil, false, err
		}
		return vs, true, nil
	default:
		return coerceScalar(f, v)
	}
}

// truthy maps a nil-operator operand to a boolean. Only the string
// "true" (any casing) selects the IS NULL branch, every other non-empty
// value selects IS NOT NULL. An empty string means unset.
func truthy(v any) (bool, bool) {
	switch v := v.(type) {
	case bool:
		return v, true
	case string:
		if v == "" {
			return false, false
		}
		return strings.EqualFold(v, "true"), true
	default:
		return false, true
	}
}

// coerceList flattens v into a list and coerces each element with the
// field's scalar rules. A scalar operand becomes a one-element list, so
// a single-value in filter behaves like eq. Elements coercing to unset
// are dropped.
func coerceList(f field.Spec, v any) ([]any, error) {
	vs := make([]any, 0, 1)
	if err := appendFlat(&vs, f, v); err != nil {
		return nil, err
	}
	return vs, nil
}

func appendFlat(vs *[]any, f field.Spec, v any) error {
	switch v := v.(type) {
	case []any:
		for _, e := range v {
			if err := appendFlat(vs, f, e); err != nil {
				return err
			}
		}
	case []string:
		for _, e := range v {
			if err := appendFlat(vs, f, e); err != nil {
				return err
			}
		}
	case []int:
		for _, e := range v {
			if err := appendFlat(vs, f, e); err != nil {
				return err
			}
		}
	case []int64:
		for _, e := range v {
			if err := appendFlat(vs, f, e); err != nil {
				return err
			}
		}
	case []float64:
		for _, e := range v {
			if err := appendFlat(vs, f, e); err != nil {
				return err
			}
		}
	default:
		c, ok, err := coerceScalar(f, v)
		if err != nil {
			return err
		}
		if ok {
			*vs = append(*vs, c)
		}
	}
	return nil
}

// coerceScalar applies the per-type conversion rules to a single value.
func coerceScalar(f field.Spec, v any) (any, bool, error) {
	switch f.Type {
	case field.TypeID, field.TypeInt:
		return coerceInt(f, v)
	case field.TypeFloat:
		return coerceFloat(f, v)
	case field.TypeBool:
		return coerceBool(f, v)
	case field.TypeDate, field.TypeDateTime:
		return coerceTime(f, v)
	default:
		// string, uuid, json and enum values pass through unchanged.
		return v, true, nil
	}
}

func coerceInt(f field.Spec, v any) (any, bool, error) {
	switch v := v.(type) {
	case string:
		if v == "" {
			return nil, false, nil
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, false, &FieldValueError{Field: f.Name, Value: v, Err: err}
		}
		return n, true, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return v, true, nil
	case float64:
		// JSON decoding hands numbers over as float64.
		n := int64(v)
		if float64(n) != v {
			return nil, false, &FieldValueError{Field: f.Name, Value: v}
		}
		return n, true, nil
	default:
		return nil, false, &FieldValueError{Field: f.Name, Value: v}
	}
}

func coerceFloat(f field.Spec, v any) (any, bool, error) {
	switch v := v.(type) {
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false, &FieldValueError{Field: f.Name, Value: v, Err: err}
		}
		return n, true, nil
	case float32, float64:
		return v, true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	default:
		return nil, false, &FieldValueError{Field: f.Name, Value: v}
	}
}

func coerceBool(f field.Spec, v any) (any, bool, error) {
	switch v := v.(type) {
	case bool:
		return v, true, nil
	case string:
		if v == "" {
			return nil, false, nil
		}
		return strings.EqualFold(v, "true"), true, nil
	default:
		return nil, false, &FieldValueError{Field: f.Name, Value: v}
	}
}

func coerceTime(f field.Spec, v any) (any, bool, error) {
	switch v := v.(type) {
	case string:
		t, err := field.ParseTime(v)
		if err != nil {
			return nil, false, &DateValueError{Field: f.Name, Value: v}
		}
		return t, true, nil
	default:
		// time.Time and driver-native values pass through.
		return v, true, nil
	}
}
