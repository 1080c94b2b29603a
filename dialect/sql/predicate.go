package sql

// PredicateFunc constrains the predicate types declared by generated
// packages. Any named func(*Selector) type satisfies it.
type PredicateFunc interface {
	~func(*Selector)
}

// StringField provides typed predicates for a string column. Generated
// packages declare one value per field and reuse these methods instead
// of emitting a function per operator:
//
//	var Name = sql.StringField[predicate.Product]("name")
//	query.Where(product.Name.EQ("mug"))
type StringField[P PredicateFunc] string

// Name returns the column name.
func (f StringField[P]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f StringField[P]) EQ(v string) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f StringField[P]) NEQ(v string) P {
	return P(FieldNEQ(string(f), v))
}

// GT matches rows where the field sorts after v.
func (f StringField[P]) GT(v string) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field sorts after or equals v.
func (f StringField[P]) GTE(v string) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field sorts before v.
func (f StringField[P]) LT(v string) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field sorts before or equals v.
func (f StringField[P]) LTE(v string) P {
	return P(FieldLTE(string(f), v))
}

// In matches rows where the field is one of vs.
func (f StringField[P]) In(vs ...string) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f StringField[P]) NotIn(vs ...string) P {
	return P(FieldNotIn(string(f), vs...))
}

// IsNil matches rows where the field is NULL.
func (f StringField[P]) IsNil() P {
	return P(FieldIsNull(string(f)))
}

// NotNil matches rows where the field is not NULL.
func (f StringField[P]) NotNil() P {
	return P(FieldNotNull(string(f)))
}

// Contains matches rows where the field contains v.
func (f StringField[P]) Contains(v string) P {
	return P(FieldContains(string(f), v))
}

// ContainsFold matches rows where the field contains v, ignoring case.
func (f StringField[P]) ContainsFold(v string) P {
	return P(FieldContainsFold(string(f), v))
}

// HasPrefix matches rows where the field starts with v.
func (f StringField[P]) HasPrefix(v string) P {
	return P(FieldHasPrefix(string(f), v))
}

// HasSuffix matches rows where the field ends with v.
func (f StringField[P]) HasSuffix(v string) P {
	return P(FieldHasSuffix(string(f), v))
}

// EqualFold matches rows where the field equals v, ignoring case.
func (f StringField[P]) EqualFold(v string) P {
	return P(FieldEqualFold(string(f), v))
}

// IntField provides typed predicates for an integer column.
type IntField[P PredicateFunc] string

// Name returns the column name.
func (f IntField[P]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f IntField[P]) EQ(v int) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f IntField[P]) NEQ(v int) P {
	return P(FieldNEQ(string(f), v))
}

// GT matches rows where the field is greater than v.
func (f IntField[P]) GT(v int) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field is greater than or equal to v.
func (f IntField[P]) GTE(v int) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field is less than v.
func (f IntField[P]) LT(v int) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field is less than or equal to v.
func (f IntField[P]) LTE(v int) P {
	return P(FieldLTE(string(f), v))
}

// In matches rows where the field is one of vs.
func (f IntField[P]) In(vs ...int) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f IntField[P]) NotIn(vs ...int) P {
	return P(FieldNotIn(string(f), vs...))
}

// IsNil matches rows where the field is NULL.
func (f IntField[P]) IsNil() P {
	return P(FieldIsNull(string(f)))
}

// NotNil matches rows where the field is not NULL.
func (f IntField[P]) NotNil() P {
	return P(FieldNotNull(string(f)))
}

// Int64Field provides typed predicates for an int64 column. Identifier
// columns use it since coerced id values are int64.
type Int64Field[P PredicateFunc] string

// Name returns the column name.
func (f Int64Field[P]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f Int64Field[P]) EQ(v int64) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f Int64Field[P]) NEQ(v int64) P {
	return P(FieldNEQ(string(f), v))
}

// GT matches rows where the field is greater than v.
func (f Int64Field[P]) GT(v int64) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field is greater than or equal to v.
func (f Int64Field[P]) GTE(v int64) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field is less than v.
func (f Int64Field[P]) LT(v int64) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field is less than or equal to v.
func (f Int64Field[P]) LTE(v int64) P {
	return P(FieldLTE(string(f), v))
}

// In matches rows where the field is one of vs.
func (f Int64Field[P]) In(vs ...int64) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f Int64Field[P]) NotIn(vs ...int64) P {
	return P(FieldNotIn(string(f), vs...))
}

// IsNil matches rows where the field is NULL.
func (f Int64Field[P]) IsNil() P {
	return P(FieldIsNull(string(f)))
}

// NotNil matches rows where the field is not NULL.
func (f Int64Field[P]) NotNil() P {
	return P(FieldNotNull(string(f)))
}

// Float64Field provides typed predicates for a float column.
type Float64Field[P PredicateFunc] string

// Name returns the column name.
func (f Float64Field[P]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f Float64Field[P]) EQ(v float64) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f Float64Field[P]) NEQ(v float64) P {
	return P(FieldNEQ(string(f), v))
}

// GT matches rows where the field is greater than v.
func (f Float64Field[P]) GT(v float64) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field is greater than or equal to v.
func (f Float64Field[P]) GTE(v float64) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field is less than v.
func (f Float64Field[P]) LT(v float64) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field is less than or equal to v.
func (f Float64Field[P]) LTE(v float64) P {
	return P(FieldLTE(string(f), v))
}

// In matches rows where the field is one of vs.
func (f Float64Field[P]) In(vs ...float64) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f Float64Field[P]) NotIn(vs ...float64) P {
	return P(FieldNotIn(string(f), vs...))
}

// IsNil matches rows where the field is NULL.
func (f Float64Field[P]) IsNil() P {
	return P(FieldIsNull(string(f)))
}

// NotNil matches rows where the field is not NULL.
func (f Float64Field[P]) NotNil() P {
	return P(FieldNotNull(string(f)))
}

// BoolField provides typed predicates for a boolean column. Booleans
// carry the equality and null checks only, no ordering.
type BoolField[P PredicateFunc] string

// Name returns the column name.
func (f BoolField[P]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f BoolField[P]) EQ(v bool) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f BoolField[P]) NEQ(v bool) P {
	return P(FieldNEQ(string(f), v))
}

// In matches rows where the field is one of vs.
func (f BoolField[P]) In(vs ...bool) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f BoolField[P]) NotIn(vs ...bool) P {
	return P(FieldNotIn(string(f), vs...))
}

// IsNil matches rows where the field is NULL.
func (f BoolField[P]) IsNil() P {
	return P(FieldIsNull(string(f)))
}

// NotNil matches rows where the field is not NULL.
func (f BoolField[P]) NotNil() P {
	return P(FieldNotNull(string(f)))
}

// TimeField provides typed predicates for a date or datetime column.
// T is the time type stored in the column, usually time.Time.
type TimeField[P PredicateFunc, T any] string

// Name returns the column name.
func (f TimeField[P, T]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f TimeField[P, T]) EQ(v T) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f TimeField[P, T]) NEQ(v T) P {
	return P(FieldNEQ(string(f), v))
}

// GT matches rows where the field is after v.
func (f TimeField[P, T]) GT(v T) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field is at or after v.
func (f TimeField[P, T]) GTE(v T) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field is before v.
func (f TimeField[P, T]) LT(v T) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field is at or before v.
func (f TimeField[P, T]) LTE(v T) P {
	return P(FieldLTE(string(f), v))
}

// In matches rows where the field is one of vs.
func (f TimeField[P, T]) In(vs ...T) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f TimeField[P, T]) NotIn(vs ...T) P {
	return P(FieldNotIn(string(f), vs...))
}

// IsNil matches rows where the field is NULL.
func (f TimeField[P, T]) IsNil() P {
	return P(FieldIsNull(string(f)))
}

// NotNil matches rows where the field is not NULL.
func (f TimeField[P, T]) NotNil() P {
	return P(FieldNotNull(string(f)))
}

// EnumField provides typed predicates for an enum column. T is the
// generated enum type and must be string-backed. Ordering compares the
// stored string values.
type EnumField[P PredicateFunc, T ~string] string

// Name returns the column name.
func (f EnumField[P, T]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f EnumField[P, T]) EQ(v T) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f EnumField[P, T]) NEQ(v T) P {
	return P(FieldNEQ(string(f), v))
}

// GT matches rows where the field sorts after v.
func (f EnumField[P, T]) GT(v T) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field sorts after or equals v.
func (f EnumField[P, T]) GTE(v T) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field sorts before v.
func (f EnumField[P, T]) LT(v T) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field sorts before or equals v.
func (f EnumField[P, T]) LTE(v T) P {
	return P(FieldLTE(string(f), v))
}

// In matches rows where the field is one of vs.
func (f EnumField[P, T]) In(vs ...T) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f EnumField[P, T]) NotIn(vs ...T) P {
	return P(FieldNotIn(string(f), vs...))
}

// IsNil matches rows where the field is NULL.
func (f EnumField[P, T]) IsNil() P {
	return P(FieldIsNull(string(f)))
}

// NotNil matches rows where the field is not NULL.
func (f EnumField[P, T]) NotNil() P {
	return P(FieldNotNull(string(f)))
}

// UUIDField provides typed predicates for a uuid column. T is the UUID
// type, usually uuid.UUID.
type UUIDField[P PredicateFunc, T any] string

// Name returns the column name.
func (f UUIDField[P, T]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f UUIDField[P, T]) EQ(v T) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f UUIDField[P, T]) NEQ(v T) P {
	return P(FieldNEQ(string(f), v))
}

// GT matches rows where the field sorts after v.
func (f UUIDField[P, T]) GT(v T) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field sorts after or equals v.
func (f UUIDField[P, T]) GTE(v T) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field sorts before v.
func (f UUIDField[P, T]) LT(v T) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field sorts before or equals v.
func (f UUIDField[P, T]) LTE(v T) P {
	return P(FieldLTE(string(f), v))
}

// In matches rows where the field is one of vs.
func (f UUIDField[P, T]) In(vs ...T) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f UUIDField[P, T]) NotIn(vs ...T) P {
	return P(FieldNotIn(string(f), vs...))
}

// IsNil matches rows where the field is NULL.
func (f UUIDField[P, T]) IsNil() P {
	return P(FieldIsNull(string(f)))
}

// NotNil matches rows where the field is not NULL.
func (f UUIDField[P, T]) NotNil() P {
	return P(FieldNotNull(string(f)))
}
