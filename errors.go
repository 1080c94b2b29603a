package filterql

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for filter processing.
var (
	// ErrInvalidFilterKey is returned when a filter key has no recognizable
	// operator suffix or an empty field prefix.
	ErrInvalidFilterKey = errors.New("filterql: invalid filter key")

	// ErrUnknownField is returned when a filter key names a field that is
	// not declared on the model.
	ErrUnknownField = errors.New("filterql: unknown field")

	// ErrInvalidFieldValue is returned when a filter value cannot be
	// coerced to the field's declared type.
	ErrInvalidFieldValue = errors.New("filterql: invalid field value")

	// ErrInvalidDateValue is returned when a date or datetime string
	// matches none of the accepted layouts.
	ErrInvalidDateValue = errors.New("filterql: invalid date value")

	// ErrUnsupportedOperator is returned when an operator parses but does
	// not apply to the field's type.
	ErrUnsupportedOperator = errors.New("filterql: unsupported operator")
)

// FilterKeyError represents a filter key that cannot be split into a field
// name and an operator suffix.
type FilterKeyError struct {
	key string
}

// Error returns the error string.
func (e *FilterKeyError) Error() string {
	return fmt.Sprintf("filterql: invalid filter key %q", e.key)
}

// Is reports whether the target error matches FilterKeyError.
// This allows errors.Is(err, ErrInvalidFilterKey) to return true.
func (e *FilterKeyError) Is(err error) bool {
	return err == ErrInvalidFilterKey
}

// Key returns the offending filter key.
func (e *FilterKeyError) Key() string {
	return e.key
}

// NewFilterKeyError returns a new FilterKeyError for the given key.
func NewFilterKeyError(key string) *FilterKeyError {
	return &FilterKeyError{key: key}
}

// IsFilterKeyError returns true if the error is a FilterKeyError.
func IsFilterKeyError(err error) bool {
	if err == nil {
		return false
	}
	var e *FilterKeyError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidFilterKey)
}

// UnknownFieldError represents a filter key whose field prefix is not
// declared on the model.
type UnknownFieldError struct {
	model string
	name  string
}

// Error returns the error string.
func (e *UnknownFieldError) Error() string {
	if e.model != "" {
		return fmt.Sprintf("filterql: unknown field %q on model %s", e.name, e.model)
	}
	return fmt.Sprintf("filterql: unknown field %q", e.name)
}

// Is reports whether the target error matches UnknownFieldError.
func (e *UnknownFieldError) Is(err error) bool {
	return err == ErrUnknownField
}

// Field returns the undeclared field name.
func (e *UnknownFieldError) Field() string {
	return e.name
}

// Model returns the model name, if known.
func (e *UnknownFieldError) Model() string {
	return e.model
}

// NewUnknownFieldError returns a new UnknownFieldError for the given model
// and field name.
func NewUnknownFieldError(model, name string) *UnknownFieldError {
	return &UnknownFieldError{model: model, name: name}
}

// IsUnknownFieldError returns true if the error is an UnknownFieldError.
func IsUnknownFieldError(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownFieldError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownField)
}

// FieldValueError represents a filter value that cannot be coerced to the
// field's declared type.
type FieldValueError struct {
	// Field is the field name the value was supplied for.
	Field string
	// Value is the raw value as received.
	Value any
	// Err is the underlying conversion error, if any.
	Err error
}

// Error returns the error string.
func (e *FieldValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("filterql: invalid value %v for field %q: %v", e.Value, e.Field, e.Err)
	}
	return fmt.Sprintf("filterql: invalid value %v for field %q", e.Value, e.Field)
}

// Unwrap returns the underlying error.
func (e *FieldValueError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches FieldValueError.
func (e *FieldValueError) Is(err error) bool {
	return err == ErrInvalidFieldValue
}

// NewFieldValueError returns a new FieldValueError for the given field and
// raw value.
func NewFieldValueError(field string, value any, err error) *FieldValueError {
	return &FieldValueError{Field: field, Value: value, Err: err}
}

// IsFieldValueError returns true if the error is a FieldValueError.
func IsFieldValueError(err error) bool {
	if err == nil {
		return false
	}
	var e *FieldValueError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidFieldValue)
}

// DateValueError represents a date or datetime string that matches none of
// the accepted layouts.
type DateValueError struct {
	// Field is the field name the value was supplied for.
	Field string
	// Value is the unparseable input.
	Value string
}

// Error returns the error string.
func (e *DateValueError) Error() string {
	return fmt.Sprintf("filterql: invalid date value %q for field %q", e.Value, e.Field)
}

// Is reports whether the target error matches DateValueError.
func (e *DateValueError) Is(err error) bool {
	return err == ErrInvalidDateValue
}

// NewDateValueError returns a new DateValueError for the given field and
// input string.
func NewDateValueError(field, value string) *DateValueError {
	return &DateValueError{Field: field, Value: value}
}

// IsDateValueError returns true if the error is a DateValueError.
func IsDateValueError(err error) bool {
	if err == nil {
		return false
	}
	var e *DateValueError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidDateValue)
}

// OperatorError represents an operator that parsed but does not apply to
// the field it was used with, such as an ordering comparison on a boolean.
type OperatorError struct {
	// Field is the field name the operator was applied to.
	Field string
	// Op is the rejected operator.
	Op Op
}

// Error returns the error string.
func (e *OperatorError) Error() string {
	return fmt.Sprintf("filterql: operator %s not supported for field %q", e.Op, e.Field)
}

// Is reports whether the target error matches OperatorError.
func (e *OperatorError) Is(err error) bool {
	return err == ErrUnsupportedOperator
}

// NewOperatorError returns a new OperatorError for the given field and
// operator.
func NewOperatorError(field string, op Op) *OperatorError {
	return &OperatorError{Field: field, Op: op}
}

// IsOperatorError returns true if the error is an OperatorError.
func IsOperatorError(err error) bool {
	if err == nil {
		return false
	}
	var e *OperatorError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedOperator)
}
