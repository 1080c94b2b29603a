package filterql

import (
	"fmt"
	"strings"

	"github.com/syssam/filterql/schema/field"
)

// Op is a filter comparison operator. The set is fixed: filter keys carry
// exactly one of the suffixes below, and predicate building dispatches on
// the enumeration rather than on strings.
type Op uint8

// Filter operators.
const (
	// OpEQ matches values equal to the operand (e.g. age_eq).
	OpEQ Op = iota
	// OpNEQ matches values not equal to the operand (e.g. age_neq).
	OpNEQ
	// OpGT matches values greater than the operand (e.g. age_gt).
	OpGT
	// OpGTE matches values greater than or equal to the operand (e.g. age_gte).
	OpGTE
	// OpLT matches values less than the operand (e.g. age_lt).
	OpLT
	// OpLTE matches values less than or equal to the operand (e.g. age_lte).
	OpLTE
	// OpIn matches values contained in the operand list (e.g. age_in).
	OpIn
	// OpNotIn matches values not contained in the operand list (e.g. age_nin).
	OpNotIn
	// OpIsNil matches NULL values when the operand is true and non-NULL
	// values when it is false (e.g. email_nil).
	OpIsNil
	endOps
)

var opSuffixes = [endOps]string{
	OpEQ:    "eq",
	OpNEQ:   "neq",
	OpGT:    "gt",
	OpGTE:   "gte",
	OpLT:    "lt",
	OpLTE:   "lte",
	OpIn:    "in",
	OpNotIn: "nin",
	OpIsNil: "nil",
}

var opSymbols = [endOps]string{
	OpEQ:    "==",
	OpNEQ:   "!=",
	OpGT:    ">",
	OpGTE:   ">=",
	OpLT:    "<",
	OpLTE:   "<=",
	OpIn:    "in",
	OpNotIn: "not in",
	OpIsNil: "nil",
}

// Suffix returns the key suffix of the operator, without the leading
// underscore.
func (op Op) Suffix() string {
	if op < endOps {
		return opSuffixes[op]
	}
	return fmt.Sprintf("invalid(%d)", op)
}

// Symbol returns the comparison symbol used when rendering conditions.
func (op Op) Symbol() string {
	if op < endOps {
		return opSymbols[op]
	}
	return fmt.Sprintf("invalid(%d)", op)
}

// String returns the operator suffix.
func (op Op) String() string { return op.Suffix() }

// Valid reports if the operator is one of the fixed set.
func (op Op) Valid() bool { return op < endOps }

// Niladic reports if the operator's predicate takes no comparison operand.
// The nil operator compares against NULL instead of a value.
func (op Op) Niladic() bool { return op == OpIsNil }

// Variadic reports if the operator compares against a list of values.
func (op Op) Variadic() bool { return op == OpIn || op == OpNotIn }

// Ordering reports if the operator is an ordering comparison.
func (op Op) Ordering() bool {
	return op == OpGT || op == OpGTE || op == OpLT || op == OpLTE
}

// AllOps lists every operator in canonical declaration order.
func AllOps() []Op {
	ops := make([]Op, 0, endOps)
	for op := OpEQ; op < endOps; op++ {
		ops = append(ops, op)
	}
	return ops
}

// An OpSet is a bitmask of operators. Use bitwise OR of Bit values to
// combine, or start from one of the presets below.
type OpSet uint16

// Bit returns the OpSet bit of the operator.
func (op Op) Bit() OpSet { return 1 << op }

// Operator set presets.
const (
	// OpsNone exposes no operators. JSON fields are opaque and get this.
	OpsNone OpSet = 0

	// OpsEquality includes eq, neq, in and nin.
	OpsEquality OpSet = 1<<OpEQ | 1<<OpNEQ | 1<<OpIn | 1<<OpNotIn

	// OpsOrdering includes gt, gte, lt and lte.
	OpsOrdering OpSet = 1<<OpGT | 1<<OpGTE | 1<<OpLT | 1<<OpLTE

	// OpsNullable includes the nil operator.
	OpsNullable OpSet = 1 << OpIsNil

	// OpsBoolean is the boolean field set: equality and nil, no ordering.
	OpsBoolean OpSet = OpsEquality | OpsNullable

	// OpsAll is the full nine-operator set.
	OpsAll OpSet = OpsEquality | OpsOrdering | OpsNullable
)

// Has reports if the set contains the operator.
func (s OpSet) Has(op Op) bool { return s&op.Bit() != 0 }

// List returns the operators of the set in canonical order.
func (s OpSet) List() []Op {
	ops := make([]Op, 0, endOps)
	for op := OpEQ; op < endOps; op++ {
		if s.Has(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

// Len returns the number of operators in the set.
func (s OpSet) Len() int {
	n := 0
	for op := OpEQ; op < endOps; op++ {
		if s.Has(op) {
			n++
		}
	}
	return n
}

// OpsFor returns the operators applicable to a field type: the full set
// for most types, equality plus nil for booleans, nothing for JSON.
func OpsFor(t field.Type) OpSet {
	switch {
	case !t.Filterable():
		return OpsNone
	case t == field.TypeBool:
		return OpsBoolean
	default:
		return OpsAll
	}
}

// splitOrder lists operators longest-suffix-first so that neq, gte, lte,
// nin and nil win over their shorter tails eq, gt, lt and in.
var splitOrder = [endOps]Op{
	OpNEQ, OpGTE, OpLTE, OpNotIn, OpIsNil,
	OpEQ, OpGT, OpLT, OpIn,
}

// SplitKey splits a filter key into its field name and operator. The
// trailing operator suffix is matched case-insensitively, longest suffix
// first, and the remaining field prefix must be non-empty. Field names
// containing underscores are never truncated: "first_name_eq" splits to
// ("first_name", OpEQ).
func SplitKey(key string) (string, Op, error) {
	for _, op := range splitOrder {
		suffix := "_" + op.Suffix()
		if len(key) <= len(suffix) {
			continue
		}
		if strings.EqualFold(key[len(key)-len(suffix):], suffix) {
			return key[:len(key)-len(suffix)], op, nil
		}
	}
	return "", endOps, NewFilterKeyError(key)
}
