package filterql

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/syssam/filterql/schema/field"
)

// A Condition is one parsed filter entry: the resolved field, the
// operator, and the coerced operand. Conditions render to a readable
// expression form for logs and error messages, and map onto SQL
// predicates through Model.Filter.
type Condition struct {
	// Field is the resolved field spec.
	Field field.Spec
	// Op is the parsed operator.
	Op Op
	// Value is the coerced operand. It is a []any for in/nin and a bool
	// for nil.
	Value any
}

// String renders the condition as an expression, e.g. `age >= 21`,
// `status in ["active","archived"]` or `email == nil`.
func (c Condition) String() string {
	name := c.Field.Name
	switch {
	case c.Op == OpIsNil:
		if b, ok := c.Value.(bool); ok && !b {
			return name + " != nil"
		}
		return name + " == nil"
	case c.Op.Variadic():
		vs, _ := c.Value.([]any)
		elems := make([]string, len(vs))
		for i, v := range vs {
			elems[i] = formatValue(v)
		}
		return fmt.Sprintf("%s %s [%s]", name, c.Op.Symbol(), strings.Join(elems, ","))
	default:
		return fmt.Sprintf("%s %s %s", name, c.Op.Symbol(), formatValue(c.Value))
	}
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case time.Time:
		return strconv.Quote(v.Format(time.RFC3339))
	default:
		return fmt.Sprintf("%v", v)
	}
}
