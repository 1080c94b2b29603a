package filterql

import (
	"github.com/syssam/filterql/dialect/sql"
)

// Filter applies a filter map to a selector. A nil or empty map returns
// the selector untouched. Otherwise the entries parse into conditions,
// each condition becomes one predicate, and all predicates AND into a
// single composite on a clone of the selector. The input selector is
// never mutated. If any entry fails, no selector is returned and no
// partial filtering takes place.
func (m *Model) Filter(s *sql.Selector, filter map[string]any) (*sql.Selector, error) {
	conds, err := m.Parse(filter)
	if err != nil {
		return nil, err
	}
	if len(conds) == 0 {
		return s, nil
	}
	sel := s.Clone()
	ps := make([]*sql.Predicate, len(conds))
	for i, c := range conds {
		p, err := c.predicate(sel)
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	if len(ps) == 1 {
		sel.Where(ps[0])
	} else {
		sel.Where(sql.And(ps...))
	}
	return sel, nil
}

// predicate maps the condition onto the selector's column namespace.
func (c Condition) predicate(s *sql.Selector) (*sql.Predicate, error) {
	col := s.C(c.Field.Name)
	switch c.Op {
	case OpEQ:
		return sql.EQ(col, c.Value), nil
	case OpNEQ:
		return sql.NEQ(col, c.Value), nil
	case OpGT:
		return sql.GT(col, c.Value), nil
	case OpGTE:
		return sql.GTE(col, c.Value), nil
	case OpLT:
		return sql.LT(col, c.Value), nil
	case OpLTE:
		return sql.LTE(col, c.Value), nil
	case OpIn:
		vs, _ := c.Value.([]any)
		return sql.In(col, vs...), nil
	case OpNotIn:
		vs, _ := c.Value.([]any)
		return sql.NotIn(col, vs...), nil
	case OpIsNil:
		if b, _ := c.Value.(bool); b {
			return sql.IsNull(col), nil
		}
		return sql.NotNull(col), nil
	default:
		return nil, NewOperatorError(c.Field.Name, c.Op)
	}
}
