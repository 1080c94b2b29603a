package sql

import (
	"strconv"
	"strings"

	"github.com/syssam/filterql/dialect"
)

// Querier wraps the Query method. It is implemented by all statement
// builders and predicates in this package.
type Querier interface {
	// Query returns the query representation of the element
	// and its arguments (if any).
	Query() (string, []any)
}

// state allows a parent builder to propagate its dialect and argument
// counter into nested queriers before rendering them.
type state interface {
	Querier
	SetDialect(string)
	SetTotal(int)
}

// Builder is the base query builder shared by all statement builders.
// It tracks the dialect and the running placeholder count so nested
// builders number Postgres arguments correctly.
type Builder struct {
	sb      strings.Builder
	dialect string
	args    []any
	total   int
}

// Quote quotes the given identifier with the dialect's quote character.
func (b *Builder) Quote(ident string) string {
	quote := "`"
	if b.postgres() {
		quote = `"`
	}
	return quote + ident + quote
}

// Ident appends the given string as an identifier. Qualified names
// quote each dot-separated part. Stars, function calls and already
// quoted input are written as-is.
func (b *Builder) Ident(s string) *Builder {
	switch {
	case len(s) == 0:
	case s == "*" || isFunc(s) || b.isIdent(s):
		b.WriteString(s)
	default:
		parts := strings.Split(s, ".")
		for i, p := range parts {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(b.Quote(p))
		}
	}
	return b
}

// IdentComma writes a comma-separated list of identifiers.
func (b *Builder) IdentComma(s ...string) *Builder {
	for i := range s {
		if i > 0 {
			b.Comma()
		}
		b.Ident(s[i])
	}
	return b
}

// WriteString appends the string to the query buffer.
func (b *Builder) WriteString(s string) *Builder {
	b.sb.WriteString(s)
	return b
}

// WriteByte appends the byte to the query buffer.
func (b *Builder) WriteByte(c byte) *Builder {
	b.sb.WriteByte(c)
	return b
}

// Comma writes a comma separator.
func (b *Builder) Comma() *Builder { return b.WriteString(", ") }

// Pad writes a single space.
func (b *Builder) Pad() *Builder { return b.WriteByte(' ') }

// Arg appends the value as a query argument and writes its placeholder:
// positional `$n` on Postgres, `?` elsewhere.
func (b *Builder) Arg(a any) *Builder {
	b.total++
	b.args = append(b.args, a)
	if b.postgres() {
		b.sb.WriteByte('$')
		b.sb.WriteString(strconv.Itoa(b.total))
	} else {
		b.sb.WriteByte('?')
	}
	return b
}

// Args appends a comma-separated list of arguments.
func (b *Builder) Args(a ...any) *Builder {
	for i := range a {
		if i > 0 {
			b.Comma()
		}
		b.Arg(a[i])
	}
	return b
}

// Join renders the queriers into the buffer, sharing the dialect and the
// placeholder counter with them.
func (b *Builder) Join(qs ...Querier) *Builder {
	for _, q := range qs {
		if st, ok := q.(state); ok {
			st.SetDialect(b.dialect)
			st.SetTotal(b.total)
		}
		query, args := q.Query()
		b.sb.WriteString(query)
		b.args = append(b.args, args...)
		b.total += len(args)
	}
	return b
}

// Nested renders f inside parentheses.
func (b *Builder) Nested(f func(*Builder)) *Builder {
	nb := &Builder{dialect: b.dialect, total: b.total}
	nb.WriteByte('(')
	f(nb)
	nb.WriteByte(')')
	b.sb.WriteString(nb.String())
	b.args = append(b.args, nb.args...)
	b.total = nb.total
	return b
}

// String returns the accumulated query text.
func (b *Builder) String() string { return b.sb.String() }

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int { return b.sb.Len() }

// Reset resets the query buffer.
func (b *Builder) Reset() *Builder {
	b.sb.Reset()
	return b
}

// SetDialect sets the builder dialect.
func (b *Builder) SetDialect(dialect string) { b.dialect = dialect }

// Dialect returns the builder dialect.
func (b *Builder) Dialect() string { return b.dialect }

// SetTotal sets the running placeholder count. It is used by parent
// builders when composing nested queriers.
func (b *Builder) SetTotal(total int) { b.total = total }

// Total returns the number of arguments accumulated so far.
func (b *Builder) Total() int { return b.total }

func (b *Builder) postgres() bool { return b.dialect == dialect.Postgres }

// clone returns a fresh builder carrying only the dialect. Query text
// and arguments are rebuilt on the next Query call.
func (b *Builder) clone() Builder {
	return Builder{dialect: b.dialect}
}

// isIdent reports if the string is already a quoted identifier.
func (b *Builder) isIdent(s string) bool {
	if b.postgres() {
		return strings.ContainsRune(s, '"')
	}
	return strings.ContainsRune(s, '`')
}

// isFunc reports if the string is a function call or raw expression.
func isFunc(s string) bool {
	return strings.ContainsRune(s, '(') || strings.ContainsRune(s, ' ')
}

// DialectBuilder prefixes all root builders with the given dialect.
type DialectBuilder struct {
	dialect string
}

// Dialect creates a builder factory for the configured dialect.
//
//	sel := sql.Dialect(dialect.Postgres).
//		Select("id", "name").From(sql.Table("users"))
func Dialect(name string) *DialectBuilder {
	return &DialectBuilder{dialect: name}
}

// Select creates a Selector for the configured dialect.
func (d *DialectBuilder) Select(columns ...string) *Selector {
	s := Select(columns...)
	s.SetDialect(d.dialect)
	return s
}

// Table creates a SelectTable for the configured dialect.
func (d *DialectBuilder) Table(name string) *SelectTable {
	t := Table(name)
	t.SetDialect(d.dialect)
	return t
}

// Insert creates an InsertBuilder for the configured dialect.
func (d *DialectBuilder) Insert(table string) *InsertBuilder {
	i := Insert(table)
	i.SetDialect(d.dialect)
	return i
}

// Update creates an UpdateBuilder for the configured dialect.
func (d *DialectBuilder) Update(table string) *UpdateBuilder {
	u := Update(table)
	u.SetDialect(d.dialect)
	return u
}

// Delete creates a DeleteBuilder for the configured dialect.
func (d *DialectBuilder) Delete(table string) *DeleteBuilder {
	dl := Delete(table)
	dl.SetDialect(d.dialect)
	return dl
}

// SelectTable is a table reference used in FROM and JOIN clauses.
type SelectTable struct {
	Builder
	name string
	as   string
}

// Table returns a new table reference.
func Table(name string) *SelectTable {
	return &SelectTable{name: name}
}

// As sets the table alias.
func (t *SelectTable) As(alias string) *SelectTable {
	t.as = alias
	return t
}

// Name returns the table name.
func (t *SelectTable) Name() string { return t.name }

// C returns the column qualified by the table alias (or name), quoted
// for the table's dialect.
func (t *SelectTable) C(column string) string {
	name := t.name
	if t.as != "" {
		name = t.as
	}
	b := &Builder{dialect: t.dialect}
	b.Ident(name).WriteByte('.').Ident(column)
	return b.String()
}

// ref renders the table reference for a FROM or JOIN clause.
func (t *SelectTable) ref(b *Builder) {
	b.Ident(t.name)
	if t.as != "" {
		b.WriteString(" AS ")
		b.WriteString(b.Quote(t.as))
	}
}

type join struct {
	kind  string
	table *SelectTable
	on    *Predicate
}

// Selector builds a SELECT statement.
type Selector struct {
	Builder
	distinct bool
	columns  []string
	from     *SelectTable
	joins    []join
	where    *Predicate
	groupBy  []string
	having   *Predicate
	orderBy  []string
	limit    *int
	offset   *int
}

// Select returns a new selector for the given columns.
//
//	sql.Select("id", "name").
//		From(sql.Table("users")).
//		Where(sql.EQ("name", "mash"))
func Select(columns ...string) *Selector {
	return (&Selector{}).Select(columns...)
}

// Select replaces the selected columns.
func (s *Selector) Select(columns ...string) *Selector {
	s.columns = columns
	return s
}

// Distinct marks the selection as DISTINCT.
func (s *Selector) Distinct() *Selector {
	s.distinct = true
	return s
}

// From sets the source table of the selection.
func (s *Selector) From(t *SelectTable) *Selector {
	t.SetDialect(s.dialect)
	s.from = t
	return s
}

// Join appends an inner join on the given table. Follow with On to set
// the join condition.
func (s *Selector) Join(t *SelectTable) *Selector {
	return s.join("JOIN", t)
}

// LeftJoin appends a left outer join on the given table.
func (s *Selector) LeftJoin(t *SelectTable) *Selector {
	return s.join("LEFT JOIN", t)
}

// RightJoin appends a right outer join on the given table.
func (s *Selector) RightJoin(t *SelectTable) *Selector {
	return s.join("RIGHT JOIN", t)
}

func (s *Selector) join(kind string, t *SelectTable) *Selector {
	t.SetDialect(s.dialect)
	s.joins = append(s.joins, join{kind: kind, table: t})
	return s
}

// On sets the condition of the last join to column equality.
func (s *Selector) On(c1, c2 string) *Selector {
	if len(s.joins) > 0 {
		s.joins[len(s.joins)-1].on = ColumnsEQ(c1, c2)
	}
	return s
}

// Where sets or ANDs the selection predicate.
func (s *Selector) Where(p *Predicate) *Selector {
	if s.where != nil {
		s.where = And(s.where, p)
	} else {
		s.where = p
	}
	return s
}

// P returns the current selection predicate.
func (s *Selector) P() *Predicate { return s.where }

// C returns the column qualified by the FROM table, quoted for the
// selector's dialect.
func (s *Selector) C(column string) string {
	if s.from != nil {
		return s.from.C(column)
	}
	b := &Builder{dialect: s.dialect}
	b.Ident(column)
	return b.String()
}

// GroupBy appends grouping columns.
func (s *Selector) GroupBy(columns ...string) *Selector {
	s.groupBy = append(s.groupBy, columns...)
	return s
}

// Having sets the HAVING predicate.
func (s *Selector) Having(p *Predicate) *Selector {
	s.having = p
	return s
}

// OrderBy appends ordering terms. Wrap columns with Desc or Asc to pick
// a direction.
func (s *Selector) OrderBy(columns ...string) *Selector {
	s.orderBy = append(s.orderBy, columns...)
	return s
}

// Limit sets the LIMIT clause.
func (s *Selector) Limit(n int) *Selector {
	s.limit = &n
	return s
}

// Offset sets the OFFSET clause.
func (s *Selector) Offset(n int) *Selector {
	s.offset = &n
	return s
}

// Clone returns a deep copy of the selector. The original and the clone
// can be extended independently.
func (s *Selector) Clone() *Selector {
	if s == nil {
		return nil
	}
	return &Selector{
		Builder:  s.Builder.clone(),
		distinct: s.distinct,
		columns:  append([]string(nil), s.columns...),
		from:     s.from,
		joins:    append([]join(nil), s.joins...),
		where:    s.where.clone(),
		groupBy:  append([]string(nil), s.groupBy...),
		having:   s.having.clone(),
		orderBy:  append([]string(nil), s.orderBy...),
		limit:    s.limit,
		offset:   s.offset,
	}
}

// Asc marks the column for ascending order.
func Asc(column string) string { return column + " ASC" }

// Desc marks the column for descending order.
func Desc(column string) string { return column + " DESC" }

// Query returns the SELECT statement and its arguments.
func (s *Selector) Query() (string, []any) {
	b := &Builder{dialect: s.dialect}
	b.WriteString("SELECT ")
	if s.distinct {
		b.WriteString("DISTINCT ")
	}
	if len(s.columns) > 0 {
		b.IdentComma(s.columns...)
	} else {
		b.WriteString("*")
	}
	if s.from != nil {
		b.WriteString(" FROM ")
		s.from.ref(b)
	}
	for _, j := range s.joins {
		b.Pad().WriteString(j.kind).Pad()
		j.table.ref(b)
		if j.on != nil {
			b.WriteString(" ON ")
			b.Join(j.on)
		}
	}
	if s.where != nil {
		b.WriteString(" WHERE ")
		b.Join(s.where)
	}
	if len(s.groupBy) > 0 {
		b.WriteString(" GROUP BY ")
		b.IdentComma(s.groupBy...)
	}
	if s.having != nil {
		b.WriteString(" HAVING ")
		b.Join(s.having)
	}
	if len(s.orderBy) > 0 {
		b.WriteString(" ORDER BY ")
		for i, o := range s.orderBy {
			if i > 0 {
				b.Comma()
			}
			b.orderIdent(o)
		}
	}
	if s.limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(*s.limit))
	}
	if s.offset != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(*s.offset))
	}
	return b.String(), b.args
}

// orderIdent quotes an ordering term, keeping a trailing direction.
func (b *Builder) orderIdent(s string) {
	switch {
	case strings.HasSuffix(s, " DESC"):
		b.Ident(strings.TrimSuffix(s, " DESC")).WriteString(" DESC")
	case strings.HasSuffix(s, " ASC"):
		b.Ident(strings.TrimSuffix(s, " ASC")).WriteString(" ASC")
	default:
		b.Ident(s)
	}
}

// InsertBuilder builds an INSERT statement.
type InsertBuilder struct {
	Builder
	table     string
	columns   []string
	values    [][]any
	defaults  bool
	returning []string
}

// Insert returns a builder for an INSERT into the given table.
//
//	sql.Insert("users").Columns("name", "age").Values("mash", 30)
func Insert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Columns sets the insert columns.
func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = append(i.columns, columns...)
	return i
}

// Values appends one row of values.
func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.values = append(i.values, values)
	return i
}

// Default inserts a row with default values only.
func (i *InsertBuilder) Default() *InsertBuilder {
	i.defaults = true
	return i
}

// Returning adds a RETURNING clause. MySQL does not support it and the
// clause is dropped there.
func (i *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	i.returning = columns
	return i
}

// Query returns the INSERT statement and its arguments.
func (i *InsertBuilder) Query() (string, []any) {
	b := &Builder{dialect: i.dialect}
	b.WriteString("INSERT INTO ")
	b.Ident(i.table)
	switch {
	case i.defaults && i.dialect == dialect.MySQL:
		b.WriteString(" () VALUES ()")
	case i.defaults:
		b.WriteString(" DEFAULT VALUES")
	default:
		b.WriteString(" (").IdentComma(i.columns...).WriteString(") VALUES ")
		for r, row := range i.values {
			if r > 0 {
				b.Comma()
			}
			b.WriteByte('(').Args(row...).WriteByte(')')
		}
	}
	if len(i.returning) > 0 && i.dialect != dialect.MySQL {
		b.WriteString(" RETURNING ")
		b.IdentComma(i.returning...)
	}
	return b.String(), b.args
}

// UpdateBuilder builds an UPDATE statement.
type UpdateBuilder struct {
	Builder
	table   string
	columns []string
	values  []any
	where   *Predicate
}

// Update returns a builder for an UPDATE of the given table.
//
//	sql.Update("users").Set("name", "mash").Where(sql.EQ("id", 1))
func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set assigns a value to a column.
func (u *UpdateBuilder) Set(column string, v any) *UpdateBuilder {
	u.columns = append(u.columns, column)
	u.values = append(u.values, v)
	return u
}

// Where sets or ANDs the update predicate.
func (u *UpdateBuilder) Where(p *Predicate) *UpdateBuilder {
	if u.where != nil {
		u.where = And(u.where, p)
	} else {
		u.where = p
	}
	return u
}

// Query returns the UPDATE statement and its arguments.
func (u *UpdateBuilder) Query() (string, []any) {
	b := &Builder{dialect: u.dialect}
	b.WriteString("UPDATE ")
	b.Ident(u.table)
	b.WriteString(" SET ")
	for c := range u.columns {
		if c > 0 {
			b.Comma()
		}
		b.Ident(u.columns[c]).WriteString(" = ").Arg(u.values[c])
	}
	if u.where != nil {
		b.WriteString(" WHERE ")
		b.Join(u.where)
	}
	return b.String(), b.args
}

// DeleteBuilder builds a DELETE statement.
type DeleteBuilder struct {
	Builder
	table string
	where *Predicate
}

// Delete returns a builder for a DELETE from the given table.
//
//	sql.Delete("users").Where(sql.EQ("id", 1))
func Delete(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

// Where sets or ANDs the delete predicate.
func (d *DeleteBuilder) Where(p *Predicate) *DeleteBuilder {
	if d.where != nil {
		d.where = And(d.where, p)
	} else {
		d.where = p
	}
	return d
}

// Query returns the DELETE statement and its arguments.
func (d *DeleteBuilder) Query() (string, []any) {
	b := &Builder{dialect: d.dialect}
	b.WriteString("DELETE FROM ")
	b.Ident(d.table)
	if d.where != nil {
		b.WriteString(" WHERE ")
		b.Join(d.where)
	}
	return b.String(), b.args
}

// Predicate is a lazily rendered boolean expression. Its parts run
// against the parent builder at query time, so the same predicate value
// renders correctly under any dialect.
type Predicate struct {
	Builder
	depth int
	fns   []func(*Builder)
}

// P creates a new predicate from the given render functions.
func P(fns ...func(*Builder)) *Predicate {
	return &Predicate{fns: fns}
}

// Append appends a render function to the predicate.
func (p *Predicate) Append(f func(*Builder)) *Predicate {
	p.fns = append(p.fns, f)
	return p
}

// clone returns a copy sharing no render state with the original.
func (p *Predicate) clone() *Predicate {
	if p == nil {
		return nil
	}
	return &Predicate{fns: append([](func(*Builder))(nil), p.fns...)}
}

// Query renders the predicate and returns its text and arguments.
func (p *Predicate) Query() (string, []any) {
	if p.Len() > 0 || len(p.args) > 0 {
		p.Reset()
		p.args = nil
	}
	for _, f := range p.fns {
		f(&p.Builder)
	}
	return p.String(), p.args
}

// And combines the predicates with AND. Nested composites render inside
// parentheses.
func And(preds ...*Predicate) *Predicate {
	p := P()
	return p.Append(func(b *Builder) {
		p.mayWrap(b, preds, "AND")
	})
}

// Or combines the predicates with OR.
func Or(preds ...*Predicate) *Predicate {
	p := P()
	return p.Append(func(b *Builder) {
		p.mayWrap(b, preds, "OR")
	})
}

// Not negates the predicate.
func Not(pred *Predicate) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("NOT ")
		b.Nested(func(nb *Builder) {
			nb.Join(pred)
		})
	})
}

func (p *Predicate) mayWrap(b *Builder, preds []*Predicate, op string) {
	switch n := len(preds); {
	case n == 1:
		b.Join(preds[0])
		return
	case n > 1 && p.depth != 0:
		b.WriteByte('(')
		defer b.WriteByte(')')
	}
	for i := range preds {
		preds[i].depth = p.depth + 1
		if i > 0 {
			b.Pad().WriteString(op).Pad()
		}
		if len(preds[i].fns) > 1 {
			b.Nested(func(nb *Builder) {
				nb.Join(preds[i])
			})
		} else {
			b.Join(preds[i])
		}
	}
}

// ColumnsEQ compares two columns for equality, as in join conditions.
func ColumnsEQ(col1, col2 string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col1).WriteString(" = ").Ident(col2)
	})
}

// EQ returns a `column = value` predicate.
func EQ(col string, value any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" = ").Arg(value)
	})
}

// NEQ returns a `column <> value` predicate.
func NEQ(col string, value any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" <> ").Arg(value)
	})
}

// GT returns a `column > value` predicate.
func GT(col string, value any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" > ").Arg(value)
	})
}

// GTE returns a `column >= value` predicate.
func GTE(col string, value any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" >= ").Arg(value)
	})
}

// LT returns a `column < value` predicate.
func LT(col string, value any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" < ").Arg(value)
	})
}

// LTE returns a `column <= value` predicate.
func LTE(col string, value any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" <= ").Arg(value)
	})
}

// In returns a `column IN (...)` predicate. An empty list renders the
// always-false condition.
func In(col string, args ...any) *Predicate {
	return P(func(b *Builder) {
		if len(args) == 0 {
			b.WriteString("FALSE")
			return
		}
		b.Ident(col).WriteString(" IN ")
		b.WriteByte('(').Args(args...).WriteByte(')')
	})
}

// NotIn returns a `column NOT IN (...)` predicate. An empty list renders
// the always-true condition.
func NotIn(col string, args ...any) *Predicate {
	return P(func(b *Builder) {
		if len(args) == 0 {
			b.WriteString("TRUE")
			return
		}
		b.Ident(col).WriteString(" NOT IN ")
		b.WriteByte('(').Args(args...).WriteByte(')')
	})
}

// IsNull returns a `column IS NULL` predicate.
func IsNull(col string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" IS NULL")
	})
}

// NotNull returns a `column IS NOT NULL` predicate.
func NotNull(col string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" IS NOT NULL")
	})
}

// Contains returns a substring-match predicate.
func Contains(col, sub string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" LIKE ").Arg("%" + sub + "%")
	})
}

// ContainsFold returns a case-insensitive substring-match predicate.
func ContainsFold(col, sub string) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("LOWER(").Ident(col).WriteString(") LIKE ")
		b.Arg("%" + strings.ToLower(sub) + "%")
	})
}

// HasPrefix returns a prefix-match predicate.
func HasPrefix(col, prefix string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" LIKE ").Arg(prefix + "%")
	})
}

// HasSuffix returns a suffix-match predicate.
func HasSuffix(col, suffix string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" LIKE ").Arg("%" + suffix)
	})
}

// EqualFold returns a case-insensitive equality predicate.
func EqualFold(col, value string) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("LOWER(").Ident(col).WriteString(") = ")
		b.Arg(strings.ToLower(value))
	})
}

// FieldEQ returns a selector modifier matching the field to the value.
// The Field* helpers are the building blocks of generated predicates.
func FieldEQ(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(EQ(s.C(name), v))
	}
}

// FieldNEQ returns a selector modifier excluding the value.
func FieldNEQ(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(NEQ(s.C(name), v))
	}
}

// FieldGT returns a greater-than selector modifier.
func FieldGT(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(GT(s.C(name), v))
	}
}

// FieldGTE returns a greater-or-equal selector modifier.
func FieldGTE(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(GTE(s.C(name), v))
	}
}

// FieldLT returns a less-than selector modifier.
func FieldLT(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(LT(s.C(name), v))
	}
}

// FieldLTE returns a less-or-equal selector modifier.
func FieldLTE(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(LTE(s.C(name), v))
	}
}

// FieldIn returns a membership selector modifier.
func FieldIn[T any](name string, vs ...T) func(*Selector) {
	return func(s *Selector) {
		v := make([]any, len(vs))
		for i := range vs {
			v[i] = vs[i]
		}
		s.Where(In(s.C(name), v...))
	}
}

// FieldNotIn returns a non-membership selector modifier.
func FieldNotIn[T any](name string, vs ...T) func(*Selector) {
	return func(s *Selector) {
		v := make([]any, len(vs))
		for i := range vs {
			v[i] = vs[i]
		}
		s.Where(NotIn(s.C(name), v...))
	}
}

// FieldIsNull returns an IS NULL selector modifier.
func FieldIsNull(name string) func(*Selector) {
	return func(s *Selector) {
		s.Where(IsNull(s.C(name)))
	}
}

// FieldNotNull returns an IS NOT NULL selector modifier.
func FieldNotNull(name string) func(*Selector) {
	return func(s *Selector) {
		s.Where(NotNull(s.C(name)))
	}
}

// FieldContains returns a substring-match selector modifier.
func FieldContains(name, sub string) func(*Selector) {
	return func(s *Selector) {
		s.Where(Contains(s.C(name), sub))
	}
}

// FieldContainsFold returns a case-insensitive substring modifier.
func FieldContainsFold(name, sub string) func(*Selector) {
	return func(s *Selector) {
		s.Where(ContainsFold(s.C(name), sub))
	}
}

// FieldHasPrefix returns a prefix-match selector modifier.
func FieldHasPrefix(name, prefix string) func(*Selector) {
	return func(s *Selector) {
		s.Where(HasPrefix(s.C(name), prefix))
	}
}

// FieldHasSuffix returns a suffix-match selector modifier.
func FieldHasSuffix(name, suffix string) func(*Selector) {
	return func(s *Selector) {
		s.Where(HasSuffix(s.C(name), suffix))
	}
}

// FieldEqualFold returns a case-insensitive equality modifier.
func FieldEqualFold(name, value string) func(*Selector) {
	return func(s *Selector) {
		s.Where(EqualFold(s.C(name), value))
	}
}
