// Package query turns optional catalog filter/sort/pagination inputs into a
// single well-formed query descriptor.
//
// Filters build an explicit predicate tree (Equals | Range | Like | And)
// that is independent of any storage engine. The tree can be evaluated
// in memory (Matches) or compiled once to a SQL condition (SQL) via
// squirrel. Sort fields are validated against a closed allow-list and
// pagination is normalised to a bounded offset/limit pair.
package query

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Field names accepted by the predicate builders. These are column names;
// the repository executes them verbatim.
const (
	FieldPrice    = "price"
	FieldName     = "name"
	FieldCategory = "category"
	FieldStock    = "stock_quantity"
)

// Row is a product row reduced to field→value for in-memory evaluation.
type Row map[string]interface{}

// Predicate is a composable boolean condition over product fields.
// Predicates are built fresh per request and never persisted.
type Predicate interface {
	// Matches evaluates the predicate against a single row.
	Matches(row Row) bool

	sqlizer() squirrel.Sqlizer
}

// Equals matches rows whose field equals value exactly.
type Equals struct {
	Field string
	Value interface{}
}

func (e Equals) Matches(row Row) bool {
	return row[e.Field] == e.Value
}

func (e Equals) sqlizer() squirrel.Sqlizer {
	return squirrel.Eq{e.Field: e.Value}
}

// Range matches rows whose numeric field lies within [Min, Max], both
// bounds inclusive. A nil bound leaves that side open. Min > Max is a
// valid range that matches nothing.
type Range struct {
	Field string
	Min   *float64
	Max   *float64
}

func (r Range) Matches(row Row) bool {
	v, ok := numeric(row[r.Field])
	if !ok {
		return false
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

func (r Range) sqlizer() squirrel.Sqlizer {
	conds := squirrel.And{}
	if r.Min != nil {
		conds = append(conds, squirrel.GtOrEq{r.Field: *r.Min})
	}
	if r.Max != nil {
		conds = append(conds, squirrel.LtOrEq{r.Field: *r.Max})
	}
	return flatten(conds)
}

// Like matches rows whose text field contains Term as a literal substring.
// LIKE wildcards inside the term are escaped, never interpreted.
type Like struct {
	Field string
	Term  string
}

func (l Like) Matches(row Row) bool {
	s, ok := row[l.Field].(string)
	return ok && strings.Contains(s, l.Term)
}

func (l Like) sqlizer() squirrel.Sqlizer {
	pattern := "%" + escapeLike(l.Term) + "%"
	// ESCAPE is spelled out because sqlite has no default escape character.
	return squirrel.Expr(l.Field+` LIKE ? ESCAPE '\'`, pattern)
}

// And combines predicates with logical AND. An empty And is the identity
// predicate and matches every row.
type And []Predicate

func (a And) Matches(row Row) bool {
	for _, p := range a {
		if !p.Matches(row) {
			return false
		}
	}
	return true
}

func (a And) sqlizer() squirrel.Sqlizer {
	conds := squirrel.And{}
	for _, p := range a {
		if s := p.sqlizer(); s != nil {
			conds = append(conds, s)
		}
	}
	return flatten(conds)
}

// flatten avoids redundant parentheses from one-element conjunctions.
func flatten(conds squirrel.And) squirrel.Sqlizer {
	switch len(conds) {
	case 0:
		return nil
	case 1:
		return conds[0]
	default:
		return conds
	}
}

// SQL compiles a predicate to a SQL condition with positional bind args.
// Identity predicates compile to an empty condition; callers skip the
// WHERE clause entirely in that case.
func SQL(p Predicate) (string, []interface{}, error) {
	if p == nil {
		return "", nil, nil
	}
	s := p.sqlizer()
	if s == nil {
		return "", nil, nil
	}
	return s.ToSql()
}

// Filter holds the optional catalog filter inputs as they arrive from the
// request boundary. Absent price bounds stay nil; an absent category is
// the empty string.
type Filter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// Predicate translates the filter into a predicate tree. Every present
// input contributes one condition; conditions combine with AND. A filter
// with no inputs yields the identity predicate.
func (f Filter) Predicate() Predicate {
	var and And
	if f.Category != "" {
		and = append(and, Equals{Field: FieldCategory, Value: f.Category})
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		and = append(and, Range{Field: FieldPrice, Min: f.MinPrice, Max: f.MaxPrice})
	}
	return and
}

// NameSearch builds a predicate matching products whose name contains term.
func NameSearch(term string) Predicate {
	return And{Like{Field: FieldName, Term: term}}
}

func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	}
	return 0, false
}
