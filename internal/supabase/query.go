package supabase

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

// Query builds a PostgREST query string. The zero value (or nil) selects
// every column with no filters.
type Query struct {
	columns string
	filters []string
	order   []string
	limit   *int
}

// Columns starts a query selecting the given column expression. Whitespace
// outside quoted identifiers is stripped, since PostgREST rejects spaces in
// the select list. Embedded resource syntax such as
// "users!user_id(first_name)" passes straight through.
func Columns(expr string) *Query {
	return &Query{columns: stripColumnSpaces(expr)}
}

func stripColumnSpaces(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	quoted := false
	for _, r := range expr {
		if r == '"' {
			quoted = !quoted
		}
		if !quoted && unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Where starts a query with no column projection, for writes and deletes.
func Where(column, value string) *Query {
	return (&Query{}).Eq(column, value)
}

// Eq adds an equality filter on a column.
func (q *Query) Eq(column, value string) *Query {
	q.filters = append(q.filters, column+"=eq."+value)
	return q
}

// Order sorts by a column, ascending unless desc is set.
func (q *Query) Order(column string, desc bool) *Query {
	dir := ".asc"
	if desc {
		dir = ".desc"
	}
	q.order = append(q.order, column+dir)
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.limit = &n
	return q
}

// Encode renders the query string. Filters use PostgREST operator syntax and
// values are escaped for URL transport.
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	var parts []string
	if q.columns != "" {
		parts = append(parts, "select="+url.QueryEscape(q.columns))
	}
	for _, f := range q.filters {
		idx := strings.Index(f, "=")
		parts = append(parts, f[:idx+1]+url.QueryEscape(f[idx+1:]))
	}
	if len(q.order) > 0 {
		parts = append(parts, "order="+url.QueryEscape(strings.Join(q.order, ",")))
	}
	if q.limit != nil {
		parts = append(parts, "limit="+strconv.Itoa(*q.limit))
	}
	return strings.Join(parts, "&")
}
