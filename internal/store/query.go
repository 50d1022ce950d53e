package store

import (
	"fmt"
	"net/url"
	"strings"
)

// Query builds the record store's filter-query string. Conditions are joined
// with AND; Or groups a set of conditions into a single OR'd parameter.
type Query struct {
	params   []param
	order    string
	offset   int
	limit    int
	hasRange bool
}

type param struct {
	key   string
	value string
}

// Cond is one column condition inside an Or group.
type Cond struct {
	Column string
	Op     string
	Value  string
}

func NewQuery() *Query {
	return &Query{}
}

// Eq filters rows where column equals value.
func (q *Query) Eq(column, value string) *Query {
	q.params = append(q.params, param{column, "eq." + value})
	return q
}

// In filters rows where column is one of values.
func (q *Query) In(column string, values ...string) *Query {
	q.params = append(q.params, param{column, "in.(" + strings.Join(values, ",") + ")"})
	return q
}

// Gte filters rows where column >= value.
func (q *Query) Gte(column, value string) *Query {
	q.params = append(q.params, param{column, "gte." + value})
	return q
}

// Lte filters rows where column <= value.
func (q *Query) Lte(column, value string) *Query {
	q.params = append(q.params, param{column, "lte." + value})
	return q
}

// Or adds a group of conditions of which at least one must hold.
func (q *Query) Or(conds ...Cond) *Query {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		parts = append(parts, fmt.Sprintf("%s.%s.%s", c.Column, c.Op, c.Value))
	}
	q.params = append(q.params, param{"or", "(" + strings.Join(parts, ",") + ")"})
	return q
}

// OrderBy sorts the result by column, descending when desc is true.
func (q *Query) OrderBy(column string, desc bool) *Query {
	if desc {
		q.order = column + ".desc"
	} else {
		q.order = column + ".asc"
	}
	return q
}

// Range requests a page of rows starting at offset.
func (q *Query) Range(offset, limit int) *Query {
	q.offset = offset
	q.limit = limit
	q.hasRange = true
	return q
}

// Encode renders the filter conditions and ordering as a URL query string.
// Pagination travels in Range headers, not in the query string.
func (q *Query) Encode() string {
	values := url.Values{}
	for _, p := range q.params {
		values.Add(p.key, p.value)
	}
	if q.order != "" {
		values.Set("order", q.order)
	}
	return values.Encode()
}

// RangeHeader returns the Range header value for the requested page, or ""
// when no page was requested.
func (q *Query) RangeHeader() string {
	if !q.hasRange {
		return ""
	}
	return fmt.Sprintf("%d-%d", q.offset, q.offset+q.limit-1)
}
