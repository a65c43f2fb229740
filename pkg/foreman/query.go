package foreman

import (
	"fmt"
	"strconv"
	"strings"
)

// SearchQuery builds Foreman's textual search syntax. Clauses are
// emitted in insertion order as `field == value` joined with " AND ".
// String values are double-quoted, integers are emitted bare.
type SearchQuery struct {
	clauses []searchClause
}

type searchClause struct {
	field string
	value interface{}
}

// NewSearchQuery creates an empty search query.
func NewSearchQuery() *SearchQuery {
	return &SearchQuery{}
}

// Eq appends an equality clause for field.
func (q *SearchQuery) Eq(field string, value interface{}) *SearchQuery {
	q.clauses = append(q.clauses, searchClause{field: field, value: value})

	return q
}

// Len returns the number of clauses.
func (q *SearchQuery) Len() int {
	return len(q.clauses)
}

// Build renders the query string. An empty query renders as "", which
// the server interprets as match-all. Values other than strings and
// integers are rejected rather than silently dropped.
func (q *SearchQuery) Build() (string, error) {
	var builder strings.Builder

	for i, clause := range q.clauses {
		if i > 0 {
			builder.WriteString(" AND ")
		}

		builder.WriteString(clause.field)
		builder.WriteString(" == ")

		switch value := clause.value.(type) {
		case string:
			builder.WriteString(strconv.Quote(value))
		case int:
			builder.WriteString(strconv.Itoa(value))
		case int32:
			builder.WriteString(strconv.FormatInt(int64(value), 10))
		case int64:
			builder.WriteString(strconv.FormatInt(value, 10))
		default:
			return "", fmt.Errorf("%w: field %q has value of type %T", ErrUnsupportedFilterValue, clause.field, clause.value)
		}
	}

	return builder.String(), nil
}
