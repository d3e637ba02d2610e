package fusion

import (
	"net/url"
	"strconv"
	"strings"
)

// Like builds a prefix-match filter: <field> LIKE '<value>%'.
func Like(field, prefix string) string {
	return field + " LIKE '" + quote(prefix) + "%'"
}

// Eq builds an exact-match filter on a string value: <field> = '<value>'.
func Eq(field, value string) string {
	return field + " = '" + quote(value) + "'"
}

// EqID builds an exact-match filter on a numeric id: <field>=<id>.
func EqID(field string, id int64) string {
	return field + "=" + strconv.FormatInt(id, 10)
}

// Query holds the parameters appended to a collection path.
type Query struct {
	Filter string
	Limit  int
	Expand string
}

// Path appends q to base as an encoded query string.
func (q Query) Path(base string) string {
	v := url.Values{}
	if q.Filter != "" {
		v.Set("q", q.Filter)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Expand != "" {
		v.Set("expand", q.Expand)
	}
	if len(v) == 0 {
		return base
	}
	return base + "?" + v.Encode()
}

func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
