package recordstore

import "strings"

// Operator is a record store filter operator. The store evaluates them; this package only forwards them.
type Operator string

const (
	EqualTo              Operator = "EqualTo"
	NotEqualTo           Operator = "NotEqualTo"
	Contains             Operator = "Contains"
	DoesNotContain       Operator = "DoesNotContain"
	GreaterThan          Operator = "GreaterThan"
	GreaterThanOrEqualTo Operator = "GreaterThanOrEqualTo"
	LessThan             Operator = "LessThan"
	LessThanOrEqualTo    Operator = "LessThanOrEqualTo"
)

// Sort directions understood by the store.
const (
	Asc  = "ASC"
	Desc = "DESC"
)

// Condition is a single where clause. Conditions in a Query are combined with AND.
type Condition struct {
	FieldName string   `json:"FieldName"`
	Operator  Operator `json:"Operator"`
	Values    []any    `json:"Values"`
}

// Order sorts fetched records by one field.
type Order struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sorttype"`
}

// Paging limits a fetch.
type Paging struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Query is the fetch payload: which fields to return, how to filter, sort and page.
type Query struct {
	Fields     []string    `json:"fields,omitempty"`
	Conditions []Condition `json:"where,omitempty"`
	Sort       []Order     `json:"orderBy,omitempty"`
	Paging     *Paging     `json:"pagingInfo,omitempty"`
}

// Select starts a query returning the given fields.
func Select(fields ...string) Query {
	return Query{Fields: fields}
}

// Where appends a condition. Empty values are skipped so optional filters can be chained unconditionally.
func (q Query) Where(field string, op Operator, values ...any) Query {
	if len(values) == 0 {
		return q
	}
	if len(values) == 1 {
		if s, ok := values[0].(string); ok && s == "" {
			return q
		}
	}
	q.Conditions = append(append([]Condition(nil), q.Conditions...), Condition{FieldName: field, Operator: op, Values: values})
	return q
}

// OrderBy appends a sort key. Anything but "desc" (any case) sorts ascending.
func (q Query) OrderBy(field, direction string) Query {
	if field == "" {
		return q
	}
	direction = strings.ToUpper(direction)
	if direction != Desc {
		direction = Asc
	}
	q.Sort = append(append([]Order(nil), q.Sort...), Order{FieldName: field, SortType: direction})
	return q
}

// Page sets limit and offset. A non-positive limit leaves paging to the store.
func (q Query) Page(limit, offset int) Query {
	if limit <= 0 {
		return q
	}
	if offset < 0 {
		offset = 0
	}
	q.Paging = &Paging{Limit: limit, Offset: offset}
	return q
}
