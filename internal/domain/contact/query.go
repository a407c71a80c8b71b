package contact

import (
	"fmt"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Op is a filter comparison operator.
type Op string

const (
	OpEq       Op = "eq"
	OpNe       Op = "ne"
	OpLt       Op = "lt"
	OpLte      Op = "lte"
	OpGt       Op = "gt"
	OpGte      Op = "gte"
	OpContains Op = "contains" // case-insensitive substring, strings only
)

// Condition is one explicit filter term. Filters are a flat conjunction of
// these; field and operator are checked against the whitelists when the
// query is built, so a bad name fails at request time rather than being
// silently ignored.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Sort names the sort key and direction. A nil sort means the storage's
// natural order, which is stable (id ascending).
type Sort struct {
	Field string
	Desc  bool
}

// PageQuery describes one bounded slice of the collection: a zero-based
// page index, a positive page size, and optional sort and filter. Filtering
// always narrows the candidate set before paging applies.
type PageQuery struct {
	Page   int
	Size   int
	Sort   *Sort
	Filter []Condition
}

var sortableFields = map[string]bool{
	"id":         true,
	"name":       true,
	"age":        true,
	"email":      true,
	"created_at": true,
	"updated_at": true,
}

var filterableFields = map[string]map[Op]bool{
	"name":     {OpEq: true, OpNe: true, OpContains: true},
	"email":    {OpEq: true, OpNe: true, OpContains: true},
	"age":      {OpEq: true, OpNe: true, OpLt: true, OpLte: true, OpGt: true, OpGte: true},
	"group_id": {OpEq: true, OpNe: true},
}

// NewPageQuery builds a query from raw page parameters. A zero size takes
// the default; oversized requests are clamped rather than rejected.
func NewPageQuery(page, size int) (PageQuery, error) {
	if page < 0 {
		return PageQuery{}, fmt.Errorf("%w: page index %d is negative", ErrBadPage, page)
	}
	if size < 0 {
		return PageQuery{}, fmt.Errorf("%w: page size %d is not positive", ErrBadPage, size)
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageQuery{Page: page, Size: size}, nil
}

// WithSort sets the sort key, rejecting fields outside the whitelist.
func (q *PageQuery) WithSort(field string, desc bool) error {
	if !sortableFields[field] {
		return fmt.Errorf("%w: %q", ErrBadSort, field)
	}
	q.Sort = &Sort{Field: field, Desc: desc}
	return nil
}

// WithFilter appends one condition, rejecting unknown fields and operators
// the field does not support.
func (q *PageQuery) WithFilter(field string, op Op, value any) error {
	ops, ok := filterableFields[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadFilter, field)
	}
	if !ops[op] {
		return fmt.Errorf("%w: field %q does not support operator %q", ErrBadFilter, field, op)
	}
	q.Filter = append(q.Filter, Condition{Field: field, Op: op, Value: value})
	return nil
}

// Offset is the row offset implied by the page index.
func (q PageQuery) Offset() int {
	return q.Page * q.Size
}

// Page is the bounded data plus metadata for one collection read. The
// metadata reflects the post-filter total at the time of the query and
// len(Items) never exceeds Size.
type Page struct {
	Items      []Contact
	TotalItems int64
	TotalPages int
	Page       int
	Size       int
	HasNext    bool
	HasPrev    bool
}

// NewPage assembles page metadata around the rows the storage returned.
func NewPage(items []Contact, total int64, q PageQuery) Page {
	totalPages := int((total + int64(q.Size) - 1) / int64(q.Size))
	if items == nil {
		items = []Contact{}
	}
	return Page{
		Items:      items,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       q.Page,
		Size:       q.Size,
		HasNext:    q.Page+1 < totalPages,
		HasPrev:    q.Page > 0 && total > 0,
	}
}
