// Package table implements the search, sort and pagination steps applied to
// report rows before they are returned to the dashboard.
package table

import (
	"cmp"
	"slices"
	"strings"
)

// Direction is a sort direction. The empty direction keeps input order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
	None Direction = ""
)

// ParseDirection maps a query value to a direction; anything unknown is None
func ParseDirection(s string) Direction {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Asc:
		return Asc
	case Desc:
		return Desc
	default:
		return None
	}
}

// Column describes one field of T
type Column[T any] struct {
	Key string

	// Text renders the field for search and, without Compare, for sorting
	Text func(T) string

	// Compare orders two rows by the field; optional
	Compare func(a, b T) int
}

func (c Column[T]) compare(a, b T) int {
	if c.Compare != nil {
		return c.Compare(a, b)
	}
	return cmp.Compare(c.Text(a), c.Text(b))
}

// Columns is an ordered set of columns
type Columns[T any] []Column[T]

// Lookup finds a column by key
func (cs Columns[T]) Lookup(key string) (Column[T], bool) {
	for _, c := range cs {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

// Subset returns the columns named by keys, skipping unknown keys
func (cs Columns[T]) Subset(keys ...string) Columns[T] {
	out := make(Columns[T], 0, len(keys))
	for _, k := range keys {
		if c, ok := cs.Lookup(k); ok {
			out = append(out, c)
		}
	}
	return out
}

// Search keeps the rows where any of cols contains query, ignoring case.
// An empty query keeps every row.
func Search[T any](rows []T, query string, cols Columns[T]) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, c := range cols {
			if strings.Contains(strings.ToLower(c.Text(row)), query) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// Sort returns a stably sorted copy of rows. Equal rows keep their input
// order in both directions; None returns rows unchanged.
func Sort[T any](rows []T, col Column[T], dir Direction) []T {
	if dir == None || (col.Text == nil && col.Compare == nil) {
		return rows
	}

	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b T) int {
		if dir == Desc {
			return col.compare(b, a)
		}
		return col.compare(a, b)
	})
	return out
}

// Paginate returns the zero-based page of size rows. Pages past the end, a
// negative page or a size below one yield an empty window.
func Paginate[T any](rows []T, page, size int) []T {
	if page < 0 || size < 1 || len(rows) == 0 {
		return []T{}
	}
	// last valid page is (len-1)/size; compare before multiplying
	if page > (len(rows)-1)/size {
		return []T{}
	}
	start := page * size
	end := start + min(size, len(rows)-start)
	return rows[start:end]
}
