package logic

import (
	"strconv"
	"strings"

	"rowpick/internal/domain"
)

// Filter query prefixes
const (
	prefixID         = "id:"
	prefixSelected   = "selected:"
	prefixUnselected = "unselected:"
)

// RowLookup resolves a row by id
type RowLookup func(id int) (domain.Row, bool)

// RowFilter handles filter operations over rows
type RowFilter struct {
	lookup     RowLookup
	isSelected func(id int) bool
}

// NewRowFilter creates a new row filter
func NewRowFilter(lookup RowLookup, isSelected func(id int) bool) *RowFilter {
	return &RowFilter{
		lookup:     lookup,
		isSelected: isSelected,
	}
}

// Matches checks if a row matches the given filter query.
//
//	id:N          the row with id N
//	selected:     selected rows, optionally followed by a text query
//	unselected:   rows that are not selected, optionally followed by a text query
//	anything else case-insensitive substring of name or email
func (f *RowFilter) Matches(row domain.Row, filterQuery string) bool {
	query := strings.ToLower(strings.TrimSpace(filterQuery))
	if query == "" {
		return true
	}

	switch {
	case strings.HasPrefix(query, prefixID):
		id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(query, prefixID)))
		return err == nil && row.ID == id
	case strings.HasPrefix(query, prefixSelected):
		rest := strings.TrimPrefix(query, prefixSelected)
		return f.selected(row.ID) && f.matchesText(row, rest)
	case strings.HasPrefix(query, prefixUnselected):
		rest := strings.TrimPrefix(query, prefixUnselected)
		return !f.selected(row.ID) && f.matchesText(row, rest)
	}

	return f.matchesText(row, query)
}

// Apply returns the ids of rows matching filterQuery, in the order given
func (f *RowFilter) Apply(ids []int, filterQuery string) []int {
	if strings.TrimSpace(filterQuery) == "" {
		return ids
	}

	out := make([]int, 0, len(ids))
	for _, id := range ids {
		row, ok := f.lookup(id)
		if !ok {
			continue
		}
		if f.Matches(row, filterQuery) {
			out = append(out, id)
		}
	}
	return out
}

func (f *RowFilter) selected(id int) bool {
	return f.isSelected != nil && f.isSelected(id)
}

func (f *RowFilter) matchesText(row domain.Row, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(row.FullName()), query) ||
		strings.Contains(strings.ToLower(row.Email), query)
}
