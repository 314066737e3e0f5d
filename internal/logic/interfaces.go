package logic

import "rowpick/internal/domain"

// RowStore provides access to row data
type RowStore interface {
	GetRow(id int) (domain.Row, bool)
	AllIDs() []int
	Len() int
	AddRows(rows []domain.Row)
	Reset()
}
