package domain

import "fmt"

// Row represents one selectable item of the list
type Row struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}

// FullName returns the first and last name joined by a space
func (r Row) FullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

// LoadProgress represents the current state of the data source
type LoadProgress struct {
	IsLoading bool
	RowsFound int
	Requested int
}
