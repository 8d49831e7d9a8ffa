package store

import "github.com/roach88/roster/internal/employee"

// ViewState is the search and sort state of the list view.
type ViewState struct {
	SearchTerm string             `json:"search_term"`
	SortBy     employee.SortField `json:"sort_by"`
	SortOrder  employee.Direction `json:"sort_order"`
}

// DefaultViewState matches everything, ordered by name ascending.
func DefaultViewState() ViewState {
	return ViewState{
		SortBy:    employee.SortByName,
		SortOrder: employee.Ascending,
	}
}

// SetSearchTerm sets the term used by Filtered.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SearchTerm = term
}

// SetSorting sets the field and direction used by Filtered.
func (s *Store) SetSorting(field employee.SortField, dir employee.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SortBy = field
	s.view.SortOrder = dir
}

// ViewState returns the current search and sort state.
func (s *Store) ViewState() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Filtered runs Query with the current view state.
func (s *Store) Filtered() []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return employee.Query(s.records, s.view.SearchTerm, s.view.SortBy, s.view.SortOrder)
}

// SetCurrentEmployee records e as the employee being edited.
func (s *Store) SetCurrentEmployee(e employee.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &e
}

// ClearCurrentEmployee forgets the employee being edited.
func (s *Store) ClearCurrentEmployee() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// CurrentEmployee returns the employee being edited, if any.
func (s *Store) CurrentEmployee() (employee.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return employee.Employee{}, false
	}
	return *s.current, true
}
