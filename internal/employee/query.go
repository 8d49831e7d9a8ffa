package employee

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// SortField names the record field a view is ordered by.
type SortField string

const (
	SortByName        SortField = "uname"
	SortByAge         SortField = "age"
	SortByDesignation SortField = "desig"
	SortBySalary      SortField = "salary"
)

// SortFields lists the accepted sort fields.
var SortFields = []SortField{SortByName, SortByAge, SortByDesignation, SortBySalary}

// Direction is the sort order of a view.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseSortField validates a sort field name.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if !slices.Contains(SortFields, f) {
		return "", fmt.Errorf("invalid sort field %q: must be one of %v", s, SortFields)
	}
	return f, nil
}

// ParseDirection validates a sort direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if d != Ascending && d != Descending {
		return "", fmt.Errorf("invalid sort direction %q: must be asc or desc", s)
	}
	return d, nil
}

// fold maps s to a caseless form for comparison. Input is NFC normalised
// first so composed and decomposed accents compare equal.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Matches reports whether e matches a search term: a caseless substring of
// the name or designation, or a substring of the textual age or salary.
// An empty term matches every record.
func Matches(e Employee, term string) bool {
	if term == "" {
		return true
	}
	t := fold(term)
	return strings.Contains(fold(e.Name), t) ||
		strings.Contains(fold(e.Designation), t) ||
		strings.Contains(fold(e.Age.String()), t) ||
		strings.Contains(fold(e.Salary.String()), t)
}

// Compare orders a and b by field in ascending order. age and salary
// compare numerically (non-numeric as 0); uname and desig compare caseless.
// Unknown fields compare equal.
func Compare(a, b Employee, field SortField) int {
	switch field {
	case SortByAge:
		return cmp.Compare(a.Age.Float(), b.Age.Float())
	case SortBySalary:
		return cmp.Compare(a.Salary.Float(), b.Salary.Float())
	case SortByName:
		return strings.Compare(fold(a.Name), fold(b.Name))
	case SortByDesignation:
		return strings.Compare(fold(a.Designation), fold(b.Designation))
	default:
		return 0
	}
}

// Query returns a new slice holding the records that match term, ordered by
// field and direction. The input slice is never modified. The sort is
// stable, so ties keep their relative input order in both directions.
func Query(records []Employee, term string, field SortField, dir Direction) []Employee {
	out := make([]Employee, 0, len(records))
	for _, e := range records {
		if Matches(e, term) {
			out = append(out, e)
		}
	}

	sign := 1
	if dir == Descending {
		sign = -1
	}
	slices.SortStableFunc(out, func(a, b Employee) int {
		return sign * Compare(a, b, field)
	})
	return out
}
