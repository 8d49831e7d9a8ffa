package testutil

import (
	"strings"

	"github.com/roach88/roster/internal/employee"
)

// Input returns a valid employee input with string-typed numbers, the way
// form input arrives.
func Input(name, age, desig, salary string) employee.Input {
	return employee.Input{
		Name:        name,
		Age:         employee.NumericString(age),
		Designation: desig,
		Salary:      employee.NumericString(salary),
		Currency:    "USD",
		Photo:       TinyPNG,
	}
}

// TinyPNG is a 1x1 transparent PNG as a data URI.
const TinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// LargePhoto returns a data URI of roughly n bytes, for exercising large
// blobs.
func LargePhoto(n int) string {
	const prefix = "data:image/jpeg;base64,"
	if n <= len(prefix) {
		return prefix
	}
	return prefix + strings.Repeat("QUJD", (n-len(prefix))/4+1)
}
