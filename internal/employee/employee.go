// Package employee defines the roster record types and the pure functions
// that derive views over them.
//
// Nothing in this package performs I/O. The record store (internal/store)
// owns the canonical collection; this package only describes its shape,
// how records are filtered, and how they are ordered.
package employee

// DefaultCurrency is applied when a record is created without a currency.
const DefaultCurrency = "USD"

// Employee is one roster entry. JSON field names match the durable blob
// format and must not change.
type Employee struct {
	ID          string  `json:"id"`
	Name        string  `json:"uname"`
	Age         Numeric `json:"age"`
	Designation string  `json:"desig"`
	Salary      Numeric `json:"salary"`
	Currency    string  `json:"currency"`
	Photo       string  `json:"photo"`
}

// Input carries every caller-supplied field of a new record. The id is never
// part of the input; the store assigns it.
type Input struct {
	Name        string  `json:"uname"`
	Age         Numeric `json:"age"`
	Designation string  `json:"desig"`
	Salary      Numeric `json:"salary"`
	Currency    string  `json:"currency"`
	Photo       string  `json:"photo"`
}

// Patch is a shallow update. A nil field leaves the stored value untouched.
// There is no ID field: ids are immutable, and an "id" key in a decoded
// JSON patch is ignored.
type Patch struct {
	Name        *string  `json:"uname,omitempty"`
	Age         *Numeric `json:"age,omitempty"`
	Designation *string  `json:"desig,omitempty"`
	Salary      *Numeric `json:"salary,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	Photo       *string  `json:"photo,omitempty"`
}

// New builds a record from input under the given id.
func New(id string, in Input) Employee {
	e := Employee{
		ID:          id,
		Name:        in.Name,
		Age:         in.Age,
		Designation: in.Designation,
		Salary:      in.Salary,
		Currency:    in.Currency,
		Photo:       in.Photo,
	}
	if e.Currency == "" {
		e.Currency = DefaultCurrency
	}
	return e
}

// Input returns the record's fields without its id.
func (e Employee) Input() Input {
	return Input{
		Name:        e.Name,
		Age:         e.Age,
		Designation: e.Designation,
		Salary:      e.Salary,
		Currency:    e.Currency,
		Photo:       e.Photo,
	}
}

// Apply returns a copy of e with every non-nil patch field replaced.
func (e Employee) Apply(p Patch) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Age != nil {
		e.Age = *p.Age
	}
	if p.Designation != nil {
		e.Designation = *p.Designation
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.Currency != nil {
		e.Currency = *p.Currency
	}
	if p.Photo != nil {
		e.Photo = *p.Photo
	}
	return e
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.Designation == nil &&
		p.Salary == nil && p.Currency == nil && p.Photo == nil
}
