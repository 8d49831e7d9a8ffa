// Package validation checks employee input before it reaches the record
// store: names and designations must be present, age and salary positive,
// and the currency an ISO 4217 code. The field rules live in an embedded
// CUE schema (schema.cue); currency codes are checked against x/text's
// currency table.
package validation

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"golang.org/x/text/currency"

	"github.com/roach88/roster/internal/employee"
)

//go:embed schema.cue
var schemaSource string

// FieldError is one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists every field that failed validation.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid employee: " + strings.Join(parts, "; ")
}

// Has reports whether field failed validation.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Validator checks input against the compiled schema.
//
// Thread-safety: a cue.Context is not safe for concurrent use, so Validate
// serializes callers.
type Validator struct {
	mu     sync.Mutex
	ctx    *cue.Context
	schema cue.Value
}

// New compiles the schema. With requirePhoto set, a non-empty photo is
// mandatory as well.
func New(requirePhoto bool) (*Validator, error) {
	ctx := cuecontext.New()
	root := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	def := "#Employee"
	if requirePhoto {
		def = "#WithPhoto"
	}
	schema := root.LookupPath(cue.ParsePath(def))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("lookup %s: %w", def, err)
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate checks in and returns *Error when any rule fails. Names and
// designations are checked after trimming surrounding space.
func (v *Validator) Validate(in employee.Input) error {
	doc := document(in)

	v.mu.Lock()
	value := v.schema.Unify(v.ctx.Encode(doc))
	err := value.Validate(cue.Concrete(true))
	v.mu.Unlock()

	out := &Error{}
	if err != nil {
		out = toError(err)
	}
	// The schema only checks the shape of the code.
	if !out.Has("currency") {
		code, _ := doc["currency"].(string)
		if _, err := currency.ParseISO(code); err != nil {
			out.Fields = append(out.Fields, FieldError{
				Field:   "currency",
				Message: fmt.Sprintf("%q is not an ISO 4217 currency code", code),
			})
		}
	}

	if len(out.Fields) == 0 {
		return nil
	}
	return out
}

// ValidatePatch checks the record that applying p to current would produce.
func (v *Validator) ValidatePatch(current employee.Employee, p employee.Patch) error {
	return v.Validate(current.Apply(p).Input())
}

// document maps input to the shape #Employee expects. Numbers that do not
// parse are passed through as strings so the schema reports a type
// conflict on that field.
func document(in employee.Input) map[string]any {
	currency := in.Currency
	if currency == "" {
		currency = employee.DefaultCurrency
	}

	doc := map[string]any{
		"uname":    strings.TrimSpace(in.Name),
		"age":      numeric(in.Age),
		"desig":    strings.TrimSpace(in.Designation),
		"salary":   numeric(in.Salary),
		"currency": currency,
	}
	if in.Photo != "" {
		doc["photo"] = in.Photo
	}
	return doc
}

func numeric(n employee.Numeric) any {
	if f, ok := n.Parse(); ok {
		return f
	}
	return n.String()
}

// toError flattens CUE errors into one FieldError per field, keeping the
// first message seen for each.
func toError(err error) *Error {
	out := &Error{}
	seen := map[string]bool{}
	for _, e := range cueerrors.Errors(err) {
		field := fieldName(e.Path())
		if seen[field] {
			continue
		}
		seen[field] = true

		format, args := e.Msg()
		out.Fields = append(out.Fields, FieldError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(out.Fields) == 0 {
		out.Fields = append(out.Fields, FieldError{Field: "record", Message: err.Error()})
	}
	return out
}

// fieldName returns the last path element that is not a definition name.
func fieldName(path []string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if !strings.HasPrefix(path[i], "#") {
			return path[i]
		}
	}
	return "record"
}
