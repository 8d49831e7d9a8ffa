package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	xmessage "golang.org/x/text/message"

	"github.com/roach88/roster/internal/employee"
)

// employeeTable renders a list of records as an aligned table in text mode
// and as a JSON array in JSON mode.
type employeeTable []employee.Employee

func (t employeeTable) String() string {
	if len(t) == 0 {
		return "No employees yet."
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tAGE\tDESIGNATION\tSALARY\tPHOTO")
	for _, e := range t {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Name, e.Age.String(), e.Designation, salary(e), photoMark(e))
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func (t employeeTable) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]employee.Employee(t))
}

// employeeDetail renders one record field by field.
type employeeDetail employee.Employee

func (d employeeDetail) String() string {
	e := employee.Employee(d)
	photo := "none"
	if e.Photo != "" {
		photo = fmt.Sprintf("%d bytes", len(e.Photo))
	}
	return strings.Join([]string{
		"ID:          " + e.ID,
		"Username:    " + e.Name,
		"Age:         " + e.Age.String(),
		"Designation: " + e.Designation,
		"Salary:      " + salary(e),
		"Photo:       " + photo,
	}, "\n")
}

func (d employeeDetail) MarshalJSON() ([]byte, error) {
	return json.Marshal(employee.Employee(d))
}

// salary formats the amount with its currency symbol, grouping and the
// currency's standard decimals. Records with a missing or unknown currency
// are shown in USD, and a non-numeric salary as zero.
func salary(e employee.Employee) string {
	unit, err := currency.ParseISO(e.Currency)
	if err != nil {
		unit = currency.USD
	}
	p := xmessage.NewPrinter(language.English)
	return p.Sprintf("%d", currency.Symbol(unit.Amount(e.Salary.Float())))
}

func photoMark(e employee.Employee) string {
	if e.Photo == "" {
		return "-"
	}
	return "yes"
}

// message is a plain text result with a JSON payload.
type message struct {
	text string
	data any
}

func (m message) String() string { return m.text }

func (m message) MarshalJSON() ([]byte, error) { return json.Marshal(m.data) }
