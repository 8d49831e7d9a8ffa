// Package export renders employee records as a spreadsheet-friendly CSV
// file.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/roach88/roster/internal/employee"
)

// BOM is written before the header so spreadsheet tools detect UTF-8.
const BOM = "\ufeff"

// DefaultFileName is the file name offered for downloads.
const DefaultFileName = "employees.csv"

// Header is the first CSV row.
var Header = []string{"ID", "Username", "Age", "Designation", "Salary", "Currency", "Photo"}

// Field escapes one CSV field. A field is quoted, with inner quotes
// doubled, only if it contains a comma, a double quote, CR or LF.
func Field(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Row returns the unescaped fields of e in header order.
func Row(e employee.Employee) []string {
	return []string{
		e.ID,
		e.Name,
		e.Age.String(),
		e.Designation,
		e.Salary.String(),
		e.Currency,
		e.Photo,
	}
}

// WriteCSV writes the BOM, the header and one row per record, in the order
// given. Rows end with LF.
func WriteCSV(w io.Writer, records []employee.Employee) error {
	var b strings.Builder
	b.WriteString(BOM)
	writeLine(&b, Header)
	for _, e := range records {
		writeLine(&b, Row(e))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Field(f))
	}
	b.WriteByte('\n')
}

// ToFile writes records to path and reports whether a file was written.
// An empty record list writes nothing.
func ToFile(path string, records []employee.Employee) (bool, error) {
	if len(records) == 0 {
		return false, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("export %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return false, fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("export %s: %w", path, err)
	}
	return true, nil
}
