package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/roster/internal/employee"
)

func TestSalary(t *testing.T) {
	tests := []struct {
		name     string
		amount   employee.Numeric
		currency string
		want     string
	}{
		{"cents are padded", employee.NumericString("0.1"), "USD", "$ 0.10"},
		{"bare number", employee.Number(0.1), "USD", "$ 0.10"},
		{"missing currency is USD", employee.NumericString("0.1"), "", "$ 0.10"},
		{"unknown currency is USD", employee.NumericString("0.1"), "QQQ", "$ 0.10"},
		{"non-numeric salary is zero", employee.NumericString("lots"), "USD", "$ 0.00"},
		{"missing salary is zero", employee.Numeric{}, "USD", "$ 0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := employee.Employee{Salary: tt.amount, Currency: tt.currency}
			assert.Equal(t, tt.want, salary(e))
		})
	}
}

func TestSalary_CurrencySymbolAndDecimals(t *testing.T) {
	eur := salary(employee.Employee{Salary: employee.NumericString("1234567.5"), Currency: "EUR"})
	assert.True(t, strings.HasPrefix(eur, "€"), "got %q", eur)
	assert.True(t, strings.HasSuffix(eur, ".50"), "got %q", eur)
	assert.NotContains(t, eur, "EUR")

	jpy := salary(employee.Employee{Salary: employee.NumericString("1500.4"), Currency: "JPY"})
	assert.NotContains(t, jpy, ".", "yen has no minor unit, got %q", jpy)
}

func TestEmployeeTable(t *testing.T) {
	assert.Equal(t, "No employees yet.", employeeTable(nil).String())

	table := employeeTable{
		{ID: "emp-1", Name: "Ann", Age: employee.NumericString("30"), Designation: "Dev",
			Salary: employee.NumericString("0.1"), Currency: "USD", Photo: "data:image/png;base64,AA=="},
		{ID: "emp-2", Name: "Bob", Age: employee.Number(41), Designation: "Lead",
			Salary: employee.Number(2), Currency: "USD"},
	}
	lines := strings.Split(table.String(), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "$ 0.10")
	assert.Contains(t, lines[1], "yes")
	assert.True(t, strings.HasSuffix(lines[2], "-"))

	data, err := json.Marshal(employeeTable(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestEmployeeDetail(t *testing.T) {
	d := employeeDetail{ID: "emp-1", Name: "Ann", Age: employee.NumericString("30"),
		Designation: "Dev", Salary: employee.NumericString("0.1"), Currency: "USD"}

	text := d.String()
	assert.Contains(t, text, "Salary:      $ 0.10")
	assert.Contains(t, text, "Photo:       none")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"emp-1","uname":"Ann","age":"30","desig":"Dev","salary":"0.1","currency":"USD","photo":""}`, string(data))
}
