package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/roster/internal/employee"
)

// assertGolden compares got against testdata/golden/<name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/export -update
func assertGolden(t *testing.T, name string, got []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, got)
}

func TestField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", ""},
		{"A,B", `"A,B"`},
		{`X"Y`, `"X""Y"`},
		{"line\nbreak", "\"line\nbreak\""},
		{"carriage\rreturn", "\"carriage\rreturn\""},
		{" leading space", " leading space"},
		{"data:image/png;base64,AAAA", `"data:image/png;base64,AAAA"`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Field(tt.in), "Field(%q)", tt.in)
	}
}

func TestWriteCSV_EscapingScenario(t *testing.T) {
	records := []employee.Employee{
		{ID: "1", Name: "A,B", Age: employee.Number(1), Designation: `X"Y`, Salary: employee.Number(100), Currency: "USD"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, BOM))
	lines := strings.Split(strings.TrimPrefix(out, BOM), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Username,Age,Designation,Salary,Currency,Photo", lines[0])
	assert.Equal(t, `1,"A,B",1,"X""Y",100,USD,`, lines[1])
	assert.Equal(t, "", lines[2])

	assertGolden(t, "escaping", buf.Bytes())
}

func TestWriteCSV_Roster(t *testing.T) {
	records := []employee.Employee{
		{ID: "emp-1", Name: "Ann Lee", Age: employee.NumericString("30"), Designation: "Developer", Salary: employee.NumericString("5000"), Currency: "USD", Photo: "data:image/gif;base64,R0lG"},
		{ID: "emp-2", Name: "Zoë", Age: employee.Number(41), Designation: "Lead\nPlatform", Salary: employee.Number(7200.5), Currency: "EUR"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	assertGolden(t, "roster", buf.Bytes())
}

func TestWriteCSV_HeaderOnlyForEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, BOM+"ID,Username,Age,Designation,Salary,Currency,Photo\n", buf.String())
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)

	written, err := ToFile(path, []employee.Employee{{ID: "1", Name: "A", Currency: "USD"}})
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, BOM+"ID,Username,Age,Designation,Salary,Currency,Photo\n1,A,,,,USD,\n", string(data))
}

func TestToFile_EmptyInputEmitsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	written, err := ToFile(path, nil)
	require.NoError(t, err)
	assert.False(t, written)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestToFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", DefaultFileName)
	_, err := ToFile(path, []employee.Employee{{ID: "1"}})
	assert.Error(t, err)
}
