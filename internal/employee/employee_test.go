package employee

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsCurrency(t *testing.T) {
	e := New("id-1", Input{Name: "Ann", Age: NumericString("30")})
	assert.Equal(t, "id-1", e.ID)
	assert.Equal(t, DefaultCurrency, e.Currency)

	e = New("id-2", Input{Name: "Ann", Currency: "INR"})
	assert.Equal(t, "INR", e.Currency)
}

func TestApply_ReplacesOnlySuppliedFields(t *testing.T) {
	orig := Employee{
		ID:          "id-1",
		Name:        "Ann",
		Age:         NumericString("30"),
		Designation: "Developer",
		Salary:      NumericString("1000"),
		Currency:    "USD",
		Photo:       "data:image/png;base64,AAAA",
	}

	name := "Annabel"
	salary := Number(2000)
	got := orig.Apply(Patch{Name: &name, Salary: &salary})

	assert.Equal(t, "Annabel", got.Name)
	assert.Equal(t, "2000", got.Salary.String())
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.Age, got.Age)
	assert.Equal(t, orig.Designation, got.Designation)
	assert.Equal(t, orig.Currency, got.Currency)
	assert.Equal(t, orig.Photo, got.Photo)

	// receiver untouched
	assert.Equal(t, "Ann", orig.Name)
}

func TestApply_CanClearPhoto(t *testing.T) {
	orig := Employee{ID: "x", Photo: "data:image/png;base64,AAAA"}
	empty := ""
	got := orig.Apply(Patch{Photo: &empty})
	assert.Equal(t, "", got.Photo)
}

func TestPatch_DecodeIgnoresID(t *testing.T) {
	var p Patch
	require.NoError(t, json.Unmarshal([]byte(`{"id":"other","desig":"Lead"}`), &p))

	require.NotNil(t, p.Designation)
	assert.Equal(t, "Lead", *p.Designation)
	assert.Nil(t, p.Name)

	got := Employee{ID: "keep"}.Apply(p)
	assert.Equal(t, "keep", got.ID)
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	c := "EUR"
	assert.False(t, Patch{Currency: &c}.IsEmpty())
}

func TestEmployee_JSONFieldNames(t *testing.T) {
	e := Employee{ID: "1", Name: "A", Age: Number(1), Designation: "X", Salary: Number(100), Currency: "USD"}
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"1","uname":"A","age":1,"desig":"X","salary":100,"currency":"USD","photo":""}`,
		string(data))
}

func TestSeedPolicy(t *testing.T) {
	p, err := ParseSeedPolicy("")
	require.NoError(t, err)
	assert.Equal(t, SeedNone, p)
	assert.Empty(t, p.Records())

	p, err = ParseSeedPolicy("sample")
	require.NoError(t, err)
	records := p.Records()
	require.Len(t, records, 4)

	seen := map[string]bool{}
	for _, r := range records {
		assert.False(t, seen[r.ID], "duplicate seed id %s", r.ID)
		seen[r.ID] = true
	}

	// each call returns a fresh copy
	records[0].Name = "changed"
	assert.NotEqual(t, "changed", p.Records()[0].Name)

	_, err = ParseSeedPolicy("four")
	assert.Error(t, err)
}
