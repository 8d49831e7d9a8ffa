package employee

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeric_UnmarshalForms(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		raw    string
		quoted bool
		value  float64
	}{
		{"bare integer", `42`, "42", false, 42},
		{"bare float", `1500.5`, "1500.5", false, 1500.5},
		{"negative", `-3`, "-3", false, -3},
		{"numeric string", `"42"`, "42", true, 42},
		{"non-numeric string", `"abc"`, "abc", true, 0},
		{"empty string", `""`, "", true, 0},
		{"null", `null`, "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Numeric
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.raw, n.String())
			assert.Equal(t, tt.quoted, n.Quoted())
			assert.Equal(t, tt.value, n.Float())
		})
	}
}

func TestNumeric_RejectsOtherJSON(t *testing.T) {
	for _, input := range []string{`true`, `{}`, `[1]`} {
		var n Numeric
		assert.Error(t, json.Unmarshal([]byte(input), &n), input)
	}
}

func TestNumeric_MarshalPreservesForm(t *testing.T) {
	for _, input := range []string{`42`, `"42"`, `"abc"`, `""`, `null`, `1e3`} {
		var n Numeric
		require.NoError(t, json.Unmarshal([]byte(input), &n))
		out, err := json.Marshal(n)
		require.NoError(t, err)
		assert.Equal(t, input, string(out))
	}
}

func TestNumeric_Constructors(t *testing.T) {
	n := Number(100)
	assert.Equal(t, "100", n.String())
	assert.False(t, n.Quoted())
	assert.False(t, n.IsZero())

	s := NumericString("30")
	assert.True(t, s.Quoted())
	assert.Equal(t, 30.0, s.Float())

	assert.True(t, Numeric{}.IsZero())
	assert.False(t, NumericString("").IsZero())
}

func TestNumeric_Parse(t *testing.T) {
	_, ok := NumericString(" 12 ").Parse()
	assert.True(t, ok)

	_, ok = NumericString("NaN").Parse()
	assert.False(t, ok)

	_, ok = NumericString("Inf").Parse()
	assert.False(t, ok)

	_, ok = Numeric{}.Parse()
	assert.False(t, ok)
}
