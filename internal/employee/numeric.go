package employee

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numeric holds a field that may be stored either as a JSON number or as a
// numeric string. Records written by form input carry strings ("42"), seeded
// or imported records may carry bare numbers (42). Numeric remembers which
// form it was decoded from so a collection survives a serialize/deserialize
// round trip byte for byte.
//
// The zero value means "absent" and encodes as null.
type Numeric struct {
	raw    string
	quoted bool
}

// Number returns a Numeric that encodes as a bare JSON number.
func Number(f float64) Numeric {
	return Numeric{raw: strconv.FormatFloat(f, 'f', -1, 64)}
}

// NumericString returns a Numeric that encodes as a JSON string.
// The string is kept verbatim, even when it does not parse as a number.
func NumericString(s string) Numeric {
	return Numeric{raw: s, quoted: true}
}

// String returns the textual form used for search matching and CSV output.
func (n Numeric) String() string {
	return n.raw
}

// IsZero reports whether the field is absent.
func (n Numeric) IsZero() bool {
	return n.raw == "" && !n.quoted
}

// Quoted reports whether the value encodes as a JSON string.
func (n Numeric) Quoted() bool {
	return n.quoted
}

// Parse returns the numeric value and whether the textual form is a finite
// number.
func (n Numeric) Parse() (float64, bool) {
	s := strings.TrimSpace(n.raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float returns the numeric value, treating missing or non-numeric input as 0.
func (n Numeric) Float() float64 {
	f, _ := n.Parse()
	return f
}

// MarshalJSON implements json.Marshaler.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if n.quoted {
		return json.Marshal(n.raw)
	}
	if n.raw == "" {
		return []byte("null"), nil
	}
	return []byte(n.raw), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null":
		*n = Numeric{}
		return nil
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("numeric: %w", err)
		}
		*n = NumericString(str)
		return nil
	case s != "" && (s[0] == '-' || (s[0] >= '0' && s[0] <= '9')):
		*n = Numeric{raw: s}
		return nil
	default:
		return fmt.Errorf("numeric: expected number or string, got %s", s)
	}
}
