package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/roach88/roster/internal/employee"
)

// marshalEmployees converts the collection to the durable blob format: a
// JSON array of records in insertion order.
// HTML escaping is disabled so data URIs holding SVG markup are stored
// verbatim.
func marshalEmployees(records []employee.Employee) ([]byte, error) {
	if records == nil {
		records = []employee.Employee{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("marshal employees: %w", err)
	}
	// Encoder adds a trailing newline, remove it
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// unmarshalEmployees parses a durable blob. A JSON null yields an empty
// collection.
func unmarshalEmployees(data []byte) ([]employee.Employee, error) {
	var records []employee.Employee
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal employees: %w", err)
	}
	if records == nil {
		records = []employee.Employee{}
	}
	return records, nil
}
