package employee

import "fmt"

// SeedPolicy selects the records a store starts with when its durable slot
// holds no usable collection.
type SeedPolicy string

const (
	// SeedNone starts with an empty roster.
	SeedNone SeedPolicy = "none"
	// SeedSample starts with a small demo roster.
	SeedSample SeedPolicy = "sample"
)

// ParseSeedPolicy validates a seed policy name. The empty string selects
// SeedNone.
func ParseSeedPolicy(s string) (SeedPolicy, error) {
	switch SeedPolicy(s) {
	case "", SeedNone:
		return SeedNone, nil
	case SeedSample:
		return SeedSample, nil
	default:
		return "", fmt.Errorf("invalid seed policy %q: must be %q or %q", s, SeedNone, SeedSample)
	}
}

// Records returns a fresh copy of the policy's seed records.
func (p SeedPolicy) Records() []Employee {
	if p != SeedSample {
		return nil
	}
	return []Employee{
		{ID: "1", Name: "Anita Rao", Age: Number(34), Designation: "Engineering Manager", Salary: Number(125000), Currency: "USD"},
		{ID: "2", Name: "bruno Keller", Age: Number(28), Designation: "Developer", Salary: Number(88000), Currency: "EUR"},
		{ID: "3", Name: "Chen Wei", Age: Number(41), Designation: "Designer", Salary: Number(97000), Currency: "USD"},
		{ID: "4", Name: "Dana Okafor", Age: Number(25), Designation: "QA Analyst", Salary: Number(64000), Currency: "GBP"},
	}
}
