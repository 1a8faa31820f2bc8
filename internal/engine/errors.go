package engine

import "fmt"

// ValidationError reports an input that failed validation before any
// calculation was attempted. Field names the offending input ("profile",
// "record").
type ValidationError struct {
	Field  string
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// IneligibleError reports a record that is excluded from comparison rather
// than malformed. Ranking drops these silently; single-record calculation
// surfaces them so the caller can tell "rejected" from "miscalculated".
type IneligibleError struct {
	PlanID string
	Reason string
}

func (e *IneligibleError) Error() string {
	return fmt.Sprintf("plan %s ineligible: %s", e.PlanID, e.Reason)
}
