package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Status represents the cooking lifecycle state of an order.
//
// State transitions:
//
//	Cooking <──> Meal ──> Completion
//
// Cooking and Meal are "in progress"; Completion is terminal. The transition
// guard is asymmetric on purpose: it constrains only the source state. Once an
// order reaches Completion its record is frozen, but while it is in progress
// the kitchen may move it to any valid status, including backwards.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Cooking is the initial status of every order.
	Cooking

	// Meal indicates the order has been served and is being eaten.
	Meal

	// Completion indicates the order is finished. This is a terminal state
	// with no further transitions allowed.
	Completion
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Cooking:    "Cooking",
		Meal:       "Meal",
		Completion: "Completion",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Cooking:    "Cooking",
		Meal:       "Meal",
		Completion: "Completion",
	}
}

// StatusFromString parses a status name as used in payloads and storage.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status name", s))
}

// Validate checks if the Status value is one of Cooking, Meal, Completion.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsInProgress reports whether the status still allows changes to the order
// and blocks table grouping: Cooking and Meal are in progress, Completion is
// not.
func (s Status) IsInProgress() bool {
	return s == Cooking || s == Meal
}

// Change transitions to the requested status.
//
// The only guard is on the source: a transition from Completion is rejected
// regardless of the target. Any requested valid status is accepted from
// Cooking or Meal.
//
// Returns:
//   - (requested, nil) on a legal transition
//   - (0, error) when requested is not a valid status or s is terminal
func (s Status) Change(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return 0, err
	}

	if !s.IsInProgress() {
		return 0, errs.NewStateConflictErrorWithCause(
			"order status can no longer change",
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}

	return requested, nil
}
