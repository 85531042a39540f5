package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status is the fulfillment state of an order.
//
// Orders normally move forward:
//
//	Pending ──> InProgress ──> Shipped ──> Completed
//
// but the lifecycle is deliberately not guarded: an order may be moved from any
// status to any other (a seller reverting a mis-clicked status is a normal
// operation). Only the target value itself is validated.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota

	// Pending orders have been paid for but work has not started.
	Pending

	// InProgress orders are being made or packed.
	InProgress

	// Shipped orders have been handed to the carrier.
	Shipped

	// Completed orders have been delivered.
	Completed
)

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Shipped, Completed}
}

func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown has no code
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in-progress",
		Shipped:    "shipped",
		Completed:  "completed",
	}
}

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "In Progress",
		Shipped:    "Shipped",
		Completed:  "Completed",
	}
}

// ParseStatus converts a status code ("pending", "in-progress", "shipped",
// "completed") into a Status. Any other input is an invalid value.
func ParseStatus(code string) (Status, error) {
	for status, c := range getStatusCodes() {
		if c == code {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", code),
	)
}

// Validate reports whether s is one of the four defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code of the status, or "unknown".
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "unknown"
}

// Label returns the human readable name shown on order cards and tabs.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsActive reports whether the order still needs seller attention.
func (s Status) IsActive() bool {
	return s == Pending || s == InProgress || s == Shipped
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
