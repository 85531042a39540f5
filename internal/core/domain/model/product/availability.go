package product

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Availability tells buyers whether a product can be ordered right away.
type Availability int

const (
	// AvailabilityUnknown is the zero value and never valid.
	AvailabilityUnknown Availability = iota
	// Available products are in stock.
	Available
	// OutOfStock products are listed but cannot be bought at the moment.
	OutOfStock
	// MadeToOrder products are crafted once an order comes in.
	MadeToOrder
)

// Availabilities lists the valid values in display order.
func Availabilities() []Availability {
	return []Availability{Available, OutOfStock, MadeToOrder}
}

func getAvailabilityCodes() map[Availability]string {
	return map[Availability]string{
		Available:   "available",
		OutOfStock:  "out-of-stock",
		MadeToOrder: "made-to-order",
	}
}

// ParseAvailability converts "available", "out-of-stock" or "made-to-order".
func ParseAvailability(code string) (Availability, error) {
	for a, c := range getAvailabilityCodes() {
		if c == code {
			return a, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"availability",
		fmt.Errorf("%q is not a valid availability", code),
	)
}

func (a Availability) Validate() error {
	if _, ok := getAvailabilityCodes()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

func (a Availability) String() string {
	if code, ok := getAvailabilityCodes()[a]; ok {
		return code
	}
	return "unknown"
}
