package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultHourlyRate is used when the seller leaves the rate empty.
	DefaultHourlyRate = 25.0
	// DefaultOverheadPercent is used when the seller leaves overhead empty.
	DefaultOverheadPercent = 20.0
)

// PriceInputs are the four numbers of the fair price formula. A nil field is
// absent and falls back to its default: 0 for materials and hours,
// DefaultHourlyRate and DefaultOverheadPercent for the others. NaN and
// infinities count as absent too.
type PriceInputs struct {
	MaterialsCost   *float64
	TimeHours       *float64
	HourlyRate      *float64
	OverheadPercent *float64
}

// PriceBreakdown is the itemised result shown next to the product form.
type PriceBreakdown struct {
	Materials        float64
	LaborCost        float64
	Overhead         float64
	RecommendedPrice float64
}

// Subtotal is materials plus labor, the base overhead is charged on.
func (b PriceBreakdown) Subtotal() float64 {
	return saturate(b.Materials + b.LaborCost)
}

// PriceCalculator computes the fair price of a handmade item:
//
//	laborCost        = timeHours * hourlyRate
//	subtotal         = materialsCost + laborCost
//	overhead         = subtotal * (overheadPercent / 100)
//	recommendedPrice = ceil(subtotal + overhead)
//
// Every intermediate value is rounded to float64 on its own, so the result is
// the same on every platform. A step that overflows saturates at
// ±math.MaxFloat64, so every field of the result is finite. The calculator is
// pure and never fails.
//
// Example:
//
//	b := services.NewPriceCalculator().ComputeBreakdown(services.ParsePriceInputs("20", "4", "25", "20"))
//	// b.LaborCost == 100, b.Overhead == 24, b.RecommendedPrice == 144
type PriceCalculator struct{}

func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

func (PriceCalculator) ComputeBreakdown(in PriceInputs) PriceBreakdown {
	materials := valueOr(in.MaterialsCost, 0)
	hours := valueOr(in.TimeHours, 0)
	rate := valueOr(in.HourlyRate, DefaultHourlyRate)
	overheadPercent := valueOr(in.OverheadPercent, DefaultOverheadPercent)

	// Explicit conversions stop the compiler from fusing multiply and add.
	labor := saturate(float64(hours * rate))
	subtotal := saturate(float64(materials + labor))
	overhead := saturate(float64(subtotal * float64(overheadPercent/100)))

	return PriceBreakdown{
		Materials:        materials,
		LaborCost:        labor,
		Overhead:         overhead,
		RecommendedPrice: math.Ceil(saturate(float64(subtotal + overhead))),
	}
}

// saturate clamps a step that overflowed to the largest finite float64 of the
// same sign. Finite inputs never produce NaN once every step is clamped.
func saturate(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

func valueOr(v *float64, def float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return def
	}
	return *v
}

var leadingDecimal = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParsePriceInputs reads the raw text of the four price form fields.
//
// Each field is read the way a browser form reads a number: leading
// whitespace is skipped and the longest leading decimal number is used, so
// "12.5kg" is 12.5 and "abc" is absent. A field that reads as zero is also
// treated as absent, which means a "0" hourly rate falls back to
// DefaultHourlyRate.
func ParsePriceInputs(materials, timeHours, hourlyRate, overheadPercent string) PriceInputs {
	return PriceInputs{
		MaterialsCost:   parseFormNumber(materials),
		TimeHours:       parseFormNumber(timeHours),
		HourlyRate:      parseFormNumber(hourlyRate),
		OverheadPercent: parseFormNumber(overheadPercent),
	}
}

func parseFormNumber(raw string) *float64 {
	literal := leadingDecimal.FindString(strings.TrimLeftFunc(raw, unicode.IsSpace))
	if literal == "" {
		return nil
	}

	v, err := strconv.ParseFloat(literal, 64)
	if err != nil || v == 0 || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
