package queries

import (
	"errors"

	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPriceBreakdownQueryIsNotConstructed = errors.New(
	"GetPriceBreakdownQuery must be created via NewGetPriceBreakdownQuery constructor",
)

// GetPriceBreakdownQuery carries the raw text of the four price form fields.
type GetPriceBreakdownQuery struct {
	inputs services.PriceInputs
	guard  guard.ConstructorGuard
}

func NewGetPriceBreakdownQuery(materials, timeHours, hourlyRate, overheadPercent string) GetPriceBreakdownQuery {
	return GetPriceBreakdownQuery{
		inputs: services.ParsePriceInputs(materials, timeHours, hourlyRate, overheadPercent),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetPriceBreakdownQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceBreakdownQueryIsNotConstructed)
}

// PriceBreakdownResponse adds the strings shown under the form: two decimals
// for the parts, a whole number for the recommended price.
type PriceBreakdownResponse struct {
	services.PriceBreakdown
	MaterialsDisplay   string
	LaborCostDisplay   string
	OverheadDisplay    string
	RecommendedDisplay string
}

type GetPriceBreakdownQueryHandler struct {
	calculator services.PriceCalculator
}

func NewGetPriceBreakdownQueryHandler() GetPriceBreakdownQueryHandler {
	return GetPriceBreakdownQueryHandler{calculator: services.NewPriceCalculator()}
}

func (h GetPriceBreakdownQueryHandler) Handle(query GetPriceBreakdownQuery) (PriceBreakdownResponse, error) {
	if err := query.Validate(); err != nil {
		return PriceBreakdownResponse{}, err
	}

	b := h.calculator.ComputeBreakdown(query.inputs)
	return PriceBreakdownResponse{
		PriceBreakdown:     b,
		MaterialsDisplay:   display(b.Materials),
		LaborCostDisplay:   display(b.LaborCost),
		OverheadDisplay:    display(b.Overhead),
		RecommendedDisplay: decimal.NewFromFloatWithExponent(b.RecommendedPrice, 0).String(),
	}, nil
}

// display rounds the exact binary value to cents, half away from zero, so
// 1.005 (stored as 1.00499...) shows as "1.00" the way the form shows it.
func display(v float64) string {
	return decimal.NewFromFloatWithExponent(v, -2).StringFixed(2)
}
