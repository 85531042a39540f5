package services

import (
	"math"
	"sort"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// AllStatuses is the filter key that matches every order.
const AllStatuses = "all"

// RecentOrdersLimit is how many orders the dashboard lists as recent.
const RecentOrdersLimit = 3

// StatusFilter selects orders by status. The zero value matches nothing; use
// ParseStatusFilter, MatchAll or MatchStatus.
type StatusFilter struct {
	all    bool
	status order.Status
}

func MatchAll() StatusFilter {
	return StatusFilter{all: true}
}

func MatchStatus(status order.Status) StatusFilter {
	return StatusFilter{status: status}
}

// ParseStatusFilter accepts "all" or a status code. Anything else is an
// invalid status.
func ParseStatusFilter(key string) (StatusFilter, error) {
	if key == AllStatuses {
		return MatchAll(), nil
	}
	status, err := order.ParseStatus(key)
	if err != nil {
		return StatusFilter{}, err
	}
	return MatchStatus(status), nil
}

func (f StatusFilter) IsAll() bool {
	return f.all
}

func (f StatusFilter) String() string {
	if f.all {
		return AllStatuses
	}
	return f.status.String()
}

func (f StatusFilter) Matches(o *order.Order) bool {
	return f.all || o.Status() == f.status
}

// OrderBoard answers the questions the orders page asks about the order list.
// Filtering and counting share one predicate, so a count always equals the
// length of the matching filter result.
type OrderBoard struct{}

func NewOrderBoard() OrderBoard {
	return OrderBoard{}
}

// Filter returns the matching orders in their original order.
func (OrderBoard) Filter(orders []*order.Order, filter StatusFilter) []*order.Order {
	out := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if filter.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}

func (b OrderBoard) Count(orders []*order.Order, filter StatusFilter) int {
	return len(b.Filter(orders, filter))
}

// StatusCounts returns the number of orders per valid status. Every status is
// present, with 0 when no order has it.
func (b OrderBoard) StatusCounts(orders []*order.Order) map[order.Status]int {
	counts := make(map[order.Status]int, len(order.Statuses()))
	for _, status := range order.Statuses() {
		counts[status] = b.Count(orders, MatchStatus(status))
	}
	return counts
}

// DashboardSummary is the business overview shown on the seller's home page.
type DashboardSummary struct {
	TotalOrders     int
	StatusCounts    map[order.Status]int
	ActiveOrders    int
	CompletedOrders int
	TotalProducts   int
	// Revenue is the sum of completed order amounts.
	Revenue kernel.Money
	// AverageOrderValue is Revenue per completed order rounded half up to a
	// whole unit, or 0 without completed orders.
	AverageOrderValue float64
	RecentOrders      []*order.Order
}

// Summarize builds the dashboard figures from the full order list, given in
// insertion order, and the catalog size.
func (b OrderBoard) Summarize(orders []*order.Order, totalProducts int) DashboardSummary {
	counts := b.StatusCounts(orders)

	revenue := kernel.Money{}
	for _, o := range b.Filter(orders, MatchStatus(order.Completed)) {
		revenue = revenue.Add(o.Amount())
	}

	completed := counts[order.Completed]
	average := 0.0
	if completed > 0 {
		average = math.Floor(revenue.Amount()/float64(completed) + 0.5)
	}

	return DashboardSummary{
		TotalOrders:       len(orders),
		StatusCounts:      counts,
		ActiveOrders:      len(orders) - completed,
		CompletedOrders:   completed,
		TotalProducts:     totalProducts,
		Revenue:           revenue,
		AverageOrderValue: average,
		RecentOrders:      b.Recent(orders, RecentOrdersLimit),
	}
}

// Recent returns up to limit orders, newest date first. Orders placed on the
// same day keep their insertion order.
func (OrderBoard) Recent(orders []*order.Order, limit int) []*order.Order {
	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date().After(sorted[j].Date())
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
