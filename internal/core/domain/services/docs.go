// Package services contains stateless domain services:
//
//   - PriceCalculator: the fair price formula for handmade goods
//   - OrderBoard: status filtering, counting and the dashboard summary
//
// Neither service stores anything; callers pass in the current orders.
package services
