// Package order models customer orders and their fulfillment lifecycle.
//
// The package includes:
//   - Order: the aggregate root (one product per order, single currency)
//   - Status: pending, in-progress, shipped, completed
//   - Customer and ProductRef: presence-checked value objects
//
// Key business rules:
//   - Orders arrive already populated from the purchase flow
//   - Status is the only thing that changes after creation
//   - Any valid status may follow any other; there are no transition guards
//   - Orders are kept forever as a historical record
package order
