// Package kernel holds the value objects shared by the storefront domain model:
//   - UUID: identifiers of catalog entities created by the store
//   - Money: non-negative amounts in the store's single implicit currency
//
// Both are immutable and safe for concurrent use.
package kernel
