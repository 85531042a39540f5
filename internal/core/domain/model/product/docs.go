// Package product models the seller's catalog entries.
package product
