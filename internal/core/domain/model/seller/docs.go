// Package seller holds the seller's public profile.
package seller
