// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters.
//
// Every type wraps one sentinel, so callers branch with errors.Is and never
// on message text:
//
//	ErrObjectNotFound       unknown order, product or profile
//	ErrObjectAlreadyExists  an order or product id that is already taken
//	ErrValueIsRequired      an empty mandatory field
//	ErrValueIsInvalid       an unknown status or availability, a malformed id
//	ErrValueIsOutOfRange    a negative amount or price
//
// Constructors come in two flavours, with and without an underlying cause.
// Identifiers and values are printed on one line whatever they contain.
package errs
