// Package errs provides the typed validation and lookup errors shared by the
// order-taking domain.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//
// The HTTP adapter never shows these messages to the end user; it maps them to
// fulfillment text and logs the detailed error instead.
package errs
