// Package errs holds the validation and lookup errors shared by the domain
// model, the use cases and the adapters.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the
// offending parameter. The struct unwraps to its sentinel, so callers branch
// with errors.Is and the HTTP adapter maps the sentinel to a status code:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return http.StatusNotFound
//	}
package errs
