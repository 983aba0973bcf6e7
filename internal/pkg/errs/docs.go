// Package errs provides the typed errors shared by the job board domain,
// application and adapter layers.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsRequired, ...)
// with a struct carrying the offending parameter and an optional cause. The
// struct unwraps to its sentinel, so callers classify with errors.Is and read
// details with errors.As:
//
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    // notFound.ParamName, notFound.ID
//	}
//
// The HTTP adapter relies on this classification to choose 400, 404 and 409
// responses; anything unclassified falls through to the terminal error handler.
package errs
