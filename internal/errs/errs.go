// Package errs defines the error shapes returned to API clients.
//
// Storage failures are translated into these types by the sqlerr
// package; handlers and services construct them directly for
// validation and authentication failures.
package errs
