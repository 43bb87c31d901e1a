package adapter

import "errors"

var (
	// ErrTransport is matched by every failed REST call: network errors,
	// timeouts, non-2xx responses and malformed bodies.
	ErrTransport = errors.New("dspace transport error")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrMissingToken is returned when a login response carries no bearer
	// token.
	ErrMissingToken = errors.New("login response carries no bearer token")
)
