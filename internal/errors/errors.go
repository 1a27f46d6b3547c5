// Package errors defines the typed errors shared across the routing service.
// The engine raises these instead of substituting default decisions; the
// transport layer owns the mapping to HTTP status codes.
package errors

// DomainError is an error with a stable machine-readable code exposed to API
// consumers.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
