// Package services defines the business logic for companies and invoices.
// This file centralizes service-level error values so that they can be
// consistently returned by service methods and classified by callers.
//
// Every error carries a Kind. Translation of a Kind into an HTTP status code
// is performed at the handler layer; anything that is not a *Error (store
// failures, constraint violations) classifies as KindUnhandled.
package services

import "errors"

// Kind classifies a failure for rendering.
type Kind int

const (
	// KindUnhandled covers every failure the service does not recognize.
	KindUnhandled Kind = iota
	// KindBadRequest marks invalid client input, e.g. a missing body.
	KindBadRequest
	// KindNotFound marks a key that matches no row.
	KindNotFound
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	default:
		return "unhandled"
	}
}

// Error is a classified service error.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// KindOf reports the Kind of err, unwrapping as needed. Nil and foreign
// errors are KindUnhandled.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnhandled
}

var (
	// ErrCompanyNotFound indicates that no company matches the given code.
	ErrCompanyNotFound = &Error{Kind: KindNotFound, Msg: "company not found"}

	// ErrInvoiceNotFound indicates that no invoice matches the given id.
	ErrInvoiceNotFound = &Error{Kind: KindNotFound, Msg: "invoice not found"}

	// ErrBodyRequired is returned when a write request carries no JSON body.
	ErrBodyRequired = &Error{Kind: KindBadRequest, Msg: "request body is required"}

	// ErrInvalidBody is returned when a body is present but cannot be decoded.
	ErrInvalidBody = &Error{Kind: KindBadRequest, Msg: "invalid JSON body"}
)
