package internal

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthenticationFailed is the user-visible failure for any variant of
	// external-gateway login failure; the specific cause is logged instead.
	ErrAuthenticationFailed = errors.New("Failed to authenticate with external order API")

	ErrGatewayBadCredentials    = errors.New("external gateway rejected login credentials")
	ErrGatewayMalformedResponse = errors.New("external gateway login response carries no token")

	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ExternalRejectionError is a non-2xx answer from the external gateway on an
// authorized call. The response body, when present, is surfaced to the caller.
type ExternalRejectionError struct {
	Op     string
	Status int
	Body   string
}

func (e *ExternalRejectionError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Status)
	}
	return fmt.Sprintf("Failed to %s (%d): %s", e.Op, e.Status, body)
}
