package gateway

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when an operation that requires a bearer
// token is called without one. It is raised before any network call.
var ErrMissingCredential = errors.New("authentication token is required")

// MissingParameterError reports a required identifier or payload field that
// was absent or empty. It is raised before any network call.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return e.Param + " is required"
}

// MissingParam builds the error for a missing required parameter.
func MissingParam(param string) error {
	return &MissingParameterError{Param: param}
}

// ServerError is a response with a failing HTTP status. Message is derived
// from the body via Envelope.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// MalformedResponseError is a response body that could not be parsed as
// JSON. Status carries the raw HTTP status of the response.
type MalformedResponseError struct {
	Status int
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid server response (status %d)", e.Status)
}

// InvalidPayloadError is an HTTP-success response whose body fails an
// application-level shape check. A successful status is not sufficient
// proof of a usable payload.
type InvalidPayloadError struct {
	Reason string
}

func (e *InvalidPayloadError) Error() string {
	return "invalid payload received from server: " + e.Reason
}
