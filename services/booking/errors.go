package booking

import (
	"errors"
	"fmt"
)

// Error codes for the booking/payment state machine. Handlers map these to
// HTTP statuses; everything else is treated as an internal error.
const (
	CodeValidation        = "validationError"
	CodeAuthorization     = "authorizationError"
	CodeNotFound          = "notFoundError"
	CodeSecurity          = "securityError"
	CodePaymentState      = "paymentStateError"
	CodeGateway           = "gatewayError"
	CodeInvalidTransition = "invalidTransitionError"
	CodePartialFailure    = "partialFailureError"
	CodeRoomUnavailable   = "roomUnavailableError"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewAuthorizationError(msg string) error {
	return &Error{Code: CodeAuthorization, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewSecurityError(msg string) error {
	return &Error{Code: CodeSecurity, Message: msg}
}

func NewPaymentStateError(msg string) error {
	return &Error{Code: CodePaymentState, Message: msg}
}

func NewGatewayError(msg string) error {
	return &Error{Code: CodeGateway, Message: msg}
}

func NewInvalidTransitionError(msg string) error {
	return &Error{Code: CodeInvalidTransition, Message: msg}
}

func NewPartialFailureError(msg string) error {
	return &Error{Code: CodePartialFailure, Message: msg}
}

func NewRoomUnavailableError(msg string) error {
	return &Error{Code: CodeRoomUnavailable, Message: msg}
}

// CodeOf returns the taxonomy code of err, or "" for untyped errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
