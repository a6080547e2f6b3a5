package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewMissingField reports an absent required request field.
func NewMissingField(field string) error {
	return NewDomainError("MISSING_FIELD", fmt.Sprintf("missing %s", field), http.StatusBadRequest,
		map[string]any{"field": field})
}

// NewInvalidEmail reports a syntactically invalid email address.
func NewInvalidEmail() error {
	return NewDomainError("INVALID_EMAIL", "invalid email", http.StatusBadRequest, nil)
}

// NewEmailTaken reports a registration attempt with an email already in use.
func NewEmailTaken() error {
	return NewDomainError("EMAIL_TAKEN", "email already used", http.StatusBadRequest, nil)
}

// NewInvalidCredentials reports a failed authentication attempt. The
// message is uniform for unknown email and wrong password so the
// endpoint cannot be used for account enumeration.
func NewInvalidCredentials() error {
	return NewDomainError("INVALID_CREDENTIALS", "Email or password not correct", http.StatusBadRequest, nil)
}

// NewUnauthenticated reports a request with no credentials.
func NewUnauthenticated(message string) error {
	return NewDomainError("UNAUTHENTICATED", message, http.StatusUnauthorized, nil)
}

// NewInvalidToken reports a token that failed signature or expiry checks.
func NewInvalidToken(message string) error {
	return NewDomainError("INVALID_TOKEN", message, http.StatusUnauthorized, nil)
}

// NewForbidden reports an authenticated caller lacking the required role.
func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

// NewNotFound reports a missing record. Locker mutation endpoints
// surface this as a 400-class response.
func NewNotFound(resource string) error {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s does not exist", resource), http.StatusBadRequest, nil)
}

// NewAlreadyBooked reports a booking attempt on a locker held by
// another user.
func NewAlreadyBooked() error {
	return NewDomainError("ALREADY_BOOKED", "locker already booked", http.StatusConflict, nil)
}

// NewStoreUnavailable wraps a persistence failure without exposing detail.
func NewStoreUnavailable(err error) error {
	return &DomainError{
		Code:       "STORE_UNAVAILABLE",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, sql.ErrNoRows) {
		if de, ok := NewNotFound("resource").(*DomainError); ok {
			return de
		}
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
