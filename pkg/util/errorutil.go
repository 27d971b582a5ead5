package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Stable error codes exposed on the wire. Each code maps to exactly one
// HTTP status; services raise them, the boundary middleware renders them.
const (
	CodeAuthMissingBearer = "AUT_01"
	CodeAuthClaimShape    = "AUT_02"
	CodeAuthInvalidToken  = "AUT_03"
	CodeAuthTokenExpired  = "AUT_04"
	CodeEmailTaken        = "EML_01"
	CodeEmailNotFound     = "EML_02"
	CodePasswordTooShort  = "PSW_01"
	CodePasswordCharset   = "PSW_02"
	CodePasswordMismatch  = "PSW_03"
	CodeUserNotFound      = "USR_01"
	CodeUserInvalidID     = "USR_02"
	CodeInvalidLimit      = "USR_03"
	CodeInvalidOffset     = "USR_04"
	CodeValidation        = "VAL_01"
	CodeUnknown           = "UNK_01"
)

var statusByCode = map[string]int{
	CodeAuthMissingBearer: http.StatusUnauthorized,
	CodeAuthClaimShape:    http.StatusUnauthorized,
	CodeAuthInvalidToken:  http.StatusUnauthorized,
	CodeAuthTokenExpired:  http.StatusUnauthorized,
	CodeEmailTaken:        http.StatusBadRequest,
	CodeEmailNotFound:     http.StatusBadRequest,
	CodePasswordTooShort:  http.StatusBadRequest,
	CodePasswordCharset:   http.StatusBadRequest,
	CodePasswordMismatch:  http.StatusUnauthorized,
	CodeUserNotFound:      http.StatusNotFound,
	CodeUserInvalidID:     http.StatusBadRequest,
	CodeInvalidLimit:      http.StatusBadRequest,
	CodeInvalidOffset:     http.StatusBadRequest,
	CodeValidation:        http.StatusBadRequest,
	CodeUnknown:           http.StatusInternalServerError,
}

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	Details    string
	HTTPStatus int
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

// New constructs a DomainError for a known code. The HTTP status comes from
// the fixed code table; unknown codes degrade to 500.
func New(code, message, details string) *DomainError {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	return &DomainError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// NewValidation reports a malformed or incomplete request body.
func NewValidation(message, details string) *DomainError {
	return New(CodeValidation, message, details)
}

// NewInternal wraps an unclassified failure as UNK_01. The underlying error
// text is surfaced in details, nothing else leaks.
func NewInternal(err error) *DomainError {
	e := New(CodeUnknown, "There was an error processing your request.", "")
	if err != nil {
		e.Details = err.Error()
		e.Err = err
	}
	return e
}

// ToDomainError converts generic errors to DomainError, degrading anything
// unclassified to UNK_01.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &DomainError{
			Code:       CodeValidation,
			Message:    fiberErr.Message,
			HTTPStatus: fiberErr.Code,
		}
	}
	return NewInternal(err)
}
