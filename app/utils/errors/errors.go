// Package errors maps domain and provisioning failures to the codes and
// HTTP statuses the REST boundary answers with.
package errors

import (
	"errors"
	"net/http"

	"school-admin-service/app/domain"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Authentication and authorization errors
	ErrCodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"

	// Provisioning errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION"
	ErrCodeDuplicateEmail   ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeIdentityCreate   ErrorCode = "IDENTITY_CREATION_FAILED"
	ErrCodeProfileCreate    ErrorCode = "PROFILE_CREATION_FAILED"
	ErrCodeTeacherCreate    ErrorCode = "TEACHER_RECORD_CREATION_FAILED"
	ErrCodeStudentCreate    ErrorCode = "STUDENT_RECORD_CREATION_FAILED"

	// Lookup errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Rate limiting
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// System errors
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
)

// AppError represents an application error carried to the HTTP boundary
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + " (caused by: " + e.Cause.Error() + ")"
	}
	return string(e.Code) + ": " + e.Message
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: httpStatusFor(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: httpStatusFor(code),
		Cause:      cause,
	}
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// FromDomain translates a usecase error into the AppError the boundary
// should answer with. Unknown errors become 500 without leaking their text.
func FromDomain(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return New(ErrCodeUnauthenticated, "authentication required")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrProfileInactive):
		return New(ErrCodeForbidden, "access denied")
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrIdentityNotFound),
		errors.Is(err, domain.ErrRecordNotFound):
		return New(ErrCodeNotFound, "resource not found")
	}

	var pe *domain.ProvisionError
	if errors.As(err, &pe) {
		return &AppError{
			Code:       ErrorCode(pe.Kind),
			Message:    pe.Message,
			StatusCode: httpStatusFor(ErrorCode(pe.Kind)),
			Cause:      pe.Cause,
		}
	}

	return Wrap(ErrCodeInternalError, "internal server error", err)
}

// httpStatusFor maps error codes to HTTP status codes
func httpStatusFor(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeDuplicateEmail:
		return http.StatusConflict
	case ErrCodeValidationFailed, ErrCodeBadRequest,
		ErrCodeIdentityCreate, ErrCodeProfileCreate,
		ErrCodeTeacherCreate, ErrCodeStudentCreate:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
