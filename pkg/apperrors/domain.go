package apperrors

import (
	"net/http"
)

// Factories and predefined variables for business-logic errors.

// ErrNotFound converts a repository error (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate-key repository error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation is the factory for invalid operations (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrExternalService wraps a collaborator failure (502).
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// --- predefined, frequently used errors ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeWeakPassword,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email or username already in use",
	http.StatusConflict,
)

var ErrUserNotVerified = New(
	CodeUserNotVerified,
	"auth",
	"Email address is not verified yet",
	http.StatusForbidden,
)

var ErrVerificationCode = New(
	CodeVerificationFailed,
	"auth",
	"Verification code is invalid or has expired",
	http.StatusBadRequest,
)

var ErrInvalidRefreshToken = New(
	CodeInvalidToken,
	"auth",
	"Refresh token is invalid or has expired",
	http.StatusUnauthorized,
)
