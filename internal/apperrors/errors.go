// Package apperrors provides the single error convention used across the
// repository and service layers: every failing operation returns an
// AppError carrying a stable code, a client-safe message and an HTTP
// status, with the store-level cause wrapped inside. There are no
// swallow-and-return-empty paths.
package apperrors

import "net/http"

// AppError is a structured application error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the sentinel's code, message and status
// but wrapping an internal cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Vehicle errors.
var (
	ErrAutoNotFound   = &AppError{Code: "AUTO_NOT_FOUND", Message: "Vehicle not found", StatusCode: http.StatusNotFound}
	ErrImagenUpload   = &AppError{Code: "IMAGE_UPLOAD_FAILED", Message: "Image upload failed", StatusCode: http.StatusBadGateway}
	ErrImagenNotFound = &AppError{Code: "IMAGE_NOT_FOUND", Message: "Image not found", StatusCode: http.StatusNotFound}
)

// Maintenance errors.
var (
	ErrMantenimientoNotFound = &AppError{Code: "MANTENIMIENTO_NOT_FOUND", Message: "Maintenance record not found", StatusCode: http.StatusNotFound}
)
