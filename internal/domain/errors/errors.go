// Package errors defines application-level errors with HTTP and business codes.
package errors

import (
	"net/http"

	"pulse/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"해당 사용자를 찾을 수 없습니다",
		"",
	)

	// Trigger evaluation errors
	ErrUnknownTriggerType = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_TRIGGER_TYPE",
		"알 수 없는 트리거 유형입니다",
		"",
	)

	ErrUpstreamDataFailed = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_DATA_FAILED",
		"공공 데이터 조회에 실패했습니다",
		"",
	)

	ErrHistoryWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"HISTORY_WRITE_FAILED",
		"알림 이력 저장에 실패했습니다",
		"",
	)

	ErrEventPublishFailed = NewBaseError(
		http.StatusInternalServerError,
		"EVENT_PUBLISH_FAILED",
		"알림 이벤트 발행에 실패했습니다",
		"",
	)

	// Generic database errors
	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_FAILED",
		"데이터베이스 작업에 실패했습니다",
		"",
	)
)

// NewDatabaseExecuteError wraps a raw database error with context.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrDatabaseExecute.WithDetails(err.Error()), message)
}
