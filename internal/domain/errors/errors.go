// Package errors defines the application error taxonomy: every failure a
// request can surface is an AppError carrying an HTTP status, a business
// error code, and a user-facing message.
package errors

import (
	"net/http"

	"bazaar/internal/errors"
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

// Authorization errors. The unauthorized message is deliberately uniform:
// a denied request learns nothing about the entity it targeted.
var (
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid password",
		"",
	)

	ErrClientInactive = NewBaseError(
		http.StatusForbidden,
		"CLIENT_INACTIVE",
		"User is not active",
		"",
	)
)

// Validation and lookup errors.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)
)

// Business rule violations. The messages are load-bearing literals: callers
// and tests distinguish failures by them.
var (
	ErrCartExists = NewBaseError(
		http.StatusBadRequest,
		"CART_EXISTS",
		"User already has a cart",
		"",
	)

	ErrCartMissing = NewBaseError(
		http.StatusBadRequest,
		"CART_MISSING",
		"Cart does not exist",
		"",
	)

	ErrCartInactive = NewBaseError(
		http.StatusBadRequest,
		"CART_INACTIVE",
		"Cart is not active",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"No items in the cart",
		"",
	)

	ErrCurrencyMismatch = NewBaseError(
		http.StatusBadRequest,
		"CURRENCY_MISMATCH",
		"Currency mismatch",
		"",
	)

	ErrRoleWithoutPermissions = NewBaseError(
		http.StatusBadRequest,
		"ROLE_WITHOUT_PERMISSIONS",
		"To create a role, you need at least one permission",
		"",
	)

	ErrProductNoCategory = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NO_CATEGORY",
		"Product has no category",
		"",
	)

	ErrProductNoCurrency = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NO_CURRENCY",
		"Product has no currency",
		"",
	)

	ErrProductNoDocument = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NO_DOCUMENT",
		"Product has no document",
		"",
	)

	ErrProductNoImage = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NO_IMAGE",
		"Product has no image",
		"",
	)

	ErrProductNoMainImage = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NO_MAIN_IMAGE",
		"Product has no main image",
		"",
	)

	ErrProductNoCharacteristics = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NO_CHARACTERISTICS",
		"Product has no characteristics",
		"",
	)

	ErrDefaultPasswordUnset = NewBaseError(
		http.StatusBadRequest,
		"DEFAULT_PASSWORD_UNSET",
		"Default password not set in global variables",
		"",
	)

	ErrClientExists = NewBaseError(
		http.StatusBadRequest,
		"CLIENT_EXISTS",
		"User already exists",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)
)

// StorageError represents a file store failure during a document operation.
// The record's delete is not considered complete when the relocation fails.
type StorageError struct {
	err error
}

// NewStorageError wraps a file store failure.
func NewStorageError(err error) AppError {
	return &StorageError{err: err}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "file storage operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILURE"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Error deleting the document"
}

// Details returns the underlying storage error text
func (e *StorageError) Details() string {
	return e.err.Error()
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
