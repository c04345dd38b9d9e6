package errors

import (
	"fmt"
	"net/http"

	"arbolitos/internal/errors"
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

// Predefined error types. User-facing messages are in Spanish, matching the
// language of the frontend.
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuario no encontrado",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"El correo ya está registrado",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Correo o contraseña incorrectos",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Sesión inválida o expirada",
		"",
	)

	// Catalog-related errors
	ErrPlantNotFound = NewBaseError(
		http.StatusNotFound,
		"PLANT_NOT_FOUND",
		"Árbol no encontrado",
		"",
	)

	ErrPlantNotAvailable = NewBaseError(
		http.StatusBadRequest,
		"PLANT_NOT_AVAILABLE",
		"El árbol no está disponible para adopción",
		"",
	)

	// Watering-related errors
	ErrWateringNotFound = NewBaseError(
		http.StatusNotFound,
		"WATERING_NOT_FOUND",
		"Solicitud de riego no encontrada",
		"",
	)

	ErrWateringInvalidTransition = NewBaseError(
		http.StatusBadRequest,
		"WATERING_INVALID_TRANSITION",
		"La solicitud de riego no admite ese cambio de estado",
		"",
	)

	ErrWateringNotClaimed = NewBaseError(
		http.StatusForbidden,
		"WATERING_NOT_CLAIMED",
		"Solo el técnico asignado puede reportar esta visita",
		"",
	)

	// Payment-related errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Pago no encontrado",
		"",
	)

	ErrPaymentAlreadyDecided = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_ALREADY_DECIDED",
		"El pago ya fue aprobado o rechazado",
		"",
	)

	ErrPackageNotFound = NewBaseError(
		http.StatusBadRequest,
		"PACKAGE_NOT_FOUND",
		"El paquete de créditos no existe",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falló la transacción de base de datos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos",
		"",
	)
)

// InsufficientCreditsError reports a ledger debit that would overdraw the
// balance. It carries the current balance and the required cost so the client
// can show both figures.
type InsufficientCreditsError struct {
	Balance  int
	Required int
}

// NewInsufficientCreditsError creates a credit-shortfall error.
func NewInsufficientCreditsError(balance, required int) AppError {
	return &InsufficientCreditsError{
		Balance:  balance,
		Required: required,
	}
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: balance %d, required %d", e.Balance, e.Required)
}

// HTTPCode returns the HTTP status code
func (e *InsufficientCreditsError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *InsufficientCreditsError) ErrorCode() string {
	return "INSUFFICIENT_CREDITS"
}

// Message returns the user-friendly error message
func (e *InsufficientCreditsError) Message() string {
	return "Créditos insuficientes"
}

// Details returns detailed error information
func (e *InsufficientCreditsError) Details() string {
	return fmt.Sprintf("saldo actual: %d, costo requerido: %d", e.Balance, e.Required)
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
	return "Error de base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
