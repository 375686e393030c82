package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict with current resource state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Domain-specific sentinels. Validation-class errors wrap ErrValidation and
// referential-integrity errors wrap ErrConflict, so handlers can classify
// them with a single errors.Is check.
var (
	// ErrUnbalancedEntry is returned when a journal entry's debits and credits do not match.
	ErrUnbalancedEntry = fmt.Errorf("%w: journal entry debits and credits do not balance", ErrValidation)

	// ErrMissingField is returned when a required field is absent or zero.
	ErrMissingField = fmt.Errorf("%w: required field missing", ErrValidation)

	// ErrInvalidAmount is returned when an amount is zero, negative, or otherwise out of range.
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)

	// ErrRateUnavailable is returned when no exchange rate exists for the
	// requested currency/date pair. The base currency never produces this.
	ErrRateUnavailable = errors.New("no exchange rate available")

	// ErrAccountInUse blocks deleting an account still referenced by journal lines or payments.
	ErrAccountInUse = fmt.Errorf("%w: account is referenced by existing records", ErrConflict)

	// ErrCurrencyInUse blocks deleting a currency still referenced by accounts, rates, lines, or sales.
	ErrCurrencyInUse = fmt.Errorf("%w: currency is referenced by existing records", ErrConflict)

	// ErrUnknownReference is returned when a foreign reference (customer, product,
	// unit, account, currency) does not exist.
	ErrUnknownReference = fmt.Errorf("%w: referenced entity does not exist", ErrConflict)
)

// AppError carries a status-like code and an optional wrapped cause.
// Repositories use it to surface storage failures without losing the root error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches errors.Is(err, ErrValidation).
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
