package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the request is valid but contradicts current state.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrNoFinancialEntity indicates an organization has no book of record
// configured. This is a setup problem upstream, not a transient condition.
var ErrNoFinancialEntity = errors.New("no financial entity for organization")

// ErrAccountNotFound indicates a referenced account code does not exist in
// the chart of accounts for the resolved financial entity.
var ErrAccountNotFound = errors.New("account not found")

// ErrAlreadyPosted indicates a source document already has a journal entry.
var ErrAlreadyPosted = errors.New("document already posted to ledger")

// ErrAlreadyReversed indicates a payment has already been reversed.
var ErrAlreadyReversed = errors.New("payment already reversed")

// ErrNotReversible indicates the payment method does not support reversal.
var ErrNotReversible = errors.New("payment method does not support reversal")

// UnbalancedError reports a post request whose debit and credit totals
// differ. It is fatal to the request and indicates a caller defect in line
// construction; nothing is written.
type UnbalancedError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("journal entry does not balance: debits %s, credits %s",
		e.DebitTotal.String(), e.CreditTotal.String())
}

// NewUnbalancedError builds an UnbalancedError from the two totals.
func NewUnbalancedError(debitTotal, creditTotal decimal.Decimal) *UnbalancedError {
	return &UnbalancedError{DebitTotal: debitTotal, CreditTotal: creditTotal}
}

// AppError wraps an infrastructure failure with an HTTP-ish code and a
// message safe to log. The underlying error is preserved for errors.Is/As.
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

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
