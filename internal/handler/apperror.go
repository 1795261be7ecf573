package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrInvalidRequest   = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body"}
	ErrValidationFailed = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed"}
	ErrResourceNotFound = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError    = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrInvalidAmount           = &AppError{http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be greater than zero"}
	ErrInsufficientFunds       = &AppError{http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS", "Insufficient funds"}
	ErrWithdrawalLimitExceeded = &AppError{http.StatusUnprocessableEntity, "WITHDRAWAL_LIMIT_EXCEEDED", "Withdrawal count limit reached"}
	ErrAmountLimitExceeded     = &AppError{http.StatusUnprocessableEntity, "WITHDRAWAL_AMOUNT_LIMIT_EXCEEDED", "Withdrawal amount exceeds the allowed limit"}
	ErrClientNotFound          = &AppError{http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found"}
	ErrAccountNotFound         = &AppError{http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found"}
	ErrDuplicateClient         = &AppError{http.StatusConflict, "CLIENT_ALREADY_EXISTS", "Client already registered with this tax ID"}
)
