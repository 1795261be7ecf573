package domain

import "errors"

var (
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrWithdrawalLimitExceeded = errors.New("withdrawal count limit reached")
	ErrAmountLimitExceeded     = errors.New("withdrawal amount exceeds limit")
	ErrClientNotFound          = errors.New("client not found")
	ErrAccountNotFound         = errors.New("account not found")
	ErrDuplicateClient         = errors.New("client already registered")
)
