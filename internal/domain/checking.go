package domain

import "github.com/shopspring/decimal"

const DefaultWithdrawalCountLimit = 3

var DefaultWithdrawalAmountLimit = decimal.NewFromInt(500)

// CheckingAccount caps both the size of a single withdrawal and the number
// of withdrawals accepted over the account's lifetime.
type CheckingAccount struct {
	*BaseAccount
	amountLimit decimal.Decimal
	countLimit  int
}

func NewCheckingAccount(number int, owner *Client) *CheckingAccount {
	return NewCheckingAccountWithLimits(number, owner, DefaultWithdrawalAmountLimit, DefaultWithdrawalCountLimit)
}

func NewCheckingAccountWithLimits(number int, owner *Client, amountLimit decimal.Decimal, countLimit int) *CheckingAccount {
	return &CheckingAccount{
		BaseAccount: NewAccount(number, owner),
		amountLimit: amountLimit,
		countLimit:  countLimit,
	}
}

func (a *CheckingAccount) AmountLimit() decimal.Decimal {
	return a.amountLimit
}

func (a *CheckingAccount) CountLimit() int {
	return a.countLimit
}

// Withdraw runs the limit checks before the shared balance rules, so a
// request that breaks both a limit and the balance is reported as a limit
// violation.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if a.history.WithdrawalCount() >= a.countLimit {
		return ErrWithdrawalLimitExceeded
	}
	if amount.GreaterThan(a.amountLimit) {
		return ErrAmountLimitExceeded
	}
	return a.BaseAccount.Withdraw(amount)
}
