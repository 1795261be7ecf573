package domain

import "github.com/shopspring/decimal"

// RoutingCode is the fixed branch code shared by every account.
const RoutingCode = "0001"

// Account is the polymorphic surface the rest of the system works against.
// The balance only ever changes through Deposit and Withdraw.
type Account interface {
	Number() int
	RoutingCode() string
	Balance() decimal.Decimal
	Owner() *Client
	History() *History
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

// BaseAccount implements the balance rules shared by every account variant.
type BaseAccount struct {
	number  int
	owner   *Client
	balance decimal.Decimal
	history *History
}

func NewAccount(number int, owner *Client) *BaseAccount {
	return &BaseAccount{number: number, owner: owner, history: NewHistory()}
}

func (a *BaseAccount) Number() int {
	return a.number
}

func (a *BaseAccount) RoutingCode() string {
	return RoutingCode
}

func (a *BaseAccount) Balance() decimal.Decimal {
	return a.balance
}

func (a *BaseAccount) Owner() *Client {
	return a.owner
}

func (a *BaseAccount) History() *History {
	return a.history
}

// Deposit increases the balance. Deposits have no upper bound.
func (a *BaseAccount) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw decreases the balance, keeping it non-negative.
func (a *BaseAccount) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
