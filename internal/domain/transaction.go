package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

// Transaction is a requested monetary movement. It is immutable once built
// and carries no validation of its own; the account operation it drives
// decides whether the movement is accepted.
type Transaction struct {
	kind   TransactionKind
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Transaction {
	return Transaction{kind: KindDeposit, amount: amount}
}

func NewWithdrawal(amount decimal.Decimal) Transaction {
	return Transaction{kind: KindWithdrawal, amount: amount}
}

func (t Transaction) Kind() TransactionKind {
	return t.kind
}

func (t Transaction) Amount() decimal.Decimal {
	return t.amount
}

// Apply drives the transaction against an account. The history record is
// written only when the account mutation succeeds; on failure the account
// and its history are left untouched and the error is surfaced unchanged.
func (t Transaction) Apply(account Account) error {
	var err error
	switch t.kind {
	case KindDeposit:
		err = account.Deposit(t.amount)
	case KindWithdrawal:
		err = account.Withdraw(t.amount)
	default:
		return fmt.Errorf("Apply: unknown transaction kind %q", t.kind)
	}
	if err != nil {
		return err
	}
	account.History().Append(t.kind, t.amount)
	return nil
}
