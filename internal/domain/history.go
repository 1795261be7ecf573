package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one accepted transaction as it appears on a statement.
type Record struct {
	Kind      TransactionKind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// History is the append-only log of accepted transactions for one account.
// Insertion order is chronological order; records are never removed.
type History struct {
	records []Record
}

func NewHistory() *History {
	return &History{}
}

// Append records an accepted transaction with a capture-time timestamp at
// second precision. Transaction.Apply calls this after the account mutation
// succeeded, never before.
func (h *History) Append(kind TransactionKind, amount decimal.Decimal) {
	h.records = append(h.records, Record{
		Kind:      kind,
		Amount:    amount,
		Timestamp: time.Now().UTC().Truncate(time.Second),
	})
}

// Records returns a copy of the log so callers cannot mutate it.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

func (h *History) Len() int {
	return len(h.records)
}

// WithdrawalCount counts accepted withdrawals over the account's entire
// lifetime. There is no statement-period reset.
func (h *History) WithdrawalCount() int {
	n := 0
	for _, r := range h.records {
		if r.Kind == KindWithdrawal {
			n++
		}
	}
	return n
}

// Statement is an account's ordered history plus its current balance.
type Statement struct {
	AccountNumber int
	RoutingCode   string
	Balance       decimal.Decimal
	Records       []Record
}
