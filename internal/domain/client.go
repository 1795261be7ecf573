package domain

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Client owns accounts and is the entry point for applying transactions.
// Identity is the tax ID, unique across the registry.
type Client struct {
	TaxID     string
	Name      string
	BirthDate string
	Address   string

	accounts []Account
}

func NewClient(taxID, name, birthDate, address string) *Client {
	return &Client{TaxID: taxID, Name: name, BirthDate: birthDate, Address: address}
}

// ApplyTransaction drives tx against one of the client's accounts. The
// caller resolves the account beforehand; nil means the lookup failed.
func (c *Client) ApplyTransaction(account Account, tx Transaction) error {
	if account == nil {
		return ErrAccountNotFound
	}
	return tx.Apply(account)
}

// AddAccount appends to the owned list. Accounts arrive freshly created with
// unique numbers, so there is no duplicate check.
func (c *Client) AddAccount(account Account) {
	c.accounts = append(c.accounts, account)
}

func (c *Client) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func (c *Client) AccountCount() int {
	return len(c.accounts)
}

// AccountSummary is one display row of a client's account listing.
type AccountSummary struct {
	Ordinal     int
	Number      int
	RoutingCode string
	Balance     decimal.Decimal
}

// ListAccounts yields one summary per owned account, in ownership order.
// The sequence is lazy and can be ranged over more than once.
func (c *Client) ListAccounts() iter.Seq[AccountSummary] {
	return func(yield func(AccountSummary) bool) {
		for i, a := range c.accounts {
			s := AccountSummary{
				Ordinal:     i + 1,
				Number:      a.Number(),
				RoutingCode: a.RoutingCode(),
				Balance:     a.Balance(),
			}
			if !yield(s) {
				return
			}
		}
	}
}
