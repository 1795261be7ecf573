// Package registry holds the in-memory collections of clients and accounts.
// A single mutex serializes every mutation and read, which keeps the
// non-negative balance invariant intact when the registry sits behind a
// concurrent HTTP shell. Callers only ever receive value snapshots; the
// domain objects themselves never leave the lock.
package registry

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mfcarv/banco-api/internal/domain"
)

type Registry struct {
	mu       sync.Mutex
	clients  []*domain.Client
	accounts []domain.Account

	withdrawalAmountLimit decimal.Decimal
	withdrawalCountLimit  int
}

// New returns an empty registry. Accounts it opens are checking accounts
// carrying the given withdrawal limits.
func New(withdrawalAmountLimit decimal.Decimal, withdrawalCountLimit int) *Registry {
	return &Registry{
		withdrawalAmountLimit: withdrawalAmountLimit,
		withdrawalCountLimit:  withdrawalCountLimit,
	}
}

// RegisterClient creates and stores a new client. The tax ID must be unused.
func (r *Registry) RegisterClient(taxID, name, birthDate, address string) (domain.ClientDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clientByTaxID(taxID) != nil {
		return domain.ClientDetails{}, domain.ErrDuplicateClient
	}

	c := domain.NewClient(taxID, name, birthDate, address)
	r.clients = append(r.clients, c)
	return clientDetails(c), nil
}

// OpenAccount creates a checking account for an existing client. The account
// number is the current total account count plus one; numbers are never
// reused because accounts are never removed.
func (r *Registry) OpenAccount(taxID string) (domain.AccountDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.clientByTaxID(taxID)
	if c == nil {
		return domain.AccountDetails{}, domain.ErrClientNotFound
	}

	number := len(r.accounts) + 1
	a := domain.NewCheckingAccountWithLimits(number, c, r.withdrawalAmountLimit, r.withdrawalCountLimit)
	c.AddAccount(a)
	r.accounts = append(r.accounts, a)
	return accountDetails(a), nil
}

// Apply resolves the account, then drives the transaction through its owning
// client so that history bookkeeping follows the core path. It returns the
// account snapshot after the mutation.
func (r *Registry) Apply(accountNumber int, tx domain.Transaction) (domain.AccountDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := r.accountByNumber(accountNumber)
	if a == nil {
		return domain.AccountDetails{}, domain.ErrAccountNotFound
	}
	if err := a.Owner().ApplyTransaction(a, tx); err != nil {
		return domain.AccountDetails{}, err
	}
	return accountDetails(a), nil
}

// Statement returns the ordered history of an account plus its current
// balance.
func (r *Registry) Statement(accountNumber int) (domain.Statement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := r.accountByNumber(accountNumber)
	if a == nil {
		return domain.Statement{}, domain.ErrAccountNotFound
	}
	return domain.Statement{
		AccountNumber: a.Number(),
		RoutingCode:   a.RoutingCode(),
		Balance:       a.Balance(),
		Records:       a.History().Records(),
	}, nil
}

// ClientAccounts returns the client's account listing in ownership order.
func (r *Registry) ClientAccounts(taxID string) ([]domain.AccountSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.clientByTaxID(taxID)
	if c == nil {
		return nil, domain.ErrClientNotFound
	}
	var out []domain.AccountSummary
	for s := range c.ListAccounts() {
		out = append(out, s)
	}
	return out, nil
}

// Clients returns a snapshot of every registered client, in registration
// order.
func (r *Registry) Clients() []domain.ClientDetails {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.ClientDetails, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, clientDetails(c))
	}
	return out
}

// Accounts returns a snapshot of every account, in creation order.
func (r *Registry) Accounts() []domain.AccountDetails {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.AccountDetails, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, accountDetails(a))
	}
	return out
}

// Lookups are linear scans; fine at this scale, and it keeps registration
// order for the listing endpoints for free.

func (r *Registry) clientByTaxID(taxID string) *domain.Client {
	for _, c := range r.clients {
		if c.TaxID == taxID {
			return c
		}
	}
	return nil
}

func (r *Registry) accountByNumber(number int) domain.Account {
	for _, a := range r.accounts {
		if a.Number() == number {
			return a
		}
	}
	return nil
}

func clientDetails(c *domain.Client) domain.ClientDetails {
	return domain.ClientDetails{
		TaxID:        c.TaxID,
		Name:         c.Name,
		BirthDate:    c.BirthDate,
		Address:      c.Address,
		AccountCount: c.AccountCount(),
	}
}

func accountDetails(a domain.Account) domain.AccountDetails {
	return domain.AccountDetails{
		Number:      a.Number(),
		RoutingCode: a.RoutingCode(),
		Balance:     a.Balance(),
		OwnerTaxID:  a.Owner().TaxID,
		OwnerName:   a.Owner().Name,
	}
}
