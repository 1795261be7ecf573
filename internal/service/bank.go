package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfcarv/banco-api/internal/domain"
	"github.com/mfcarv/banco-api/internal/logging"
	"github.com/mfcarv/banco-api/internal/registry"
)

// BankService exposes the ledger operations to the HTTP shell, one method
// per operation. It adds logging and error context around the registry; the
// rules themselves live in the domain.
type BankService struct {
	reg *registry.Registry
}

func NewBankService(reg *registry.Registry) *BankService {
	return &BankService{reg: reg}
}

func (s *BankService) RegisterClient(ctx context.Context, taxID, name, birthDate, address string) (domain.ClientDetails, error) {
	c, err := s.reg.RegisterClient(taxID, name, birthDate, address)
	if err != nil {
		return domain.ClientDetails{}, fmt.Errorf("RegisterClient: %w", err)
	}

	logging.FromContext(ctx).Info("client registered", "tax_id", c.TaxID)
	return c, nil
}

func (s *BankService) OpenAccount(ctx context.Context, taxID string) (domain.AccountDetails, error) {
	a, err := s.reg.OpenAccount(taxID)
	if err != nil {
		return domain.AccountDetails{}, fmt.Errorf("OpenAccount: %w", err)
	}

	logging.FromContext(ctx).Info("account opened",
		"account_number", a.Number,
		"tax_id", a.OwnerTaxID,
	)
	return a, nil
}

func (s *BankService) Deposit(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.AccountDetails, error) {
	a, err := s.reg.Apply(accountNumber, domain.NewDeposit(amount))
	if err != nil {
		return domain.AccountDetails{}, fmt.Errorf("Deposit: %w", err)
	}

	logging.FromContext(ctx).Info("deposit accepted",
		"account_number", a.Number,
		"amount", amount.String(),
	)
	return a, nil
}

func (s *BankService) Withdraw(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.AccountDetails, error) {
	a, err := s.reg.Apply(accountNumber, domain.NewWithdrawal(amount))
	if err != nil {
		return domain.AccountDetails{}, fmt.Errorf("Withdraw: %w", err)
	}

	logging.FromContext(ctx).Info("withdrawal accepted",
		"account_number", a.Number,
		"amount", amount.String(),
	)
	return a, nil
}

func (s *BankService) Statement(ctx context.Context, accountNumber int) (domain.Statement, error) {
	st, err := s.reg.Statement(accountNumber)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("Statement: %w", err)
	}
	return st, nil
}

func (s *BankService) ClientAccounts(ctx context.Context, taxID string) ([]domain.AccountSummary, error) {
	accounts, err := s.reg.ClientAccounts(taxID)
	if err != nil {
		return nil, fmt.Errorf("ClientAccounts: %w", err)
	}
	return accounts, nil
}

func (s *BankService) ListClients(ctx context.Context) []domain.ClientDetails {
	return s.reg.Clients()
}

func (s *BankService) ListAccounts(ctx context.Context) []domain.AccountDetails {
	return s.reg.Accounts()
}
