// Package testutil seeds registries for service and handler tests.
package testutil

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mfcarv/banco-api/internal/domain"
	"github.com/mfcarv/banco-api/internal/registry"
)

const (
	TaxID     = "12345678900"
	Name      = "Maria Souza"
	BirthDate = "12/03/1991"
	Address   = "Rua das Flores 100, Sao Paulo"
)

// NewRegistry returns a registry with the stock checking limits (500, 3).
func NewRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	return registry.New(decimal.NewFromInt(500), 3)
}

func SeedClient(t *testing.T, reg *registry.Registry, taxID string) domain.ClientDetails {
	t.Helper()
	c, err := reg.RegisterClient(taxID, Name, BirthDate, Address)
	if err != nil {
		t.Fatalf("seed client %s: %v", taxID, err)
	}
	return c
}

// SeedAccount registers the client if needed and opens one account for it.
func SeedAccount(t *testing.T, reg *registry.Registry, taxID string) domain.AccountDetails {
	t.Helper()
	if _, err := reg.RegisterClient(taxID, Name, BirthDate, Address); err != nil && !errors.Is(err, domain.ErrDuplicateClient) {
		t.Fatalf("seed client %s: %v", taxID, err)
	}
	a, err := reg.OpenAccount(taxID)
	if err != nil {
		t.Fatalf("seed account for %s: %v", taxID, err)
	}
	return a
}
