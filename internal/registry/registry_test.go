package registry

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfcarv/banco-api/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestRegistry() *Registry {
	return New(dec("500"), 3)
}

func TestRegisterClient(t *testing.T) {
	reg := newTestRegistry()

	c, err := reg.RegisterClient("111", "Ana Costa", "05/06/1985", "Rua A 10")
	require.NoError(t, err)
	assert.Equal(t, "111", c.TaxID)
	assert.Equal(t, 0, c.AccountCount)

	_, err = reg.RegisterClient("111", "Outra Ana", "01/01/1999", "Rua B 20")
	require.ErrorIs(t, err, domain.ErrDuplicateClient)

	clients := reg.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana Costa", clients[0].Name)
}

func TestOpenAccount(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.RegisterClient("111", "Ana Costa", "05/06/1985", "Rua A 10")
	require.NoError(t, err)

	a, err := reg.OpenAccount("111")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Number)
	assert.Equal(t, domain.RoutingCode, a.RoutingCode)
	assert.True(t, a.Balance.IsZero())
	assert.Equal(t, "111", a.OwnerTaxID)
	assert.Equal(t, "Ana Costa", a.OwnerName)

	clients := reg.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, 1, clients[0].AccountCount)
}

func TestOpenAccountUnknownClient(t *testing.T) {
	reg := newTestRegistry()

	_, err := reg.OpenAccount("999")
	require.ErrorIs(t, err, domain.ErrClientNotFound)
	assert.Empty(t, reg.Accounts())
}

func TestAccountNumbersAreSequentialAcrossClients(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.RegisterClient("111", "Ana Costa", "05/06/1985", "Rua A 10")
	require.NoError(t, err)
	_, err = reg.RegisterClient("222", "Bruno Dias", "07/08/1979", "Rua B 20")
	require.NoError(t, err)

	first, err := reg.OpenAccount("111")
	require.NoError(t, err)
	second, err := reg.OpenAccount("222")
	require.NoError(t, err)
	third, err := reg.OpenAccount("111")
	require.NoError(t, err)

	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, 3, third.Number)

	accounts := reg.Accounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, "Bruno Dias", accounts[1].OwnerName)
}

func TestApply(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.RegisterClient("111", "Ana Costa", "05/06/1985", "Rua A 10")
	require.NoError(t, err)
	opened, err := reg.OpenAccount("111")
	require.NoError(t, err)

	a, err := reg.Apply(opened.Number, domain.NewDeposit(dec("350.75")))
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(dec("350.75")))

	a, err = reg.Apply(opened.Number, domain.NewWithdrawal(dec("50.75")))
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(dec("300")))

	_, err = reg.Apply(42, domain.NewDeposit(dec("10")))
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestApplyRejectionLeavesStateUntouched(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.RegisterClient("111", "Ana Costa", "05/06/1985", "Rua A 10")
	require.NoError(t, err)
	opened, err := reg.OpenAccount("111")
	require.NoError(t, err)

	_, err = reg.Apply(opened.Number, domain.NewWithdrawal(dec("10")))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	st, err := reg.Statement(opened.Number)
	require.NoError(t, err)
	assert.True(t, st.Balance.IsZero())
	assert.Empty(t, st.Records)
}

func TestStatement(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.RegisterClient("111", "Ana Costa", "05/06/1985", "Rua A 10")
	require.NoError(t, err)
	opened, err := reg.OpenAccount("111")
	require.NoError(t, err)

	_, err = reg.Apply(opened.Number, domain.NewDeposit(dec("1000")))
	require.NoError(t, err)
	_, err = reg.Apply(opened.Number, domain.NewWithdrawal(dec("500")))
	require.NoError(t, err)

	st, err := reg.Statement(opened.Number)
	require.NoError(t, err)
	assert.Equal(t, opened.Number, st.AccountNumber)
	assert.Equal(t, domain.RoutingCode, st.RoutingCode)
	assert.True(t, st.Balance.Equal(dec("500")))
	require.Len(t, st.Records, 2)
	assert.Equal(t, domain.KindDeposit, st.Records[0].Kind)
	assert.Equal(t, domain.KindWithdrawal, st.Records[1].Kind)

	_, err = reg.Statement(42)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestClientAccounts(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.RegisterClient("111", "Ana Costa", "05/06/1985", "Rua A 10")
	require.NoError(t, err)

	summaries, err := reg.ClientAccounts("111")
	require.NoError(t, err)
	assert.Empty(t, summaries)

	_, err = reg.OpenAccount("111")
	require.NoError(t, err)
	_, err = reg.OpenAccount("111")
	require.NoError(t, err)

	summaries, err = reg.ClientAccounts("111")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].Ordinal)
	assert.Equal(t, 2, summaries[1].Ordinal)

	_, err = reg.ClientAccounts("999")
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}
