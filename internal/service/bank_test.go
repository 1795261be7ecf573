package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfcarv/banco-api/internal/domain"
	"github.com/mfcarv/banco-api/internal/testutil"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestBank(t *testing.T) *BankService {
	t.Helper()
	return NewBankService(testutil.NewRegistry(t))
}

func TestDepositWithdrawScenario(t *testing.T) {
	svc := newTestBank(t)
	ctx := context.Background()

	_, err := svc.RegisterClient(ctx, testutil.TaxID, testutil.Name, testutil.BirthDate, testutil.Address)
	require.NoError(t, err)
	opened, err := svc.OpenAccount(ctx, testutil.TaxID)
	require.NoError(t, err)
	require.True(t, opened.Balance.IsZero())

	a, err := svc.Deposit(ctx, opened.Number, dec("1000"))
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(dec("1000")))

	a, err = svc.Withdraw(ctx, opened.Number, dec("500"))
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(dec("500")))

	_, err = svc.Withdraw(ctx, opened.Number, dec("501"))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	st, err := svc.Statement(ctx, opened.Number)
	require.NoError(t, err)
	assert.True(t, st.Balance.Equal(dec("500")), "rejected withdrawal must not move the balance")
	require.Len(t, st.Records, 2)
	assert.Equal(t, domain.KindDeposit, st.Records[0].Kind)
	assert.Equal(t, domain.KindWithdrawal, st.Records[1].Kind)
}

func TestWithdrawalAmountLimit(t *testing.T) {
	svc := newTestBank(t)
	ctx := context.Background()

	account := testutil.SeedAccount(t, svc.reg, testutil.TaxID)
	_, err := svc.Deposit(ctx, account.Number, dec("2000"))
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, account.Number, dec("500.01"))
	require.ErrorIs(t, err, domain.ErrAmountLimitExceeded)

	a, err := svc.Withdraw(ctx, account.Number, dec("500"))
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(dec("1500")))
}

func TestWithdrawalCountLimit(t *testing.T) {
	svc := newTestBank(t)
	ctx := context.Background()

	account := testutil.SeedAccount(t, svc.reg, testutil.TaxID)
	_, err := svc.Deposit(ctx, account.Number, dec("10000"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.Withdraw(ctx, account.Number, dec("100"))
		require.NoError(t, err)
	}

	_, err = svc.Withdraw(ctx, account.Number, dec("1"))
	require.ErrorIs(t, err, domain.ErrWithdrawalLimitExceeded)

	st, err := svc.Statement(ctx, account.Number)
	require.NoError(t, err)
	assert.True(t, st.Balance.Equal(dec("9700")))
	assert.Len(t, st.Records, 4)
}

func TestRegisterClientDuplicate(t *testing.T) {
	svc := newTestBank(t)
	ctx := context.Background()

	_, err := svc.RegisterClient(ctx, "111", "Ana Costa", "05/06/1985", "Rua A 10")
	require.NoError(t, err)

	_, err = svc.RegisterClient(ctx, "111", "Outra Ana", "01/01/1999", "Rua B 20")
	require.ErrorIs(t, err, domain.ErrDuplicateClient)

	clients := svc.ListClients(ctx)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana Costa", clients[0].Name)
}

func TestOpenAccountUnknownClient(t *testing.T) {
	svc := newTestBank(t)
	ctx := context.Background()

	_, err := svc.OpenAccount(ctx, "999")
	require.ErrorIs(t, err, domain.ErrClientNotFound)
	assert.Empty(t, svc.ListAccounts(ctx))
}

func TestListAccountsAndClientAccounts(t *testing.T) {
	svc := newTestBank(t)
	ctx := context.Background()

	first := testutil.SeedAccount(t, svc.reg, "111")
	second := testutil.SeedAccount(t, svc.reg, "111")
	third := testutil.SeedAccount(t, svc.reg, "222")

	all := svc.ListAccounts(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, []int{first.Number, second.Number, third.Number}, []int{all[0].Number, all[1].Number, all[2].Number})

	mine, err := svc.ClientAccounts(ctx, "111")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 1, mine[0].Ordinal)
	assert.Equal(t, first.Number, mine[0].Number)
	assert.Equal(t, 2, mine[1].Ordinal)
	assert.Equal(t, second.Number, mine[1].Number)

	_, err = svc.ClientAccounts(ctx, "333")
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}
