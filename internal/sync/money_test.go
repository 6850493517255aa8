package sync_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coltoneshaw/ynabsync/api/account"
	"github.com/coltoneshaw/ynabsync/api/budget"
	"github.com/coltoneshaw/ynabsync/internal/sync"
)

// formatProvider hands back a single full sync carrying a fixed currency
// format, so ReadAccounts' display scaling can be tested against it.
type formatProvider struct {
	format *budget.CurrencyFormat
}

func (p *formatProvider) FullSync(_ context.Context, budgetID string) (*sync.Fetch, error) {
	return &sync.Fetch{
		ServerKnowledge: 1,
		Budget: &budget.Budget{
			ID:             budgetID,
			CurrencyFormat: p.format,
			Accounts:       []*account.Account{{ID: "acc-1", Name: "Checking", Balance: 123456}},
		},
	}, nil
}

func (p *formatProvider) DeltaSync(_ context.Context, budgetID string, lastKnowledge uint64) (*sync.Fetch, error) {
	return &sync.Fetch{ServerKnowledge: lastKnowledge + 1, Budget: &budget.Budget{ID: budgetID}}, nil
}

func (p *formatProvider) ListBudgets(_ context.Context) ([]sync.BudgetSummary, error) {
	return []sync.BudgetSummary{{ID: "budget-1", Name: "Test Budget"}}, nil
}

func (p *formatProvider) IsStatic() bool { return false }

func TestReadAccounts_ScalesByDecimalDigits(t *testing.T) {
	p := &formatProvider{format: &budget.CurrencyFormat{DecimalDigits: 2}}
	e := newTestEngine(t, p, nil)

	views, err := e.ReadAccounts(context.Background(), sync.Selector{ID: "budget-1"}, sync.NewResolver())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.InDelta(t, 1234.56, views[0].BalanceDisplay.Amount, 0.0001)
}

func TestReadAccounts_DefaultsToThreeDecimalDigitsWhenFormatMissing(t *testing.T) {
	p := &formatProvider{format: nil}
	e := newTestEngine(t, p, nil)

	views, err := e.ReadAccounts(context.Background(), sync.Selector{ID: "budget-1"}, sync.NewResolver())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.InDelta(t, 123.456, views[0].BalanceDisplay.Amount, 0.0001)
}
