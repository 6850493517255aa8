package sync_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coltoneshaw/ynabsync/api/account"
	"github.com/coltoneshaw/ynabsync/api/budget"
	"github.com/coltoneshaw/ynabsync/internal/sync"
)

func TestDetector_Due_GatesOnSyncCount(t *testing.T) {
	d := sync.NewDetector(true, 3, 0, 1, t.TempDir(), discardLogger())

	assert.False(t, d.Due("budget-1"))
	assert.False(t, d.Due("budget-1"))
	assert.True(t, d.Due("budget-1"), "third sync should trip the interval")
	assert.False(t, d.Due("budget-1"), "counter resets after tripping")
}

func TestDetector_Due_DisabledNeverFires(t *testing.T) {
	d := sync.NewDetector(false, 1, 0, 1, t.TempDir(), discardLogger())
	assert.False(t, d.Due("budget-1"))
}

func TestDetector_Check_SelfHealsOnDrift(t *testing.T) {
	d := sync.NewDetector(true, 1, 0, 1, t.TempDir(), discardLogger())

	r := sync.NewReplica("budget-1")
	r.Apply(&sync.Fetch{
		ServerKnowledge: 1,
		Budget: &budget.Budget{
			ID:       "budget-1",
			Accounts: []*account.Account{{ID: "acc-1", Name: "Checking", Balance: 1000}},
		},
	}, discardLogger())

	truth := &sync.Fetch{
		ServerKnowledge: 1,
		Budget: &budget.Budget{
			ID: "budget-1",
			Accounts: []*account.Account{
				{ID: "acc-1", Name: "Checking", Balance: 2000},
				{ID: "acc-2", Name: "Savings", Balance: 500},
			},
		},
	}

	d.Check(r, nil, nil, truth)

	require.Len(t, r.Accounts, 2, "self-heal must replace the replica's entities with truth")
	byID := map[string]*account.Account{}
	for _, a := range r.Accounts {
		byID[a.ID] = a
	}
	assert.EqualValues(t, 2000, byID["acc-1"].Balance)
	assert.Contains(t, byID, "acc-2")
}

func TestDetector_Check_NoOpWhenIdentical(t *testing.T) {
	d := sync.NewDetector(true, 1, 0, 1, t.TempDir(), discardLogger())

	r := sync.NewReplica("budget-1")
	fetch := &sync.Fetch{
		ServerKnowledge: 1,
		Budget: &budget.Budget{
			ID:       "budget-1",
			Accounts: []*account.Account{{ID: "acc-1", Name: "Checking", Balance: 1000}},
		},
	}
	r.Apply(fetch, discardLogger())

	// truth identical to merged: Check must not alter anything or panic.
	truth := &sync.Fetch{
		ServerKnowledge: 1,
		Budget: &budget.Budget{
			ID:       "budget-1",
			Accounts: []*account.Account{{ID: "acc-1", Name: "Checking", Balance: 1000}},
		},
	}
	d.Check(r, nil, nil, truth)

	require.Len(t, r.Accounts, 1)
	assert.EqualValues(t, 1000, r.Accounts[0].Balance)
}
