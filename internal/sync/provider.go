package sync

import (
	"context"
	"encoding/json"
	"os"

	ynab "github.com/coltoneshaw/ynabsync"
	"github.com/coltoneshaw/ynabsync/api"
	"github.com/coltoneshaw/ynabsync/api/budget"
)

// Fetch is the result of a full or delta fetch: a budget payload (full or
// partial, per the delta wire contract) plus the cursor it was taken at.
type Fetch struct {
	Budget          *budget.Budget
	ServerKnowledge uint64
}

// BudgetSummary is the minimal id/name pair the Budget Selector Resolver
// needs to resolve a selector against the remote budget set, independent
// of whether that budget has ever been synced into a Replica.
type BudgetSummary struct {
	ID   string
	Name string
}

// Provider performs full and delta fetches for a budget. It never retries
// at this layer; transient failures surface to the orchestrator.
type Provider interface {
	FullSync(ctx context.Context, budgetID string) (*Fetch, error)
	DeltaSync(ctx context.Context, budgetID string, lastKnowledge uint64) (*Fetch, error)
	// ListBudgets reports every budget the provider can see, the
	// authoritative set the Budget Selector Resolver validates ids and
	// names against.
	ListBudgets(ctx context.Context) ([]BudgetSummary, error)
	// IsStatic reports whether writes against this provider must be
	// rejected with a StaticModeWrite error.
	IsStatic() bool
}

// RemoteProvider fetches budgets from the live YNAB API
type RemoteProvider struct {
	client ynab.ClientServicer
}

// NewRemoteProvider wraps an API client as a Provider
func NewRemoteProvider(client ynab.ClientServicer) *RemoteProvider {
	return &RemoteProvider{client: client}
}

// LastUsedBudgetID is the sentinel Resolver.ResolveBudget hands back when
// no budget has ever been resolved and none is known yet: the provider
// resolves it via YNAB's own "last used budget" endpoint on first sync,
// the same shortcut the teacher's GetLastUsedBudget exposes.
const LastUsedBudgetID = "last-used"

// FullSync fetches the complete budget
func (p *RemoteProvider) FullSync(_ context.Context, budgetID string) (*Fetch, error) {
	if budgetID == LastUsedBudgetID {
		snap, err := p.client.Budget().GetLastUsedBudget(nil)
		if err != nil {
			return nil, classifyProviderError(err)
		}
		return &Fetch{Budget: snap.Budget, ServerKnowledge: snap.ServerKnowledge}, nil
	}

	snap, err := p.client.Budget().GetBudget(budgetID, nil)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	return &Fetch{Budget: snap.Budget, ServerKnowledge: snap.ServerKnowledge}, nil
}

// DeltaSync fetches only what changed since lastKnowledge
func (p *RemoteProvider) DeltaSync(_ context.Context, budgetID string, lastKnowledge uint64) (*Fetch, error) {
	f := &api.Filter{LastKnowledgeOfServer: lastKnowledge}
	if budgetID == LastUsedBudgetID {
		snap, err := p.client.Budget().GetLastUsedBudget(f)
		if err != nil {
			return nil, classifyProviderError(err)
		}
		return &Fetch{Budget: snap.Budget, ServerKnowledge: snap.ServerKnowledge}, nil
	}

	snap, err := p.client.Budget().GetBudget(budgetID, f)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	return &Fetch{Budget: snap.Budget, ServerKnowledge: snap.ServerKnowledge}, nil
}

// ListBudgets fetches the logged-in user's budget list, the source of
// truth for resolving a selector by name or detecting the "exactly one
// budget" shortcut.
func (p *RemoteProvider) ListBudgets(_ context.Context) ([]BudgetSummary, error) {
	summaries, err := p.client.Budget().GetBudgets()
	if err != nil {
		return nil, classifyProviderError(err)
	}
	out := make([]BudgetSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, BudgetSummary{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// IsStatic is always false for the remote provider
func (p *RemoteProvider) IsStatic() bool {
	return false
}

// classifyProviderError maps an api.Error into the sync package's typed
// error taxonomy, the way the caller-facing error should be understood.
func classifyProviderError(err error) error {
	apiErr, ok := err.(*api.Error)
	if !ok {
		return wrapError(KindProviderTransient, err, "provider request failed")
	}

	switch {
	case apiErr.IsAuthenticationError():
		return wrapError(KindProviderAuth, apiErr, "check token")
	case apiErr.IsRateLimit():
		return wrapError(KindProviderRateLimited, apiErr, "rate limited, retry after backoff")
	case apiErr.IsNotFound():
		return wrapError(KindProviderNotFound, apiErr, "resource not found")
	case apiErr.IsInternalServerError(), apiErr.IsServiceUnavailable():
		return wrapError(KindProviderTransient, apiErr, "provider server error")
	default:
		return wrapError(KindProviderTransient, apiErr, "provider request failed")
	}
}

// StaticProvider serves a pre-recorded full budget snapshot from disk.
// DeltaSync always returns an empty delta at the same cursor; writes
// through the write API must fail while this provider is active.
type StaticProvider struct {
	snapshot *Fetch
}

// NewStaticProvider loads a budget.Snapshot JSON file from path
func NewStaticProvider(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(KindProviderTransient, err, "reading static budget file %q", path)
	}

	var snap budget.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, wrapError(KindProviderTransient, err, "parsing static budget file %q", path)
	}

	return &StaticProvider{
		snapshot: &Fetch{Budget: snap.Budget, ServerKnowledge: snap.ServerKnowledge},
	}, nil
}

// FullSync returns the recorded snapshot
func (p *StaticProvider) FullSync(_ context.Context, _ string) (*Fetch, error) {
	return p.snapshot, nil
}

// DeltaSync returns an empty delta at the recorded cursor; a static
// snapshot never advances.
func (p *StaticProvider) DeltaSync(_ context.Context, _ string, _ uint64) (*Fetch, error) {
	return &Fetch{
		Budget:          &budget.Budget{ID: p.snapshot.Budget.ID, CurrencyFormat: p.snapshot.Budget.CurrencyFormat},
		ServerKnowledge: p.snapshot.ServerKnowledge,
	}, nil
}

// ListBudgets reports the single budget recorded in the snapshot
func (p *StaticProvider) ListBudgets(_ context.Context) ([]BudgetSummary, error) {
	if p.snapshot.Budget == nil {
		return nil, nil
	}
	return []BudgetSummary{{ID: p.snapshot.Budget.ID, Name: p.snapshot.Budget.Name}}, nil
}

// IsStatic is always true for the static-snapshot provider
func (p *StaticProvider) IsStatic() bool {
	return true
}
