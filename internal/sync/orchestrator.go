package sync

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	ynab "github.com/coltoneshaw/ynabsync"
	"github.com/coltoneshaw/ynabsync/internal/syncconfig"
)

// ForceSync names an explicit sync mode a caller may request, overriding
// the orchestrator's own decision table.
type ForceSync string

const (
	ForceSyncNone  ForceSync = ""
	ForceSyncDelta ForceSync = "delta"
	ForceSyncFull  ForceSync = "full"
)

// Options controls how getLocalBudgetWithSync decides whether to sync
type Options struct {
	ForceSync ForceSync
}

// syncAction is the outcome of the decision table in spec §4.3
type syncAction int

const (
	actionNone syncAction = iota
	actionDelta
	actionFull
)

// Timings captures per-stage durations for every sync. The index rebuild
// runs inside Replica.Apply, so its time is counted in MergeDuration and
// IndexRebuildDuration is always zero.
type Timings struct {
	ProviderLatency     time.Duration
	MergeDuration       time.Duration
	IndexRebuildDuration time.Duration
	HistoryPersist      time.Duration
}

// Engine is the Sync Orchestrator: it owns one Replica per budget id,
// decides which kind of sync to perform, folds concurrent requests for
// the same budget into a single in-flight sync, and wires in the merge
// core, the drift detector and the history store.
type Engine struct {
	provider Provider
	// writer is the same API client the remote provider reads through,
	// used only by the write API. nil when running against a static
	// snapshot, where IsStatic already blocks every mutation.
	writer ynab.ClientServicer
	cfg    *syncconfig.Config
	logger *zerolog.Logger
	history *HistoryStore
	drift   *Detector

	mu            sync.Mutex
	replicas      map[string]*Replica
	lastFullFetch map[string]*Fetch

	sf singleflight.Group

	LastTimings sync.Map // budgetID -> Timings, for callers/tests that want observability
}

// NewEngine wires together a sync Engine from its collaborators. writer may
// be nil when the provider is static.
func NewEngine(provider Provider, writer ynab.ClientServicer, cfg *syncconfig.Config, logger *zerolog.Logger, history *HistoryStore, drift *Detector) *Engine {
	return &Engine{
		provider:      provider,
		writer:        writer,
		cfg:           cfg,
		logger:        logger,
		history:       history,
		drift:         drift,
		replicas:      make(map[string]*Replica),
		lastFullFetch: make(map[string]*Fetch),
	}
}

func (e *Engine) replicaFor(budgetID string) (*Replica, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.replicas[budgetID]
	return r, ok
}

// decide implements the first-match-wins decision table of spec §4.3
func decide(r *Replica, existed bool, opts Options, cfg *syncconfig.Config) syncAction {
	switch {
	case opts.ForceSync == ForceSyncFull:
		return actionFull
	case !existed:
		return actionFull
	case cfg.AlwaysFullSync:
		return actionFull
	case opts.ForceSync == ForceSyncDelta:
		return actionDelta
	case r.State(syncIntervalOf(cfg)) == StateDirty:
		return actionDelta
	case r.State(syncIntervalOf(cfg)) == StateStale:
		return actionDelta
	default:
		return actionNone
	}
}

func syncIntervalOf(cfg *syncconfig.Config) time.Duration {
	return time.Duration(cfg.SyncIntervalSeconds) * time.Second
}

// GetLocalBudgetWithSync resolves the replica for budgetID, synchronizing
// it first if the decision table calls for it. At most one sync per
// budget id is ever in flight; later callers await the same result.
func (e *Engine) GetLocalBudgetWithSync(ctx context.Context, budgetID string, opts Options) (*Replica, error) {
	r, existed := e.replicaFor(budgetID)
	if !existed {
		e.mu.Lock()
		r, existed = e.replicas[budgetID]
		if !existed {
			r = NewReplica(budgetID)
			e.replicas[budgetID] = r
		}
		e.mu.Unlock()
	}

	action := decide(r, existed, opts, e.cfg)
	if action == actionNone {
		return r, nil
	}

	_, err, _ := e.sf.Do(budgetID, func() (any, error) {
		return nil, e.runSync(ctx, budgetID, r, action)
	})
	if err != nil {
		return nil, err
	}

	if budgetID == LastUsedBudgetID && r.BudgetID != LastUsedBudgetID {
		// the provider resolved the sentinel to a real budget id on this
		// full sync; re-key the replica under its real id so subsequent
		// lookups (and KnownBudgetIDs) see it.
		e.mu.Lock()
		delete(e.replicas, LastUsedBudgetID)
		e.replicas[r.BudgetID] = r
		e.mu.Unlock()
	}
	return r, nil
}

func (e *Engine) runSync(ctx context.Context, budgetID string, r *Replica, action syncAction) error {
	var timings Timings

	providerStart := time.Now()
	var fetch *Fetch
	var err error
	var syncType SyncType
	var before uint64

	switch action {
	case actionFull:
		fetch, err = e.provider.FullSync(ctx, budgetID)
		syncType = SyncTypeFull
	case actionDelta:
		before = r.ServerKnowledge
		fetch, err = e.provider.DeltaSync(ctx, budgetID, before)
		syncType = SyncTypeDelta
	}
	timings.ProviderLatency = time.Since(providerStart)
	if err != nil {
		// Provider failures propagate; the existing replica is not touched.
		return err
	}

	mergeStart := time.Now()
	r.Apply(fetch, e.logger)
	if budgetID == LastUsedBudgetID && fetch.Budget != nil && fetch.Budget.ID != "" {
		r.BudgetID = fetch.Budget.ID
	}
	timings.MergeDuration = time.Since(mergeStart)
	timings.IndexRebuildDuration = 0 // folded into Apply/rebuildIndexes; measured jointly above

	// Persist history and drift bookkeeping under the replica's resolved
	// id, never the "last-used" sentinel, so the audit trail is keyed the
	// same way on every later call.
	effectiveID := r.BudgetID

	if syncType == SyncTypeFull {
		e.mu.Lock()
		e.lastFullFetch[effectiveID] = fetch
		e.mu.Unlock()
	}

	historyStart := time.Now()
	if histErr := e.history.Append(effectiveID, HistoryRecord{
		Type:                  syncType,
		Timestamp:             time.Now().UTC(),
		ServerKnowledgeBefore: before,
		ServerKnowledgeAfter:  fetch.ServerKnowledge,
		Response:              fetch.Budget,
	}); histErr != nil {
		e.logger.Warn().Err(histErr).Str("budget_id", effectiveID).Msg("failed to persist sync history")
	}
	timings.HistoryPersist = time.Since(historyStart)

	e.LastTimings.Store(effectiveID, timings)

	if syncType == SyncTypeDelta && e.drift.Due(effectiveID) {
		e.checkDrift(ctx, effectiveID, r, fetch)
	}

	return nil
}

func (e *Engine) checkDrift(ctx context.Context, budgetID string, r *Replica, deltaFetch *Fetch) {
	truth, err := e.provider.FullSync(ctx, budgetID)
	if err != nil {
		e.logger.Warn().Err(err).Str("budget_id", budgetID).Msg("drift check full fetch failed")
		return
	}

	e.mu.Lock()
	previousFull := e.lastFullFetch[budgetID]
	e.lastFullFetch[budgetID] = truth
	e.mu.Unlock()

	e.drift.Check(r, previousFull, deltaFetch, truth)
}

// MarkDirty flips the replica's NeedsSync flag; used by the write API
// after a confirmed mutation, per spec: writes never mutate the replica
// directly, they only set this flag so the next read resyncs first.
func (e *Engine) MarkDirty(budgetID string) {
	if r, ok := e.replicaFor(budgetID); ok {
		r.MarkDirty()
	}
}

// Clear discards the in-memory replica for budgetID, the only way a
// replica is ever removed.
func (e *Engine) Clear(budgetID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.replicas, budgetID)
	delete(e.lastFullFetch, budgetID)
}

// IsStatic reports whether the underlying provider is the static
// snapshot provider, used by the write API to reject mutations outright.
func (e *Engine) IsStatic() bool {
	return e.provider.IsStatic()
}

// KnownBudgetIDs returns every budget id with a replica currently held in
// memory, as listed by the list_budgets tool. The Budget Selector Resolver
// does not use it; it resolves against the provider's ListBudgets set.
func (e *Engine) KnownBudgetIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, 0, len(e.replicas))
	for id := range e.replicas {
		ids = append(ids, id)
	}
	return ids
}
