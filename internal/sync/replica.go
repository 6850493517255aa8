package sync

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/coltoneshaw/ynabsync/api/account"
	"github.com/coltoneshaw/ynabsync/api/budget"
	"github.com/coltoneshaw/ynabsync/api/category"
	"github.com/coltoneshaw/ynabsync/api/month"
	"github.com/coltoneshaw/ynabsync/api/payee"
	"github.com/coltoneshaw/ynabsync/api/transaction"
)

// Replica is the in-memory image of a single budget. It is the
// authoritative view for the process between syncs, mutated only through
// merge operations; writes never touch it directly, they only flip
// NeedsSync.
type Replica struct {
	mu sync.RWMutex

	BudgetID       string
	Name           string
	CurrencyFormat *budget.CurrencyFormat

	Accounts                 []*account.Account
	Payees                    []*payee.Payee
	PayeeLocations            []*payee.Location
	CategoryGroups            []*category.Group
	Categories                []*category.Category
	Months                    []*month.Month
	Transactions              []*transaction.Transaction
	SubTransactions           []*transaction.SubTransaction
	ScheduledTransactions     []*transaction.Scheduled
	ScheduledSubTransactions  []*transaction.ScheduledSubTransaction

	ServerKnowledge uint64
	LastSyncedAt    time.Time
	NeedsSync       bool

	idx indexes
}

// indexes are entirely derived state, rebuilt wholesale from the entity
// arrays after every merge. They are never mutated incrementally.
type indexes struct {
	accountByID        map[string]*account.Account
	accountByLowerName map[string]*account.Account

	categoryByID                  map[string]*category.Category
	categoryByLowerName           map[string]*category.Category
	categoryGroupNameByCategoryID map[string]string

	payeeByID map[string]*payee.Payee

	subTransactionsByParentID          map[string][]*transaction.SubTransaction
	scheduledSubTransactionsByParentID map[string][]*transaction.ScheduledSubTransaction
}

// NewReplica creates an empty, never-synced replica for a budget id
func NewReplica(budgetID string) *Replica {
	return &Replica{BudgetID: budgetID}
}

// State describes where a replica sits in the Absent/Fresh/Stale/Dirty
// state machine of spec §4.8. Absent is represented by a nil *Replica,
// never a zero value held in the map.
type State string

const (
	StateFresh State = "fresh"
	StateStale State = "stale"
	StateDirty State = "dirty"
)

// state reports the replica's current lifecycle state given a sync
// interval. Must be called with at least a read lock held by the caller,
// or on a replica not yet shared.
func (r *Replica) state(syncInterval time.Duration) State {
	if r.NeedsSync {
		return StateDirty
	}
	if syncInterval > 0 && time.Since(r.LastSyncedAt) >= syncInterval {
		return StateStale
	}
	return StateFresh
}

// Apply merges a fetch (full or delta, the wire shape is identical) into
// the replica under exclusive lock and updates LastSyncedAt. A full fetch
// is simply a delta that happens to contain every entity and no deletion
// markers, so the same merge core handles both.
func (r *Replica) Apply(fetch *Fetch, logger *zerolog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mergeDelta(r, fetch, logger)
	r.LastSyncedAt = time.Now()
	r.NeedsSync = false
}

// State reports the replica's lifecycle state under the configured sync
// interval, taking the read lock.
func (r *Replica) State(syncInterval time.Duration) State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state(syncInterval)
}

// MarkDirty flips NeedsSync after a successful write, per spec: writes
// never mutate the replica directly, they only set this flag so the next
// read triggers a delta sync.
func (r *Replica) MarkDirty() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.NeedsSync = true
}

// rebuildIndexes recomputes every index map from the authoritative
// arrays. Name-based indexes lowercase the key; on duplicate lowercased
// names, last-write-wins.
func (r *Replica) rebuildIndexes() {
	idx := indexes{
		accountByID:                        make(map[string]*account.Account, len(r.Accounts)),
		accountByLowerName:                 make(map[string]*account.Account, len(r.Accounts)),
		categoryByID:                       make(map[string]*category.Category, len(r.Categories)),
		categoryByLowerName:                make(map[string]*category.Category, len(r.Categories)),
		categoryGroupNameByCategoryID:      make(map[string]string, len(r.Categories)),
		payeeByID:                          make(map[string]*payee.Payee, len(r.Payees)),
		subTransactionsByParentID:          make(map[string][]*transaction.SubTransaction),
		scheduledSubTransactionsByParentID: make(map[string][]*transaction.ScheduledSubTransaction),
	}

	for _, a := range r.Accounts {
		idx.accountByID[a.ID] = a
		idx.accountByLowerName[strings.ToLower(a.Name)] = a
	}

	groupNames := make(map[string]string, len(r.CategoryGroups))
	for _, g := range r.CategoryGroups {
		groupNames[g.ID] = g.Name
	}
	for _, c := range r.Categories {
		idx.categoryByID[c.ID] = c
		idx.categoryByLowerName[strings.ToLower(c.Name)] = c
		idx.categoryGroupNameByCategoryID[c.ID] = groupNames[c.CategoryGroupID]
	}

	for _, p := range r.Payees {
		idx.payeeByID[p.ID] = p
	}

	for _, st := range r.SubTransactions {
		if st.TransactionID == "" {
			// parent id missing: retained in the flat array, excluded from
			// parent lookups.
			continue
		}
		idx.subTransactionsByParentID[st.TransactionID] = append(idx.subTransactionsByParentID[st.TransactionID], st)
	}

	for _, sst := range r.ScheduledSubTransactions {
		if sst.ScheduledTransactionID == "" {
			continue
		}
		idx.scheduledSubTransactionsByParentID[sst.ScheduledTransactionID] = append(
			idx.scheduledSubTransactionsByParentID[sst.ScheduledTransactionID], sst)
	}

	r.idx = idx
}
