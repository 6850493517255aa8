package sync

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/coltoneshaw/ynabsync/api/account"
	"github.com/coltoneshaw/ynabsync/api/category"
	"github.com/coltoneshaw/ynabsync/api/month"
	"github.com/coltoneshaw/ynabsync/api/payee"
	"github.com/coltoneshaw/ynabsync/api/transaction"
)

// DiffCounts tallies the four kinds of structural difference spec §4.4
// defines between a merged replica and a concurrently-fetched truth
// budget.
type DiffCounts struct {
	// New entities present in truth but missing from merged: implies a
	// merge bug or an external change between the two provider calls.
	New int `json:"new"`
	// Deleted entities present in merged but missing from truth: implies
	// a failure to apply a deletion.
	Deleted int `json:"deleted"`
	// Edited entities present in both with differing fields: implies a
	// stale field.
	Edited int `json:"edited"`
	// Perturbed entities whose position changed; downgraded severity
	// because array order is not an invariant.
	Perturbed int `json:"perturbed"`
}

func (d DiffCounts) total() int {
	return d.New + d.Deleted + d.Edited
}

// Differences is the structural diff of the accounts, payees, categories,
// transactions and scheduled-transactions arrays plus nested
// month.categories. Payee locations, category groups, sub-transactions,
// scheduled sub-transactions and month-level fields are not compared.
type Differences struct {
	Accounts                DiffCounts `json:"accounts"`
	Payees                  DiffCounts `json:"payees"`
	Categories              DiffCounts `json:"categories"`
	Transactions            DiffCounts `json:"transactions"`
	ScheduledTransactions   DiffCounts `json:"scheduled_transactions"`
	MonthCategories         DiffCounts `json:"month_categories"`
	ExpectedExternalChange  bool       `json:"expected_external_change"`
}

func (d Differences) total() int {
	return d.Accounts.total() + d.Payees.total() + d.Categories.total() +
		d.Transactions.total() + d.ScheduledTransactions.total() + d.MonthCategories.total()
}

func diffEntities[T any](merged, truth []T, id func(T) string) DiffCounts {
	mergedByID := make(map[string]T, len(merged))
	for i, m := range merged {
		mergedByID[id(m)] = merged[i]
	}
	truthByID := make(map[string]T, len(truth))
	for i, t := range truth {
		truthByID[id(t)] = truth[i]
	}

	var counts DiffCounts
	for k, t := range truthByID {
		m, ok := mergedByID[k]
		if !ok {
			counts.New++
			continue
		}
		if !reflect.DeepEqual(m, t) {
			counts.Edited++
		}
	}
	for k := range mergedByID {
		if _, ok := truthByID[k]; !ok {
			counts.Deleted++
		}
	}

	if len(merged) == len(truth) {
		for i := range merged {
			if i < len(truth) && id(merged[i]) != id(truth[i]) {
				counts.Perturbed++
			}
		}
	}
	return counts
}

func diffMonthCategories(merged, truth []*month.Month) DiffCounts {
	var total DiffCounts
	truthByKey := make(map[string][]*category.Category, len(truth))
	for _, m := range truth {
		truthByKey[monthKey(m)] = m.Categories
	}
	for _, m := range merged {
		tc, ok := truthByKey[monthKey(m)]
		if !ok {
			continue
		}
		c := diffEntities(m.Categories, tc, func(c *category.Category) string { return c.ID })
		total.New += c.New
		total.Deleted += c.Deleted
		total.Edited += c.Edited
		total.Perturbed += c.Perturbed
	}
	return total
}

// Detector compares a merged replica against a freshly fetched truth
// budget to validate merge correctness, capturing artifacts when drift is
// found and self-healing the in-memory replica.
type Detector struct {
	mu sync.Mutex

	enabled               bool
	checkIntervalSyncs    int
	checkIntervalMinutes  int
	sampleRate            int
	artifactRoot          string
	logger                *zerolog.Logger

	perBudget        map[string]*driftState
	totalDriftEvents int
}

type driftState struct {
	syncsSinceCheck int
	lastCheckAt     time.Time
	occurrences     int
}

// NewDetector builds a drift Detector writing artifacts under
// configRoot/drift-snapshots
func NewDetector(enabled bool, checkIntervalSyncs, checkIntervalMinutes, sampleRate int, configRoot string, logger *zerolog.Logger) *Detector {
	return &Detector{
		enabled:              enabled,
		checkIntervalSyncs:   checkIntervalSyncs,
		checkIntervalMinutes: checkIntervalMinutes,
		sampleRate:           sampleRate,
		artifactRoot:         filepath.Join(configRoot, "drift-snapshots"),
		logger:               logger,
		perBudget:            make(map[string]*driftState),
	}
}

// Due reports whether a drift check should run for budgetID now: at most
// once per N syncs OR at most once per M minutes, whichever triggers
// first. State is tracked per budget, not globally.
func (d *Detector) Due(budgetID string) bool {
	if !d.enabled {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.perBudget[budgetID]
	if !ok {
		st = &driftState{}
		d.perBudget[budgetID] = st
	}
	st.syncsSinceCheck++

	syncsDue := d.checkIntervalSyncs > 0 && st.syncsSinceCheck >= d.checkIntervalSyncs
	minutesDue := d.checkIntervalMinutes > 0 && time.Since(st.lastCheckAt) >= time.Duration(d.checkIntervalMinutes)*time.Minute
	if !syncsDue && !minutesDue {
		return false
	}

	st.syncsSinceCheck = 0
	st.lastCheckAt = time.Now()
	return true
}

// Check compares merged against a freshly fetched truth budget, persists
// artifacts, self-heals the replica, and warns via the logging
// collaborator when drift is confirmed. Drift is never surfaced to the
// caller as an error. previousFull is the last full-sync Fetch recorded
// for this budget, retained purely as an artifact for postmortem
// comparison; deltaFetch is the delta that produced merged's current
// state.
func (d *Detector) Check(merged *Replica, previousFull, deltaFetch, truth *Fetch) {
	diffs := Differences{}

	if truth.ServerKnowledge > merged.ServerKnowledge {
		diffs.ExpectedExternalChange = true
	}

	diffs.Accounts = diffEntities(merged.Accounts, truth.Budget.Accounts,
		func(a *account.Account) string { return a.ID })
	diffs.Payees = diffEntities(merged.Payees, truth.Budget.Payees,
		func(p *payee.Payee) string { return p.ID })
	diffs.Categories = diffEntities(merged.Categories, truth.Budget.Categories,
		func(c *category.Category) string { return c.ID })
	diffs.Transactions = diffEntities(merged.Transactions, truth.Budget.Transactions,
		func(t *transaction.Transaction) string { return t.ID })
	diffs.ScheduledTransactions = diffEntities(merged.ScheduledTransactions, truth.Budget.ScheduledTransactions,
		func(s *transaction.Scheduled) string { return s.ID })
	diffs.MonthCategories = diffMonthCategories(merged.Months, truth.Budget.Months)

	if diffs.total() == 0 {
		return
	}

	d.mu.Lock()
	st := d.perBudget[merged.BudgetID]
	if st != nil {
		st.occurrences++
	}
	occurrence := 1
	if st != nil {
		occurrence = st.occurrences
	}
	d.totalDriftEvents++
	sampleRate := d.sampleRate
	if sampleRate < 1 {
		sampleRate = 1
	}
	capture := d.totalDriftEvents%sampleRate == 0
	d.mu.Unlock()

	d.logger.Warn().
		Str("budget_id", merged.BudgetID).
		Int("accounts", diffs.Accounts.total()).
		Int("categories", diffs.Categories.total()).
		Int("transactions", diffs.Transactions.total()).
		Int("month_categories", diffs.MonthCategories.total()).
		Bool("expected_external_change", diffs.ExpectedExternalChange).
		Msg("drift detected between merged replica and truth budget")

	if capture {
		if err := d.writeArtifacts(merged.BudgetID, occurrence, previousFull, deltaFetch, merged, truth, diffs); err != nil {
			d.logger.Warn().Err(err).Str("budget_id", merged.BudgetID).Msg("failed to write drift artifacts")
		}
	}

	merged.mu.Lock()
	applyTruth(merged, truth)
	merged.mu.Unlock()
}

// applyTruth self-heals the replica by replacing its entity arrays with
// the truth budget's, used exclusively by the drift detector. Caller must
// hold merged.mu.
func applyTruth(merged *Replica, truth *Fetch) {
	b := truth.Budget
	merged.Accounts = b.Accounts
	merged.Payees = b.Payees
	merged.PayeeLocations = b.PayeeLocations
	merged.CategoryGroups = b.CategoryGroups
	merged.Categories = b.Categories
	merged.Months = b.Months
	merged.Transactions = b.Transactions
	merged.SubTransactions = b.SubTransactions
	merged.ScheduledTransactions = b.ScheduledTransactions
	merged.ScheduledSubTransactions = b.ScheduledSubTransactions
	merged.ServerKnowledge = truth.ServerKnowledge
	merged.rebuildIndexes()
}

func (d *Detector) writeArtifacts(budgetID string, occurrence int, previousFull, deltaResponse *Fetch, merged *Replica, fullResponse *Fetch, diffs Differences) error {
	dir := filepath.Join(d.artifactRoot, time.Now().UTC().Format("20060102T150405Z")+"-"+budgetID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	write := func(name string, v any) error {
		buf, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, name+".json"), buf, 0o644)
	}

	if err := write("previous-full", previousFull); err != nil {
		return err
	}
	if err := write("delta-response", deltaResponse); err != nil {
		return err
	}
	if err := write("merged-budget", merged); err != nil {
		return err
	}
	if err := write("full-response", fullResponse); err != nil {
		return err
	}
	if err := write("differences", diffs); err != nil {
		return err
	}
	summary := map[string]any{
		"budget_id":  budgetID,
		"occurrence": occurrence,
		"timestamp":  time.Now().UTC(),
		"total_diff": diffs.total(),
	}
	return write("summary", summary)
}
