package sync

import (
	"github.com/rs/zerolog"

	"github.com/coltoneshaw/ynabsync/api/account"
	"github.com/coltoneshaw/ynabsync/api/category"
	"github.com/coltoneshaw/ynabsync/api/month"
	"github.com/coltoneshaw/ynabsync/api/payee"
	"github.com/coltoneshaw/ynabsync/api/transaction"
)

// mergeEntityArray realizes the polymorphism spec §9 describes abstractly:
// "for every array whose elements have an id field and an optional
// deleted flag, apply upsert-or-delete keyed by id." Go generics give us
// one function instead of one per entity type; id/deleted are supplied
// because the entity structs expose plain fields, not an interface.
//
// Order of the result is unspecified; callers must not depend on it since
// indexes are rebuilt from scratch after every merge.
func mergeEntityArray[T any](existing, delta []T, id func(T) string, deleted func(T) bool) []T {
	byID := make(map[string]T, len(existing)+len(delta))
	order := make([]string, 0, len(existing)+len(delta))

	for _, e := range existing {
		k := id(e)
		if _, seen := byID[k]; !seen {
			order = append(order, k)
		}
		byID[k] = e
	}

	for _, d := range delta {
		k := id(d)
		if deleted(d) {
			delete(byID, k)
			continue
		}
		if _, seen := byID[k]; !seen {
			order = append(order, k)
		}
		byID[k] = d
	}

	out := make([]T, 0, len(byID))
	for _, k := range order {
		if v, ok := byID[k]; ok {
			out = append(out, v)
		}
	}
	return out
}

// mergeMonths applies the month/categories nested merge: a delta month's
// scalar attributes replace the existing month wholesale, but its
// categories are id-merged against the existing month's categories rather
// than replaced. This is the single most common source of data loss in
// naive merges and is non-negotiable per spec §9.
func mergeMonths(existing, delta []*month.Month) []*month.Month {
	existingByKey := make(map[string]*month.Month, len(existing))
	order := make([]string, 0, len(existing)+len(delta))
	for _, m := range existing {
		k := monthKey(m)
		existingByKey[k] = m
		order = append(order, k)
	}

	merged := make(map[string]*month.Month, len(existingByKey))
	for k, m := range existingByKey {
		merged[k] = m
	}

	for _, dm := range delta {
		k := monthKey(dm)
		prev, ok := merged[k]
		if !ok {
			merged[k] = dm
			order = append(order, k)
			continue
		}

		next := *dm // scalar attributes come from the delta
		next.Categories = mergeEntityArray(prev.Categories, dm.Categories,
			func(c *category.Category) string { return c.ID },
			func(c *category.Category) bool { return c.Deleted },
		)
		merged[k] = &next
	}

	out := make([]*month.Month, 0, len(merged))
	seen := make(map[string]bool, len(merged))
	for _, k := range order {
		if seen[k] {
			continue
		}
		seen[k] = true
		if m, ok := merged[k]; ok {
			out = append(out, m)
		}
	}
	return out
}

func monthKey(m *month.Month) string {
	return m.Month.Time.Format("2006-01-02")
}

// mergeDelta orchestrates per-array merges of a delta fetch into the
// replica, then rebuilds every index. It never returns an error: merge
// and index-rebuild degrade (skip, log) rather than throw, per spec §7's
// propagation policy. A delta whose serverKnowledge has moved backwards
// is logged as a MergeInvariantViolation and skipped outright; the
// replica is left untouched.
func mergeDelta(r *Replica, fetch *Fetch, logger *zerolog.Logger) {
	if fetch.ServerKnowledge < r.ServerKnowledge {
		logger.Warn().
			Str("budget_id", r.BudgetID).
			Uint64("current_server_knowledge", r.ServerKnowledge).
			Uint64("delta_server_knowledge", fetch.ServerKnowledge).
			Msg("merge invariant violation: cursor moved backwards, delta skipped")
		return
	}

	b := fetch.Budget
	if b == nil {
		r.ServerKnowledge = fetch.ServerKnowledge
		return
	}

	if b.Name != "" {
		r.Name = b.Name
	}
	if b.CurrencyFormat != nil {
		r.CurrencyFormat = b.CurrencyFormat
	}

	r.Accounts = mergeEntityArray(r.Accounts, b.Accounts,
		func(a *account.Account) string { return a.ID },
		func(a *account.Account) bool { return a.Deleted })
	r.Payees = mergeEntityArray(r.Payees, b.Payees,
		func(p *payee.Payee) string { return p.ID },
		func(p *payee.Payee) bool { return p.Deleted })
	r.PayeeLocations = mergeEntityArray(r.PayeeLocations, b.PayeeLocations,
		func(l *payee.Location) string { return l.ID },
		func(l *payee.Location) bool { return l.Deleted })
	r.CategoryGroups = mergeEntityArray(r.CategoryGroups, b.CategoryGroups,
		func(g *category.Group) string { return g.ID },
		func(g *category.Group) bool { return g.Deleted })
	r.Categories = mergeEntityArray(r.Categories, b.Categories,
		func(c *category.Category) string { return c.ID },
		func(c *category.Category) bool { return c.Deleted })
	r.Transactions = mergeEntityArray(r.Transactions, b.Transactions,
		func(t *transaction.Transaction) string { return t.ID },
		func(t *transaction.Transaction) bool { return t.Deleted })
	r.SubTransactions = mergeEntityArray(r.SubTransactions, b.SubTransactions,
		func(s *transaction.SubTransaction) string { return s.ID },
		func(s *transaction.SubTransaction) bool { return s.Deleted })
	r.ScheduledTransactions = mergeEntityArray(r.ScheduledTransactions, b.ScheduledTransactions,
		func(s *transaction.Scheduled) string { return s.ID },
		func(s *transaction.Scheduled) bool { return s.Deleted })
	r.ScheduledSubTransactions = mergeEntityArray(r.ScheduledSubTransactions, b.ScheduledSubTransactions,
		func(s *transaction.ScheduledSubTransaction) string { return s.ID },
		func(s *transaction.ScheduledSubTransaction) bool { return s.Deleted })
	r.Months = mergeMonths(r.Months, b.Months)

	r.ServerKnowledge = fetch.ServerKnowledge
	r.rebuildIndexes()
}
