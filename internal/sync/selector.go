package sync

import "strings"

// Selector names exactly one of an id or a name. It is how every read and
// write API operation lets a caller address a budget, account, category or
// payee: callers that already know the id skip the lookup, callers that
// only know a human name get it resolved against the replica's indexes.
type Selector struct {
	ID   string
	Name string
}

func (s Selector) empty() bool {
	return s.ID == "" && s.Name == ""
}

func (s Selector) ambiguous() bool {
	return s.ID != "" && s.Name != ""
}

// Resolver resolves Selectors to concrete ids against a Replica's indexes,
// remembering the last id it resolved for a given kind so a subsequent
// empty Selector reuses it. One Resolver is shared across every call for
// a given MCP session; it is not safe to share across unrelated sessions
// since "last resolved" is a per-caller convenience, not global state.
type Resolver struct {
	lastBudgetID   string
	lastAccountID  string
	lastCategoryID string
}

// NewResolver returns a Resolver with no memoized defaults yet
func NewResolver() *Resolver {
	return &Resolver{}
}

// availableBudgetIDs formats the known set for an error message
func availableBudgetIDs(known []BudgetSummary) string {
	ids := make([]string, 0, len(known))
	for _, b := range known {
		ids = append(ids, b.ID)
	}
	return strings.Join(ids, ", ")
}

func availableBudgetNames(known []BudgetSummary) string {
	names := make([]string, 0, len(known))
	for _, b := range known {
		names = append(names, b.Name)
	}
	return strings.Join(names, ", ")
}

// ResolveBudget picks a budget id against the remote budget set known
// gives (the authoritative source: every budget the provider can see, not
// just the ones already synced into a replica). An empty Selector falls
// back to the memoized last-resolved budget, and if none has ever been
// resolved, to the sole budget when the remote reports exactly one. More
// than one candidate with no way to disambiguate is an error, not a
// silent guess.
func (res *Resolver) ResolveBudget(sel Selector, known []BudgetSummary) (string, error) {
	if sel.ambiguous() {
		return "", newError(KindSelectorAmbiguous, "budget selector must specify exactly one of id or name, got both")
	}

	if sel.ID != "" {
		for _, b := range known {
			if b.ID == sel.ID {
				res.lastBudgetID = b.ID
				return b.ID, nil
			}
		}
		return "", newError(KindSelectorUnresolved, "no budget with id %q; available: %s", sel.ID, availableBudgetIDs(known))
	}

	if sel.Name != "" {
		lower := strings.ToLower(sel.Name)
		var match string
		matches := 0
		for _, b := range known {
			if strings.ToLower(b.Name) == lower {
				match = b.ID
				matches++
			}
		}
		switch matches {
		case 0:
			return "", newError(KindSelectorUnresolved, "no budget with name %q; available: %s", sel.Name, availableBudgetNames(known))
		case 1:
			res.lastBudgetID = match
			return match, nil
		default:
			return "", newError(KindSelectorAmbiguous, "more than one budget named %q", sel.Name)
		}
	}

	if res.lastBudgetID != "" {
		return res.lastBudgetID, nil
	}
	if len(known) == 1 {
		res.lastBudgetID = known[0].ID
		return known[0].ID, nil
	}
	if len(known) == 0 {
		// The remote reports no budgets at all (or hasn't been asked yet,
		// e.g. the static provider with an empty snapshot): fall back to
		// YNAB's own "last used budget" shortcut rather than erroring. The
		// engine resolves this sentinel on the first full sync and re-keys
		// the replica under the real id it gets back.
		return LastUsedBudgetID, nil
	}
	return "", newError(KindSelectorAmbiguous, "multiple budgets; specify one")
}

// ResolveAccount resolves a Selector to an account id against r's indexes.
func (res *Resolver) ResolveAccount(r *Replica, sel Selector) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sel.ambiguous() {
		return "", newError(KindSelectorAmbiguous, "account selector must specify exactly one of id or name, got both")
	}

	if sel.ID != "" {
		if a, ok := r.idx.accountByID[sel.ID]; ok {
			res.lastAccountID = a.ID
			return a.ID, nil
		}
		return "", newError(KindSelectorUnresolved, "no account with id %q", sel.ID)
	}

	if sel.Name != "" {
		if a, ok := r.idx.accountByLowerName[strings.ToLower(sel.Name)]; ok {
			res.lastAccountID = a.ID
			return a.ID, nil
		}
		return "", newError(KindSelectorUnresolved, "no account named %q", sel.Name)
	}

	if res.lastAccountID != "" {
		if _, ok := r.idx.accountByID[res.lastAccountID]; ok {
			return res.lastAccountID, nil
		}
	}
	return "", newError(KindSelectorUnresolved, "no account selector given and no prior account resolved")
}

// ResolveCategory resolves a Selector to a category id against r's indexes.
func (res *Resolver) ResolveCategory(r *Replica, sel Selector) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sel.ambiguous() {
		return "", newError(KindSelectorAmbiguous, "category selector must specify exactly one of id or name, got both")
	}

	if sel.ID != "" {
		if c, ok := r.idx.categoryByID[sel.ID]; ok {
			res.lastCategoryID = c.ID
			return c.ID, nil
		}
		return "", newError(KindSelectorUnresolved, "no category with id %q", sel.ID)
	}

	if sel.Name != "" {
		if c, ok := r.idx.categoryByLowerName[strings.ToLower(sel.Name)]; ok {
			res.lastCategoryID = c.ID
			return c.ID, nil
		}
		return "", newError(KindSelectorUnresolved, "no category named %q", sel.Name)
	}

	if res.lastCategoryID != "" {
		if _, ok := r.idx.categoryByID[res.lastCategoryID]; ok {
			return res.lastCategoryID, nil
		}
	}
	return "", newError(KindSelectorUnresolved, "no category selector given and no prior category resolved")
}

// ResolvePayee resolves a Selector to a payee id against r's indexes.
// Unlike accounts and categories, an entirely empty Selector is valid here
// and resolves to "" (no payee), since many transactions legitimately have
// none; it is not treated as unresolved.
func (res *Resolver) ResolvePayee(r *Replica, sel Selector) (string, error) {
	if sel.empty() {
		return "", nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if sel.ambiguous() {
		return "", newError(KindSelectorAmbiguous, "payee selector must specify exactly one of id or name, got both")
	}

	if sel.ID != "" {
		if p, ok := r.idx.payeeByID[sel.ID]; ok {
			return p.ID, nil
		}
		return "", newError(KindSelectorUnresolved, "no payee with id %q", sel.ID)
	}

	lower := strings.ToLower(sel.Name)
	for _, p := range r.Payees {
		if strings.ToLower(p.Name) == lower {
			return p.ID, nil
		}
	}
	return "", newError(KindSelectorUnresolved, "no payee named %q", sel.Name)
}
