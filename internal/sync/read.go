package sync

import (
	"context"
	"strings"

	"github.com/coltoneshaw/ynabsync/api/account"
	"github.com/coltoneshaw/ynabsync/api/category"
	"github.com/coltoneshaw/ynabsync/api/month"
	"github.com/coltoneshaw/ynabsync/api/payee"
	"github.com/coltoneshaw/ynabsync/api/transaction"
)

// AccountView is an account enriched for display
type AccountView struct {
	*account.Account
	BalanceDisplay         currencyAmount `json:"balance_display"`
	ClearedBalanceDisplay  currencyAmount `json:"cleared_balance_display"`
	UnclearedBalanceDisplay currencyAmount `json:"uncleared_balance_display"`
}

// CategoryView is a category enriched with its group's name
type CategoryView struct {
	*category.Category
	CategoryGroupName string         `json:"category_group_name"`
	BudgetedDisplay    currencyAmount `json:"budgeted_display"`
	ActivityDisplay    currencyAmount `json:"activity_display"`
	BalanceDisplay     currencyAmount `json:"balance_display"`
}

// PayeeView is a payee as read back, unenriched beyond its own fields
type PayeeView struct {
	*payee.Payee
}

// SubTransactionView is a split enriched with payee/category names
type SubTransactionView struct {
	*transaction.SubTransaction
	PayeeName      string         `json:"payee_name"`
	CategoryName   string         `json:"category_name"`
	AmountDisplay  currencyAmount `json:"amount_display"`
}

// TransactionView is a transaction enriched with every joined name and its
// splits, per spec §4.7.
type TransactionView struct {
	*transaction.Transaction
	AccountName        string               `json:"account_name"`
	PayeeName          string               `json:"payee_name"`
	CategoryName       string               `json:"category_name"`
	CategoryGroupName  string               `json:"category_group_name"`
	AmountDisplay      currencyAmount       `json:"amount_display"`
	SubTransactions    []SubTransactionView `json:"sub_transactions,omitempty"`
}

// ScheduledView is a scheduled transaction enriched the same way as a
// regular transaction.
type ScheduledView struct {
	*transaction.Scheduled
	AccountName       string                        `json:"account_name"`
	PayeeName         string                        `json:"payee_name"`
	CategoryName      string                        `json:"category_name"`
	CategoryGroupName string                        `json:"category_group_name"`
	AmountDisplay     currencyAmount                `json:"amount_display"`
	SubTransactions   []ScheduledSubTransactionView `json:"sub_transactions,omitempty"`
}

// ScheduledSubTransactionView is a scheduled split enriched with names
type ScheduledSubTransactionView struct {
	*transaction.ScheduledSubTransaction
	PayeeName     string         `json:"payee_name"`
	CategoryName  string         `json:"category_name"`
	AmountDisplay currencyAmount `json:"amount_display"`
}

// MonthView is a month with its full merged category snapshot
type MonthView struct {
	*month.Month
	Categories          []CategoryView `json:"categories"`
	ToBeBudgetedDisplay *currencyAmount `json:"to_be_budgeted_display,omitempty"`
}

// sync ensures the replica is up to date before any read, per spec §4.7
// step 2: "ensure synced".
func (e *Engine) sync(ctx context.Context, budgetSel Selector, resolver *Resolver) (*Replica, error) {
	known, err := e.provider.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	budgetID, err := resolver.ResolveBudget(budgetSel, known)
	if err != nil {
		return nil, err
	}
	r, err := e.GetLocalBudgetWithSync(ctx, budgetID, Options{})
	if err != nil {
		return nil, err
	}
	resolver.lastBudgetID = r.BudgetID
	return r, nil
}

func (r *Replica) payeeName(id string) string {
	if id == "" {
		return ""
	}
	if p, ok := r.idx.payeeByID[id]; ok {
		return p.Name
	}
	return ""
}

func (r *Replica) categoryName(id string) string {
	if id == "" {
		return ""
	}
	if c, ok := r.idx.categoryByID[id]; ok {
		return c.Name
	}
	return ""
}

func (r *Replica) categoryGroupName(id string) string {
	if id == "" {
		return ""
	}
	return r.idx.categoryGroupNameByCategoryID[id]
}

func (r *Replica) accountName(id string) string {
	if id == "" {
		return ""
	}
	if a, ok := r.idx.accountByID[id]; ok {
		return a.Name
	}
	return ""
}

// ReadAccounts lists every account in the budget
func (e *Engine) ReadAccounts(ctx context.Context, budgetSel Selector, resolver *Resolver) ([]AccountView, error) {
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]AccountView, 0, len(r.Accounts))
	for _, a := range r.Accounts {
		views = append(views, AccountView{
			Account:                 a,
			BalanceDisplay:          currencyOf(a.Balance, r.CurrencyFormat),
			ClearedBalanceDisplay:   currencyOf(a.ClearedBalance, r.CurrencyFormat),
			UnclearedBalanceDisplay: currencyOf(a.UnclearedBalance, r.CurrencyFormat),
		})
	}
	return views, nil
}

// ReadCategories lists every category in the budget, enriched with its
// group name.
func (e *Engine) ReadCategories(ctx context.Context, budgetSel Selector, resolver *Resolver) ([]CategoryView, error) {
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return viewCategories(r, r.Categories), nil
}

func viewCategories(r *Replica, categories []*category.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, CategoryView{
			Category:          c,
			CategoryGroupName: r.categoryGroupName(c.ID),
			BudgetedDisplay:   currencyOf(c.Budgeted, r.CurrencyFormat),
			ActivityDisplay:   currencyOf(c.Activity, r.CurrencyFormat),
			BalanceDisplay:    currencyOf(c.Balance, r.CurrencyFormat),
		})
	}
	return views
}

// ReadPayees lists every payee in the budget
func (e *Engine) ReadPayees(ctx context.Context, budgetSel Selector, resolver *Resolver) ([]PayeeView, error) {
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]PayeeView, 0, len(r.Payees))
	for _, p := range r.Payees {
		views = append(views, PayeeView{Payee: p})
	}
	return views, nil
}

func (r *Replica) viewTransaction(t *transaction.Transaction) TransactionView {
	v := TransactionView{
		Transaction:       t,
		AccountName:       r.accountName(t.AccountID),
		PayeeName:         r.payeeName(t.PayeeID),
		CategoryName:      r.categoryName(t.CategoryID),
		CategoryGroupName: r.categoryGroupName(t.CategoryID),
		AmountDisplay:     currencyOf(t.Amount, r.CurrencyFormat),
	}
	for _, st := range r.idx.subTransactionsByParentID[t.ID] {
		v.SubTransactions = append(v.SubTransactions, SubTransactionView{
			SubTransaction: st,
			PayeeName:      r.payeeName(st.PayeeID),
			CategoryName:   r.categoryName(st.CategoryID),
			AmountDisplay:  currencyOf(st.Amount, r.CurrencyFormat),
		})
	}
	return v
}

// ReadTransactions lists every transaction in the budget, optionally
// filtered to a single account, joining splits onto their parent via the
// parent-id index per spec §4.7 step 4.
func (e *Engine) ReadTransactions(ctx context.Context, budgetSel Selector, accountSel *Selector, resolver *Resolver) ([]TransactionView, error) {
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}

	var accountID string
	if accountSel != nil && !accountSel.empty() {
		accountID, err = resolver.ResolveAccount(r, *accountSel)
		if err != nil {
			return nil, err
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]TransactionView, 0, len(r.Transactions))
	for _, t := range r.Transactions {
		if accountID != "" && t.AccountID != accountID {
			continue
		}
		views = append(views, r.viewTransaction(t))
	}
	return views, nil
}

// ReadScheduledTransactions lists every scheduled transaction, joining
// scheduled splits the same way ReadTransactions does for regular ones.
func (e *Engine) ReadScheduledTransactions(ctx context.Context, budgetSel Selector, resolver *Resolver) ([]ScheduledView, error) {
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]ScheduledView, 0, len(r.ScheduledTransactions))
	for _, s := range r.ScheduledTransactions {
		v := ScheduledView{
			Scheduled:         s,
			AccountName:       r.accountName(s.AccountID),
			PayeeName:         r.payeeName(s.PayeeID),
			CategoryName:      r.categoryName(s.CategoryID),
			CategoryGroupName: r.categoryGroupName(s.CategoryID),
			AmountDisplay:     currencyOf(s.Amount, r.CurrencyFormat),
		}
		for _, sst := range r.idx.scheduledSubTransactionsByParentID[s.ID] {
			v.SubTransactions = append(v.SubTransactions, ScheduledSubTransactionView{
				ScheduledSubTransaction: sst,
				PayeeName:               r.payeeName(sst.PayeeID),
				CategoryName:            r.categoryName(sst.CategoryID),
				AmountDisplay:           currencyOf(sst.Amount, r.CurrencyFormat),
			})
		}
		views = append(views, v)
	}
	return views, nil
}

// ReadMonths lists every month known to the replica, each with its full
// merged category snapshot.
func (e *Engine) ReadMonths(ctx context.Context, budgetSel Selector, resolver *Resolver) ([]MonthView, error) {
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]MonthView, 0, len(r.Months))
	for _, m := range r.Months {
		views = append(views, MonthView{
			Month:      m,
			Categories: viewCategories(r, m.Categories),
		})
	}
	return views, nil
}

// ReadMonth returns a single month by its "YYYY-MM-01" key, per spec §4.7
// step 5, or a SelectorUnresolved error when no such month exists yet.
func (e *Engine) ReadMonth(ctx context.Context, budgetSel Selector, monthKeyStr string, resolver *Resolver) (*MonthView, error) {
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := strings.TrimSpace(monthKeyStr)
	for _, m := range r.Months {
		if monthKey(m) == want {
			v := MonthView{Month: m, Categories: viewCategories(r, m.Categories)}
			return &v, nil
		}
	}
	return nil, newError(KindSelectorUnresolved, "no month %q in replica", want)
}
