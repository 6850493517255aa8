package sync

import (
	"context"

	"github.com/coltoneshaw/ynabsync/api"
	"github.com/coltoneshaw/ynabsync/api/account"
	"github.com/coltoneshaw/ynabsync/api/category"
	"github.com/coltoneshaw/ynabsync/api/transaction"
)

// guardWrite enforces the two conditions that block every mutation before
// the provider is ever called: read-only mode and a static provider. Both
// are environment-controlled, per spec §4.8.
func (e *Engine) guardWrite(op string) error {
	if e.cfg.ReadOnly {
		return newError(KindReadOnlyBlocked, "read-only mode active, refusing %s", op)
	}
	if e.provider.IsStatic() {
		return newError(KindStaticModeWrite, "static-budget-file configured, refusing %s", op)
	}
	return nil
}

// TransactionInput is the caller-facing shape for creating or updating a
// transaction; selectors let callers address accounts/categories/payees by
// id or name instead of forcing raw ids everywhere.
type TransactionInput struct {
	Account  Selector
	Payee    Selector
	Category Selector
	Date     string
	Amount   int64
	Memo     string
	Cleared  transaction.ClearingStatus
	Approved bool
	ImportID string
}

func (in TransactionInput) toPayload(r *Replica, resolver *Resolver) (transaction.PayloadTransaction, error) {
	accountID, err := resolver.ResolveAccount(r, in.Account)
	if err != nil {
		return transaction.PayloadTransaction{}, err
	}
	payeeID, err := resolver.ResolvePayee(r, in.Payee)
	if err != nil {
		return transaction.PayloadTransaction{}, err
	}
	var categoryID string
	if !in.Category.empty() {
		categoryID, err = resolver.ResolveCategory(r, in.Category)
		if err != nil {
			return transaction.PayloadTransaction{}, err
		}
	}

	d, err := apiDate(in.Date)
	if err != nil {
		return transaction.PayloadTransaction{}, err
	}

	p := transaction.PayloadTransaction{
		AccountID: accountID,
		Date:      d,
		Amount:    in.Amount,
		Cleared:   in.Cleared,
		Approved:  in.Approved,
	}
	if payeeID != "" {
		p.PayeeID = &payeeID
	}
	if categoryID != "" {
		p.CategoryID = &categoryID
	}
	if in.Memo != "" {
		p.Memo = &in.Memo
	}
	if in.ImportID != "" {
		p.ImportID = &in.ImportID
	}
	return p, nil
}

// CreateTransaction creates a single transaction and marks the replica
// dirty on success.
func (e *Engine) CreateTransaction(ctx context.Context, budgetSel Selector, in TransactionInput, resolver *Resolver) (*transaction.Transaction, error) {
	if err := e.guardWrite("create transaction"); err != nil {
		return nil, err
	}
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}
	p, err := in.toPayload(r, resolver)
	if err != nil {
		return nil, err
	}

	summary, err := e.writer.Transaction().CreateTransaction(r.BudgetID, p)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	if err := validateCreateSummary(summary); err != nil {
		return nil, err
	}

	e.MarkDirty(r.BudgetID)
	return summary.Transaction, nil
}

// validateCreateSummary confirms a create-transaction response accounts for
// exactly the one transaction requested. A nil Transaction is only valid
// when the request resolved to a duplicate import id, per spec §4.8: the
// response still confirms the mutation, it just didn't create a new row.
func validateCreateSummary(summary *transaction.OperationSummary) error {
	if summary == nil {
		return newError(KindMutationValidation, "create transaction: provider returned no result")
	}
	if len(summary.TransactionIDs)+len(summary.DuplicateImportIDs) != 1 {
		return newError(KindMutationValidation,
			"create transaction: expected exactly one created or duplicate transaction, got %d created and %d duplicate",
			len(summary.TransactionIDs), len(summary.DuplicateImportIDs))
	}
	if summary.Transaction == nil && len(summary.DuplicateImportIDs) == 0 {
		return newError(KindMutationValidation, "create transaction: provider returned no transaction")
	}
	return nil
}

// UpdateTransaction replaces a transaction wholesale, per the provider's
// whole-replacement semantics, and validates the response id matches.
func (e *Engine) UpdateTransaction(ctx context.Context, budgetSel Selector, transactionID string, in TransactionInput, resolver *Resolver) (*transaction.Transaction, error) {
	if err := e.guardWrite("update transaction"); err != nil {
		return nil, err
	}
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}
	p, err := in.toPayload(r, resolver)
	if err != nil {
		return nil, err
	}
	p.ID = transactionID

	updated, err := e.writer.Transaction().UpdateTransaction(r.BudgetID, transactionID, p)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	if updated == nil || updated.ID != transactionID {
		return nil, newError(KindMutationValidation, "update transaction %q: provider returned mismatched id", transactionID)
	}

	e.MarkDirty(r.BudgetID)
	return updated, nil
}

// DeleteTransaction deletes a transaction and validates the returned id
// echoes the one requested, per spec §4.8.
func (e *Engine) DeleteTransaction(ctx context.Context, budgetSel Selector, transactionID string, resolver *Resolver) error {
	if err := e.guardWrite("delete transaction"); err != nil {
		return err
	}
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return err
	}

	deleted, err := e.writer.Transaction().DeleteTransaction(r.BudgetID, transactionID)
	if err != nil {
		return classifyProviderError(err)
	}
	if deleted == nil || deleted.ID != transactionID {
		return newError(KindMutationValidation, "delete transaction %q: provider returned mismatched id", transactionID)
	}

	e.MarkDirty(r.BudgetID)
	return nil
}

// ImportTransactions triggers a file-based-import resolution and checks
// only that the provider returned a result: import produces its ids
// server-side, so there is no requested count to compare the returned ids
// against.
func (e *Engine) ImportTransactions(ctx context.Context, budgetSel Selector, resolver *Resolver) (*transaction.ImportResult, error) {
	if err := e.guardWrite("import transactions"); err != nil {
		return nil, err
	}
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}

	result, err := e.writer.Transaction().ImportTransactions(r.BudgetID)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	if result == nil {
		return nil, newError(KindMutationValidation, "import transactions: provider returned no result")
	}

	e.MarkDirty(r.BudgetID)
	return result, nil
}

// SplitInput describes one sub-transaction of a split create.
type SplitInput struct {
	Category Selector
	Payee    Selector
	Amount   int64
	Memo     string
}

// CreateSplitTransaction creates a transaction whose amount is divided
// across two or more sub-transactions, validating the splits sum to the
// parent amount before ever calling the provider — a mismatch here is a
// caller bug, not something the provider can confirm away.
func (e *Engine) CreateSplitTransaction(ctx context.Context, budgetSel Selector, in TransactionInput, splits []SplitInput, resolver *Resolver) (*transaction.Transaction, error) {
	if err := e.guardWrite("create split transaction"); err != nil {
		return nil, err
	}
	if len(splits) < 2 {
		return nil, newError(KindMutationValidation, "split transaction requires at least two sub-transactions, got %d", len(splits))
	}

	var sum int64
	for _, s := range splits {
		sum += s.Amount
	}
	if sum != in.Amount {
		return nil, newError(KindMutationValidation, "split amounts (%d) do not sum to transaction amount (%d)", sum, in.Amount)
	}

	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}
	p, err := in.toPayload(r, resolver)
	if err != nil {
		return nil, err
	}
	p.CategoryID = nil // YNAB rejects a category id on the parent of a split

	p.SubTransactions = make([]transaction.PayloadSubTransaction, 0, len(splits))
	for _, s := range splits {
		categoryID, err := resolver.ResolveCategory(r, s.Category)
		if err != nil {
			return nil, err
		}
		payeeID, err := resolver.ResolvePayee(r, s.Payee)
		if err != nil {
			return nil, err
		}
		sub := transaction.PayloadSubTransaction{Amount: s.Amount, CategoryID: &categoryID}
		if payeeID != "" {
			sub.PayeeID = &payeeID
		}
		if s.Memo != "" {
			sub.Memo = &s.Memo
		}
		p.SubTransactions = append(p.SubTransactions, sub)
	}

	summary, err := e.writer.Transaction().CreateTransaction(r.BudgetID, p)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	if err := validateCreateSummary(summary); err != nil {
		return nil, err
	}
	if summary.Transaction != nil {
		if got := len(summary.Transaction.SubTransactions); got != len(splits) {
			return nil, newError(KindMutationValidation,
				"create split transaction: requested %d splits, provider returned %d", len(splits), got)
		}
	}

	e.MarkDirty(r.BudgetID)
	return summary.Transaction, nil
}

// CreateAccount creates a new account and validates the returned name and
// type match what was requested, per spec §4.8.
func (e *Engine) CreateAccount(ctx context.Context, budgetSel Selector, name string, accountType account.Type, openingBalance int64, resolver *Resolver) (*account.Account, error) {
	if err := e.guardWrite("create account"); err != nil {
		return nil, err
	}
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}

	created, err := e.writer.Account().CreateAccount(r.BudgetID, account.PayloadAccount{
		Name:    name,
		Type:    accountType,
		Balance: openingBalance,
	})
	if err != nil {
		return nil, classifyProviderError(err)
	}
	if created == nil || created.Name != name || created.Type != accountType {
		return nil, newError(KindMutationValidation, "create account %q: provider returned mismatched name or type", name)
	}

	e.MarkDirty(r.BudgetID)
	return created, nil
}

// UpdateCategoryBudgeted sets a category's budgeted amount for the given
// month ("current" is accepted verbatim, matching the provider's own
// current-month shortcut).
func (e *Engine) UpdateCategoryBudgeted(ctx context.Context, budgetSel Selector, categorySel Selector, month string, budgetedMilliunits int64, resolver *Resolver) (*category.Category, error) {
	if err := e.guardWrite("update category budgeted amount"); err != nil {
		return nil, err
	}
	r, err := e.sync(ctx, budgetSel, resolver)
	if err != nil {
		return nil, err
	}
	categoryID, err := resolver.ResolveCategory(r, categorySel)
	if err != nil {
		return nil, err
	}

	var updated *category.Category
	if month == "" || month == "current" {
		updated, err = e.writer.Category().UpdateCategoryForCurrentMonth(r.BudgetID, categoryID,
			category.PayloadMonthCategory{Budgeted: budgetedMilliunits})
	} else {
		var d api.Date
		d, err = apiDate(month)
		if err != nil {
			return nil, err
		}
		updated, err = e.writer.Category().UpdateCategoryForMonth(r.BudgetID, categoryID, d,
			category.PayloadMonthCategory{Budgeted: budgetedMilliunits})
	}
	if err != nil {
		return nil, classifyProviderError(err)
	}
	if updated == nil || updated.ID != categoryID || updated.Budgeted != budgetedMilliunits {
		return nil, newError(KindMutationValidation, "update category %q budgeted amount: provider returned mismatched id or amount", categoryID)
	}

	e.MarkDirty(r.BudgetID)
	return updated, nil
}

func apiDate(s string) (api.Date, error) {
	d, err := api.DateFromString(s)
	if err != nil {
		return api.Date{}, wrapError(KindMutationValidation, err, "invalid date %q", s)
	}
	return d, nil
}
