// Package transaction implements transaction entities and services
package transaction // import "github.com/coltoneshaw/ynabsync/api/transaction"

import "github.com/coltoneshaw/ynabsync/api"

// Transaction represents a transaction for a budget
type Transaction struct {
	ID       string         `json:"id"`
	Date     api.Date       `json:"date"`
	Amount   int64          `json:"amount"`
	Memo     *string        `json:"memo"`
	Cleared  ClearingStatus `json:"cleared"`
	Approved bool           `json:"approved"`

	FlagColor   *FlagColor `json:"flag_color"`
	AccountID   string     `json:"account_id"`
	AccountName string     `json:"account_name"`
	PayeeID     *string    `json:"payee_id"`
	PayeeName   *string    `json:"payee_name"`
	CategoryID  *string    `json:"category_id"`
	CategoryName *string   `json:"category_name"`

	// TransferAccountID if the transaction is a transfer, the account ID the
	// transfer is to/from
	TransferAccountID *string `json:"transfer_account_id"`
	// TransferTransactionID if the transaction is a transfer, the ID of the
	// "opposite" transaction on the other account
	TransferTransactionID *string `json:"transfer_transaction_id"`
	// MatchedTransactionID if the transaction was imported, the ID of the
	// matched transaction it was reconciled against, otherwise null
	MatchedTransactionID *string `json:"matched_transaction_id"`
	// ImportID a unique, import-provided identifier used to avoid duplicate imports
	ImportID *string `json:"import_id"`
	// ImportPayeeName the payee name as imported, before renaming rules applied
	ImportPayeeName *string `json:"import_payee_name"`
	// ImportPayeeNameOriginal the original, unmodified payee name as imported
	ImportPayeeNameOriginal *string `json:"import_payee_name_original"`
	// DebtTransactionType if the transaction relates to a debt account, the type
	// of debt transaction it represents
	DebtTransactionType *DebtTransactionType `json:"debt_transaction_type"`

	// Deleted deleted transactions will only be included in delta requests
	Deleted bool `json:"deleted"`

	SubTransactions []*SubTransaction `json:"subtransactions"`
}

// SubTransaction represents a sub-transaction of a split transaction
type SubTransaction struct {
	ID            string  `json:"id"`
	TransactionID string  `json:"transaction_id"`
	Amount        int64   `json:"amount"`
	Memo          *string `json:"memo"`
	PayeeID       *string `json:"payee_id"`
	PayeeName     *string `json:"payee_name"`
	CategoryID    *string `json:"category_id"`
	CategoryName  *string `json:"category_name"`

	TransferAccountID     *string `json:"transfer_account_id"`
	TransferTransactionID *string `json:"transfer_transaction_id"`

	Deleted bool `json:"deleted"`
}

// Scheduled represents a scheduled transaction for a budget
type Scheduled struct {
	ID        string             `json:"id"`
	DateFirst api.Date           `json:"date_first"`
	DateNext  api.Date           `json:"date_next"`
	Frequency ScheduledFrequency `json:"frequency"`
	Amount    int64              `json:"amount"`
	Memo      *string            `json:"memo"`
	FlagColor *FlagColor         `json:"flag_color"`

	AccountID    string  `json:"account_id"`
	AccountName  string  `json:"account_name"`
	PayeeID      *string `json:"payee_id"`
	PayeeName    *string `json:"payee_name"`
	CategoryID   *string `json:"category_id"`
	CategoryName *string `json:"category_name"`

	TransferAccountID *string `json:"transfer_account_id"`

	// Deleted deleted scheduled transactions will only be included in delta requests
	Deleted bool `json:"deleted"`

	SubTransactions []*ScheduledSubTransaction `json:"subtransactions"`
}

// ScheduledSubTransaction represents a sub-transaction of a split scheduled transaction
type ScheduledSubTransaction struct {
	ID                     string  `json:"id"`
	ScheduledTransactionID string  `json:"scheduled_transaction_id"`
	Amount                 int64   `json:"amount"`
	Memo                   *string `json:"memo"`
	PayeeID                *string `json:"payee_id"`
	PayeeName              *string `json:"payee_name"`
	CategoryID             *string `json:"category_id"`
	CategoryName           *string `json:"category_name"`
	TransferAccountID      *string `json:"transfer_account_id"`

	Deleted bool `json:"deleted"`
}

// Hybrid represents a transaction or sub-transaction returned by the
// category/payee transaction listing endpoints, which mix both kinds
// in a single flat result
type Hybrid struct {
	Type                Type           `json:"type"`
	ID                  string         `json:"id"`
	ParentTransactionID *string        `json:"parent_transaction_id"`
	Date                api.Date       `json:"date"`
	Amount              int64          `json:"amount"`
	Memo                *string        `json:"memo"`
	Cleared             ClearingStatus `json:"cleared"`
	Approved            bool           `json:"approved"`
	FlagColor           *FlagColor     `json:"flag_color"`
	AccountID           string         `json:"account_id"`
	AccountName         string         `json:"account_name"`
	PayeeID             *string        `json:"payee_id"`
	PayeeName           *string        `json:"payee_name"`
	CategoryID          *string        `json:"category_id"`
	CategoryName        *string        `json:"category_name"`
	TransferAccountID   *string        `json:"transfer_account_id"`
	ImportID            *string        `json:"import_id"`
	Deleted             bool           `json:"deleted"`
}

// OperationSummary represents the result of creating or updating one or
// more transactions
type OperationSummary struct {
	TransactionIDs     []string `json:"transaction_ids"`
	DuplicateImportIDs []string `json:"duplicate_import_ids"`
	// Transaction is populated when a single transaction was created or updated
	Transaction *Transaction `json:"transaction"`
	// Transactions is populated when multiple transactions were created or updated
	Transactions []*Transaction `json:"transactions"`
}

// Bulk represents the result of the deprecated bulk-create endpoint
type Bulk struct {
	TransactionIDs     []string `json:"transaction_ids"`
	DuplicateImportIDs []string `json:"duplicate_import_ids"`
}

// ImportResult represents the result of importing transactions from linked accounts
type ImportResult struct {
	TransactionIDs []string `json:"transaction_ids"`
}
