// Package budget implements budget entities and services
package budget // import "github.com/coltoneshaw/ynabsync/api/budget"

import (
	"github.com/coltoneshaw/ynabsync/api"
	"github.com/coltoneshaw/ynabsync/api/account"
	"github.com/coltoneshaw/ynabsync/api/category"
	"github.com/coltoneshaw/ynabsync/api/month"
	"github.com/coltoneshaw/ynabsync/api/payee"
	"github.com/coltoneshaw/ynabsync/api/transaction"
)

// CurrencyFormat represents the currency format setting for a budget
type CurrencyFormat struct {
	ISOCode          string `json:"iso_code"`
	ExampleFormat    string `json:"example_format"`
	DecimalDigits    int32  `json:"decimal_digits"`
	DecimalSeparator string `json:"decimal_separator"`
	SymbolFirst      bool   `json:"symbol_first"`
	GroupSeparator   string `json:"group_separator"`
	CurrencySymbol   string `json:"currency_symbol"`
	DisplaySymbol    bool   `json:"display_symbol"`
}

// DateFormat represents the date format setting for a budget
type DateFormat struct {
	Format string `json:"format"`
}

// Settings represents a budget's settings
type Settings struct {
	DateFormat     *DateFormat     `json:"date_format"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
}

// Summary represents a condensed, listing view of a budget
type Summary struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn string          `json:"last_modified_on"`
	FirstMonth     api.Date        `json:"first_month"`
	LastMonth      api.Date        `json:"last_month"`
	DateFormat     *DateFormat     `json:"date_format"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
}

// Budget represents a full budget export, with all related entities
type Budget struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn string          `json:"last_modified_on"`
	FirstMonth     api.Date        `json:"first_month"`
	LastMonth      api.Date        `json:"last_month"`
	DateFormat     *DateFormat     `json:"date_format"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`

	Accounts                 []*account.Account                      `json:"accounts"`
	Payees                    []*payee.Payee                          `json:"payees"`
	PayeeLocations            []*payee.Location                       `json:"payee_locations"`
	CategoryGroups            []*category.Group                       `json:"category_groups"`
	Categories                []*category.Category                    `json:"categories"`
	Months                    []*month.Month                          `json:"months"`
	Transactions              []*transaction.Transaction              `json:"transactions"`
	SubTransactions           []*transaction.SubTransaction            `json:"subtransactions"`
	ScheduledTransactions     []*transaction.Scheduled                `json:"scheduled_transactions"`
	ScheduledSubTransactions  []*transaction.ScheduledSubTransaction   `json:"scheduled_subtransactions"`
}

// Snapshot represents a versioned snapshot of a budget
type Snapshot struct {
	Budget          *Budget
	ServerKnowledge uint64
}
