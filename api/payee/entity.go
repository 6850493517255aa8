// Package payee implements payee entities and services
package payee // import "github.com/coltoneshaw/ynabsync/api/payee"

// Payee represents a payee for a budget
type Payee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// TransferAccountID if the payee represents a transfer, this is the
	// account ID the transfer is to/from, otherwise null
	TransferAccountID *string `json:"transfer_account_id"`
	// Deleted deleted payees will only be included in delta requests
	Deleted bool `json:"deleted"`
}

// Location represents a location a payee has transacted at
type Location struct {
	ID        string `json:"id"`
	PayeeID   string `json:"payee_id"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Deleted   bool   `json:"deleted"`
}

// SearchResultSnapshot represents a versioned snapshot for a payee search
type SearchResultSnapshot struct {
	Payees          []*Payee
	ServerKnowledge uint64
}
