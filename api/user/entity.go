// Package user implements user entities and services
package user // import "github.com/coltoneshaw/ynabsync/api/user"

// User represents the authenticated YNAB user
type User struct {
	ID string `json:"id"`
}
