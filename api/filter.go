package api

import "fmt"

// Filter represents a server knowledge filter, used by most YNAB
// list endpoints to request only what changed since a previous sync
type Filter struct {
	LastKnowledgeOfServer uint64
}

// ToQuery renders the filter as a URL query string fragment
func (f Filter) ToQuery() string {
	return fmt.Sprintf("last_knowledge_of_server=%d", f.LastKnowledgeOfServer)
}
