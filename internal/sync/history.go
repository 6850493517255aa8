package sync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SyncType distinguishes a full fetch from a delta fetch in a history record
type SyncType string

const (
	SyncTypeFull  SyncType = "full"
	SyncTypeDelta SyncType = "delta"
)

// HistoryRecord is the on-disk shape of a single sync event
type HistoryRecord struct {
	Type                   SyncType  `json:"type"`
	Timestamp              time.Time `json:"timestamp"`
	ServerKnowledgeBefore  uint64    `json:"server_knowledge_before,omitempty"`
	ServerKnowledgeAfter   uint64    `json:"server_knowledge_after"`
	Response               any       `json:"response"`
}

// HistoryStore appends one JSON record per successful sync under
// <configRoot>/sync-history/<budgetId>/, and refuses to write when the
// budget id is not UUID-shaped, preventing path traversal.
type HistoryStore struct {
	root string
}

// NewHistoryStore creates a store rooted at configRoot/sync-history
func NewHistoryStore(configRoot string) *HistoryStore {
	return &HistoryStore{root: filepath.Join(configRoot, "sync-history")}
}

// Append validates budgetID as a UUID before writing anything to disk.
// On a malformed id it returns a PathTraversal error and writes nothing.
func (s *HistoryStore) Append(budgetID string, rec HistoryRecord) error {
	if _, err := uuid.Parse(budgetID); err != nil {
		return newError(KindPathTraversal, "budget id %q is not UUID-shaped, refusing history write", budgetID)
	}

	dir := filepath.Join(s.root, budgetID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wrapError(KindProviderTransient, err, "creating sync-history directory for %q", budgetID)
	}

	name := fmt.Sprintf("%s-%s-%s.json", rec.Timestamp.UTC().Format("20060102T150405Z"), budgetID, rec.Type)
	path := filepath.Join(dir, name)

	buf, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return wrapError(KindProviderTransient, err, "marshaling history record for %q", budgetID)
	}

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return wrapError(KindProviderTransient, err, "writing history record for %q", budgetID)
	}
	return nil
}

// Clear removes the entire sync-history directory for a budget, or for
// every budget when budgetID is empty. It is the operator tool spec §4.5
// requires for clearing the audit trail on demand.
func (s *HistoryStore) Clear(budgetID string) error {
	if budgetID == "" {
		return os.RemoveAll(s.root)
	}
	if _, err := uuid.Parse(budgetID); err != nil {
		return newError(KindPathTraversal, "budget id %q is not UUID-shaped, refusing clear", budgetID)
	}
	return os.RemoveAll(filepath.Join(s.root, budgetID))
}
