package sync_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coltoneshaw/ynabsync/internal/sync"
)

func TestHistoryStore_AppendWritesUnderBudgetDirectory(t *testing.T) {
	root := t.TempDir()
	store := sync.NewHistoryStore(root)
	budgetID := uuid.New().String()

	err := store.Append(budgetID, sync.HistoryRecord{
		Type:                 sync.SyncTypeFull,
		Timestamp:            time.Now().UTC(),
		ServerKnowledgeAfter: 5,
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "sync-history", budgetID))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHistoryStore_AppendRejectsNonUUIDBudgetID(t *testing.T) {
	root := t.TempDir()
	store := sync.NewHistoryStore(root)

	err := store.Append("../../etc/passwd", sync.HistoryRecord{Type: sync.SyncTypeFull})
	require.Error(t, err)
	var syncErr *sync.Error
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, sync.KindPathTraversal, syncErr.Kind)

	_, statErr := os.Stat(filepath.Join(root, "sync-history"))
	assert.True(t, os.IsNotExist(statErr), "a rejected write must not create the sync-history directory")
}

func TestHistoryStore_ClearRejectsNonUUIDBudgetID(t *testing.T) {
	root := t.TempDir()
	store := sync.NewHistoryStore(root)

	err := store.Clear("../escape")
	require.Error(t, err)
	var syncErr *sync.Error
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, sync.KindPathTraversal, syncErr.Kind)
}

func TestHistoryStore_ClearEmptyBudgetIDRemovesEverything(t *testing.T) {
	root := t.TempDir()
	store := sync.NewHistoryStore(root)
	budgetID := uuid.New().String()

	require.NoError(t, store.Append(budgetID, sync.HistoryRecord{Type: sync.SyncTypeFull, Timestamp: time.Now().UTC()}))
	require.NoError(t, store.Clear(""))

	_, err := os.Stat(filepath.Join(root, "sync-history"))
	assert.True(t, os.IsNotExist(err))
}
