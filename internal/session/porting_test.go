package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneytracker/internal/core"
	"moneytracker/internal/storage"
)

func seedExportingUser(t *testing.T) (*Session, *storage.MemoryStore) {
	t.Helper()
	s, store := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.CreateUser(ctx, "alice", 1000))
	require.NoError(t, s.SelectUser(ctx, "alice"))
	_, err := s.CreateTransaction(ctx, 2024, 3, TransactionData{
		Type: core.Expense, Date: 10, Item: "groceries", Amount: "400", Tag: "food",
	})
	require.NoError(t, err)
	require.NoError(t, s.UpsertTag(ctx, TagData{Name: "food", Color: "#ff0000"}, ""))
	require.NoError(t, s.UpsertTemplate(ctx, TemplateData{
		Type: core.Expense, Item: "groceries", Amount: "400", Tag: "food",
	}, ""))
	return s, store
}

func TestExportFilename(t *testing.T) {
	s, _ := seedExportingUser(t)

	filename, artifact, err := s.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "money-tracker-alice-2024-03-15.txt", filename)
	assert.NotEmpty(t, artifact)
}

func TestExportRequiresUser(t *testing.T) {
	s, _ := newTestSession(t)

	_, _, err := s.Export(context.Background())
	assert.ErrorIs(t, err, core.ErrInvariant)
}

func TestImportIntoFreshStore(t *testing.T) {
	source, _ := seedExportingUser(t)
	ctx := context.Background()
	_, artifact, err := source.Export(ctx)
	require.NoError(t, err)

	dest, _ := newTestSession(t)
	require.NoError(t, dest.Import(ctx, artifact, false))

	assert.Equal(t, "alice", dest.SelectedUserName())
	assert.Equal(t, "alice", dest.MainUser(), "first imported user becomes main")
	u, ok := dest.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, int64(1000), u.Balance)
	assert.Len(t, dest.Transactions(2024, 3), 1)
	assert.Len(t, dest.ListTags(), 1)
	assert.Len(t, dest.ListTemplates(), 1)

	balance, err := dest.CurrentBalance()
	require.NoError(t, err)
	assert.Equal(t, int64(600), balance)
}

func TestImportIdenticalDataNeedsNoConfirmation(t *testing.T) {
	s, _ := seedExportingUser(t)
	ctx := context.Background()
	_, artifact, err := s.Export(ctx)
	require.NoError(t, err)

	assert.NoError(t, s.Import(ctx, artifact, false))
}

func TestImportConflictRequiresOverwrite(t *testing.T) {
	s, _ := seedExportingUser(t)
	ctx := context.Background()
	_, artifact, err := s.Export(ctx)
	require.NoError(t, err)

	// local data diverges from the artifact
	_, err = s.CreateTransaction(ctx, 2024, 4, TransactionData{
		Type: core.Income, Date: 1, Item: "salary", Amount: "2000",
	})
	require.NoError(t, err)

	err = s.Import(ctx, artifact, false)
	assert.ErrorIs(t, err, core.ErrOverwriteRequired)
	assert.Len(t, s.Transactions(2024, 4), 1, "declined import leaves data alone")

	require.NoError(t, s.Import(ctx, artifact, true))
	assert.Empty(t, s.Transactions(2024, 4))
	assert.Len(t, s.Transactions(2024, 3), 1)
}

func TestImportKeepsExistingBalance(t *testing.T) {
	s, _ := seedExportingUser(t)
	ctx := context.Background()
	_, artifact, err := s.Export(ctx)
	require.NoError(t, err)

	// an import never rewrites an existing user's profile record
	i := s.findUser("alice")
	s.users[i].Balance = 777
	require.NoError(t, s.repo.SaveUsers(ctx, s.users))

	require.NoError(t, s.Import(ctx, artifact, true))
	u, _ := s.CurrentUser()
	assert.Equal(t, int64(777), u.Balance)
}

func TestImportWithoutOptionalCollections(t *testing.T) {
	s, _ := seedExportingUser(t)
	ctx := context.Background()

	payload := core.ExportPayload{
		User: core.User{Name: "alice", Balance: 1000},
		Transactions: core.TransactionsByMonth{
			"2024-05": {{ID: 1, Type: core.Income, Date: 2, Item: "gift", Amount: 50}},
		},
	}
	artifact, err := core.EncodeExport(payload)
	require.NoError(t, err)

	require.NoError(t, s.Import(ctx, artifact, true))
	assert.Len(t, s.Transactions(2024, 5), 1)
	assert.Len(t, s.ListTags(), 1, "absent tags leave the local collection alone")
	assert.Len(t, s.ListTemplates(), 1, "absent templates leave the local collection alone")
}

func TestImportInvalidArtifacts(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		artifact string
	}{
		{name: "not base64", artifact: "%%%"},
		{name: "not json", artifact: "bm90IGpzb24="},
		{name: "missing fields", artifact: "e30="}, // {}
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Import(ctx, tt.artifact, false)
			assert.ErrorIs(t, err, core.ErrInvalidFormat)
		})
	}
}

func TestImportInvalidUserName(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	payload := core.ExportPayload{
		User:         core.User{Name: "waytoolongname"},
		Transactions: core.TransactionsByMonth{},
	}
	artifact, err := core.EncodeExport(payload)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Import(ctx, artifact, false), core.ErrValidation)
	assert.Empty(t, s.ListUsers())
}

func TestImportRoundTripSurvivesRestart(t *testing.T) {
	source, _ := seedExportingUser(t)
	ctx := context.Background()
	_, artifact, err := source.Export(ctx)
	require.NoError(t, err)

	dest, store := newTestSession(t)
	require.NoError(t, dest.Import(ctx, artifact, false))

	reopened := reopenSession(t, store)
	assert.Equal(t, "alice", reopened.SelectedUserName())
	assert.Len(t, reopened.Transactions(2024, 3), 1)
}
