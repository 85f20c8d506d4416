package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*JSONDatabase, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	db, err := NewDatabase(path)
	require.NoError(t, err)
	return db, path
}

func TestJSONDatabaseSetGetDelete(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)

	_, err := db.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, db.Set(ctx, "cart-storage:v1", []byte(`{"items":[]}`), 0))
	got, err := db.Get(ctx, "cart-storage:v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(got))

	require.NoError(t, db.Delete(ctx, "cart-storage:v1"))
	_, err = db.Get(ctx, "cart-storage:v1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, db.Delete(ctx, "cart-storage:v1"))
}

func TestJSONDatabasePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	db, path := newTestDB(t)
	require.NoError(t, db.Set(ctx, "auth-storage:v1", []byte(`{"token":"abc"}`), time.Hour))

	reopened, err := NewDatabase(path)
	require.NoError(t, err)
	got, err := reopened.Get(ctx, "auth-storage:v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc"}`, string(got))
}

func TestJSONDatabaseExpiry(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return now }

	require.NoError(t, db.Set(ctx, "k", []byte(`1`), time.Minute))
	assert.Equal(t, 1, db.Len())

	now = now.Add(2 * time.Minute)
	_, err := db.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, db.Len())
}

func TestJSONDatabaseRejectsInvalidJSON(t *testing.T) {
	db, _ := newTestDB(t)
	assert.Error(t, db.Set(context.Background(), "k", []byte("not json"), 0))
}

func TestJSONDatabaseResetsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

	db, err := NewDatabase(path)
	require.NoError(t, err)
	assert.Equal(t, 0, db.Len())
}
