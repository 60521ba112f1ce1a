package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malotkya/CapstoneProject/internal/config"
	"github.com/Malotkya/CapstoneProject/internal/store"
	"github.com/Malotkya/CapstoneProject/internal/store/sqlite"
)

func TestOpen_SQLiteWithoutDatabaseURL(t *testing.T) {
	cfg := &config.Config{SQLitePath: filepath.Join(t.TempDir(), "decks.db")}

	st, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	assert.IsType(t, &sqlite.Store{}, st)
	assert.NoError(t, st.Ping(context.Background()))

	item := store.NewItem("Test", "1 Sol Ring")
	require.NoError(t, st.Create(context.Background(), item))
	got, err := st.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test", got.Title)
}

func TestOpen_BadDatabaseURL(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "postgres://%zz"}

	_, err := Open(context.Background(), cfg, nil)
	assert.ErrorContains(t, err, "connect to database")
}
