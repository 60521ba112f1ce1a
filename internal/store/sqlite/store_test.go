package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malotkya/CapstoneProject/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := Open(dbPath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen(t *testing.T) {
	s := newTestStore(t)

	var journalMode string
	require.NoError(t, s.db.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)

	var name string
	require.NoError(t, s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='decks'").Scan(&name))
	assert.NoError(t, s.Ping(context.Background()))
}

func TestCreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	item := store.NewItem("Kenrith", "//Commander\n1 Kenrith, the Returned King\n")
	item.Cache = `{"commanders":[],"mainDeck":{}}`
	item.Colors = "WUBRG"
	require.NoError(t, s.Create(ctx, item))

	got, err := s.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Title, got.Title)
	assert.Equal(t, item.DeckList, got.DeckList)
	assert.Equal(t, item.Cache, got.Cache)
	assert.Equal(t, "WUBRG", got.Colors)
	assert.WithinDuration(t, item.CreatedAt, got.CreatedAt, time.Microsecond)
}

func TestCreate_FillsID(t *testing.T) {
	s := newTestStore(t)
	item := &store.Item{Title: "No id"}
	require.NoError(t, s.Create(context.Background(), item))
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	item := store.NewItem("Draft", "1 Sol Ring")
	require.NoError(t, s.Create(ctx, item))
	created := item.UpdatedAt

	item.Title = "Final"
	item.Image = "https://art/kenrith.jpg"
	require.NoError(t, s.Update(ctx, item))
	assert.False(t, item.UpdatedAt.Before(created))

	got, err := s.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "https://art/kenrith.jpg", got.Image)

	assert.ErrorIs(t, s.Update(ctx, &store.Item{ID: "missing"}), store.ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	item := store.NewItem("Gone", "")
	require.NoError(t, s.Create(ctx, item))
	require.NoError(t, s.Delete(ctx, item.ID))

	_, err := s.Get(ctx, item.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, item.ID), store.ErrNotFound)
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	older := store.NewItem("Older", "")
	require.NoError(t, s.Create(ctx, older))
	newer := store.NewItem("Newer", "")
	newer.CreatedAt = older.CreatedAt.Add(time.Second)
	require.NoError(t, s.Create(ctx, newer))

	older.Title = "Touched"
	require.NoError(t, s.Update(ctx, older))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Touched", got[0].Title)
	assert.Equal(t, newer.ID, got[1].ID)
}
