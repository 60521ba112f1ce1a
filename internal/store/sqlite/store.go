// Package sqlite is the embedded deck store used by the CLI and the tests.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Malotkya/CapstoneProject/internal/store"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store provides SQLite-backed deck persistence.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

// Open creates a new SQLite store at the given path.
// It configures WAL mode, sets pragmas, and runs the schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	logger.Debug("sqlite store opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database file is usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const deckColumns = `id, title, deck_list, cache, image, colors, created_at, updated_at`

func scanDeck(scanner interface{ Scan(dest ...any) error }) (*store.Item, error) {
	var (
		it        store.Item
		createdAt string
		updatedAt string
	)
	err := scanner.Scan(&it.ID, &it.Title, &it.DeckList, &it.Cache, &it.Image, &it.Colors, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if it.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if it.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

// Create inserts a new deck.
func (s *Store) Create(ctx context.Context, item *store.Item) error {
	store.Prepare(item)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO decks (`+deckColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.DeckList, item.Cache, item.Image, item.Colors,
		formatTime(item.CreatedAt), formatTime(item.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert deck %s: %w", item.ID, err)
	}
	return nil
}

// Get returns a deck by id.
// Returns store.ErrNotFound if the deck does not exist.
func (s *Store) Get(ctx context.Context, id string) (*store.Item, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+deckColumns+` FROM decks WHERE id = ?`, id)
	it, err := scanDeck(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get deck %s: %w", id, err)
	}
	return it, nil
}

// Update overwrites a deck.
// Returns store.ErrNotFound if the deck does not exist.
func (s *Store) Update(ctx context.Context, item *store.Item) error {
	item.UpdatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`UPDATE decks SET title = ?, deck_list = ?, cache = ?, image = ?, colors = ?, updated_at = ? WHERE id = ?`,
		item.Title, item.DeckList, item.Cache, item.Image, item.Colors, formatTime(item.UpdatedAt), item.ID,
	)
	if err != nil {
		return fmt.Errorf("update deck %s: %w", item.ID, err)
	}
	return checkAffected(result)
}

// Delete removes a deck.
// Returns store.ErrNotFound if the deck does not exist.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete deck %s: %w", id, err)
	}
	return checkAffected(result)
}

// List returns every deck, most recently updated first.
func (s *Store) List(ctx context.Context) ([]store.Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, image, colors, updated_at FROM decks ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	out := []store.Summary{}
	for rows.Next() {
		var (
			sum       store.Summary
			updatedAt string
		)
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.Image, &sum.Colors, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		if sum.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func checkAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// timeLayout is fixed width so that stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime formats a time.Time for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a RFC3339Nano string back to time.Time.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
