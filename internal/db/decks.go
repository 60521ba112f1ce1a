package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Malotkya/CapstoneProject/internal/store"
)

// Create inserts a new deck.
func (p *Pool) Create(ctx context.Context, item *store.Item) error {
	store.Prepare(item)
	_, err := p.Exec(ctx, "deck_insert",
		item.ID, item.Title, item.DeckList, item.Cache, item.Image, item.Colors,
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert deck %s: %w", item.ID, err)
	}
	return nil
}

// Get returns a deck by id.
// Returns store.ErrNotFound if the deck does not exist.
func (p *Pool) Get(ctx context.Context, id string) (*store.Item, error) {
	var it store.Item
	err := p.QueryRow(ctx, "deck_get", id).Scan(
		&it.ID, &it.Title, &it.DeckList, &it.Cache, &it.Image, &it.Colors,
		&it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get deck %s: %w", id, err)
	}
	return &it, nil
}

// Update overwrites a deck.
// Returns store.ErrNotFound if the deck does not exist.
func (p *Pool) Update(ctx context.Context, item *store.Item) error {
	item.UpdatedAt = time.Now().UTC()
	tag, err := p.Exec(ctx, "deck_update",
		item.ID, item.Title, item.DeckList, item.Cache, item.Image, item.Colors, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update deck %s: %w", item.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes a deck.
// Returns store.ErrNotFound if the deck does not exist.
func (p *Pool) Delete(ctx context.Context, id string) error {
	tag, err := p.Exec(ctx, "deck_delete", id)
	if err != nil {
		return fmt.Errorf("delete deck %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// List returns every deck, most recently updated first.
func (p *Pool) List(ctx context.Context) ([]store.Summary, error) {
	rows, err := p.Query(ctx, "deck_list")
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (store.Summary, error) {
		var sum store.Summary
		err := row.Scan(&sum.ID, &sum.Title, &sum.Image, &sum.Colors, &sum.UpdatedAt)
		return sum, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan decks: %w", err)
	}
	return out, nil
}
