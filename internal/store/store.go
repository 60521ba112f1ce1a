// Package store defines the persisted deck record and the storage interface
// implemented by the Postgres and SQLite backends.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no deck has the requested id.
var ErrNotFound = errors.New("deck not found")

// Item is one saved deck. Cache holds the encoded deckcache.Cache.
type Item struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	DeckList  string    `json:"deckList"`
	Cache     string    `json:"cache"`
	Image     string    `json:"image"`
	Colors    string    `json:"colors"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary is the listing view of an Item.
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Colors    string    `json:"colors"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewItem returns an unsaved item with a fresh id.
func NewItem(title, deckList string) *Item {
	now := time.Now().UTC()
	return &Item{
		ID:        uuid.NewString(),
		Title:     title,
		DeckList:  deckList,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Summarize returns the listing view of it.
func (it *Item) Summarize() Summary {
	return Summary{ID: it.ID, Title: it.Title, Image: it.Image, Colors: it.Colors, UpdatedAt: it.UpdatedAt}
}

// Store persists deck items.
type Store interface {
	// Create saves a new item. An empty ID is filled in.
	Create(ctx context.Context, item *Item) error
	// Get returns ErrNotFound if the deck does not exist.
	Get(ctx context.Context, id string) (*Item, error)
	// Update overwrites an existing item and bumps UpdatedAt.
	Update(ctx context.Context, item *Item) error
	// Delete returns ErrNotFound if the deck does not exist.
	Delete(ctx context.Context, id string) error
	// List returns every deck, most recently updated first.
	List(ctx context.Context) ([]Summary, error)
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// Prepare fills the id and timestamps of an item about to be created.
func Prepare(item *Item) {
	now := time.Now().UTC()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
}
