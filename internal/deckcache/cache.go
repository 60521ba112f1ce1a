// Package deckcache holds the categorized, deduplicated form of a deck that
// is persisted next to the raw list, and the passes that keep it in step with
// the list and with Scryfall data.
package deckcache

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

// Cache is the categorized deck. Commanders never appear in MainDeck.
type Cache struct {
	Commanders []card.Card            `json:"commanders"`
	MainDeck   map[string][]card.Card `json:"mainDeck"`
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{
		Commanders: []card.Card{},
		MainDeck:   map[string][]card.Card{},
	}
}

// Decode reads a cache written by Encode.
func Decode(raw string) (*Cache, error) {
	var c Cache
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("decode cache: %w", err)
	}
	c.init()
	return &c, nil
}

func (c *Cache) init() {
	if c.Commanders == nil {
		c.Commanders = []card.Card{}
	}
	if c.MainDeck == nil {
		c.MainDeck = map[string][]card.Card{}
	}
}

// Import reads a persisted cache. A corrupt or empty blob yields a new cache.
func Import(raw string) *Cache {
	c, err := Decode(raw)
	if err != nil {
		return New()
	}
	return c
}

// Encode serializes the cache for storage.
func (c *Cache) Encode() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode cache: %w", err)
	}
	return string(data), nil
}

// Normalize moves cards filed under a category the classifier does not know
// into Unknown.
func (c *Cache) Normalize(cls *card.Classifier) {
	for cat, list := range c.MainDeck {
		if cls.ValidCategory(cat) {
			continue
		}
		delete(c.MainDeck, cat)
		for _, in := range list {
			if find(c.MainDeck[card.Unknown], in.Key()) < 0 {
				c.MainDeck[card.Unknown] = append(c.MainDeck[card.Unknown], in)
			}
		}
	}
}

// Categories lists the main deck keys: classifier order first, then Unknown,
// then anything else alphabetically.
func (c *Cache) Categories(cls *card.Classifier) []string {
	order := append(cls.Categories(), card.Unknown)
	out := make([]string, 0, len(c.MainDeck))
	for _, cat := range order {
		if _, ok := c.MainDeck[cat]; ok {
			out = append(out, cat)
		}
	}

	var rest []string
	for cat := range c.MainDeck {
		if !slices.Contains(order, cat) {
			rest = append(rest, cat)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Compact drops empty main deck categories.
func (c *Cache) Compact() {
	for cat, list := range c.MainDeck {
		if len(list) == 0 {
			delete(c.MainDeck, cat)
		}
	}
}

// Sort orders the commanders by role and every category by mana value.
func (c *Cache) Sort(cls *card.Classifier) {
	cls.SortCommanders(c.Commanders)
	for _, list := range c.MainDeck {
		card.SortByManaValue(list)
	}
}

// Len returns the number of entries (not copies) in the cache.
func (c *Cache) Len() int {
	n := len(c.Commanders)
	for _, list := range c.MainDeck {
		n += len(list)
	}
	return n
}

// find returns the index of the card with key k, or -1.
func find(list []card.Card, k card.Key) int {
	for i := range list {
		if list[i].Key() == k {
			return i
		}
	}
	return -1
}
