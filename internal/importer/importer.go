// Package importer runs a saved deck through parsing, reconciliation,
// Scryfall enrichment and serialization.
//
// Insert mirrors the cheap before-insert step (parse and reconcile only).
// Update is the full before-update pipeline. Refresh only re-enriches the
// stored cache. None of them touch the item unless they succeed.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Malotkya/CapstoneProject/internal/card"
	"github.com/Malotkya/CapstoneProject/internal/deckcache"
	"github.com/Malotkya/CapstoneProject/internal/decklist"
	"github.com/Malotkya/CapstoneProject/internal/store"
)

// scryfallImageHost serves the images the pipeline sets on its own. Any other
// non-empty item image was chosen by the user and is kept.
const scryfallImageHost = "scryfall.io/"

// ErrEnrichment wraps every failure of the Scryfall step.
var ErrEnrichment = errors.New("enrichment failed")

// Enricher looks up missing card data. *scryfall.Client implements it.
type Enricher interface {
	Enrich(ctx context.Context, cards []card.Card, cls *card.Classifier) ([]deckcache.Update, error)
}

// Pipeline processes deck items.
type Pipeline struct {
	enricher Enricher
	cls      *card.Classifier
	logger   *slog.Logger
}

// New creates a pipeline. A nil enricher skips the Scryfall step.
func New(enricher Enricher, cls *card.Classifier, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cls == nil {
		cls = card.DefaultClassifier()
	}
	return &Pipeline{enricher: enricher, cls: cls, logger: logger}
}

// Classifier returns the classifier the pipeline files cards with.
func (p *Pipeline) Classifier() *card.Classifier {
	return p.cls
}

// Insert parses item.DeckList and reconciles it into item.Cache.
func (p *Pipeline) Insert(item *store.Item) (Result, error) {
	var result Result
	c, err := p.reconcile(item, &result)
	if err != nil {
		return result, err
	}

	encoded, err := c.Encode()
	if err != nil {
		return result, err
	}
	item.Cache = encoded
	return result, nil
}

// Update reconciles item.DeckList into the cache, enriches what is missing and
// rewrites the deck list, cache, image and colors.
func (p *Pipeline) Update(ctx context.Context, item *store.Item) (Result, error) {
	var result Result
	c, err := p.reconcile(item, &result)
	if err != nil {
		return result, err
	}
	if err := p.finish(ctx, item, c, &result); err != nil {
		return result, err
	}
	p.logger.Info("deck updated", "id", item.ID, "result", result.Summary())
	return result, nil
}

// Refresh enriches the stored cache without reading the deck list.
func (p *Pipeline) Refresh(ctx context.Context, item *store.Item) (Result, error) {
	var result Result
	c := p.importCache(item)
	c.Normalize(p.cls)
	if err := p.finish(ctx, item, c, &result); err != nil {
		return result, err
	}
	p.logger.Info("deck refreshed", "id", item.ID, "result", result.Summary())
	return result, nil
}

// Cache decodes the stored cache of item, sorted for display.
func (p *Pipeline) Cache(item *store.Item) *deckcache.Cache {
	c := p.importCache(item)
	c.Normalize(p.cls)
	c.Sort(p.cls)
	return c
}

func (p *Pipeline) reconcile(item *store.Item, result *Result) (*deckcache.Cache, error) {
	cards, format, err := decklist.ParseFormat(item.DeckList)
	if err != nil {
		return nil, fmt.Errorf("parse deck list: %w", err)
	}
	result.Format = format
	result.Cards = len(cards)

	c := p.importCache(item)
	c.Normalize(p.cls)
	deckcache.Reconcile(c, cards, p.cls)
	return c, nil
}

func (p *Pipeline) importCache(item *store.Item) *deckcache.Cache {
	if item.Cache == "" {
		return deckcache.New()
	}
	c, err := deckcache.Decode(item.Cache)
	if err != nil {
		p.logger.Warn("discarding corrupt deck cache", "id", item.ID, "error", err)
		return deckcache.New()
	}
	return c
}

// finish enriches, sorts and serializes c, then writes the results to item.
func (p *Pipeline) finish(ctx context.Context, item *store.Item, c *deckcache.Cache, result *Result) error {
	missing := deckcache.Missing(c)
	result.Missing = len(missing)

	if len(missing) > 0 && p.enricher != nil {
		updates, err := p.enricher.Enrich(ctx, missing, p.cls)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEnrichment, err)
		}
		deckcache.ApplyUpdates(c, updates, p.cls)
		for _, u := range updates {
			if u.Card.ImageURIs.IsError() {
				result.Failed++
			} else {
				result.Enriched++
			}
		}
	}

	c.Sort(p.cls)
	text := decklist.ToText(c, p.cls)
	encoded, err := c.Encode()
	if err != nil {
		return err
	}

	item.DeckList = text
	item.Cache = encoded
	item.Colors = deckcache.Colors(c)
	item.Image = chooseImage(item.Image, deckcache.Image(c))
	return nil
}

// chooseImage keeps a user supplied image and otherwise follows the first
// commander's art.
func chooseImage(current, art string) string {
	if current != "" && !strings.Contains(current, scryfallImageHost) {
		return current
	}
	return art
}
