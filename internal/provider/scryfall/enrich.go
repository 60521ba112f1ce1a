package scryfall

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Malotkya/CapstoneProject/internal/card"
	"github.com/Malotkya/CapstoneProject/internal/deckcache"
)

// MaxBatch is the largest identifier list /cards/collection accepts.
const MaxBatch = 75

// Error markers stored in image_uris.
const (
	MsgNotFound     = "404"
	MsgImageMissing = "Image is currently missing in scryfall, try a different printing."
	MsgNoImage      = "Unable to find image in card object."
)

var errNoResults = errors.New("search returned no cards")

// Enrich looks up cards on Scryfall and returns an update for every card that
// was resolved or confirmed missing. Chunks are processed in order; any
// failure other than a missing card aborts the run and no updates are
// returned.
func (c *Client) Enrich(ctx context.Context, cards []card.Card, cls *card.Classifier) ([]deckcache.Update, error) {
	if cls == nil {
		cls = card.DefaultClassifier()
	}

	updates := make([]deckcache.Update, 0, len(cards))
	for start := 0; start < len(cards); start += MaxBatch {
		end := min(start+MaxBatch, len(cards))
		chunk, err := c.enrichChunk(ctx, cards[start:end], cls)
		if err != nil {
			return nil, fmt.Errorf("enrich cards %d-%d: %w", start+1, end, err)
		}
		updates = append(updates, chunk...)
	}

	c.logger.Info("scryfall enrichment complete", "cards", len(cards), "updates", len(updates))
	return updates, nil
}

func (c *Client) enrichChunk(ctx context.Context, chunk []card.Card, cls *card.Classifier) ([]deckcache.Update, error) {
	ids := make([]identifier, len(chunk))
	for i, in := range chunk {
		ids[i] = identify(in)
	}

	var resp collectionResponse
	if err := c.do(ctx, http.MethodPost, "/cards/collection", nil, collectionRequest{Identifiers: ids}, &resp); err != nil {
		return nil, fmt.Errorf("collection lookup: %w", err)
	}

	results := make([]*card.Card, len(chunk))
	claimed := make([]bool, len(chunk))

	for _, id := range resp.NotFound {
		i := notFoundIndex(ids, claimed, id)
		if i < 0 {
			c.logger.Warn("scryfall returned unknown identifier", "name", id.Name, "set", id.Set)
			continue
		}
		claimed[i] = true

		rec, err := c.search(ctx, id)
		if errors.Is(err, ErrCardNotFound) {
			c.logger.Debug("card not found on scryfall", "card", chunk[i].Key().String())
			failed := chunk[i]
			failed.ImageURIs = card.ImageFailure(MsgNotFound)
			results[i] = &failed
			continue
		}
		if err != nil {
			return nil, err
		}
		merged := merge(chunk[i], rec, cls)
		results[i] = &merged
	}

	for _, rec := range resp.Data {
		i := matchName(chunk, claimed, rec.Name)
		if i < 0 {
			c.logger.Warn("scryfall card matched no deck entry", "name", rec.Name)
			continue
		}
		claimed[i] = true
		merged := merge(chunk[i], rec, cls)
		results[i] = &merged
	}

	updates := make([]deckcache.Update, 0, len(chunk))
	for i, res := range results {
		if res != nil {
			updates = append(updates, deckcache.Update{Key: chunk[i].Key(), Card: *res})
		}
	}
	return updates, nil
}

// search runs a single card query, dropping the collector number and then
// the set each time Scryfall rejects it.
func (c *Client) search(ctx context.Context, id identifier) (record, error) {
	for {
		var resp searchResponse
		err := c.do(ctx, http.MethodGet, "/cards/search", url.Values{"q": {query(id)}}, nil, &resp)
		if err == nil {
			if len(resp.Data) > 0 {
				return pick(resp.Data, id.Name), nil
			}
			err = errNoResults
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return record{}, ctxErr
		}

		switch {
		case id.CollectorNumber != "":
			id.CollectorNumber = ""
		case id.Set != "":
			id.Set = ""
		default:
			var apiErr *APIError
			if errors.Is(err, errNoResults) || (errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound) {
				return record{}, fmt.Errorf("%w: %s", ErrCardNotFound, id.Name)
			}
			return record{}, fmt.Errorf("search %q: %w", id.Name, err)
		}
		c.logger.Debug("relaxing scryfall search", "name", id.Name, "set", id.Set, "error", err)
	}
}

func identify(in card.Card) identifier {
	id := identifier{Name: in.Name}
	if in.Set != "" {
		id.Set = in.Set
		id.CollectorNumber = card.Value(in.CollectorNumber)
	}
	return id
}

// query builds "name:X set:Y collector_number:Z"; url encoding turns the
// spaces into "+".
func query(id identifier) string {
	parts := []string{"name:" + quote(id.Name)}
	if id.Set != "" {
		parts = append(parts, "set:"+quote(id.Set))
	}
	if id.CollectorNumber != "" {
		parts = append(parts, "collector_number:"+quote(id.CollectorNumber))
	}
	return strings.Join(parts, " ")
}

func quote(v string) string {
	if !strings.ContainsAny(v, " \t\"") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}

func notFoundIndex(ids []identifier, claimed []bool, id identifier) int {
	for i := range ids {
		if !claimed[i] && ids[i] == id {
			return i
		}
	}
	for i := range ids {
		if !claimed[i] && strings.EqualFold(ids[i].Name, id.Name) {
			return i
		}
	}
	return -1
}

// matchName returns the first unclaimed card named name, or whose name is
// part of name (one face of a split or double-faced card).
func matchName(chunk []card.Card, claimed []bool, name string) int {
	for i := range chunk {
		if !claimed[i] && strings.EqualFold(chunk[i].Name, name) {
			return i
		}
	}
	lower := strings.ToLower(name)
	for i := range chunk {
		if !claimed[i] && chunk[i].Name != "" && strings.Contains(lower, strings.ToLower(chunk[i].Name)) {
			return i
		}
	}
	return -1
}

// pick prefers an exact name, then a containing name, then the first result.
func pick(data []record, name string) record {
	for _, rec := range data {
		if strings.EqualFold(rec.Name, name) {
			return rec
		}
	}
	lower := strings.ToLower(name)
	for _, rec := range data {
		if strings.Contains(strings.ToLower(rec.Name), lower) {
			return rec
		}
	}
	return data[0]
}

// merge copies Scryfall data onto a deck card. Count, foil and section stay
// as the user wrote them.
func merge(orig card.Card, rec record, cls *card.Classifier) card.Card {
	out := orig
	out.Name = rec.Name
	out.ManaCost = manaCost(rec)
	out.TypeLine = card.Str(rec.TypeLine)
	out.Set = rec.Set
	if orig.CollectorNumber != nil && rec.CollectorNumber != "" {
		out.CollectorNumber = card.Str(rec.CollectorNumber)
	}

	switch {
	case rec.ImageStatus == ImageStatusMissing:
		out.ImageURIs = card.ImageFailure(MsgImageMissing)
	case orig.ImageURIs == nil:
		out.ImageURIs = images(rec)
	}

	if cls.IsCommander(orig.Section) {
		out.Art = card.Str(artCrop(rec))
		out.ColorIdentity = append([]string{}, rec.ColorIdentity...)
	}
	return out
}

func manaCost(rec record) *string {
	if rec.ManaCost != nil && *rec.ManaCost != "" {
		return card.Str(*rec.ManaCost)
	}
	if len(rec.CardFaces) > 0 && rec.CardFaces[0].ManaCost != "" {
		return card.Str(rec.CardFaces[0].ManaCost)
	}
	if rec.ManaCost != nil {
		return card.Str("")
	}
	return nil
}

func images(rec record) *card.ImageURIs {
	if len(rec.CardFaces) > 0 && rec.CardFaces[0].ImageURIs != nil {
		if len(rec.CardFaces) < 2 || rec.CardFaces[1].ImageURIs == nil {
			return card.ImageFailure(MsgNoImage)
		}
		return card.FaceImages(rec.CardFaces[0].ImageURIs.Normal, rec.CardFaces[1].ImageURIs.Normal)
	}
	if rec.ImageURIs == nil || rec.ImageURIs.Normal == "" {
		return card.ImageFailure(MsgNoImage)
	}
	return card.FaceImages(rec.ImageURIs.Normal, "")
}

func artCrop(rec record) string {
	if len(rec.CardFaces) > 0 && rec.CardFaces[0].ImageURIs != nil {
		return rec.CardFaces[0].ImageURIs.ArtCrop
	}
	if rec.ImageURIs != nil {
		return rec.ImageURIs.ArtCrop
	}
	return ""
}
