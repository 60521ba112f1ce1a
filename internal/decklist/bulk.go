package decklist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

// bulkEntry is one card of a Scryfall deck export.
type bulkEntry struct {
	Count      *int        `json:"count"`
	Foil       bool        `json:"foil"`
	CardDigest *cardDigest `json:"card_digest"`
}

// cardDigest is the printing a bulk entry resolved to. It is null for lines
// Scryfall could not match.
type cardDigest struct {
	Name            string          `json:"name"`
	ManaCost        *string         `json:"mana_cost"`
	TypeLine        *string         `json:"type_line"`
	Set             string          `json:"set"`
	CollectorNumber *string         `json:"collector_number"`
	ImageURIs       *card.ImageURIs `json:"image_uris"`
}

// ParseBulk reads a Scryfall bulk deck export. Sections keep the order they
// have in the document.
func ParseBulk(raw string) ([]card.Card, error) {
	var doc struct {
		Entries json.RawMessage `json:"entries"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("bulk export: %w", err)
	}
	if len(doc.Entries) == 0 || bytes.Equal(doc.Entries, []byte("null")) {
		return nil, errors.New("bulk export: missing entries object")
	}

	dec := json.NewDecoder(bytes.NewReader(doc.Entries))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("bulk export: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("bulk export: entries is not an object")
	}

	cards := []card.Card{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("bulk export: %w", err)
		}
		section, _ := tok.(string)

		var entries []bulkEntry
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("bulk export section %q: %w", section, err)
		}

		for _, e := range entries {
			if e.CardDigest == nil {
				continue
			}
			count := 1
			if e.Count != nil {
				count = *e.Count
			}
			cards = append(cards, card.Card{
				Name:            e.CardDigest.Name,
				Count:           count,
				Set:             e.CardDigest.Set,
				CollectorNumber: e.CardDigest.CollectorNumber,
				Foil:            e.Foil,
				Section:         section,
				ManaCost:        e.CardDigest.ManaCost,
				TypeLine:        e.CardDigest.TypeLine,
				ImageURIs:       e.CardDigest.ImageURIs,
			})
		}
	}

	return cards, nil
}
