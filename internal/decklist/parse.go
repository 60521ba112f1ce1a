// Package decklist reads user supplied deck lists and writes caches back out
// as editable text.
//
// Three input formats are recognised, tried in this order:
//
//   - a Scryfall bulk deck export (JSON with an "entries" object)
//   - a Scryfall CSV export (header row with a "name" column)
//   - freeform text, one card per line, "//Section" lines as headers
package decklist

import (
	"errors"
	"fmt"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

var (
	// ErrUnknownFormat is returned when no format could read the input.
	ErrUnknownFormat = errors.New("unknown decklist format")
	// ErrSetCodeSize is returned for a bracketed SET:NUMBER whose set is not
	// three characters long.
	ErrSetCodeSize = errors.New("unknown set code")
	// ErrMissingName is returned for a card line with nothing but a count.
	ErrMissingName = errors.New("card line has no name")
)

// DefaultSection is the section of text lines before any "//" header.
const DefaultSection = "main deck"

// Format identifies which reader accepted an input.
type Format string

const (
	FormatBulk Format = "bulk"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
)

// Parse reads raw in the first format that accepts it.
func Parse(raw string) ([]card.Card, error) {
	cards, _, err := ParseFormat(raw)
	return cards, err
}

// ParseFormat is Parse, also reporting the format that was used.
func ParseFormat(raw string) ([]card.Card, Format, error) {
	if cards, err := ParseBulk(raw); err == nil {
		return cards, FormatBulk, nil
	}

	if cards, err := ParseCSV(raw); err == nil {
		return cards, FormatCSV, nil
	}

	cards, err := ParseText(raw)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrUnknownFormat, err)
	}
	return cards, FormatText, nil
}
