package decklist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

// ParseCSV reads a Scryfall CSV export. The export names its columns
// "set_code" and "type"; they land in Card.Set and Card.TypeLine.
func ParseCSV(raw string) ([]card.Card, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("csv: no rows")
	}

	columns := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, errors.New("csv: no name column")
	}

	field := func(row []string, name string) (string, bool) {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	cards := make([]card.Card, 0, len(records)-1)
	for _, row := range records[1:] {
		name, _ := field(row, "name")
		c := card.Card{Name: name, Count: 1}

		if v, ok := field(row, "count"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				c.Count = n
			}
		}
		if v, ok := field(row, "set_code"); ok {
			c.Set = v
		}
		if v, ok := field(row, "type"); ok && v != "" {
			c.TypeLine = card.Str(v)
		}
		if v, ok := field(row, "mana_cost"); ok {
			c.ManaCost = card.Str(v)
		}
		if v, ok := field(row, "collector_number"); ok && v != "" {
			c.CollectorNumber = card.Str(v)
		}
		if v, ok := field(row, "section"); ok {
			c.Section = v
		}
		if v, ok := field(row, "foil"); ok {
			c.Foil = parseFoil(v)
		}

		cards = append(cards, c)
	}

	return cards, nil
}

func parseFoil(v string) bool {
	switch strings.ToLower(v) {
	case "foil", "etched", "yes":
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}
