package card

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var manaSymbol = regexp.MustCompile(`\{([^{}]*)\}`)

// ManaValue returns the sortable cost proxy of a card. Numeric symbols add
// their value, every other symbol adds one. Cards without a mana cost return
// math.MaxFloat64 so they sort last.
func ManaValue(c Card) float64 {
	if c.ManaCost == nil {
		return math.MaxFloat64
	}
	total := 0.0
	for _, m := range manaSymbol.FindAllStringSubmatch(*c.ManaCost, -1) {
		token := strings.TrimSpace(m[1])
		if n, err := strconv.ParseFloat(token, 64); err == nil {
			total += n
		} else {
			total++
		}
	}
	return total
}

// CommanderPriority orders commanders by role: creatures and planeswalkers,
// then enchantments, then instants and sorceries, then everything else.
func (c *Classifier) CommanderPriority(card Card) int {
	switch c.Classify(Value(card.TypeLine)) {
	case "Creature", "Planeswalker":
		return 0
	case "Enchantment":
		return 1
	case "Instant", "Sorcery":
		return 2
	default:
		return 3
	}
}

// SortCommanders sorts list in place by role priority, then name.
func (c *Classifier) SortCommanders(list []Card) {
	col := collate.New(language.English)
	slices.SortStableFunc(list, func(a, b Card) int {
		if pa, pb := c.CommanderPriority(a), c.CommanderPriority(b); pa != pb {
			return pa - pb
		}
		return col.CompareString(a.Name, b.Name)
	})
}

// SortByManaValue sorts list in place by mana value, then name.
func SortByManaValue(list []Card) {
	col := collate.New(language.English)
	slices.SortStableFunc(list, func(a, b Card) int {
		va, vb := ManaValue(a), ManaValue(b)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
		return col.CompareString(a.Name, b.Name)
	})
}
