package deckcache

import (
	"strings"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

// Colorless is reported by Colors when no commander has a color identity.
const Colorless = "C"

// Missing returns the cards that still need Scryfall data: commanders
// without images, color identity or art, and main deck cards without images.
func Missing(c *Cache) []card.Card {
	var out []card.Card
	for _, in := range c.Commanders {
		if in.ImageURIs == nil || in.ColorIdentity == nil || in.Art == nil {
			out = append(out, in)
		}
	}
	for _, list := range c.MainDeck {
		for _, in := range list {
			if in.ImageURIs == nil {
				out = append(out, in)
			}
		}
	}
	return out
}

// Image returns the art of the first commander, or "" when there is none.
func Image(c *Cache) string {
	if len(c.Commanders) == 0 {
		return ""
	}
	return card.Value(c.Commanders[0].Art)
}

// Colors concatenates the commanders' color identities in first-seen order.
func Colors(c *Cache) string {
	seen := make(map[string]struct{})
	var b strings.Builder
	for _, in := range c.Commanders {
		for _, color := range in.ColorIdentity {
			if _, ok := seen[color]; ok {
				continue
			}
			seen[color] = struct{}{}
			b.WriteString(color)
		}
	}
	if b.Len() == 0 {
		return Colorless
	}
	return b.String()
}
