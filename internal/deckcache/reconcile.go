package deckcache

import (
	"sort"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

// Update is an enriched card together with the identity it had in the cache
// before enrichment rewrote its name or set.
type Update struct {
	Key  card.Key
	Card card.Card
}

// Reconcile brings c in line with a freshly parsed deck list. Cards missing
// from the cache are added, cards already cached keep their enriched data
// but take count and foil from the list, and cached cards no longer listed
// are dropped.
func Reconcile(c *Cache, list []card.Card, cls *card.Classifier) {
	c.init()
	commanders := make(map[card.Key]struct{})
	mainDeck := make(map[card.Key]struct{})

	for _, in := range list {
		k := in.Key()

		if cls.IsCommander(in.Section) {
			commanders[k] = struct{}{}
			c.Commanders = upsert(c.Commanders, in)
			continue
		}

		mainDeck[k] = struct{}{}
		cat := cls.Category(in)
		if parked, i := c.locate(k, cat); i >= 0 {
			setMutable(&c.MainDeck[parked][i], in)
			continue
		}
		c.MainDeck[cat] = append(c.MainDeck[cat], in)
	}

	c.Commanders = retain(c.Commanders, commanders)
	for cat, cards := range c.MainDeck {
		c.MainDeck[cat] = retain(cards, mainDeck)
	}
}

// ApplyUpdates merges enrichment results into c. Main deck cards are filed
// under the category their type line now gives them.
func ApplyUpdates(c *Cache, updates []Update, cls *card.Classifier) {
	c.init()
	for _, u := range updates {
		if cls.IsCommander(u.Card.Section) {
			if i := find(c.Commanders, u.Key); i >= 0 {
				c.Commanders[i] = u.Card
			}
			continue
		}

		cat := cls.Category(u.Card)
		if i := find(c.MainDeck[cat], u.Key); i >= 0 {
			c.MainDeck[cat][i] = u.Card
			continue
		}

		// Remove the stale entry from wherever it was parked, usually Unknown.
		for other, cards := range c.MainDeck {
			if i := find(cards, u.Key); i >= 0 {
				c.MainDeck[other] = append(cards[:i:i], cards[i+1:]...)
			}
		}

		if i := find(c.MainDeck[cat], u.Card.Key()); i >= 0 {
			c.MainDeck[cat][i] = u.Card
			continue
		}
		c.MainDeck[cat] = append(c.MainDeck[cat], u.Card)
	}
}

// locate finds k in the preferred category, then in any other category.
func (c *Cache) locate(k card.Key, preferred string) (string, int) {
	if i := find(c.MainDeck[preferred], k); i >= 0 {
		return preferred, i
	}

	cats := make([]string, 0, len(c.MainDeck))
	for cat := range c.MainDeck {
		if cat != preferred {
			cats = append(cats, cat)
		}
	}
	sort.Strings(cats)

	for _, cat := range cats {
		if i := find(c.MainDeck[cat], k); i >= 0 {
			return cat, i
		}
	}
	return "", -1
}

func upsert(list []card.Card, in card.Card) []card.Card {
	if i := find(list, in.Key()); i >= 0 {
		setMutable(&list[i], in)
		return list
	}
	return append(list, in)
}

// setMutable copies the fields a user may edit in the list onto a cached card.
func setMutable(dst *card.Card, src card.Card) {
	dst.Count = src.Count
	dst.Foil = src.Foil
}

func retain(list []card.Card, keep map[card.Key]struct{}) []card.Card {
	out := make([]card.Card, 0, len(list))
	for _, in := range list {
		if _, ok := keep[in.Key()]; ok {
			out = append(out, in)
		}
	}
	return out
}
