package deckcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

func TestImport(t *testing.T) {
	for _, raw := range []string{"", "{not json", "[]"} {
		c := Import(raw)
		require.NotNil(t, c, raw)
		assert.Empty(t, c.Commanders, raw)
		assert.Empty(t, c.MainDeck, raw)
		assert.NotNil(t, c.MainDeck, raw)
	}

	c := Import(`{"commanders":null}`)
	assert.NotNil(t, c.Commanders)
	assert.NotNil(t, c.MainDeck)
}

func TestEncodeDecode(t *testing.T) {
	c := New()
	c.Commanders = []card.Card{{Name: "Tymna the Weaver", Count: 1, ColorIdentity: []string{"W", "B"}}}
	c.MainDeck["Land"] = []card.Card{{Name: "Plains", Count: 3, ImageURIs: card.ImageFailure("404")}}

	raw, err := c.Encode()
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestNormalize(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()
	c.MainDeck["Ramp"] = []card.Card{{Name: "Sol Ring", Count: 1}}
	c.MainDeck[card.Unknown] = []card.Card{{Name: "Sol Ring", Count: 1}, {Name: "Mystery", Count: 1}}
	c.MainDeck["Land"] = []card.Card{{Name: "Plains", Count: 1}}

	c.Normalize(cls)

	assert.NotContains(t, c.MainDeck, "Ramp")
	assert.Len(t, c.MainDeck[card.Unknown], 2)
	assert.Len(t, c.MainDeck["Land"], 1)
}

func TestCategories(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()
	for _, cat := range []string{"Land", "Zeta", card.Unknown, "Creature", "Alpha"} {
		c.MainDeck[cat] = []card.Card{}
	}

	assert.Equal(t, []string{"Creature", "Land", card.Unknown, "Alpha", "Zeta"}, c.Categories(cls))

	c.Compact()
	assert.Empty(t, c.Categories(cls))
}

func TestSort(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()
	c.Commanders = []card.Card{
		{Name: "Ardenn, Intrepid Archaeologist", Count: 1},
		{Name: "Rograkh, Son of Rohgahh", Count: 1, Section: "Commander"},
	}
	c.MainDeck["Creature"] = []card.Card{
		{Name: "Craterhoof Behemoth", Count: 1, ManaCost: card.Str("{5}{G}{G}{G}")},
		{Name: "Birds of Paradise", Count: 1, ManaCost: card.Str("{G}")},
		{Name: "Mystery", Count: 1},
	}

	c.Sort(cls)

	names := make([]string, 0, 3)
	for _, in := range c.MainDeck["Creature"] {
		names = append(names, in.Name)
	}
	assert.Equal(t, []string{"Birds of Paradise", "Craterhoof Behemoth", "Mystery"}, names)
	assert.Equal(t, 5, c.Len())
}
