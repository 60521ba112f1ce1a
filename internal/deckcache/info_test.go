package deckcache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

func TestMissing(t *testing.T) {
	img := card.FaceImages("https://img/front.jpg", "")
	c := New()
	c.Commanders = []card.Card{
		{Name: "Complete", ImageURIs: img, ColorIdentity: []string{}, Art: card.Str("https://img/art.jpg")},
		{Name: "No Art", ImageURIs: img, ColorIdentity: []string{"G"}},
		{Name: "No Colors", ImageURIs: img, Art: card.Str("https://img/art.jpg")},
	}
	c.MainDeck["Land"] = []card.Card{
		{Name: "Enriched", ImageURIs: img},
		{Name: "Failed", ImageURIs: card.ImageFailure("404")},
		{Name: "Bare"},
	}

	var names []string
	for _, in := range Missing(c) {
		names = append(names, in.Name)
	}
	assert.ElementsMatch(t, []string{"No Art", "No Colors", "Bare"}, names)
}

func TestImage(t *testing.T) {
	c := New()
	assert.Equal(t, "", Image(c))

	c.Commanders = []card.Card{{Name: "A", Art: card.Str("https://img/a.jpg")}, {Name: "B", Art: card.Str("https://img/b.jpg")}}
	assert.Equal(t, "https://img/a.jpg", Image(c))
}

func TestColors(t *testing.T) {
	c := New()
	assert.Equal(t, Colorless, Colors(c))

	c.Commanders = []card.Card{
		{Name: "Tymna the Weaver", ColorIdentity: []string{"W", "B"}},
		{Name: "Kraum, Ludevic's Opus", ColorIdentity: []string{"U", "R", "B"}},
	}
	assert.Equal(t, "WBUR", Colors(c))

	c.Commanders = []card.Card{{Name: "Kozilek, the Great Distortion", ColorIdentity: []string{}}}
	assert.Equal(t, Colorless, Colors(c))
}
