package deckcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

func parsed(name, section string, count int) card.Card {
	return card.Card{Name: name, Section: section, Count: count}
}

func TestReconcile_AddsNewCards(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()

	Reconcile(c, []card.Card{
		parsed("Kenrith, the Returned King", "Commander", 1),
		parsed("Sol Ring", "main deck", 1),
		{Name: "Plains", Section: "main deck", Count: 12, TypeLine: card.Str("Basic Land — Plains")},
		parsed("Cultivate", "Sorcery", 1),
	}, cls)

	require.Len(t, c.Commanders, 1)
	assert.Equal(t, "Kenrith, the Returned King", c.Commanders[0].Name)
	assert.Len(t, c.MainDeck[card.Unknown], 1)
	assert.Equal(t, "Sol Ring", c.MainDeck[card.Unknown][0].Name)
	assert.Len(t, c.MainDeck["Land"], 1)
	assert.Len(t, c.MainDeck["Sorcery"], 1, "section label is used when the type line is missing")
}

func TestReconcile_KeepsEnrichedData(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()
	c.MainDeck["Artifact"] = []card.Card{{
		Name:      "Sol Ring",
		Count:     1,
		TypeLine:  card.Str("Artifact"),
		ManaCost:  card.Str("{1}"),
		ImageURIs: card.FaceImages("https://img/front.jpg", ""),
	}}

	Reconcile(c, []card.Card{{Name: "Sol Ring", Count: 3, Foil: true, Section: "main deck"}}, cls)

	require.Len(t, c.MainDeck["Artifact"], 1)
	got := c.MainDeck["Artifact"][0]
	assert.Equal(t, 3, got.Count)
	assert.True(t, got.Foil)
	assert.Equal(t, "{1}", card.Value(got.ManaCost))
	assert.NotNil(t, got.ImageURIs)
	assert.Empty(t, c.MainDeck[card.Unknown], "a parked card must not be duplicated into Unknown")
}

func TestReconcile_DropsRemovedCards(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()
	c.Commanders = []card.Card{{Name: "Tymna the Weaver", Count: 1}, {Name: "Thrasios, Triton Hero", Count: 1}}
	c.MainDeck["Artifact"] = []card.Card{{Name: "Sol Ring", Count: 1}, {Name: "Mana Crypt", Count: 1}}

	Reconcile(c, []card.Card{
		parsed("Tymna the Weaver", "COMMANDER", 1),
		parsed("Sol Ring", "main deck", 1),
	}, cls)

	require.Len(t, c.Commanders, 1)
	assert.Equal(t, "Tymna the Weaver", c.Commanders[0].Name)
	require.Len(t, c.MainDeck["Artifact"], 1)
	assert.Equal(t, "Sol Ring", c.MainDeck["Artifact"][0].Name)
}

func TestReconcile_CommanderAndMainDeckAreSeparate(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()
	c.MainDeck[card.Unknown] = []card.Card{{Name: "Kenrith, the Returned King", Count: 1}}

	Reconcile(c, []card.Card{parsed("Kenrith, the Returned King", "Commander", 1)}, cls)

	assert.Len(t, c.Commanders, 1)
	assert.Empty(t, c.MainDeck[card.Unknown], "moving a card to the commander zone removes it from the main deck")
}

func TestReconcile_Idempotent(t *testing.T) {
	cls := card.DefaultClassifier()
	list := []card.Card{
		parsed("Kenrith, the Returned King", "Commander", 1),
		parsed("Sol Ring", "main deck", 1),
		{Name: "Island", Section: "Lands", Count: 10, Set: "UST"},
		{Name: "Island", Section: "Lands", Count: 2, Set: "UST", CollectorNumber: card.Str("213")},
	}

	c := New()
	Reconcile(c, list, cls)
	first, err := c.Encode()
	require.NoError(t, err)

	Reconcile(c, list, cls)
	second, err := c.Encode()
	require.NoError(t, err)

	assert.JSONEq(t, first, second)
	assert.Len(t, c.MainDeck["Land"], 2, "set and collector number are part of the identity")
	assert.Len(t, c.MainDeck[card.Unknown], 1)
}

func TestReconcile_NoDuplicateKeys(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()
	Reconcile(c, []card.Card{
		parsed("Sol Ring", "main deck", 1),
		parsed("Sol Ring", "main deck", 2),
		parsed("Tymna the Weaver", "Commander", 1),
		parsed("Tymna the Weaver", "Commander", 1),
	}, cls)

	assert.Len(t, c.Commanders, 1)
	require.Len(t, c.MainDeck[card.Unknown], 1, "a repeated line updates the existing entry")
	assert.Equal(t, 2, c.MainDeck[card.Unknown][0].Count)

	Reconcile(c, []card.Card{parsed("Sol Ring", "main deck", 3)}, cls)
	require.Len(t, c.MainDeck[card.Unknown], 1)
	assert.Equal(t, 3, c.MainDeck[card.Unknown][0].Count)
	assert.Empty(t, c.Commanders)
}

func TestApplyUpdates_MovesOutOfUnknown(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()
	c.MainDeck[card.Unknown] = []card.Card{{Name: "sol ring", Count: 1, Section: "main deck"}}

	ApplyUpdates(c, []Update{{
		Key: card.Key{Name: "sol ring"},
		Card: card.Card{
			Name:      "Sol Ring",
			Count:     1,
			Section:   "main deck",
			Set:       "c21",
			TypeLine:  card.Str("Artifact"),
			ImageURIs: card.FaceImages("https://img/front.jpg", ""),
		},
	}}, cls)

	assert.Empty(t, c.MainDeck[card.Unknown])
	require.Len(t, c.MainDeck["Artifact"], 1)
	assert.Equal(t, "Sol Ring", c.MainDeck["Artifact"][0].Name)
	assert.Empty(t, Missing(c))
}

func TestApplyUpdates_InPlace(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()
	c.MainDeck["Land"] = []card.Card{
		{Name: "Forest", Count: 8, TypeLine: card.Str("Basic Land — Forest")},
		{Name: "Island", Count: 8, TypeLine: card.Str("Basic Land — Island")},
	}

	ApplyUpdates(c, []Update{{
		Key:  card.Key{Name: "Island"},
		Card: card.Card{Name: "Island", Count: 8, TypeLine: card.Str("Basic Land — Island"), ImageURIs: card.ImageFailure("404")},
	}}, cls)

	require.Len(t, c.MainDeck["Land"], 2)
	assert.Equal(t, "Island", c.MainDeck["Land"][1].Name)
	assert.True(t, c.MainDeck["Land"][1].ImageURIs.IsError())
}

func TestApplyUpdates_Commander(t *testing.T) {
	cls := card.DefaultClassifier()
	c := New()
	c.Commanders = []card.Card{{Name: "kenrith", Count: 1, Section: "Commander"}}

	ApplyUpdates(c, []Update{{
		Key: card.Key{Name: "kenrith"},
		Card: card.Card{
			Name:          "Kenrith, the Returned King",
			Count:         1,
			Section:       "Commander",
			ColorIdentity: []string{"W", "U", "B", "R", "G"},
			Art:           card.Str("https://img/art.jpg"),
			ImageURIs:     card.FaceImages("https://img/front.jpg", ""),
		},
	}}, cls)

	require.Len(t, c.Commanders, 1)
	assert.Equal(t, "Kenrith, the Returned King", c.Commanders[0].Name)
	assert.Empty(t, c.MainDeck)
}
