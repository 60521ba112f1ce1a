package decklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malotkya/CapstoneProject/internal/card"
	"github.com/Malotkya/CapstoneProject/internal/deckcache"
)

func TestToLine(t *testing.T) {
	tests := []struct {
		in   card.Card
		want string
	}{
		{card.Card{Name: "Sol Ring", Count: 1}, "1 Sol Ring"},
		{card.Card{Name: "Island", Count: 10, Set: "UST"}, "10 Island [UST]"},
		{card.Card{Name: "Lightning Bolt", Count: 2, Set: "2XM", CollectorNumber: card.Str("117"), Foil: true}, "2 Lightning Bolt [2XM:117] F"},
		{card.Card{Name: "Ponder", Count: 1, CollectorNumber: card.Str("5")}, "1 Ponder"},
		{card.Card{Name: "Opt", Count: 4, Foil: true}, "4 Opt F"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ToLine(tt.in))
		})
	}
}

func TestToText(t *testing.T) {
	cls := card.DefaultClassifier()
	c := deckcache.New()
	c.Commanders = []card.Card{{Name: "Kenrith, the Returned King", Count: 1, Set: "ELD", CollectorNumber: card.Str("303")}}
	c.MainDeck["Land"] = []card.Card{{Name: "Plains", Count: 12}}
	c.MainDeck["Creature"] = []card.Card{{Name: "Grizzly Bears", Count: 1, Foil: true}}
	c.MainDeck["Sorcery"] = []card.Card{}

	got := ToText(c, cls)

	want := "//Commander\n" +
		"1 Kenrith, the Returned King [ELD:303]\n" +
		"\n//Creature\n" +
		"1 Grizzly Bears F\n" +
		"\n//Land\n" +
		"12 Plains\n"
	assert.Equal(t, want, got)
	assert.NotContains(t, c.MainDeck, "Sorcery", "empty categories are dropped")
}

func TestToText_NoCommanders(t *testing.T) {
	c := deckcache.New()
	c.MainDeck[card.Unknown] = []card.Card{{Name: "Mystery", Count: 1}}

	assert.Equal(t, "\n//Unknown\n1 Mystery\n", ToText(c, card.DefaultClassifier()))
}

func TestToText_RoundTrip(t *testing.T) {
	cls := card.DefaultClassifier()
	original := deckcache.New()
	original.Commanders = []card.Card{
		{Name: "Atraxa, Praetors' Voice", Count: 1, Set: "2XM", CollectorNumber: card.Str("190"), Foil: true},
		{Name: "Tymna the Weaver", Count: 1},
	}
	original.MainDeck["Artifact"] = []card.Card{
		{Name: "Sol Ring", Count: 1, Set: "C21", CollectorNumber: card.Str("263")},
		{Name: "Arcane Signet", Count: 1, Set: "ELD"},
	}
	original.MainDeck["Land"] = []card.Card{{Name: "Forest", Count: 9, Foil: true}}
	original.MainDeck[card.Unknown] = []card.Card{{Name: "Mystery Card", Count: 2}}

	text := ToText(original, cls)
	list, err := Parse(text)
	require.NoError(t, err)

	rebuilt := deckcache.New()
	deckcache.Reconcile(rebuilt, list, cls)

	assert.ElementsMatch(t, summarize(original.Commanders), summarize(rebuilt.Commanders))
	require.Equal(t, len(original.MainDeck), len(rebuilt.MainDeck))
	for cat, cards := range original.MainDeck {
		assert.ElementsMatch(t, summarize(cards), summarize(rebuilt.MainDeck[cat]), cat)
	}
}

type summary struct {
	Key   card.Key
	Count int
	Foil  bool
}

func summarize(list []card.Card) []summary {
	out := make([]summary, len(list))
	for i, c := range list {
		out[i] = summary{Key: c.Key(), Count: c.Count, Foil: c.Foil}
	}
	return out
}

func TestDisplay(t *testing.T) {
	cls := card.DefaultClassifier()
	c := deckcache.New()
	c.Commanders = []card.Card{{Name: "Kenrith,  the   Returned King", Count: 1}}
	c.MainDeck["Land"] = []card.Card{{Name: "Plains", Count: 12}, {Name: "Island", Count: 3}}
	c.MainDeck["Creature"] = []card.Card{{Name: "Grizzly Bears", Count: 1}}

	assert.Equal(t, []string{
		"1 Kenrith, the Returned King",
		"1 Grizzly Bears",
		"12 Plains",
		"3 Island",
	}, DisplayList(c, cls))
	assert.Equal(t, 15, CountCards(c.MainDeck["Land"]))
	assert.Equal(t, 0, CountCards(nil))
}
