package decklist

import (
	"strconv"
	"strings"

	"github.com/Malotkya/CapstoneProject/internal/card"
	"github.com/Malotkya/CapstoneProject/internal/deckcache"
)

// CommanderSection is the header written above the commanders.
const CommanderSection = "Commander"

// ToText writes c as a freeform list that ParseText reads back into the same
// cards. Empty categories are removed from c.
func ToText(c *deckcache.Cache, cls *card.Classifier) string {
	c.Compact()

	var b strings.Builder
	if len(c.Commanders) > 0 {
		b.WriteString("//" + CommanderSection + "\n")
	}
	for _, in := range c.Commanders {
		b.WriteString(ToLine(in))
		b.WriteByte('\n')
	}

	for _, cat := range c.Categories(cls) {
		b.WriteString("\n//" + cat + "\n")
		for _, in := range c.MainDeck[cat] {
			b.WriteString(ToLine(in))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// ToLine formats one card as "count name [set:number] F".
func ToLine(in card.Card) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(in.Count))
	b.WriteByte(' ')
	b.WriteString(in.Name)

	if in.Set != "" {
		b.WriteString(" [")
		b.WriteString(in.Set)
		if in.CollectorNumber != nil {
			b.WriteByte(':')
			b.WriteString(*in.CollectorNumber)
		}
		b.WriteByte(']')
	}

	if in.Foil {
		b.WriteString(" F")
	}
	return b.String()
}

// DisplayLine formats a card for the purchase and download buttons: the count
// and the name with runs of whitespace collapsed.
func DisplayLine(in card.Card) string {
	return strconv.Itoa(in.Count) + " " + strings.Join(strings.Fields(in.Name), " ")
}

// DisplayList returns one DisplayLine per card, commanders first.
func DisplayList(c *deckcache.Cache, cls *card.Classifier) []string {
	out := make([]string, 0, c.Len())
	for _, in := range c.Commanders {
		out = append(out, DisplayLine(in))
	}
	for _, cat := range c.Categories(cls) {
		for _, in := range c.MainDeck[cat] {
			out = append(out, DisplayLine(in))
		}
	}
	return out
}

// CountCards sums the copies in list.
func CountCards(list []card.Card) int {
	n := 0
	for _, in := range list {
		n += in.Count
	}
	return n
}
