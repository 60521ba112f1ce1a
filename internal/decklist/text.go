package decklist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

var (
	sectionLine = regexp.MustCompile(`^\s*//`)
	countPrefix = regexp.MustCompile(`^(\d+)(?:[Xx]\b)?`)
	setSuffix   = regexp.MustCompile(`\[([^\[\]]*)\]\s*([Ff]?)$`)
	bareFoil    = regexp.MustCompile(`\S\s+[Ff]$`)
)

// ParseText reads a freeform list. Blank lines are skipped and "//Name" lines
// switch the section of the lines that follow.
func ParseText(raw string) ([]card.Card, error) {
	section := DefaultSection
	cards := []card.Card{}

	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if sectionLine.MatchString(line) {
			section = strings.TrimSpace(line[strings.Index(line, "//")+2:])
			continue
		}

		c, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		c.Section = section
		cards = append(cards, c)
	}

	return cards, nil
}

// ParseLine reads a single "[COUNT[x]] NAME [[SET[:NUMBER]]] [F]" line.
func ParseLine(line string) (card.Card, error) {
	rest := strings.TrimSpace(line)
	c := card.Card{Count: 1}

	if m := countPrefix.FindStringSubmatch(rest); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return c, fmt.Errorf("count %q: %w", m[1], err)
		}
		c.Count = n
		rest = rest[len(m[0]):]
	}

	if m := setSuffix.FindStringSubmatchIndex(rest); m != nil {
		suffix := rest[m[0]:]
		inner := strings.TrimSpace(rest[m[2]:m[3]])
		hasF := m[5] > m[4]

		// The F must sit past "[XYZ" so a set code cannot be read as foil.
		c.Foil = hasF && strings.LastIndex(strings.ToUpper(suffix), "F") >= 4

		if i := strings.Index(inner, ":"); i > -1 {
			if i != 3 {
				return c, fmt.Errorf("%w: %s", ErrSetCodeSize, inner)
			}
			c.CollectorNumber = card.Str(strings.TrimSpace(inner[i+1:]))
			inner = inner[:i]
		}
		c.Set = strings.TrimSpace(inner)
		rest = rest[:m[0]]
	} else if m := bareFoil.FindStringIndex(rest); m != nil {
		// ToLine writes "F" without brackets for foils that have no set.
		c.Foil = true
		rest = rest[:m[1]-1]
	}

	c.Name = strings.TrimSpace(rest)
	if c.Name == "" {
		return c, fmt.Errorf("%w: %q", ErrMissingName, line)
	}
	return c, nil
}
