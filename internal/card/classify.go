package card

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Unknown is the category for cards whose type could not be determined.
const Unknown = "Unknown"

// ClassifierConfig is the static data the classifier works from.
type ClassifierConfig struct {
	// Categories in priority order; the first substring match wins.
	Categories []string `toml:"categories"`
	// CommanderAliases are matched against the uppercased section label.
	CommanderAliases []string `toml:"commander_aliases"`
}

// DefaultClassifierConfig returns the built-in category and alias lists.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Categories: []string{
			"Creature",
			"Enchantment",
			"Artifact",
			"Planeswalker",
			"Instant",
			"Sorcery",
			"Land",
			"Battle",
			"Tribal",
		},
		CommanderAliases: []string{
			"COMMANDER",
			"COMMANDERS",
		},
	}
}

// LoadClassifierConfig decodes a TOML file. Lists missing from the file keep
// their defaults.
func LoadClassifierConfig(path string) (ClassifierConfig, error) {
	cfg := DefaultClassifierConfig()
	var file ClassifierConfig
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return cfg, fmt.Errorf("decode classifier config %s: %w", path, err)
	}
	if len(file.Categories) > 0 {
		cfg.Categories = file.Categories
	}
	if len(file.CommanderAliases) > 0 {
		cfg.CommanderAliases = file.CommanderAliases
	}
	return cfg, nil
}

// Classifier maps type lines and section labels to categories.
type Classifier struct {
	categories []string
	aliases    map[string]struct{}
}

// NewClassifier builds a classifier from cfg.
func NewClassifier(cfg ClassifierConfig) *Classifier {
	c := &Classifier{
		categories: make([]string, 0, len(cfg.Categories)),
		aliases:    make(map[string]struct{}, len(cfg.CommanderAliases)),
	}
	for _, cat := range cfg.Categories {
		if cat != "" && cat != Unknown {
			c.categories = append(c.categories, cat)
		}
	}
	for _, a := range cfg.CommanderAliases {
		c.aliases[strings.ToUpper(a)] = struct{}{}
	}
	return c
}

// DefaultClassifier returns a classifier over DefaultClassifierConfig.
func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultClassifierConfig())
}

// Categories returns the categories in priority order, without Unknown.
func (c *Classifier) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// IsCommander reports whether section names the commander zone.
func (c *Classifier) IsCommander(section string) bool {
	if section == "" {
		return false
	}
	_, ok := c.aliases[strings.ToUpper(section)]
	return ok
}

// Classify returns the first category contained in typeLine, or Unknown.
func (c *Classifier) Classify(typeLine string) string {
	if typeLine == "" {
		return Unknown
	}
	for _, cat := range c.categories {
		if strings.Contains(typeLine, cat) {
			return cat
		}
	}
	return Unknown
}

// Category classifies a card by its type line, falling back to its section.
func (c *Classifier) Category(card Card) string {
	if cat := c.Classify(Value(card.TypeLine)); cat != Unknown {
		return cat
	}
	return c.Classify(card.Section)
}

// ValidCategory reports whether name is a configured category or Unknown.
func (c *Classifier) ValidCategory(name string) bool {
	if name == Unknown {
		return true
	}
	for _, cat := range c.categories {
		if cat == name {
			return true
		}
	}
	return false
}
