package importer

import (
	"fmt"

	"github.com/Malotkya/CapstoneProject/internal/decklist"
)

// Result tracks what one pipeline run did.
type Result struct {
	Format   decklist.Format `json:"format,omitempty"`
	Cards    int             `json:"cards"`
	Missing  int             `json:"missing"`
	Enriched int             `json:"enriched"`
	Failed   int             `json:"failed"`
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.Cards += other.Cards
	r.Missing += other.Missing
	r.Enriched += other.Enriched
	r.Failed += other.Failed
}

// Summary returns a human-readable summary of the run.
func (r Result) Summary() string {
	format := string(r.Format)
	if format == "" {
		format = "-"
	}
	return fmt.Sprintf(
		"format=%s cards=%d missing=%d enriched=%d failed=%d",
		format, r.Cards, r.Missing, r.Enriched, r.Failed,
	)
}
