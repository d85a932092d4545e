// Package extraction turns free-text notes about a contact into per-category
// facts. An ordered chain of categorizers (LLM providers first, a
// deterministic heuristic last) guarantees every note yields a non-empty
// category map regardless of provider availability.
package extraction

import (
	"context"
)

// CategoryResult is one category's extracted content with the extractor's
// confidence in [0.0, 1.0].
type CategoryResult struct {
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
}

// CategoryMap maps category label to extracted result.
type CategoryMap map[string]CategoryResult

// Categorizer is a single categorization capability. Implementations may
// fail; the chain moves on to the next one.
type Categorizer interface {
	Name() string
	Categorize(ctx context.Context, note, contactName, history string) (CategoryMap, error)
}
