package extraction

import (
	"context"
	"strings"

	"personal-crm-be/internal/constant"
)

// Keyword sets for the deterministic fallback. Matching is lowercase
// substring, mirroring the loose matching the categories tolerate.
var (
	goalKeywords       = []string{"goal", "want", "plan", "aspire", "hope", "aim"}
	actionableKeywords = []string{"task", "todo", "remind", "follow", "call", "meet"}
	avocationKeywords  = []string{"like", "love", "enjoy", "hobby", "interest", "passion", "favorite", "favourite"}
)

const fallbackExcerptLimit = 200

// HeuristicCategorizer is the terminal member of the chain. It never fails
// and never returns an empty map, which is the only availability guarantee
// the extraction pipeline offers.
type HeuristicCategorizer struct{}

var _ Categorizer = &HeuristicCategorizer{}

func NewHeuristicCategorizer() *HeuristicCategorizer {
	return &HeuristicCategorizer{}
}

func (h *HeuristicCategorizer) Name() string {
	return "heuristic"
}

func (h *HeuristicCategorizer) Categorize(ctx context.Context, note, contactName, history string) (CategoryMap, error) {
	// Structured notes first: a header line followed by bullets classifies
	// all bullets under the header's keyword category.
	if result := h.categorizeHeaderList(note); result != nil {
		return result, nil
	}

	noteLower := strings.ToLower(note)
	categories := CategoryMap{}

	if containsAny(noteLower, goalKeywords) {
		categories[constant.CategoryGoals] = CategoryResult{
			Content:    truncate(note, fallbackExcerptLimit),
			Confidence: 0.5,
		}
	}
	if containsAny(noteLower, actionableKeywords) {
		categories[constant.CategoryActionable] = CategoryResult{
			Content:    truncate(note, fallbackExcerptLimit),
			Confidence: 0.5,
		}
	}
	if containsAny(noteLower, avocationKeywords) {
		categories[constant.CategoryAvocation] = CategoryResult{
			Content:    truncate(note, fallbackExcerptLimit),
			Confidence: 0.6,
		}
	}

	if len(categories) == 0 {
		categories[constant.CategoryOthers] = CategoryResult{
			Content:    truncate(note, fallbackExcerptLimit),
			Confidence: 0.3,
		}
	}

	return categories, nil
}

// categorizeHeaderList detects a "header line + following bullet list"
// structure. When the header matches a keyword set, every bullet inherits
// that category. Returns nil when the structure is absent.
func (h *HeuristicCategorizer) categorizeHeaderList(note string) CategoryMap {
	lines := strings.Split(note, "\n")

	header := ""
	var bullets []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isBullet(trimmed) {
			if header == "" {
				return nil // bullets before any header
			}
			bullets = append(bullets, trimmed)
			continue
		}
		if header != "" {
			return nil // a second non-bullet line breaks the structure
		}
		header = trimmed
	}

	if header == "" || len(bullets) == 0 {
		return nil
	}

	headerLower := strings.ToLower(header)
	category := ""
	confidence := 0.7
	switch {
	case containsAny(headerLower, avocationKeywords) || strings.Contains(headerLower, "hobbies"):
		category = constant.CategoryAvocation
	case containsAny(headerLower, goalKeywords):
		category = constant.CategoryGoals
	case containsAny(headerLower, actionableKeywords):
		category = constant.CategoryActionable
	default:
		return nil
	}

	return CategoryMap{
		category: {
			Content:    strings.Join(bullets, "\n"),
			Confidence: confidence,
		},
	}
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// truncate keeps the first limit characters. Slicing runes rather than
// bytes so multi-byte input is never cut mid-sequence.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
