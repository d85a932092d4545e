package extraction

import (
	"encoding/json"
	"fmt"
	"strings"
)

// llmResponse is the JSON envelope providers are asked to return. Some
// models omit the "categories" wrapper, so parsing also accepts a bare map.
type llmResponse struct {
	Categories CategoryMap `json:"categories"`
}

// stripCodeFences removes markdown code fences that chat models wrap JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

// repairControlChars escapes raw newlines, carriage returns, tabs and other
// control characters that occur inside quoted strings. LLMs routinely emit
// these unescaped, which json.Unmarshal rejects. The scan tracks quote and
// escape state character by character; it is a best-effort patch, not a full
// parser, and pathological inputs can still defeat it.
func repairControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	inString := false
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}

		switch {
		case r == '\\' && inString:
			b.WriteRune(r)
			escaped = true
		case r == '"':
			inString = !inString
			b.WriteRune(r)
		case inString && r == '\n':
			b.WriteString(`\n`)
		case inString && r == '\r':
			b.WriteString(`\r`)
		case inString && r == '\t':
			b.WriteString(`\t`)
		case inString && r < 0x20:
			b.WriteString(fmt.Sprintf(`\u%04x`, r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// extractBalancedObject returns the first balanced {...} substring, skipping
// braces inside quoted strings. Empty string when none exists.
func extractBalancedObject(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if escaped {
			escaped = false
			continue
		}
		switch {
		case r == '\\' && inString:
			escaped = true
		case r == '"':
			inString = !inString
		case r == '{' && !inString:
			if depth == 0 {
				start = i
			}
			depth++
		case r == '}' && !inString:
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}

// parseCategoryResponse turns raw LLM output into a CategoryMap. Parse order:
// direct unmarshal, control-character repair, then balanced-object
// extraction over the repaired text.
func parseCategoryResponse(raw string) (CategoryMap, error) {
	cleaned := stripCodeFences(raw)

	if m, err := unmarshalCategories(cleaned); err == nil {
		return m, nil
	}

	repaired := repairControlChars(cleaned)
	if m, err := unmarshalCategories(repaired); err == nil {
		return m, nil
	}

	if obj := extractBalancedObject(repaired); obj != "" {
		if m, err := unmarshalCategories(obj); err == nil {
			return m, nil
		}
	}

	return nil, fmt.Errorf("response is not parseable JSON")
}

func unmarshalCategories(s string) (CategoryMap, error) {
	var envelope llmResponse
	if err := json.Unmarshal([]byte(s), &envelope); err == nil && envelope.Categories != nil {
		return envelope.Categories, nil
	}

	// Some models skip the envelope and return the category map directly.
	var bare CategoryMap
	if err := json.Unmarshal([]byte(s), &bare); err != nil {
		return nil, err
	}
	return bare, nil
}
