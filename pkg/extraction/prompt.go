package extraction

import (
	"fmt"

	"personal-crm-be/internal/constant"
)

// buildSystemPrompt returns the fixed instruction block shared by all LLM
// categorizers.
func buildSystemPrompt() string {
	return fmt.Sprintf(`You are an AI assistant that analyzes personal notes about a contact and extracts structured information into specific categories.

Available categories:
%s
Return ONLY a JSON object with this structure:
{
    "categories": {
        "category_name": {"content": "specific factual information extracted", "confidence": 0.85}
    }
}

IMPORTANT:
- Only include categories that have relevant content from the note
- Extract specific, factual information - not interpretations
- Confidence should be between 0.0 and 1.0 based on clarity of information
- Be precise and concise in your extraction
- PRESERVE FORMATTING: Maintain the original structure, bullet points, and line breaks from the input text

NEGATIVE CONSTRAINTS (What NOT to do):
- Do NOT infer feelings, emotions, or internal states not explicitly stated
- Do NOT add information that is not present in the note text
- Do NOT extrapolate future plans or intentions unless explicitly mentioned
- Do NOT categorize information into multiple categories if it clearly belongs to one
- Do NOT flatten structured content into a single paragraph`, constant.CategoryDefinitions)
}

// buildUserPrompt assembles the per-note prompt. Retrieved history is marked
// reference-only: the new note is the only extractable source.
func buildUserPrompt(note, contactName, history string) string {
	contextSection := ""
	if history != "" && history != constant.NoHistorySentinel {
		contextSection = fmt.Sprintf(`**Retrieved Relevant History (reference only, do NOT extract from it):**
%s

Use the retrieved history to maintain consistency and build upon existing knowledge.

`, history)
	}

	return fmt.Sprintf(`%sAnalyze this note about %s and extract structured information.

**New Note to Analyze (the only extractable source):**
%s

Return ONLY the JSON response.`, contextSection, contactName, note)
}
