package extraction

import (
	"testing"
)

func TestParseCategoryResponse(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantErr      bool
		wantCategory string
		wantContent  string
	}{
		{
			name:         "clean envelope",
			raw:          `{"categories": {"Goals": {"content": "Wants to relocate", "confidence": 0.9}}}`,
			wantCategory: "Goals",
			wantContent:  "Wants to relocate",
		},
		{
			name:         "bare map without envelope",
			raw:          `{"Avocation": {"content": "Plays chess", "confidence": 0.8}}`,
			wantCategory: "Avocation",
			wantContent:  "Plays chess",
		},
		{
			name:         "json code fence",
			raw:          "```json\n{\"categories\": {\"Social\": {\"content\": \"Met at the gallery\", \"confidence\": 0.7}}}\n```",
			wantCategory: "Social",
			wantContent:  "Met at the gallery",
		},
		{
			name:         "raw newline inside string",
			raw:          "{\"categories\": {\"Goals\": {\"content\": \"line one\nline two\", \"confidence\": 0.9}}}",
			wantCategory: "Goals",
			wantContent:  "line one\nline two",
		},
		{
			name:         "prose around the object",
			raw:          `Here is the analysis you asked for: {"categories": {"Wellbeing": {"content": "Recovering from surgery", "confidence": 0.85}}} Hope this helps!`,
			wantCategory: "Wellbeing",
			wantContent:  "Recovering from surgery",
		},
		{
			name:    "not json at all",
			raw:     "I could not categorize this note.",
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseCategoryResponse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCategoryResponse() error = %v", err)
			}
			cr, ok := result[tt.wantCategory]
			if !ok {
				t.Fatalf("missing category %q in %v", tt.wantCategory, result)
			}
			if cr.Content != tt.wantContent {
				t.Errorf("content = %q, want %q", cr.Content, tt.wantContent)
			}
		})
	}
}

func TestRepairControlChars(t *testing.T) {
	in := "{\"a\": \"x\ny\tz\"}"
	want := `{"a": "x\ny\tz"}`
	if got := repairControlChars(in); got != want {
		t.Errorf("repairControlChars() = %q, want %q", got, want)
	}

	// Newlines outside strings are legal JSON whitespace and stay untouched.
	in = "{\n\"a\": \"b\"\n}"
	if got := repairControlChars(in); got != in {
		t.Errorf("whitespace outside strings changed: %q", got)
	}

	// Already-escaped sequences are not double-escaped.
	in = `{"a": "x\ny"}`
	if got := repairControlChars(in); got != in {
		t.Errorf("escaped sequence changed: %q", got)
	}
}

func TestExtractBalancedObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `noise {"a": 1} trailing`, `{"a": 1}`},
		{"nested object", `x {"a": {"b": 2}} y`, `{"a": {"b": 2}}`},
		{"brace inside string", `{"a": "}"}`, `{"a": "}"}`},
		{"no object", "nothing here", ""},
		{"unbalanced", `{"a": 1`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractBalancedObject(tt.in); got != tt.want {
				t.Errorf("extractBalancedObject() = %q, want %q", got, tt.want)
			}
		})
	}
}
