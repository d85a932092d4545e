package extraction

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"personal-crm-be/internal/constant"
)

func TestHeuristicKeywordScan(t *testing.T) {
	h := NewHeuristicCategorizer()

	tests := []struct {
		name           string
		note           string
		wantCategory   string
		wantConfidence float64
	}{
		{
			name:           "goal keyword",
			note:           "She wants to run her own studio someday",
			wantCategory:   constant.CategoryGoals,
			wantConfidence: 0.5,
		},
		{
			name:           "actionable keyword",
			note:           "Remember to call him about the apartment",
			wantCategory:   constant.CategoryActionable,
			wantConfidence: 0.5,
		},
		{
			name:           "avocation keyword",
			note:           "His favorite thing is woodworking on weekends",
			wantCategory:   constant.CategoryAvocation,
			wantConfidence: 0.6,
		},
		{
			name:           "no keywords falls back to Others",
			note:           "It rained the whole afternoon",
			wantCategory:   constant.CategoryOthers,
			wantConfidence: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.Categorize(context.Background(), tt.note, "Alex", "")
			if err != nil {
				t.Fatalf("Categorize() error = %v", err)
			}
			cr, ok := result[tt.wantCategory]
			if !ok {
				t.Fatalf("expected category %q, got %v", tt.wantCategory, result)
			}
			if cr.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", cr.Confidence, tt.wantConfidence)
			}
			if cr.Content == "" {
				t.Error("content should not be empty")
			}
		})
	}
}

func TestHeuristicHeaderList(t *testing.T) {
	h := NewHeuristicCategorizer()

	note := "Hobbies\n- Cooking\n- Hiking"
	result, err := h.Categorize(context.Background(), note, "Alex", "")
	if err != nil {
		t.Fatalf("Categorize() error = %v", err)
	}

	cr, ok := result[constant.CategoryAvocation]
	if !ok {
		t.Fatalf("expected Avocation, got %v", result)
	}
	if cr.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", cr.Confidence)
	}
	if cr.Content != "- Cooking\n- Hiking" {
		t.Errorf("content = %q, want the bullet lines", cr.Content)
	}
}

func TestHeuristicHeaderListVariants(t *testing.T) {
	h := NewHeuristicCategorizer()

	tests := []struct {
		name         string
		note         string
		wantCategory string
	}{
		{
			name:         "goals header with asterisk bullets",
			note:         "Goals for this year\n* Finish the degree\n* Move out",
			wantCategory: constant.CategoryGoals,
		},
		{
			name:         "tasks header with unicode bullets",
			note:         "Tasks\n• Send invoice\n• Book flight",
			wantCategory: constant.CategoryActionable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.Categorize(context.Background(), tt.note, "Alex", "")
			if err != nil {
				t.Fatalf("Categorize() error = %v", err)
			}
			if _, ok := result[tt.wantCategory]; !ok {
				t.Errorf("expected %q, got %v", tt.wantCategory, result)
			}
		})
	}
}

func TestHeuristicHeaderListRejectsBrokenStructure(t *testing.T) {
	h := NewHeuristicCategorizer()

	// A second prose line after the header breaks the header+bullets shape,
	// so the note goes through the keyword scan instead.
	note := "Hobbies\nShe mentioned these in passing\n- Cooking"
	result, _ := h.Categorize(context.Background(), note, "Alex", "")
	if cr, ok := result[constant.CategoryAvocation]; ok && cr.Confidence == 0.7 {
		t.Errorf("broken structure should not get header-list confidence: %v", result)
	}
}

func TestHeuristicOthersExcerptLimit(t *testing.T) {
	h := NewHeuristicCategorizer()

	note := strings.Repeat("x", 500)
	result, _ := h.Categorize(context.Background(), note, "Alex", "")
	cr := result[constant.CategoryOthers]
	if len(cr.Content) != fallbackExcerptLimit {
		t.Errorf("excerpt length = %d, want %d", len(cr.Content), fallbackExcerptLimit)
	}
}

func TestHeuristicOthersExcerptMultibyte(t *testing.T) {
	h := NewHeuristicCategorizer()

	note := strings.Repeat("é", 300)
	result, _ := h.Categorize(context.Background(), note, "Alex", "")
	cr := result[constant.CategoryOthers]
	if got := utf8.RuneCountInString(cr.Content); got != fallbackExcerptLimit {
		t.Errorf("excerpt runes = %d, want %d", got, fallbackExcerptLimit)
	}
	if !utf8.ValidString(cr.Content) {
		t.Error("excerpt is not valid UTF-8")
	}
}
