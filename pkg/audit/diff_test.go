package audit

import (
	"strings"
	"testing"
)

func TestDiffLines(t *testing.T) {
	tests := []struct {
		name        string
		oldText     string
		newText     string
		wantAdded   []string
		wantRemoved []string
	}{
		{
			name:      "line added",
			oldText:   "keeps bees",
			newText:   "keeps bees\nplays violin",
			wantAdded: []string{"plays violin"},
		},
		{
			name:        "line removed",
			oldText:     "keeps bees\nplays violin",
			newText:     "keeps bees",
			wantRemoved: []string{"plays violin"},
		},
		{
			name:        "line replaced",
			oldText:     "works at Acme",
			newText:     "works at Globex",
			wantAdded:   []string{"works at Globex"},
			wantRemoved: []string{"works at Acme"},
		},
		{
			name:    "identical ignoring blanks and whitespace",
			oldText: "a\n\nb",
			newText: "  a  \nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DiffLines(tt.oldText, tt.newText)
			if !equalLines(d.Added, tt.wantAdded) {
				t.Errorf("Added = %v, want %v", d.Added, tt.wantAdded)
			}
			if !equalLines(d.Removed, tt.wantRemoved) {
				t.Errorf("Removed = %v, want %v", d.Removed, tt.wantRemoved)
			}
		})
	}
}

func TestFormatCategoryChange(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		got := FormatCategoryChange("Goals", "", "wants to move abroad")
		if !strings.HasPrefix(got, "[Goals] created") {
			t.Errorf("got %q", got)
		}
		if !strings.Contains(got, "added: wants to move abroad") {
			t.Errorf("missing added line: %q", got)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		got := FormatCategoryChange("Goals", "wants to move abroad", "")
		if !strings.HasPrefix(got, "[Goals] deleted") {
			t.Errorf("got %q", got)
		}
		if !strings.Contains(got, "removed: wants to move abroad") {
			t.Errorf("missing removed line: %q", got)
		}
	})

	t.Run("updated", func(t *testing.T) {
		got := FormatCategoryChange("Avocation", "plays chess\nkeeps bees", "plays chess\npaints")
		if !strings.HasPrefix(got, "[Avocation] updated") {
			t.Errorf("got %q", got)
		}
		if !strings.Contains(got, "removed: keeps bees") || !strings.Contains(got, "added: paints") {
			t.Errorf("diff lines missing: %q", got)
		}
		if strings.Contains(got, "plays chess") {
			t.Errorf("unchanged line should not appear: %q", got)
		}
	})
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
