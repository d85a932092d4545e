// Package audit builds human-readable change summaries for manual category
// edits. Summaries become the content of manual_edit raw notes, keeping the
// append-only audit trail complete.
package audit

import (
	"fmt"
	"strings"
)

// LineDiff describes a set-wise line comparison: lines only in old are
// removed, lines only in new are added. Order is not considered.
type LineDiff struct {
	Added   []string
	Removed []string
}

func (d LineDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// DiffLines compares two texts line by line. Blank lines are ignored.
func DiffLines(oldText, newText string) LineDiff {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	oldSet := make(map[string]struct{}, len(oldLines))
	for _, l := range oldLines {
		oldSet[l] = struct{}{}
	}
	newSet := make(map[string]struct{}, len(newLines))
	for _, l := range newLines {
		newSet[l] = struct{}{}
	}

	var diff LineDiff
	for _, l := range oldLines {
		if _, ok := newSet[l]; !ok {
			diff.Removed = append(diff.Removed, l)
		}
	}
	for _, l := range newLines {
		if _, ok := oldSet[l]; !ok {
			diff.Added = append(diff.Added, l)
		}
	}
	return diff
}

// FormatCategoryChange renders one category's edit as audit-note text.
func FormatCategoryChange(category, oldContent, newContent string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", category)

	switch {
	case newContent == "" && oldContent != "":
		b.WriteString(" deleted")
		for _, l := range splitLines(oldContent) {
			fmt.Fprintf(&b, "\n  removed: %s", l)
		}
	case oldContent == "":
		b.WriteString(" created")
		for _, l := range splitLines(newContent) {
			fmt.Fprintf(&b, "\n  added: %s", l)
		}
	default:
		b.WriteString(" updated")
		diff := DiffLines(oldContent, newContent)
		for _, l := range diff.Removed {
			fmt.Fprintf(&b, "\n  removed: %s", l)
		}
		for _, l := range diff.Added {
			fmt.Fprintf(&b, "\n  added: %s", l)
		}
		if diff.Empty() {
			b.WriteString(" (no line changes)")
		}
	}
	return b.String()
}

func splitLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(l)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
