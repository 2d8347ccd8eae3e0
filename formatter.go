package knowbase

import (
	"fmt"
	"strings"
)

// EmptyMessage is shown when a view has no entries.
const EmptyMessage = "No entries yet. Add one to get started."

// FormatEntry formats a single entry for display.
// Key points, when present, follow the description as a bullet list.
func FormatEntry(e *Entry) string {
	var sb strings.Builder
	sb.WriteString("## " + e.Topic + " / " + e.Subtopic + "\n")
	sb.WriteString(e.Description)
	if len(e.KeyPoints) > 0 {
		sb.WriteString("\n")
		for _, p := range e.KeyPoints {
			sb.WriteString("\n- " + p)
		}
	}
	return sb.String()
}

// FormatEntries formats entries for display.
// Entries are separated by blank lines.
func FormatEntries(entries []*Entry) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, FormatEntry(e))
	}

	return strings.Join(parts, "\n\n")
}

// FormatCount returns "1 entry" or "N entries".
func FormatCount(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}

// FormatTopics formats topics with their entry counts, one per line.
// When subtopics is non-nil each topic is followed by its subtopics.
func FormatTopics(topics []string, counts map[string]int, subtopics map[string][]string) string {
	if len(topics) == 0 {
		return ""
	}

	lines := make([]string, 0, len(topics))
	for _, topic := range topics {
		lines = append(lines, fmt.Sprintf("%s (%d)", topic, counts[topic]))
		if subtopics == nil {
			continue
		}
		for _, sub := range subtopics[topic] {
			lines = append(lines, "  - "+sub)
		}
	}

	return strings.Join(lines, "\n")
}
