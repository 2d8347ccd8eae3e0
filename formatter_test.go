package knowbase_test

import (
	"testing"

	"github.com/fwojciec/knowbase"
	"github.com/stretchr/testify/assert"
)

func TestFormatEntries(t *testing.T) {
	t.Parallel()

	t.Run("formats single entry without key points", func(t *testing.T) {
		t.Parallel()

		entries := []*knowbase.Entry{
			{Topic: "Go", Subtopic: "Channels", Description: "Typed conduits."},
		}

		result := knowbase.FormatEntries(entries)

		assert.Equal(t, "## Go / Channels\nTyped conduits.", result)
	})

	t.Run("lists key points after the description", func(t *testing.T) {
		t.Parallel()

		entries := []*knowbase.Entry{
			{Topic: "Go", Subtopic: "Channels", Description: "Typed conduits.", KeyPoints: []string{"buffered", "unbuffered"}},
		}

		result := knowbase.FormatEntries(entries)

		assert.Equal(t, "## Go / Channels\nTyped conduits.\n\n- buffered\n- unbuffered", result)
	})

	t.Run("formats multiple entries with blank line separator", func(t *testing.T) {
		t.Parallel()

		entries := []*knowbase.Entry{
			{Topic: "Go", Subtopic: "One", Description: "First."},
			{Topic: "Go", Subtopic: "Two", Description: "Second."},
		}

		result := knowbase.FormatEntries(entries)

		assert.Equal(t, "## Go / One\nFirst.\n\n## Go / Two\nSecond.", result)
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, knowbase.FormatEntries(nil))
	})
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 entries", knowbase.FormatCount(0))
	assert.Equal(t, "1 entry", knowbase.FormatCount(1))
	assert.Equal(t, "7 entries", knowbase.FormatCount(7))
}

func TestFormatTopics(t *testing.T) {
	t.Parallel()

	topics := []string{"Go", "Rust"}
	counts := map[string]int{"Go": 2, "Rust": 1}

	t.Run("formats topics with counts", func(t *testing.T) {
		t.Parallel()

		result := knowbase.FormatTopics(topics, counts, nil)

		assert.Equal(t, "Go (2)\nRust (1)", result)
	})

	t.Run("includes subtopics when given", func(t *testing.T) {
		t.Parallel()

		subtopics := map[string][]string{
			"Go":   {"Channels", "Generics"},
			"Rust": {"Ownership"},
		}

		result := knowbase.FormatTopics(topics, counts, subtopics)

		assert.Equal(t, "Go (2)\n  - Channels\n  - Generics\nRust (1)\n  - Ownership", result)
	})

	t.Run("returns empty string without topics", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, knowbase.FormatTopics(nil, nil, nil))
	})
}
