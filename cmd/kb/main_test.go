package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/knowbase/cmd/kb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMain runs the program with args and stdin, returning its output.
func runMain(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	m := main.NewMain()
	m.Stdin = strings.NewReader(stdin)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error without command", func(t *testing.T) {
		t.Parallel()

		_, _, err := runMain(t, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help prints usage", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, "", "--help")

		require.NoError(t, err)
		assert.Contains(t, stdout, "kb")
		assert.Contains(t, stdout, "browse")
	})

	t.Run("lists built-in sample entries", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, "", "list")

		require.NoError(t, err)
		assert.Contains(t, stdout, "All Topics\n5 entries")
		assert.Contains(t, stdout, "## Projects Worked / Payment Gateway")
	})

	t.Run("filters by topic with sqlite backend", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, "", "--backend", "sqlite", "list", "--topic", "Skills")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Skills\n2 entries")
		assert.Contains(t, stdout, "## Skills / Go")
		assert.NotContains(t, stdout, "Payment Gateway")
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		t.Parallel()

		_, _, err := runMain(t, "", "--backend", "postgres", "list")

		require.Error(t, err)
	})

	t.Run("loads entries from yaml file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "entries.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- topic: Go\n  subtopic: Channels\n  description: Typed conduits.\n"), 0o644))

		stdout, _, err := runMain(t, "", "--data", path, "topics", "--subtopics")

		require.NoError(t, err)
		assert.Equal(t, "Go (1)\n  - Channels\n", stdout)
	})

	t.Run("reports invalid entry file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "entries.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"topic":"Go","subtopic":"","description":"d"}]`), 0o644))

		_, stderr, err := runMain(t, "", "--data", path, "list")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load entries")
		assert.Contains(t, stderr, "Hint:")
	})

	t.Run("verbose logs service calls to stderr", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := runMain(t, "", "-v", "search", "webhook")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Search: webhook\n1 entry")
		assert.Contains(t, stderr, "find entries")
		assert.Contains(t, stderr, "query=webhook")
	})

	t.Run("browse reads commands from stdin", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, "topic Skills\nquit\n", "browse")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Skills\n2 entries")
	})
}
