package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/knowbase"
	main "github.com/fwojciec/knowbase/cmd/kb"
	"github.com/fwojciec/knowbase/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("searches with trimmed query", func(t *testing.T) {
		t.Parallel()

		var received knowbase.EntryFilter
		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Entries: &mock.EntryService{
				FindEntriesFn: func(_ context.Context, filter knowbase.EntryFilter) ([]*knowbase.Entry, error) {
					received = filter
					return []*knowbase.Entry{
						{Topic: "Skills", Subtopic: "SQL", Description: "Query tuning."},
						{Topic: "Skills", Subtopic: "Go", Description: "Query builders."},
					}, nil
				},
			},
		}

		err := (&main.SearchCmd{Query: "  query "}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "query", received.Query)
		assert.Contains(t, stdout.String(), "Search: query\n2 entries")
	})

	t.Run("rejects blank query", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Entries: &mock.EntryService{},
		}

		err := (&main.SearchCmd{Query: "   "}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, knowbase.EINVALID, knowbase.ErrorCode(err))
		assert.Contains(t, stderr.String(), "search query required")
	})
}
