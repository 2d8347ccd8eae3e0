package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/knowbase"
	"github.com/fwojciec/knowbase/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateEntryFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *knowbase.Entry
		svc := &mock.EntryService{
			CreateEntryFn: func(_ context.Context, entry *knowbase.Entry) error {
				calledWith = entry
				return nil
			},
		}

		entry := &knowbase.Entry{Topic: "Go", Subtopic: "Channels", Description: "Typed conduits."}

		err := svc.CreateEntry(context.Background(), entry)

		require.NoError(t, err)
		assert.Equal(t, entry, calledWith)
	})
}
