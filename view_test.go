package knowbase_test

import (
	"testing"

	"github.com/fwojciec/knowbase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_SelectTopic(t *testing.T) {
	t.Parallel()

	t.Run("selects and toggles topic", func(t *testing.T) {
		t.Parallel()

		var v knowbase.View

		v.SelectTopic("Go")
		assert.Equal(t, "Go", v.Topic)

		v.SelectTopic("Go")
		assert.Empty(t, v.Topic)
	})

	t.Run("switching topic clears subtopic", func(t *testing.T) {
		t.Parallel()

		v := knowbase.View{Topic: "Go", Subtopic: "Channels"}

		v.SelectTopic("Rust")

		assert.Equal(t, "Rust", v.Topic)
		assert.Empty(t, v.Subtopic)
	})
}

func TestView_Filter(t *testing.T) {
	t.Parallel()

	t.Run("all topics yields empty filter", func(t *testing.T) {
		t.Parallel()

		var v knowbase.View

		assert.Equal(t, knowbase.EntryFilter{}, v.Filter())
		assert.Equal(t, "All Topics", v.Heading())
	})

	t.Run("topic and subtopic yield exact filter", func(t *testing.T) {
		t.Parallel()

		v := knowbase.View{}
		v.SelectTopic("Go")
		v.SelectSubtopic("Channels")

		filter := v.Filter()

		require.NotNil(t, filter.Topic)
		require.NotNil(t, filter.Subtopic)
		assert.Equal(t, "Go", *filter.Topic)
		assert.Equal(t, "Channels", *filter.Subtopic)
		assert.Equal(t, "Go / Channels", v.Heading())
	})

	t.Run("query overrides selection", func(t *testing.T) {
		t.Parallel()

		v := knowbase.View{Topic: "Go"}
		v.Search("  chan ")

		filter := v.Filter()

		assert.Nil(t, filter.Topic)
		assert.Equal(t, "chan", filter.Query)
		assert.Equal(t, "Search: chan", v.Heading())
	})
}

func TestView_Added(t *testing.T) {
	t.Parallel()

	v := knowbase.View{Topic: "Go", Subtopic: "Channels", Query: "x"}

	v.Added(&knowbase.Entry{Topic: "Rust"})

	assert.Equal(t, knowbase.View{Topic: "Rust"}, v)
}

func TestView_ShowAll(t *testing.T) {
	t.Parallel()

	v := knowbase.View{Topic: "Go", Subtopic: "Channels", Query: "x"}

	v.ShowAll()

	assert.Equal(t, knowbase.View{Query: "x"}, v)
}
