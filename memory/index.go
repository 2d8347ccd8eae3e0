// Package memory provides the in-memory entry index backing the knowledge
// base browser.
package memory

import (
	"github.com/fwojciec/knowbase"
	"github.com/google/uuid"
)

// Index holds an ordered collection of entries and derives topic and
// subtopic views from it. Entries are only ever appended.
// The zero value is an empty index ready to use.
//
// Index is not safe for concurrent use.
type Index struct {
	entries []*knowbase.Entry

	// Derived views, maintained on every Add.
	topics    []string
	counts    map[string]int
	subtopics map[string][]string
	seen      map[string]map[string]struct{}
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		counts:    make(map[string]int),
		subtopics: make(map[string][]string),
		seen:      make(map[string]map[string]struct{}),
	}
}

// Add validates the entry, trims its fields and appends it.
// An ID is generated when the entry has none.
func (idx *Index) Add(entry *knowbase.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	entry.Normalize()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	if idx.counts == nil {
		idx.counts = make(map[string]int)
		idx.subtopics = make(map[string][]string)
		idx.seen = make(map[string]map[string]struct{})
	}

	e := entry.Clone()
	idx.entries = append(idx.entries, e)

	if _, ok := idx.counts[e.Topic]; !ok {
		idx.topics = append(idx.topics, e.Topic)
		idx.seen[e.Topic] = make(map[string]struct{})
	}
	idx.counts[e.Topic]++

	if _, ok := idx.seen[e.Topic][e.Subtopic]; !ok {
		idx.seen[e.Topic][e.Subtopic] = struct{}{}
		idx.subtopics[e.Topic] = append(idx.subtopics[e.Topic], e.Subtopic)
	}

	return nil
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns all entries in insertion order.
func (idx *Index) Entries() []*knowbase.Entry {
	return idx.find(knowbase.EntryFilter{})
}

// ListTopics returns the distinct topics in first-seen order.
func (idx *Index) ListTopics() []string {
	return append([]string(nil), idx.topics...)
}

// CountByTopic returns the number of entries per topic.
func (idx *Index) CountByTopic() map[string]int {
	counts := make(map[string]int, len(idx.counts))
	for topic, n := range idx.counts {
		counts[topic] = n
	}
	return counts
}

// SubtopicsByTopic returns the distinct subtopics of every topic in
// first-seen order.
func (idx *Index) SubtopicsByTopic() map[string][]string {
	out := make(map[string][]string, len(idx.subtopics))
	for topic, subs := range idx.subtopics {
		out[topic] = append([]string(nil), subs...)
	}
	return out
}

// Filter returns entries whose topic and subtopic equal the given values.
// An empty argument places no constraint on that field.
func (idx *Index) Filter(topic, subtopic string) []*knowbase.Entry {
	var filter knowbase.EntryFilter
	if topic != "" {
		filter.Topic = &topic
	}
	if subtopic != "" {
		filter.Subtopic = &subtopic
	}
	return idx.find(filter)
}

// Search returns entries containing query, ignoring case, in any text field.
// A blank query returns every entry.
func (idx *Index) Search(query string) []*knowbase.Entry {
	return idx.find(knowbase.EntryFilter{Query: query})
}

// find returns copies of the entries matching filter, paginated.
func (idx *Index) find(filter knowbase.EntryFilter) []*knowbase.Entry {
	var matched []*knowbase.Entry
	for _, e := range idx.entries {
		if filter.Match(e) {
			matched = append(matched, e)
		}
	}
	matched = filter.Paginate(matched)

	out := make([]*knowbase.Entry, len(matched))
	for i, e := range matched {
		out[i] = e.Clone()
	}
	return out
}
