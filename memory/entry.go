package memory

import (
	"context"

	"github.com/fwojciec/knowbase"
)

// Compile-time interface verification.
var _ knowbase.EntryService = (*EntryService)(nil)

// EntryService implements knowbase.EntryService on top of an Index.
type EntryService struct {
	index *Index
}

// NewEntryService creates a new EntryService backed by index.
func NewEntryService(index *Index) *EntryService {
	return &EntryService{index: index}
}

// CreateEntry appends an entry to the index.
func (s *EntryService) CreateEntry(_ context.Context, entry *knowbase.Entry) error {
	return s.index.Add(entry)
}

// FindEntries retrieves entries matching the filter.
func (s *EntryService) FindEntries(_ context.Context, filter knowbase.EntryFilter) ([]*knowbase.Entry, error) {
	return s.index.find(filter), nil
}

// ListTopics returns the distinct topics in first-seen order.
func (s *EntryService) ListTopics(_ context.Context) ([]string, error) {
	return s.index.ListTopics(), nil
}

// CountByTopic returns the number of entries per topic.
func (s *EntryService) CountByTopic(_ context.Context) (map[string]int, error) {
	return s.index.CountByTopic(), nil
}

// SubtopicsByTopic returns the distinct subtopics per topic.
func (s *EntryService) SubtopicsByTopic(_ context.Context) (map[string][]string, error) {
	return s.index.SubtopicsByTopic(), nil
}
