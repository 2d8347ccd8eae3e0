package mock

import (
	"context"

	"github.com/fwojciec/knowbase"
)

var _ knowbase.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of knowbase.EntryService.
type EntryService struct {
	CreateEntryFn      func(ctx context.Context, entry *knowbase.Entry) error
	FindEntriesFn      func(ctx context.Context, filter knowbase.EntryFilter) ([]*knowbase.Entry, error)
	ListTopicsFn       func(ctx context.Context) ([]string, error)
	CountByTopicFn     func(ctx context.Context) (map[string]int, error)
	SubtopicsByTopicFn func(ctx context.Context) (map[string][]string, error)
}

func (s *EntryService) CreateEntry(ctx context.Context, entry *knowbase.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *EntryService) FindEntries(ctx context.Context, filter knowbase.EntryFilter) ([]*knowbase.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) ListTopics(ctx context.Context) ([]string, error) {
	return s.ListTopicsFn(ctx)
}

func (s *EntryService) CountByTopic(ctx context.Context) (map[string]int, error) {
	return s.CountByTopicFn(ctx)
}

func (s *EntryService) SubtopicsByTopic(ctx context.Context) (map[string][]string, error) {
	return s.SubtopicsByTopicFn(ctx)
}
