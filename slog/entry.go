// Package slog provides log/slog decorators for knowbase services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/knowbase"
)

// Ensure LoggingEntryService implements knowbase.EntryService.
var _ knowbase.EntryService = (*LoggingEntryService)(nil)

// LoggingEntryService wraps an EntryService with logging.
type LoggingEntryService struct {
	next   knowbase.EntryService
	logger *slog.Logger
}

// NewLoggingEntryService creates a new LoggingEntryService.
func NewLoggingEntryService(next knowbase.EntryService, logger *slog.Logger) *LoggingEntryService {
	return &LoggingEntryService{next: next, logger: logger}
}

// CreateEntry delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) CreateEntry(ctx context.Context, entry *knowbase.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create entry",
			"id", entry.ID,
			"topic", entry.Topic,
			"subtopic", entry.Subtopic,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntry(ctx, entry)
}

// FindEntries delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) FindEntries(ctx context.Context, filter knowbase.EntryFilter) (entries []*knowbase.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find entries",
			"topic", deref(filter.Topic),
			"subtopic", deref(filter.Subtopic),
			"query", filter.Query,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, filter)
}

// ListTopics delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) ListTopics(ctx context.Context) (topics []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list topics",
			"count", len(topics),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListTopics(ctx)
}

// CountByTopic delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) CountByTopic(ctx context.Context) (counts map[string]int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("count by topic",
			"topics", len(counts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CountByTopic(ctx)
}

// SubtopicsByTopic delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) SubtopicsByTopic(ctx context.Context) (subtopics map[string][]string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("subtopics by topic",
			"topics", len(subtopics),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SubtopicsByTopic(ctx)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
