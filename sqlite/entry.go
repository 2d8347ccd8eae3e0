package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/knowbase"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ knowbase.EntryService = (*EntryService)(nil)

// EntryService implements knowbase.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// CreateEntry validates, trims and inserts an entry.
func (s *EntryService) CreateEntry(ctx context.Context, entry *knowbase.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	entry.Normalize()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	keyPoints, err := encodeKeyPoints(entry.KeyPoints)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (id, topic, subtopic, description, key_points)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.Topic, entry.Subtopic, entry.Description, keyPoints)

	return err
}

// FindEntries retrieves entries matching the filter in insertion order.
// Free-text queries are matched in Go so case folding is identical to the
// in-memory index.
func (s *EntryService) FindEntries(ctx context.Context, filter knowbase.EntryFilter) ([]*knowbase.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, topic, subtopic, description, key_points FROM entries WHERE 1=1")

	search := filter.IsSearch()
	if !search {
		if filter.Topic != nil {
			query.WriteString(" AND topic = ?")
			args = append(args, *filter.Topic)
		}
		if filter.Subtopic != nil {
			query.WriteString(" AND subtopic = ?")
			args = append(args, *filter.Subtopic)
		}
	}

	query.WriteString(" ORDER BY seq")

	if !search {
		appendPagination(&query, &args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*knowbase.Entry
	for rows.Next() {
		var entry knowbase.Entry
		var keyPoints string

		if err := rows.Scan(&entry.ID, &entry.Topic, &entry.Subtopic, &entry.Description, &keyPoints); err != nil {
			return nil, err
		}

		if entry.KeyPoints, err = decodeKeyPoints(keyPoints); err != nil {
			return nil, err
		}

		if search && !entry.Matches(filter.Query) {
			continue
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if search {
		entries = filter.Paginate(entries)
	}
	return entries, nil
}

// ListTopics returns the distinct topics in first-seen order.
func (s *EntryService) ListTopics(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT topic FROM entries
		GROUP BY topic
		ORDER BY MIN(seq)
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var topic string
		if err := rows.Scan(&topic); err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}

	return topics, rows.Err()
}

// CountByTopic returns the number of entries per topic.
func (s *EntryService) CountByTopic(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT topic, COUNT(*) FROM entries GROUP BY topic")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var topic string
		var n int
		if err := rows.Scan(&topic, &n); err != nil {
			return nil, err
		}
		counts[topic] = n
	}

	return counts, rows.Err()
}

// SubtopicsByTopic returns the distinct subtopics per topic in first-seen order.
func (s *EntryService) SubtopicsByTopic(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT topic, subtopic FROM entries
		GROUP BY topic, subtopic
		ORDER BY MIN(seq)
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subtopics := make(map[string][]string)
	for rows.Next() {
		var topic, subtopic string
		if err := rows.Scan(&topic, &subtopic); err != nil {
			return nil, err
		}
		subtopics[topic] = append(subtopics[topic], subtopic)
	}

	return subtopics, rows.Err()
}
