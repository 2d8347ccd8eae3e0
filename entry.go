package knowbase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Entry represents one topic/subtopic record in the knowledge base.
type Entry struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Topic       string   `json:"topic" yaml:"topic"`
	Subtopic    string   `json:"subtopic" yaml:"subtopic"`
	Description string   `json:"description" yaml:"description"`
	KeyPoints   []string `json:"key_points,omitempty" yaml:"key_points,omitempty"`
}

// Validate returns an error if the entry contains invalid fields.
// Fields consisting only of whitespace count as empty.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Topic) == "" {
		return Errorf(EINVALID, "entry topic required")
	}
	if strings.TrimSpace(e.Subtopic) == "" {
		return Errorf(EINVALID, "entry subtopic required")
	}
	if strings.TrimSpace(e.Description) == "" {
		return Errorf(EINVALID, "entry description required")
	}
	return nil
}

// Normalize trims every field in place and drops blank key points.
// KeyPoints is set to nil when no key points remain.
func (e *Entry) Normalize() {
	e.Topic = strings.TrimSpace(e.Topic)
	e.Subtopic = strings.TrimSpace(e.Subtopic)
	e.Description = strings.TrimSpace(e.Description)
	e.KeyPoints = compactKeyPoints(e.KeyPoints)
}

// Matches reports whether query occurs, ignoring case, in the topic,
// subtopic, description or any key point. A blank query matches everything.
func (e *Entry) Matches(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	folder := cases.Fold()
	needle := folder.String(query)
	contains := func(s string) bool {
		return strings.Contains(folder.String(s), needle)
	}

	if contains(e.Topic) || contains(e.Subtopic) || contains(e.Description) {
		return true
	}
	for _, p := range e.KeyPoints {
		if contains(p) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	other := *e
	if e.KeyPoints != nil {
		other.KeyPoints = append([]string(nil), e.KeyPoints...)
	}
	return &other
}

func compactKeyPoints(points []string) []string {
	var out []string
	for _, p := range points {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EntryForm represents a submission of the add-entry form.
// The topic is either picked from the existing topics or typed in as a new
// one, depending on UseNewTopic.
type EntryForm struct {
	Topic         string
	NewTopic      string
	UseNewTopic   bool
	Subtopic      string
	Description   string
	KeyPointsText string // one key point per line
}

// Entry converts the form into a normalized entry.
// Returns false if the topic, subtopic or description is blank.
func (f EntryForm) Entry() (*Entry, bool) {
	topic := f.Topic
	if f.UseNewTopic {
		topic = f.NewTopic
	}

	e := &Entry{
		Topic:       topic,
		Subtopic:    f.Subtopic,
		Description: f.Description,
		KeyPoints:   strings.Split(f.KeyPointsText, "\n"),
	}
	e.Normalize()

	if e.Validate() != nil {
		return nil, false
	}
	return e, true
}

// EntryService represents a service for managing entries.
type EntryService interface {
	// CreateEntry validates, normalizes and appends an entry.
	// Assigns an ID when the entry has none.
	// Returns EINVALID if a required field is blank.
	CreateEntry(ctx context.Context, entry *Entry) error

	// FindEntries retrieves entries matching the filter in insertion order.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// ListTopics returns the distinct topics in first-seen order.
	ListTopics(ctx context.Context) ([]string, error)

	// CountByTopic returns the number of entries per topic.
	CountByTopic(ctx context.Context) (map[string]int, error)

	// SubtopicsByTopic returns the distinct subtopics of each topic in
	// first-seen order.
	SubtopicsByTopic(ctx context.Context) (map[string][]string, error)
}

// EntryFilter represents a filter for FindEntries.
// A non-blank Query overrides Topic and Subtopic.
type EntryFilter struct {
	Topic    *string `json:"topic"`
	Subtopic *string `json:"subtopic"`
	Query    string  `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// IsSearch reports whether the filter is a free-text search.
func (f EntryFilter) IsSearch() bool {
	return strings.TrimSpace(f.Query) != ""
}

// Match reports whether the entry passes the filter, ignoring pagination.
func (f EntryFilter) Match(e *Entry) bool {
	if f.IsSearch() {
		return e.Matches(f.Query)
	}
	if f.Topic != nil && e.Topic != *f.Topic {
		return false
	}
	if f.Subtopic != nil && e.Subtopic != *f.Subtopic {
		return false
	}
	return true
}

// Paginate applies Offset and Limit to entries.
func (f EntryFilter) Paginate(entries []*Entry) []*Entry {
	if f.Offset > 0 {
		if f.Offset >= len(entries) {
			return nil
		}
		entries = entries[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(entries) {
		entries = entries[:f.Limit]
	}
	return entries
}

// ImportEntries creates entries through svc in order, stopping at the first
// failure.
func ImportEntries(ctx context.Context, svc EntryService, entries []*Entry) error {
	for i, e := range entries {
		if err := svc.CreateEntry(ctx, e); err != nil {
			return fmt.Errorf("import entry %d: %w", i+1, err)
		}
	}
	return nil
}
