// Package knowbase provides a local, CLI-based knowledge-base browser.
// It loads topic/subtopic entries from a static resource, groups them by
// topic, filters them by topic, subtopic or free-text search, and accepts
// new entries through a form.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, fs/, slog/).
package knowbase
