package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/knowbase"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Entries knowbase.EntryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Data    string `short:"d" env:"KB_DATA" help:"Entry file (.json, .yaml or .yml); defaults to the built-in sample"`
	Backend string `default:"memory" enum:"memory,sqlite" env:"KB_BACKEND" help:"Entry index backend (memory or sqlite)"`
	Verbose bool   `short:"v" help:"Log service calls to stderr"`

	Topics TopicsCmd `cmd:"" help:"List topics with entry counts"`
	List   ListCmd   `cmd:"" help:"List entries, optionally filtered by topic and subtopic"`
	Search SearchCmd `cmd:"" help:"Search entries by text"`
	Browse BrowseCmd `cmd:"" help:"Browse and add entries interactively"`
}

// TopicsCmd is the "topics" subcommand.
type TopicsCmd struct {
	Subtopics bool `short:"s" help:"Show subtopics under each topic"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Topic    string `short:"t" help:"Only entries with this topic"`
	Subtopic string `short:"s" help:"Only entries with this subtopic"`
	Limit    int    `short:"n" help:"Maximum number of entries to show (0 shows all)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Text to look for in topics, subtopics, descriptions and key points"`
	Limit int    `short:"n" help:"Maximum number of entries to show (0 shows all)"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct{}

// printEntries writes a heading, the entry count and the entries themselves.
func printEntries(w io.Writer, heading string, entries []*knowbase.Entry) {
	fmt.Fprintln(w, heading)
	fmt.Fprintln(w, knowbase.FormatCount(len(entries)))
	fmt.Fprintln(w)
	if len(entries) == 0 {
		fmt.Fprintln(w, knowbase.EmptyMessage)
		return
	}
	fmt.Fprintln(w, knowbase.FormatEntries(entries))
}
