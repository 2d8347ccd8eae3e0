package main

import (
	"bufio"
	"fmt"
	"slices"
	"strings"

	"github.com/fwojciec/knowbase"
)

const browseHelp = `Commands:
  topics            List topics with entry counts
  topic NAME        Select a topic (again to clear)
  subtopic NAME     Select a subtopic (again to clear)
  all               Show all topics
  search [QUERY]    Search entries; without QUERY clears the search
  list              Show entries in the current view
  add               Add a new entry
  help              Show this help
  quit              Leave the session`

// Run executes the browse command.
// It reads one command per line from stdin until "quit" or end of input.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	s := &browseSession{
		deps:    deps,
		scanner: bufio.NewScanner(deps.Stdin),
	}
	return s.run()
}

// browseSession holds the state of one interactive session.
type browseSession struct {
	deps    *Dependencies
	scanner *bufio.Scanner
	view    knowbase.View
}

func (s *browseSession) run() error {
	fmt.Fprintln(s.deps.Stdout, "Knowledge Base. Type 'help' for commands.")

	for {
		line, ok := s.prompt("> ")
		if !ok {
			return s.scanner.Err()
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch cmd {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(s.deps.Stdout, browseHelp)
		case "topics":
			err = s.topics()
		case "topic":
			err = s.selectTopic(arg)
		case "subtopic":
			err = s.selectSubtopic(arg)
		case "all":
			s.view.ShowAll()
			err = s.list()
		case "search":
			s.view.Search(arg)
			err = s.list()
		case "list":
			err = s.list()
		case "add":
			err = s.add()
		default:
			fmt.Fprintf(s.deps.Stderr, "unknown command %q. Type 'help' for commands.\n", cmd)
		}
		if err != nil {
			fmt.Fprintf(s.deps.Stderr, "error: %s\n", knowbase.ErrorMessage(err))
			return err
		}
	}
}

// prompt writes label and reads one line. Returns false at end of input.
func (s *browseSession) prompt(label string) (string, bool) {
	fmt.Fprint(s.deps.Stdout, label)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *browseSession) topics() error {
	cmd := TopicsCmd{}
	if err := cmd.Run(s.deps); err != nil {
		return err
	}
	if s.view.Topic != "" {
		fmt.Fprintf(s.deps.Stdout, "Active topic: %s\n", s.view.Topic)
	}
	return nil
}

func (s *browseSession) selectTopic(name string) error {
	if name == "" {
		fmt.Fprintln(s.deps.Stderr, "usage: topic NAME")
		return nil
	}

	topics, err := s.deps.Entries.ListTopics(s.deps.Ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(topics, name) {
		fmt.Fprintf(s.deps.Stderr, "topic %q not found. Use 'topics' to see available topics.\n", name)
		return nil
	}

	s.view.SelectTopic(name)
	return s.list()
}

func (s *browseSession) selectSubtopic(name string) error {
	if name == "" {
		fmt.Fprintln(s.deps.Stderr, "usage: subtopic NAME")
		return nil
	}

	subtopics, err := s.deps.Entries.SubtopicsByTopic(s.deps.Ctx)
	if err != nil {
		return err
	}

	found := false
	for topic, subs := range subtopics {
		if s.view.Topic != "" && topic != s.view.Topic {
			continue
		}
		if slices.Contains(subs, name) {
			found = true
			break
		}
	}
	if !found {
		fmt.Fprintf(s.deps.Stderr, "subtopic %q not found.\n", name)
		return nil
	}

	s.view.SelectSubtopic(name)
	return s.list()
}

func (s *browseSession) list() error {
	entries, err := s.deps.Entries.FindEntries(s.deps.Ctx, s.view.Filter())
	if err != nil {
		return err
	}
	printEntries(s.deps.Stdout, s.view.Heading(), entries)
	return nil
}

// add reads the add-entry form. An incomplete form is dropped without
// comment, matching how the form ignores empty submissions.
func (s *browseSession) add() error {
	topics, err := s.deps.Entries.ListTopics(s.deps.Ctx)
	if err != nil {
		return err
	}
	if len(topics) > 0 {
		fmt.Fprintf(s.deps.Stdout, "Existing topics: %s\n", strings.Join(topics, ", "))
	}

	var form knowbase.EntryForm
	var ok bool

	if form.Topic, ok = s.prompt("Topic: "); !ok {
		return nil
	}
	if !slices.Contains(topics, strings.TrimSpace(form.Topic)) {
		form.NewTopic, form.UseNewTopic = form.Topic, true
	}
	if form.Subtopic, ok = s.prompt("Subtopic: "); !ok {
		return nil
	}
	if form.Description, ok = s.prompt("Description: "); !ok {
		return nil
	}

	fmt.Fprintln(s.deps.Stdout, "Key points (one per line, blank line to finish):")
	var points []string
	for {
		line, ok := s.prompt("- ")
		if !ok || strings.TrimSpace(line) == "" {
			break
		}
		points = append(points, line)
	}
	form.KeyPointsText = strings.Join(points, "\n")

	entry, ok := form.Entry()
	if !ok {
		return nil
	}

	if err := s.deps.Entries.CreateEntry(s.deps.Ctx, entry); err != nil {
		return err
	}

	fmt.Fprintf(s.deps.Stdout, "Added entry %q to %q\n", entry.Subtopic, entry.Topic)
	s.view.Added(entry)
	return s.list()
}
