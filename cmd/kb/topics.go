package main

import (
	"fmt"

	"github.com/fwojciec/knowbase"
)

// Run executes the topics command.
func (c *TopicsCmd) Run(deps *Dependencies) error {
	topics, err := deps.Entries.ListTopics(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowbase.ErrorMessage(err))
		return err
	}

	if len(topics) == 0 {
		fmt.Fprintln(deps.Stdout, "No topics found. Use 'kb browse' to add an entry.")
		return nil
	}

	counts, err := deps.Entries.CountByTopic(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowbase.ErrorMessage(err))
		return err
	}

	var subtopics map[string][]string
	if c.Subtopics {
		if subtopics, err = deps.Entries.SubtopicsByTopic(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", knowbase.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, knowbase.FormatTopics(topics, counts, subtopics))
	return nil
}
