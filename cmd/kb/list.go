package main

import (
	"fmt"

	"github.com/fwojciec/knowbase"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	view := knowbase.View{Topic: c.Topic, Subtopic: c.Subtopic}

	filter := view.Filter()
	filter.Limit = c.Limit

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowbase.ErrorMessage(err))
		return err
	}

	printEntries(deps.Stdout, view.Heading(), entries)
	return nil
}
