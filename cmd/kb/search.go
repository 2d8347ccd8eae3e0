package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/knowbase"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if strings.TrimSpace(c.Query) == "" {
		fmt.Fprintln(deps.Stderr, "error: search query required")
		return knowbase.Errorf(knowbase.EINVALID, "search query required")
	}

	var view knowbase.View
	view.Search(c.Query)

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
