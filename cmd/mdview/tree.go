package main

import (
	"fmt"

	"github.com/fwojciec/mdview"
)

// Run executes the tree command.
func (c *TreeCmd) Run(deps *Dependencies) error {
	nodes, err := deps.Trees.FetchTree(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdview.ErrorMessage(err))
		return err
	}

	if len(nodes) == 0 {
		fmt.Fprintf(deps.Stdout, "No content yet. Add %s files to the content directory.\n", mdview.DocumentExt)
		return nil
	}

	fmt.Fprint(deps.Stdout, mdview.FormatTree(nodes))
	return nil
}
