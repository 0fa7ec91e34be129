package main

import (
	"fmt"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/viewer"
)

// Run executes the view command.
func (c *ViewCmd) Run(deps *Dependencies) error {
	if c.Markdown && c.Path == "" {
		return mdview.Errorf(mdview.EINVALID, "--markdown requires a document path")
	}

	app, err := newPage(deps)
	if err != nil {
		return err
	}

	// A tree failure is already rendered into the page.
	if err := app.Start(deps.Ctx); err != nil {
		deps.Logger.Warn("navigation unavailable", "err", err)
	}

	if c.ToggleTheme {
		if err := app.Click(deps.Ctx, "#"+viewer.IDThemeToggle); err != nil {
			return err
		}
	}

	if c.Path != "" {
		if err := app.Open(deps.Ctx, c.Path); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mdview.ErrorMessage(err))
			return err
		}
	}

	if c.Markdown {
		md, err := deps.Converter.Convert(app.ArticleHTML())
		if err != nil {
			return fmt.Errorf("convert article: %w", err)
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	return app.Render(deps.Stdout)
}

// newPage creates a viewer page over the command dependencies.
func newPage(deps *Dependencies) (*viewer.App, error) {
	return viewer.NewPage(viewer.Config{
		Storage:  deps.Storage,
		Trees:    deps.Trees,
		Contents: deps.Contents,
		Markdown: deps.Markdown,
		Math:     deps.Math,
		Logger:   deps.Logger,
	})
}
