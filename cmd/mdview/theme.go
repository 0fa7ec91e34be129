package main

import "fmt"

// Run executes the theme command.
func (c *ThemeCmd) Run(deps *Dependencies) error {
	app, err := newPage(deps)
	if err != nil {
		return err
	}

	theme := app.Theme.Init(deps.Ctx)
	if c.Action == "toggle" {
		theme, err = app.Theme.Toggle(deps.Ctx)
		if err != nil {
			return fmt.Errorf("toggle theme: %w", err)
		}
	}

	fmt.Fprintln(deps.Stdout, theme)
	return nil
}
