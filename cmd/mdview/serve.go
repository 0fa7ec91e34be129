package main

import (
	"fmt"

	"github.com/fwojciec/mdview"
	mdviewhttp "github.com/fwojciec/mdview/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context ends.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := mdviewhttp.NewServer(mdviewhttp.Config{
		Addr:            c.Addr,
		Trees:           deps.Trees,
		Contents:        deps.Contents,
		Markdown:        deps.Markdown,
		Math:            deps.Math,
		BaseURL:         c.BaseURL,
		AllowAllOrigins: c.AllowAllOrigins,
		RateLimit:       c.RateLimit,
		RateBurst:       c.RateBurst,
		Logger:          deps.Logger,
	})
	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdview.ErrorMessage(err))
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}

	fmt.Fprintf(deps.Stdout, "Serving on http://%s\n", server.Addr())

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return server.Close()
	})
	return g.Wait()
}
