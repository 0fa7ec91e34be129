package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/mdview"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Storage   mdview.Storage
	Trees     mdview.TreeService
	Contents  mdview.ContentService
	Markdown  mdview.MarkdownRenderer
	Math      mdview.MathRenderer
	Converter mdview.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Content        string        `short:"C" default:"content" env:"MDVIEW_CONTENT" help:"Content directory"`
	URL            string        `env:"MDVIEW_URL" help:"Read documents from an mdview server instead of the content directory"`
	Timeout        time.Duration `default:"0s" help:"Request timeout when reading from --url (0 waits indefinitely)"`
	Exclude        []string      `short:"x" help:"Hide paths matching a glob (repeatable)"`
	HighlightStyle string        `name:"highlight-style" default:"github" env:"MDVIEW_HIGHLIGHT_STYLE" help:"Chroma style for fenced code blocks"`
	Verbose        bool          `short:"v" help:"Log debug output"`

	Serve ServeCmd `cmd:"" help:"Serve the content directory and the viewer"`
	Tree  TreeCmd  `cmd:"" help:"Print the document tree"`
	View  ViewCmd  `cmd:"" help:"Render the viewer page, optionally with a document open"`
	Theme ThemeCmd `cmd:"" help:"Show or toggle the stored theme"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr            string  `short:"a" default:"127.0.0.1:8000" env:"MDVIEW_ADDR" help:"Listen address"`
	BaseURL         string  `name:"base-url" help:"Public URL used in the sitemap"`
	AllowAllOrigins bool    `name:"allow-all-origins" help:"Allow cross-origin requests from any origin"`
	RateLimit       float64 `name:"rate-limit" default:"0" help:"Requests per second allowed per client (0 disables)"`
	RateBurst       int     `name:"rate-burst" default:"20" help:"Requests a client may burst above the rate limit"`
}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct{}

// ViewCmd is the "view" subcommand.
type ViewCmd struct {
	Path        string `arg:"" optional:"" help:"Document to open, e.g. guides/setup.md"`
	ToggleTheme bool   `name:"toggle-theme" help:"Toggle the theme before rendering"`
	Markdown    bool   `short:"m" help:"Print the article as Markdown instead of the page"`
}

// ThemeCmd is the "theme" subcommand.
type ThemeCmd struct {
	Action string `arg:"" optional:"" enum:"show,toggle" default:"show" help:"show or toggle"`
}
