// Package goldmark provides a goldmark-based implementation of
// mdview.MarkdownRenderer.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/mdview"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements mdview.MarkdownRenderer at compile time.
var _ mdview.MarkdownRenderer = (*Renderer)(nil)

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "github"

// Renderer converts markdown to HTML. Raw HTML in documents is passed
// through, bare URLs are linkified and punctuation is typographically
// replaced.
type Renderer struct {
	md goldmark.Markdown
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	highlightStyle string
	highlight      bool
}

// WithHighlightStyle sets the chroma style of fenced code blocks.
func WithHighlightStyle(style string) Option {
	return func(c *config) {
		c.highlightStyle = style
	}
}

// WithoutHighlighting renders fenced code blocks as plain pre/code.
func WithoutHighlighting() Option {
	return func(c *config) {
		c.highlight = false
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	cfg := config{highlightStyle: DefaultHighlightStyle, highlight: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	extensions := []goldmark.Extender{
		extension.GFM,
		extension.Typographer,
	}
	if cfg.highlight {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(cfg.highlightStyle),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Renderer{md: md}
}

// Render converts src to HTML. Empty input renders to an empty string.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", mdview.Errorf(mdview.EINVALID, "failed to render markdown: %v", err)
	}
	return buf.String(), nil
}
