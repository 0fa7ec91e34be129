package mdview

// MarkdownRenderer converts markdown text to HTML.
type MarkdownRenderer interface {
	Render(src string) (string, error)
}

// MathRenderer typesets delimited math expressions inside rendered HTML.
type MathRenderer interface {
	// Ready is closed once the renderer can typeset.
	Ready() <-chan struct{}

	// RenderMath returns html with every recognised math expression
	// typeset in place. Invalid expressions are left as literal text.
	RenderMath(html string) (string, error)
}
