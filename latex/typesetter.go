// Package latex typesets delimited LaTeX expressions found in rendered HTML.
// Expressions become span elements carrying the TeX source, ready for
// client-side math fonts; invalid expressions stay literal.
package latex

import (
	"bytes"
	"strings"

	"github.com/fwojciec/mdview"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Typesetter implements mdview.MathRenderer at compile time.
var _ mdview.MathRenderer = (*Typesetter)(nil)

// DefaultErrorColor is the colour of expressions that could not be typeset.
const DefaultErrorColor = "#E53935"

// Class names of typeset output.
const (
	ClassMath    = "math"
	ClassInline  = "math-inline"
	ClassDisplay = "math-display"
	ClassError   = "math-error"
)

// Delimiter is a pair of math boundaries.
type Delimiter struct {
	Left    string
	Right   string
	Display bool
}

// DefaultDelimiters lists the recognised delimiter forms in matching
// priority: $$ must be tried before $.
func DefaultDelimiters() []Delimiter {
	return []Delimiter{
		{Left: "$$", Right: "$$", Display: true},
		{Left: "$", Right: "$", Display: false},
		{Left: `\[`, Right: `\]`, Display: true},
		{Left: `\(`, Right: `\)`, Display: false},
	}
}

// ignoredTags are never scanned for math.
var ignoredTags = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Noscript: true,
	atom.Style:    true,
	atom.Textarea: true,
	atom.Pre:      true,
	atom.Code:     true,
	atom.Option:   true,
}

// Typesetter finds and typesets math in HTML fragments.
type Typesetter struct {
	delimiters []Delimiter
	errorColor string
	ready      chan struct{}
}

// Option configures a Typesetter.
type Option func(*Typesetter)

// WithDelimiters replaces the recognised delimiter forms.
func WithDelimiters(delims ...Delimiter) Option {
	return func(t *Typesetter) {
		t.delimiters = delims
	}
}

// WithErrorColor sets the colour of invalid expressions.
func WithErrorColor(color string) Option {
	return func(t *Typesetter) {
		t.errorColor = color
	}
}

// NewTypesetter creates a Typesetter that is ready immediately.
func NewTypesetter(opts ...Option) *Typesetter {
	t := &Typesetter{
		delimiters: DefaultDelimiters(),
		errorColor: DefaultErrorColor,
		ready:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	close(t.ready)
	return t
}

// Ready is closed once the typesetter can run.
func (t *Typesetter) Ready() <-chan struct{} {
	return t.ready
}

// RenderMath typesets every expression in markup. Expressions that fail
// validation are kept as literal text and never produce an error.
func (t *Typesetter) RenderMath(markup string) (string, error) {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), root)
	if err != nil {
		return "", mdview.Errorf(mdview.EINVALID, "failed to parse HTML: %v", err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	t.walk(root)

	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func (t *Typesetter) walk(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.TextNode:
			t.typesetText(n, c)
		case html.ElementNode:
			if !ignoredTags[c.DataAtom] {
				t.walk(c)
			}
		}
		c = next
	}
}

func (t *Typesetter) typesetText(parent, text *html.Node) {
	segments := Split(text.Data, t.delimiters)
	if len(segments) == 1 && !segments[0].Math {
		return
	}
	for _, seg := range segments {
		parent.InsertBefore(t.node(seg), text)
	}
	parent.RemoveChild(text)
}

func (t *Typesetter) node(seg Segment) *html.Node {
	if !seg.Math {
		return &html.Node{Type: html.TextNode, Data: seg.Text}
	}

	if err := Validate(seg.Text); err != nil {
		return element("span", []html.Attribute{
			{Key: "class", Val: ClassError},
			{Key: "style", Val: "color:" + t.errorColor},
			{Key: "title", Val: mdview.ErrorMessage(err)},
		}, seg.Raw)
	}

	class := ClassMath + " " + ClassInline
	if seg.Display {
		class = ClassMath + " " + ClassDisplay
	}
	return element("span", []html.Attribute{
		{Key: "class", Val: class},
		{Key: "data-tex", Val: seg.Text},
	}, seg.Text)
}

func element(tag string, attrs []html.Attribute, text string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag)), Attr: attrs}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
