// Package dom provides a minimal document object model over golang.org/x/net/html
// trees. Pages are built declaratively with El and Text, queried with CSS
// selectors through goquery, and carry event listeners that are discarded
// together with the markup they were bound to.
//
// A Document is not safe for concurrent use.
package dom

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Listener handles an event dispatched to target.
type Listener func(ctx context.Context, target *html.Node)

// ScrollBehavior values accepted by ScrollTo.
const (
	ScrollAuto   = "auto"
	ScrollSmooth = "smooth"
)

// Scroll is the viewport scroll position.
type Scroll struct {
	Top      int
	Behavior string
}

// Document is a parsed page with listeners and a viewport.
type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string][]Listener
	scroll    Scroll
}

// Parse parses a complete HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string][]Listener),
		scroll:    Scroll{Behavior: ScrollAuto},
	}, nil
}

// ParseString parses a complete HTML page from s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ParseFragment parses s as the content of a div element. The returned
// nodes are detached and can be inserted with ReplaceChildren.
func ParseFragment(s string) ([]*html.Node, error) {
	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	return html.ParseFragment(strings.NewReader(s), parent)
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// DocumentElement returns the <html> element.
func (d *Document) DocumentElement() *html.Node {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Html {
			return c
		}
	}
	return nil
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := Attr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// Find returns the elements matching selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return goquery.NewDocumentFromNode(d.root).Find(selector)
}

// First returns the first element matching selector, or nil.
func (d *Document) First(selector string) *html.Node {
	sel := d.Find(selector)
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}

// ReplaceChildren removes every child of parent and appends nodes in order.
// Listeners bound inside the removed markup are discarded.
func (d *Document) ReplaceChildren(parent *html.Node, nodes ...*html.Node) {
	for c := parent.FirstChild; c != nil; {
		next := c.NextSibling
		d.forget(c)
		parent.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

// SetInnerHTML replaces the children of parent with the parsed markup.
func (d *Document) SetInnerHTML(parent *html.Node, markup string) error {
	nodes, err := ParseFragment(markup)
	if err != nil {
		return err
	}
	d.ReplaceChildren(parent, nodes...)
	return nil
}

// AddEventListener registers fn for events of type typ on n.
func (d *Document) AddEventListener(n *html.Node, typ string, fn Listener) {
	byType, ok := d.listeners[n]
	if !ok {
		byType = make(map[string][]Listener)
		d.listeners[n] = byType
	}
	byType[typ] = append(byType[typ], fn)
}

// Listeners returns the listeners an event of type typ on n reaches,
// bubbling from n up to the document. Detached nodes reach no listeners.
func (d *Document) Listeners(n *html.Node, typ string) []Listener {
	if !d.Contains(n) {
		return nil
	}
	var out []Listener
	for p := n; p != nil; p = p.Parent {
		out = append(out, d.listeners[p][typ]...)
	}
	return out
}

// ListenerCount returns the number of nodes carrying at least one listener.
func (d *Document) ListenerCount() int {
	return len(d.listeners)
}

// Dispatch runs every listener an event of type typ on n reaches.
func (d *Document) Dispatch(ctx context.Context, n *html.Node, typ string) {
	for _, fn := range d.Listeners(n, typ) {
		fn(ctx, n)
	}
}

// Contains reports whether n is attached to the document.
func (d *Document) Contains(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == d.root {
			return true
		}
	}
	return false
}

// ScrollTo moves the viewport.
func (d *Document) ScrollTo(top int, behavior string) {
	d.scroll = Scroll{Top: top, Behavior: behavior}
}

// Scroll returns the current viewport position.
func (d *Document) Scroll() Scroll {
	return d.scroll
}

// Render writes the page as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the page as HTML.
func (d *Document) String() string {
	var buf bytes.Buffer
	_ = d.Render(&buf)
	return buf.String()
}

func (d *Document) forget(n *html.Node) {
	walk(n, func(c *html.Node) bool {
		delete(d.listeners, c)
		return true
	})
}

// walk visits n and its descendants depth-first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
