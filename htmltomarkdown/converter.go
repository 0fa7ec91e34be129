package htmltomarkdown

import (
	"slices"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/mdview"
	"golang.org/x/net/html"
)

// Ensure Converter implements mdview.Converter at compile time.
var _ mdview.Converter = (*Converter)(nil)

// Class names of typeset math, matching the latex package output.
const (
	classMath    = "math"
	classDisplay = "math-display"
)

// Converter wraps html-to-markdown to turn rendered articles back into
// Markdown. Typeset math is written out as $...$ or $$...$$ with the
// original TeX source.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	conv.Register.RendererFor("span", converter.TagTypeInline, renderMath, converter.PriorityEarly)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", mdview.Errorf(mdview.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// renderMath writes a typeset math span as delimited TeX.
func renderMath(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	var tex, class string
	var hasTeX bool
	for _, a := range n.Attr {
		switch a.Key {
		case "data-tex":
			tex, hasTeX = a.Val, true
		case "class":
			class = a.Val
		}
	}
	classes := strings.Fields(class)
	if !hasTeX || !slices.Contains(classes, classMath) {
		return converter.RenderTryNext
	}

	delim := "$"
	if slices.Contains(classes, classDisplay) {
		delim = "$$"
	}
	_, _ = w.WriteString(delim + tex + delim)
	return converter.RenderSuccess
}
