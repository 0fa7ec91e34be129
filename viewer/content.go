package viewer

import (
	"context"
	"log/slog"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/dom"
	"golang.org/x/net/html"
)

// ContentLoader fetches documents and swaps them into the article panel.
type ContentLoader struct {
	state    *State
	contents mdview.ContentService
	markdown mdview.MarkdownRenderer
	math     mdview.MathRenderer
	logger   *slog.Logger
}

// Load fetches, renders and shows the document at path. On failure the
// article body shows an error message while the current path and
// breadcrumb stay as they were. A response overtaken by a later Load is
// dropped. The error is returned for diagnostics only.
func (l *ContentLoader) Load(ctx context.Context, path string) error {
	token := l.state.navigate()

	body, err := l.render(ctx, path)
	if err != nil {
		l.logger.Error("failed to load content", "path", path, "err", err)
		l.state.apply(token, func(doc *dom.Document, el *Elements) {
			doc.ReplaceChildren(el.ArticleBody, RenderContentError()...)
			dom.SetHidden(el.Welcome, true)
			dom.SetHidden(el.Article, false)
		})
		return err
	}

	applied := l.state.apply(token, func(doc *dom.Document, el *Elements) {
		l.state.currentPath = path
		doc.ReplaceChildren(el.Breadcrumb, RenderBreadcrumb(path)...)
		doc.ReplaceChildren(el.ArticleBody, body...)
		dom.SetHidden(el.Welcome, true)
		dom.SetHidden(el.Article, false)
		doc.ScrollTo(0, dom.ScrollSmooth)
	})
	if !applied {
		l.logger.Debug("discarding superseded content", "path", path)
	}
	return nil
}

// render fetches the document and turns it into article nodes.
func (l *ContentLoader) render(ctx context.Context, path string) ([]*html.Node, error) {
	doc, err := l.contents.FetchContent(ctx, path)
	if err != nil {
		return nil, err
	}

	out, err := l.markdown.Render(doc.Content)
	if err != nil {
		return nil, err
	}
	out = l.typeset(ctx, path, out)

	nodes, err := dom.ParseFragment(out)
	if err != nil {
		return nil, mdview.Errorf(mdview.EINVALID, "failed to parse rendered document: %v", err)
	}
	return nodes, nil
}

// typeset waits for the math renderer once and typesets the article.
// Math problems never fail the load; the untypeset article is used instead.
func (l *ContentLoader) typeset(ctx context.Context, path, body string) string {
	select {
	case <-l.math.Ready():
	case <-ctx.Done():
		l.logger.Warn("math renderer not ready", "path", path, "err", ctx.Err())
		return body
	}

	out, err := l.math.RenderMath(body)
	if err != nil {
		l.logger.Warn("failed to render math", "path", path, "err", err)
		return body
	}
	return out
}
