package viewer

import (
	"context"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/dom"
	"golang.org/x/net/html"
)

// TreeLoader fills the navigation panel from the tree listing.
type TreeLoader struct {
	state      *State
	trees      mdview.TreeService
	content    *ContentLoader
	linkPrefix string
	logger     *slog.Logger
}

// Load fetches the listing and renders it. An empty listing shows the
// empty state without binding listeners; a failure shows an error
// placeholder. The error is returned for diagnostics only.
func (l *TreeLoader) Load(ctx context.Context) error {
	nodes, err := l.fetch(ctx)
	if err != nil {
		l.logger.Error("failed to load file tree", "err", err)
		l.state.update(func(doc *dom.Document, el *Elements) {
			doc.ReplaceChildren(el.NavTree, RenderNavError()...)
		})
		return err
	}

	if len(nodes) == 0 {
		l.state.update(func(doc *dom.Document, el *Elements) {
			doc.ReplaceChildren(el.NavTree, RenderEmptyTree()...)
		})
		return nil
	}

	l.state.update(func(doc *dom.Document, el *Elements) {
		doc.ReplaceChildren(el.NavTree, RenderTree(nodes, l.linkPrefix)...)
		l.bind(doc)
	})
	return nil
}

func (l *TreeLoader) fetch(ctx context.Context) ([]*mdview.TreeNode, error) {
	nodes, err := l.trees.FetchTree(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n == nil {
			return nil, mdview.Errorf(mdview.EINVALID, "tree listing has nil node")
		}
		if err := n.Validate(); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// bind attaches folder and item listeners to freshly rendered navigation.
func (l *TreeLoader) bind(doc *dom.Document) {
	doc.Find("#" + IDNavTree + " ." + ClassFolderHeader).Each(func(_ int, sel *goquery.Selection) {
		header := sel.Get(0)
		doc.AddEventListener(header, "click", func(context.Context, *html.Node) {
			l.state.update(func(*dom.Document, *Elements) {
				dom.ToggleClass(header.Parent, ClassCollapsed)
			})
		})
	})

	doc.Find("#" + IDNavTree + " ." + ClassItem).Each(func(_ int, sel *goquery.Selection) {
		path, _ := sel.Attr("data-path")
		doc.AddEventListener(sel.Get(0), "click", func(ctx context.Context, _ *html.Node) {
			// The page already shows and logs a failed load.
			_ = l.Open(ctx, path)
		})
	})
}

// Open marks the nav item for path as the only active one and loads its
// document, returning the load error. Returns ENOTFOUND without loading
// when the navigation has no item for path.
func (l *TreeLoader) Open(ctx context.Context, path string) error {
	if !l.activate(path) {
		return mdview.Errorf(mdview.ENOTFOUND, "no navigation item for %q", path)
	}
	return l.content.Load(ctx, path)
}

// activate marks the nav item for path as the only active one and reports
// whether it exists. Other items lose their active mark either way.
func (l *TreeLoader) activate(path string) bool {
	var found bool
	l.state.update(func(doc *dom.Document, _ *Elements) {
		doc.Find("#" + IDNavTree + " ." + ClassItem).Each(func(_ int, sel *goquery.Selection) {
			item := sel.Get(0)
			if v, ok := dom.Attr(item, "data-path"); ok && v == path && !found {
				dom.AddClass(item, ClassActive)
				found = true
				return
			}
			dom.RemoveClass(item, ClassActive)
		})
	})
	return found
}
