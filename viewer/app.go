// Package viewer implements the markdown viewer page: the theme toggle,
// the navigation tree and the article panel, all driven through a
// dom.Document.
package viewer

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/dom"
	"golang.org/x/net/html"
)

// Config holds the collaborators of an App.
type Config struct {
	Storage  mdview.Storage
	Trees    mdview.TreeService
	Contents mdview.ContentService
	Markdown mdview.MarkdownRenderer
	Math     mdview.MathRenderer

	// LinkPrefix, when set, turns nav items into links to LinkPrefix+path.
	LinkPrefix string

	Logger *slog.Logger
}

// App wires the viewer components to one page.
type App struct {
	State   *State
	Theme   *ThemeManager
	Tree    *TreeLoader
	Content *ContentLoader

	logger  *slog.Logger
	started bool
}

// NewApp binds the viewer to doc. The page must contain the elements
// named by the ID constants.
func NewApp(doc *dom.Document, cfg Config) (*App, error) {
	if cfg.Storage == nil || cfg.Trees == nil || cfg.Contents == nil || cfg.Markdown == nil || cfg.Math == nil {
		return nil, mdview.Errorf(mdview.EINVALID, "viewer requires storage, tree, content, markdown and math services")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	el := Elements{Root: doc.DocumentElement()}
	if el.Root == nil {
		return nil, mdview.Errorf(mdview.EINVALID, "page has no root element")
	}
	for id, dst := range map[string]**html.Node{
		IDThemeToggle: &el.ThemeToggle,
		IDNavTree:     &el.NavTree,
		IDWelcome:     &el.Welcome,
		IDArticle:     &el.Article,
		IDArticleBody: &el.ArticleBody,
		IDBreadcrumb:  &el.Breadcrumb,
	} {
		n := doc.ElementByID(id)
		if n == nil {
			return nil, mdview.Errorf(mdview.EINVALID, "page has no #%s element", id)
		}
		*dst = n
	}

	state := &State{doc: doc, el: el}
	content := &ContentLoader{
		state:    state,
		contents: cfg.Contents,
		markdown: cfg.Markdown,
		math:     cfg.Math,
		logger:   logger,
	}
	return &App{
		State: state,
		Theme: &ThemeManager{state: state, storage: cfg.Storage, logger: logger},
		Tree: &TreeLoader{
			state:      state,
			trees:      cfg.Trees,
			content:    content,
			linkPrefix: cfg.LinkPrefix,
			logger:     logger,
		},
		Content: content,
		logger:  logger,
	}, nil
}

// NewPage creates an App on a fresh copy of the built-in page shell.
func NewPage(cfg Config) (*App, error) {
	doc, err := dom.ParseString(Shell)
	if err != nil {
		return nil, err
	}
	return NewApp(doc, cfg)
}

// Start runs the page-ready sequence: bind the theme toggle, apply the
// theme, then load the navigation tree. The theme toggle is bound once for
// the lifetime of the page. A tree failure is already shown on the page
// and is returned for diagnostics only.
func (a *App) Start(ctx context.Context) error {
	a.State.update(func(doc *dom.Document, el *Elements) {
		if a.started {
			return
		}
		a.started = true
		doc.AddEventListener(el.ThemeToggle, "click", func(ctx context.Context, _ *html.Node) {
			if _, err := a.Theme.Toggle(ctx); err != nil {
				a.logger.Error("failed to toggle theme", "err", err)
			}
		})
	})

	a.Theme.Init(ctx)
	return a.Tree.Load(ctx)
}

// Click dispatches a click to the first element matching selector.
// Returns ENOTFOUND if nothing matches.
func (a *App) Click(ctx context.Context, selector string) error {
	var target *html.Node
	var listeners []dom.Listener
	a.State.update(func(doc *dom.Document, _ *Elements) {
		target = doc.First(selector)
		if target != nil {
			listeners = doc.Listeners(target, "click")
		}
	})
	if target == nil {
		return mdview.Errorf(mdview.ENOTFOUND, "no element matches %q", selector)
	}
	for _, fn := range listeners {
		fn(ctx, target)
	}
	return nil
}

// Navigate opens path through its nav item, as a click on it would, and
// returns the load error. Returns ENOTFOUND if the navigation has no such
// item.
func (a *App) Navigate(ctx context.Context, path string) error {
	return a.Tree.Open(ctx, path)
}

// Open shows the document at path: through its nav item when the
// navigation lists it, directly otherwise. Returns the load error.
func (a *App) Open(ctx context.Context, path string) error {
	a.Tree.activate(path)
	return a.Content.Load(ctx, path)
}

// View runs fn with read access to the page.
func (a *App) View(fn func(doc *dom.Document)) {
	a.State.update(func(doc *dom.Document, _ *Elements) {
		fn(doc)
	})
}

// Render writes the page as HTML.
func (a *App) Render(w io.Writer) error {
	var err error
	a.View(func(doc *dom.Document) {
		err = doc.Render(w)
	})
	return err
}

// ArticleHTML returns the markup of the article body.
func (a *App) ArticleHTML() string {
	var out string
	a.State.update(func(_ *dom.Document, el *Elements) {
		out = dom.InnerHTML(el.ArticleBody)
	})
	return out
}
