package viewer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/dom"
	"github.com/fwojciec/mdview/goldmark"
	"github.com/fwojciec/mdview/latex"
	"github.com/fwojciec/mdview/mock"
	"github.com/fwojciec/mdview/viewer"
	"github.com/stretchr/testify/require"
)

// sampleTree is a listing with one nested folder.
func sampleTree() []*mdview.TreeNode {
	return []*mdview.TreeNode{
		{Type: mdview.NodeDirectory, Name: "Foo", Path: "foo", Children: []*mdview.TreeNode{
			{Type: mdview.NodeFile, Name: "Bar", Path: "foo/bar.md"},
			{Type: mdview.NodeFile, Name: "Baz", Path: "foo/baz.md"},
		}},
		{Type: mdview.NodeFile, Name: "Intro", Path: "intro.md"},
	}
}

// staticTree returns a TreeService serving nodes.
func staticTree(nodes []*mdview.TreeNode) *mock.TreeService {
	return &mock.TreeService{
		FetchTreeFn: func(context.Context) ([]*mdview.TreeNode, error) {
			return nodes, nil
		},
	}
}

// staticContent returns a ContentService serving docs by path and
// ENOTFOUND for anything else.
func staticContent(docs map[string]string) *mock.ContentService {
	return &mock.ContentService{
		FetchContentFn: func(_ context.Context, path string) (*mdview.DocumentContent, error) {
			content, ok := docs[path]
			if !ok {
				return nil, mdview.Errorf(mdview.ENOTFOUND, "File not found")
			}
			return &mdview.DocumentContent{Content: content, Path: path}, nil
		},
	}
}

// newApp creates an App on the built-in shell, filling unset
// collaborators with working defaults.
func newApp(t *testing.T, cfg viewer.Config) *viewer.App {
	t.Helper()

	if cfg.Storage == nil {
		cfg.Storage = mock.NewMapStorage(map[string]string{})
	}
	if cfg.Trees == nil {
		cfg.Trees = staticTree(sampleTree())
	}
	if cfg.Contents == nil {
		cfg.Contents = staticContent(map[string]string{})
	}
	if cfg.Markdown == nil {
		cfg.Markdown = goldmark.NewRenderer()
	}
	if cfg.Math == nil {
		cfg.Math = latex.NewTypesetter()
	}

	app, err := viewer.NewPage(cfg)
	require.NoError(t, err)
	return app
}

// find runs a selector against the page and returns the matched nodes' text.
func find(app *viewer.App, selector string) []string {
	var out []string
	app.View(func(doc *dom.Document) {
		for _, n := range doc.Find(selector).Nodes {
			out = append(out, strings.TrimSpace(dom.TextContent(n)))
		}
	})
	return out
}

// hidden reports whether the element with id is hidden.
func hidden(app *viewer.App, id string) bool {
	var out bool
	app.View(func(doc *dom.Document) {
		out = dom.Hidden(doc.ElementByID(id))
	})
	return out
}
