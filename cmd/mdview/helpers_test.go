package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/mdview"
	main "github.com/fwojciec/mdview/cmd/mdview"
	"github.com/fwojciec/mdview/goldmark"
	"github.com/fwojciec/mdview/htmltomarkdown"
	"github.com/fwojciec/mdview/latex"
	"github.com/fwojciec/mdview/mock"
)

// sampleTree is a listing with one nested folder.
func sampleTree() []*mdview.TreeNode {
	return []*mdview.TreeNode{
		{Type: mdview.NodeDirectory, Name: "Guides", Path: "guides", Children: []*mdview.TreeNode{
			{Type: mdview.NodeFile, Name: "Setup", Path: "guides/setup.md"},
		}},
		{Type: mdview.NodeFile, Name: "Intro", Path: "intro.md"},
	}
}

// newDeps returns dependencies over in-memory services serving docs.
func newDeps(t *testing.T, nodes []*mdview.TreeNode, docs map[string]string, store map[string]string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  slog.New(slog.DiscardHandler),
		Storage: mock.NewMapStorage(store),
		Trees: &mock.TreeService{
			FetchTreeFn: func(context.Context) ([]*mdview.TreeNode, error) {
				return nodes, nil
			},
		},
		Contents: &mock.ContentService{
			FetchContentFn: func(_ context.Context, path string) (*mdview.DocumentContent, error) {
				content, ok := docs[path]
				if !ok {
					return nil, mdview.Errorf(mdview.ENOTFOUND, "File not found")
				}
				return &mdview.DocumentContent{Content: content, Path: path}, nil
			},
		},
		Markdown:  goldmark.NewRenderer(goldmark.WithoutHighlighting()),
		Math:      latex.NewTypesetter(),
		Converter: htmltomarkdown.NewConverter(),
	}, stdout, stderr
}
