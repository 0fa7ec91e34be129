// Package fs provides file-based storage for markdown documents.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/mdview"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ensure ContentStore implements the mdview services at compile time.
var (
	_ mdview.TreeService    = (*ContentStore)(nil)
	_ mdview.ContentService = (*ContentStore)(nil)
)

// ContentStore serves the markdown files below a root directory.
type ContentStore struct {
	root    string
	exclude []string
}

// Option configures a ContentStore.
type Option func(*ContentStore)

// WithExclude hides paths matching any of the glob patterns (doublestar
// syntax, matched against the slash-separated relative path and its base
// name).
func WithExclude(patterns ...string) Option {
	return func(s *ContentStore) {
		s.exclude = append(s.exclude, patterns...)
	}
}

// NewContentStore creates a ContentStore rooted at dir.
func NewContentStore(dir string, opts ...Option) *ContentStore {
	s := &ContentStore{root: dir}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the content directory.
func (s *ContentStore) Root() string {
	return s.root
}

// FetchTree lists the markdown files below the root. Directories come
// before files, each group ordered case-insensitively by name. Hidden
// entries and directories without documents are left out. A missing root
// yields an empty listing.
func (s *ContentStore) FetchTree(ctx context.Context) ([]*mdview.TreeNode, error) {
	if _, err := os.Stat(s.root); errors.Is(err, fs.ErrNotExist) {
		return []*mdview.TreeNode{}, nil
	}
	nodes, err := s.buildTree(ctx, s.root)
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = []*mdview.TreeNode{}
	}
	return nodes, nil
}

func (s *ContentStore) buildTree(ctx context.Context, dir string) ([]*mdview.TreeNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrPermission) {
		return nil, nil
	} else if err != nil {
		return nil, mdview.Errorf(mdview.EINTERNAL, "failed to read %s: %v", dir, err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var nodes []*mdview.TreeNode
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		full := filepath.Join(dir, entry.Name())
		rel, err := filepath.Rel(s.root, full)
		if err != nil {
			return nil, err
		}
		rel = filepath.ToSlash(rel)
		if s.excluded(rel) {
			continue
		}

		if entry.IsDir() {
			children, err := s.buildTree(ctx, full)
			if err != nil {
				return nil, err
			}
			if len(children) == 0 {
				continue
			}
			nodes = append(nodes, &mdview.TreeNode{
				Type:     mdview.NodeDirectory,
				Name:     DisplayName(entry.Name()),
				Path:     rel,
				Children: children,
			})
			continue
		}

		if !isDocument(entry.Name()) {
			continue
		}
		nodes = append(nodes, &mdview.TreeNode{
			Type: mdview.NodeFile,
			Name: DisplayName(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))),
			Path: rel,
		})
	}
	return nodes, nil
}

// FetchContent returns the raw markdown of the document at rel.
// Returns EFORBIDDEN for paths outside the root, ENOTFOUND for missing or
// excluded documents and EINVALID for paths that are not regular files.
func (s *ContentStore) FetchContent(ctx context.Context, rel string) (*mdview.DocumentContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, mdview.Errorf(mdview.ENOTFOUND, "File not found")
	} else if err != nil {
		return nil, mdview.Errorf(mdview.EINTERNAL, "Error reading file: %v", err)
	}
	if !info.Mode().IsRegular() {
		return nil, mdview.Errorf(mdview.EINVALID, "Path is not a file")
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, mdview.Errorf(mdview.EINTERNAL, "Error reading file: %v", err)
	}
	return &mdview.DocumentContent{Content: string(data), Path: rel}, nil
}

// resolve maps rel to a file below the root, following symlinks.
func (s *ContentStore) resolve(rel string) (string, error) {
	if rel == "" || strings.ContainsRune(rel, 0) {
		return "", mdview.Errorf(mdview.EINVALID, "Invalid path")
	}

	root, err := filepath.Abs(s.root)
	if err != nil {
		return "", mdview.Errorf(mdview.EFORBIDDEN, "Invalid path")
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	full := filepath.Join(root, filepath.FromSlash(rel))
	if resolved, err := filepath.EvalSymlinks(full); err == nil {
		full = resolved
	}

	inside, err := filepath.Rel(root, full)
	if err != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", mdview.Errorf(mdview.EFORBIDDEN, "Access denied")
	}
	if s.excluded(filepath.ToSlash(inside)) {
		return "", mdview.Errorf(mdview.ENOTFOUND, "File not found")
	}
	return full, nil
}

func (s *ContentStore) excluded(rel string) bool {
	for _, pattern := range s.exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, path.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}

func isDocument(name string) bool {
	return strings.EqualFold(filepath.Ext(name), mdview.DocumentExt)
}

// DisplayName turns a file or directory name into a title: underscores
// become spaces and every word is capitalised.
func DisplayName(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}
