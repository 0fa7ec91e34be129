package viewer

import (
	"sync"

	"github.com/fwojciec/mdview/dom"
	"golang.org/x/net/html"
)

// Element ids the page shell must provide.
const (
	IDThemeToggle = "theme-toggle"
	IDNavTree     = "nav-tree"
	IDWelcome     = "welcome"
	IDArticle     = "article"
	IDArticleBody = "article-body"
	IDBreadcrumb  = "breadcrumb"
)

// Elements holds the handles of the page regions the viewer updates.
type Elements struct {
	Root        *html.Node
	ThemeToggle *html.Node
	NavTree     *html.Node
	Welcome     *html.Node
	Article     *html.Node
	ArticleBody *html.Node
	Breadcrumb  *html.Node
}

// State owns the page and the navigation state. Every read or write of the
// document goes through it, one at a time.
type State struct {
	mu  sync.Mutex
	doc *dom.Document
	el  Elements

	currentPath string
	token       uint64
}

// CurrentPath returns the path of the document on display, or "".
func (s *State) CurrentPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPath
}

// update runs fn with exclusive access to the document.
func (s *State) update(fn func(doc *dom.Document, el *Elements)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc, &s.el)
}

// navigate starts a navigation and returns its token.
func (s *State) navigate() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token++
	return s.token
}

// apply runs fn only while token is the latest navigation and reports
// whether it ran.
func (s *State) apply(token uint64, fn func(doc *dom.Document, el *Elements)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return false
	}
	fn(s.doc, &s.el)
	return true
}
