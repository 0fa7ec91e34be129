package viewer

import (
	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/dom"
	"golang.org/x/net/html"
)

// Class names shared with the stylesheet.
const (
	ClassFolder       = "nav-folder"
	ClassFolderHeader = "nav-folder-header"
	ClassFolderIcon   = "nav-folder-icon"
	ClassFolderItems  = "nav-folder-items"
	ClassItem         = "nav-item"
	ClassActive       = "active"
	ClassCollapsed    = "collapsed"
	ClassCrumb        = "breadcrumb-segment"
	ClassCrumbSep     = "breadcrumb-sep"
	ClassCurrent      = "current"
)

// Messages shown in place of content.
const (
	EmptyTreeMessage    = "No content yet."
	NavErrorMessage     = "Failed to load navigation"
	ContentErrorTitle   = "Failed to load content"
	ContentErrorMessage = "Could not load the requested file."
)

// RenderTree builds the navigation markup for nodes. Directories become
// expanded folders holding their children in listing order; files become
// nav items tagged with their path. When linkPrefix is set, items also
// link to linkPrefix+path.
func RenderTree(nodes []*mdview.TreeNode, linkPrefix string) []*html.Node {
	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.IsDir() {
			out = append(out, dom.El("div", dom.Attrs("class", ClassFolder),
				dom.El("div", dom.Attrs("class", ClassFolderHeader),
					dom.El("span", dom.Attrs("class", ClassFolderIcon), dom.Text("▼")),
					dom.Text(n.Name),
				),
				dom.El("div", dom.Attrs("class", ClassFolderItems), RenderTree(n.Children, linkPrefix)...),
			))
			continue
		}

		attrs := dom.Attrs("class", ClassItem, "data-path", n.Path)
		if linkPrefix != "" {
			attrs = append(attrs, html.Attribute{Key: "href", Val: linkPrefix + n.Path})
		}
		out = append(out, dom.El("a", attrs, dom.Text(n.Name)))
	}
	return out
}

// RenderEmptyTree builds the navigation placeholder for an empty listing.
func RenderEmptyTree() []*html.Node {
	return []*html.Node{
		dom.El("div", dom.Attrs("class", "nav-empty"),
			dom.El("p", nil, dom.Text(EmptyTreeMessage)),
			dom.El("p", dom.Attrs("class", "nav-empty-hint"),
				dom.Text("Add "),
				dom.El("code", nil, dom.Text(".md")),
				dom.Text(" files to the "),
				dom.El("code", nil, dom.Text("content/")),
				dom.Text(" folder."),
			),
		),
	}
}

// RenderNavError builds the navigation placeholder for a failed load.
func RenderNavError() []*html.Node {
	return []*html.Node{
		dom.El("div", dom.Attrs("class", "nav-error"), dom.Text(NavErrorMessage)),
	}
}

// RenderBreadcrumb builds one segment per path label with separators in
// between. The last segment is marked as the current page.
func RenderBreadcrumb(path string) []*html.Node {
	labels := mdview.Breadcrumb(path)
	out := make([]*html.Node, 0, 2*len(labels))
	for i, label := range labels {
		if i == len(labels)-1 {
			out = append(out, dom.El("span", dom.Attrs("class", ClassCrumb+" "+ClassCurrent, "aria-current", "page"), dom.Text(label)))
			break
		}
		out = append(out,
			dom.El("span", dom.Attrs("class", ClassCrumb), dom.Text(label)),
			dom.El("span", dom.Attrs("class", ClassCrumbSep), dom.Text("/")),
		)
	}
	return out
}

// RenderContentError builds the article body shown when a document fails to load.
func RenderContentError() []*html.Node {
	return []*html.Node{
		dom.El("div", dom.Attrs("class", "error-message"),
			dom.El("h2", nil, dom.Text(ContentErrorTitle)),
			dom.El("p", nil, dom.Text(ContentErrorMessage)),
		),
	}
}
