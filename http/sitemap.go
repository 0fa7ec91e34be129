package http

import (
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/mdview"
)

// SitemapNamespace is the XML namespace of a sitemap urlset.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// BuildSitemap returns a sitemap listing the view page of every document
// in nodes, in listing order. Locations are prefixed with baseURL.
func BuildSitemap(baseURL string, nodes []*mdview.TreeNode) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)

	base := strings.TrimSuffix(baseURL, "/")
	mdview.WalkFiles(nodes, func(n *mdview.TreeNode) {
		loc := urlset.CreateElement("url").CreateElement("loc")
		loc.SetText(base + ViewPrefix + escapePath(n.Path))
	})

	doc.Indent(2)
	return doc
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.cfg.Trees.FetchTree(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	base := s.cfg.BaseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if _, err := BuildSitemap(base, nodes).WriteTo(w); err != nil {
		s.logger.Error("failed to write sitemap", "err", err)
	}
}
