package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/mdview"
)

// Ensure Client implements the mdview services at compile time.
var (
	_ mdview.TreeService    = (*Client)(nil)
	_ mdview.ContentService = (*Client)(nil)
)

// Client fetches the tree listing and documents from an mdview server.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request. By default requests wait until the
// context ends.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a new Client for the server at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{baseURL: strings.TrimSuffix(baseURL, "/")}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	} else if c.timeout > 0 {
		hc := *c.client
		hc.Timeout = c.timeout
		c.client = &hc
	}
	return c
}

// FetchTree retrieves GET /tree.
func (c *Client) FetchTree(ctx context.Context) ([]*mdview.TreeNode, error) {
	var nodes []*mdview.TreeNode
	if err := c.get(ctx, "/tree", &nodes); err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = []*mdview.TreeNode{}
	}
	return nodes, nil
}

// FetchContent retrieves GET /content/{path}.
func (c *Client) FetchContent(ctx context.Context, path string) (*mdview.DocumentContent, error) {
	if path == "" {
		return nil, mdview.Errorf(mdview.EINVALID, "content path required")
	}

	var doc mdview.DocumentContent
	if err := c.get(ctx, "/content/"+escapePath(path), &doc); err != nil {
		return nil, err
	}
	if doc.Path == "" {
		doc.Path = path
	}
	return &doc, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, u, body)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return mdview.Errorf(mdview.EINVALID, "invalid JSON from %s: %v", u, err)
	}
	return nil
}

// statusError maps an unsuccessful response to an application error,
// preferring the server's detail message.
func statusError(status int, u string, body []byte) error {
	msg := fmt.Sprintf("HTTP %d for %s", status, u)
	var e errorResponse
	if json.Unmarshal(body, &e) == nil && e.Detail != "" {
		msg = e.Detail
	}

	switch status {
	case http.StatusNotFound:
		return mdview.Errorf(mdview.ENOTFOUND, "%s", msg)
	case http.StatusForbidden:
		return mdview.Errorf(mdview.EFORBIDDEN, "%s", msg)
	case http.StatusBadRequest:
		return mdview.Errorf(mdview.EINVALID, "%s", msg)
	}
	return mdview.Errorf(mdview.EINTERNAL, "%s", msg)
}

// escapePath escapes each segment of a slash-separated path.
func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
