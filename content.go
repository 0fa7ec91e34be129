package mdview

import "context"

// DocumentContent is the raw markdown of one document.
type DocumentContent struct {
	Content string `json:"content"`
	Path    string `json:"path,omitempty"`
}

// ContentService provides document content by path.
type ContentService interface {
	// FetchContent returns the markdown for the document at path.
	// Returns ENOTFOUND if the document does not exist.
	FetchContent(ctx context.Context, path string) (*DocumentContent, error)
}
