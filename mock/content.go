package mock

import (
	"context"

	"github.com/fwojciec/mdview"
)

var _ mdview.ContentService = (*ContentService)(nil)

// ContentService is a mock implementation of mdview.ContentService.
type ContentService struct {
	FetchContentFn func(ctx context.Context, path string) (*mdview.DocumentContent, error)
}

func (s *ContentService) FetchContent(ctx context.Context, path string) (*mdview.DocumentContent, error) {
	return s.FetchContentFn(ctx, path)
}
