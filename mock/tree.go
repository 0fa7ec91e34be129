package mock

import (
	"context"

	"github.com/fwojciec/mdview"
)

var _ mdview.TreeService = (*TreeService)(nil)

// TreeService is a mock implementation of mdview.TreeService.
type TreeService struct {
	FetchTreeFn func(ctx context.Context) ([]*mdview.TreeNode, error)
}

func (s *TreeService) FetchTree(ctx context.Context) ([]*mdview.TreeNode, error) {
	return s.FetchTreeFn(ctx)
}
