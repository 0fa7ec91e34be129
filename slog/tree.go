package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdview"
)

// Ensure LoggingTreeService implements mdview.TreeService.
var _ mdview.TreeService = (*LoggingTreeService)(nil)

// LoggingTreeService wraps a TreeService with logging.
type LoggingTreeService struct {
	next   mdview.TreeService
	logger *slog.Logger
}

// NewLoggingTreeService creates a new LoggingTreeService.
func NewLoggingTreeService(next mdview.TreeService, logger *slog.Logger) *LoggingTreeService {
	return &LoggingTreeService{next: next, logger: logger}
}

// FetchTree delegates to the wrapped service and logs the operation.
func (s *LoggingTreeService) FetchTree(ctx context.Context) (nodes []*mdview.TreeNode, err error) {
	defer func(begin time.Time) {
		dirs, files := mdview.CountNodes(nodes)
		s.logger.Info("fetch tree",
			"dirs", dirs,
			"files", files,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchTree(ctx)
}
