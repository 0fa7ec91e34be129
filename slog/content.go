package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdview"
)

// Ensure LoggingContentService implements mdview.ContentService.
var _ mdview.ContentService = (*LoggingContentService)(nil)

// LoggingContentService wraps a ContentService with logging.
type LoggingContentService struct {
	next   mdview.ContentService
	logger *slog.Logger
}

// NewLoggingContentService creates a new LoggingContentService.
func NewLoggingContentService(next mdview.ContentService, logger *slog.Logger) *LoggingContentService {
	return &LoggingContentService{next: next, logger: logger}
}

// FetchContent delegates to the wrapped service and logs the operation.
func (s *LoggingContentService) FetchContent(ctx context.Context, path string) (doc *mdview.DocumentContent, err error) {
	defer func(begin time.Time) {
		size := 0
		if doc != nil {
			size = len(doc.Content)
		}
		s.logger.Info("fetch content",
			"path", path,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchContent(ctx, path)
}
