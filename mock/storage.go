package mock

import (
	"context"

	"github.com/fwojciec/mdview"
)

var _ mdview.Storage = (*Storage)(nil)

// Storage is a mock implementation of mdview.Storage.
type Storage struct {
	GetItemFn func(ctx context.Context, key string) (string, error)
	SetItemFn func(ctx context.Context, key, value string) error
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, error) {
	return s.GetItemFn(ctx, key)
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	return s.SetItemFn(ctx, key, value)
}

// NewMapStorage returns a Storage backed by m.
// It is not safe for concurrent use.
func NewMapStorage(m map[string]string) *Storage {
	return &Storage{
		GetItemFn: func(_ context.Context, key string) (string, error) {
			v, ok := m[key]
			if !ok {
				return "", mdview.Errorf(mdview.ENOTFOUND, "item %q not found", key)
			}
			return v, nil
		},
		SetItemFn: func(_ context.Context, key, value string) error {
			m[key] = value
			return nil
		},
	}
}
