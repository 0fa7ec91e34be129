package viewer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/dom"
)

// ThemeManager applies the persisted theme to the root element and flips it
// on request. After Init or Toggle the applied and persisted values match.
type ThemeManager struct {
	state   *State
	storage mdview.Storage
	logger  *slog.Logger
}

// Init applies the persisted theme, falling back to the default when
// nothing usable is stored.
func (m *ThemeManager) Init(ctx context.Context) mdview.Theme {
	theme := mdview.DefaultTheme
	persisted := false

	v, err := m.storage.GetItem(ctx, mdview.ThemeKey)
	switch {
	case err == nil:
		if t, perr := mdview.ParseTheme(v); perr == nil {
			theme, persisted = t, true
		} else {
			m.logger.Warn("ignoring stored theme", "value", v)
		}
	case mdview.ErrorCode(err) != mdview.ENOTFOUND:
		m.logger.Warn("failed to read theme", "err", err)
	}

	m.state.update(func(_ *dom.Document, el *Elements) {
		dom.SetAttr(el.Root, mdview.ThemeAttr, string(theme))
	})

	if !persisted {
		if err := m.storage.SetItem(ctx, mdview.ThemeKey, string(theme)); err != nil {
			m.logger.Warn("failed to persist theme", "err", err)
		}
	}
	return theme
}

// Toggle applies the opposite of the current theme and persists it. When
// persisting fails the previous theme is restored.
func (m *ThemeManager) Toggle(ctx context.Context) (mdview.Theme, error) {
	var prev string
	var hadPrev bool
	var next mdview.Theme
	m.state.update(func(_ *dom.Document, el *Elements) {
		prev, hadPrev = dom.Attr(el.Root, mdview.ThemeAttr)
		next = mdview.Theme(prev).Opposite()
		dom.SetAttr(el.Root, mdview.ThemeAttr, string(next))
	})

	if err := m.storage.SetItem(ctx, mdview.ThemeKey, string(next)); err != nil {
		m.state.update(func(_ *dom.Document, el *Elements) {
			if hadPrev {
				dom.SetAttr(el.Root, mdview.ThemeAttr, prev)
			} else {
				dom.RemoveAttr(el.Root, mdview.ThemeAttr)
			}
		})
		return mdview.Theme(prev), fmt.Errorf("persist theme: %w", err)
	}
	return next, nil
}

// Theme returns the applied theme.
func (m *ThemeManager) Theme() mdview.Theme {
	var theme string
	m.state.update(func(_ *dom.Document, el *Elements) {
		theme, _ = dom.Attr(el.Root, mdview.ThemeAttr)
	})
	return mdview.Theme(theme)
}
