package mock

import "github.com/fwojciec/mdview"

var _ mdview.MarkdownRenderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer is a mock implementation of mdview.MarkdownRenderer.
type MarkdownRenderer struct {
	RenderFn func(src string) (string, error)
}

func (r *MarkdownRenderer) Render(src string) (string, error) {
	return r.RenderFn(src)
}

var _ mdview.MathRenderer = (*MathRenderer)(nil)

// MathRenderer is a mock implementation of mdview.MathRenderer.
type MathRenderer struct {
	ReadyFn      func() <-chan struct{}
	RenderMathFn func(html string) (string, error)
}

func (r *MathRenderer) Ready() <-chan struct{} {
	return r.ReadyFn()
}

func (r *MathRenderer) RenderMath(html string) (string, error) {
	return r.RenderMathFn(html)
}
