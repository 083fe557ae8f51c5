package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup writes HTML for one component render and keeps the first error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name string, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes a sanitized URL attribute.
func (m *markup) href(name string, value string) {
	m.attr(name, string(templ.URL(value)))
}

func (m *markup) flag(name string, on bool) {
	if on {
		m.raw(" " + name)
	}
}

func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func component(fn func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		fn(ctx, m)
		return m.err
	})
}

// Text renders escaped text.
func Text(value string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.text(value)
	})
}

// Group renders components in order.
func Group(components ...templ.Component) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		for _, c := range components {
			m.render(ctx, c)
		}
	})
}
