package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

// htmxScriptURL pins the htmx build loaded by every document.
const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title       string
	Lang        string
	Loc         Localizer
	CurrentPath string
}

func (p PageContext) lang() string {
	if lang := strings.TrimSpace(p.Lang); lang != "" {
		return lang
	}
	return "en"
}

// Document renders the full HTML document around its children.
func Document(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		m.raw("<!doctype html><html")
		m.attr("lang", page.lang())
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		title := strings.TrimSpace(page.Title)
		brand := T(page.Loc, "brand.name")
		if title == "" || title == brand {
			m.text(brand)
		} else {
			m.text(title + " | " + brand)
		}
		m.raw("</title>")
		m.raw(`<link rel="stylesheet"`)
		m.href("href", routepath.StaticPrefix+"dashboard.css")
		m.raw(`><script defer`)
		m.href("src", htmxScriptURL)
		m.raw(`></script></head><body hx-boost="true">`)
		m.render(ctx, children)
		m.raw("</body></html>")
	})
}
