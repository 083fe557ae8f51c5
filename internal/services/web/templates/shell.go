package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/platform/icons"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

// ShellID is the element id of the dashboard shell swapped by HTMX reloads.
const ShellID = "dashboard-shell"

// NavItem is one sidebar navigation entry.
type NavItem struct {
	ID       string
	LabelKey string
	Path     string
	Icon     icons.ID
	Active   bool
}

// ShellView describes one dashboard shell render.
type ShellView struct {
	// Variant is recorded on the shell root for clients and tests.
	Variant   string
	Nav       []NavItem
	MainClass string
}

// Shell renders the sidebar and wraps its children as main content.
func Shell(view ShellView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		m.raw(`<div class="dashboard"`)
		m.attr("id", ShellID)
		m.attr("data-layout", view.Variant)
		m.raw(`><aside class="sidebar"><div class="sidebar-top">`)
		m.render(ctx, Brand(loc))
		m.raw(`</div><nav class="nav" id="sidebar-nav">`)
		for _, item := range view.Nav {
			m.render(ctx, navLink(item, loc))
		}
		m.raw(`</nav></aside><main id="main"`)
		class := "main"
		if view.MainClass != "" {
			class += " " + view.MainClass
		}
		m.attr("class", class)
		m.raw(">")
		m.render(ctx, children)
		m.raw("</main></div>")
	})
}

// Brand renders the brand mark linking to the application root.
func Brand(loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<a class="logo" data-nav="brand"`)
		m.href("href", routepath.Root)
		m.attr("aria-label", T(loc, "brand.home"))
		m.raw(`><div class="logo-circle"><span>`)
		m.text(T(loc, "brand.mark"))
		m.raw(`</span></div><span class="logo-text">`)
		m.text(T(loc, "brand.name"))
		m.raw("</span></a>")
	})
}

func navLink(item NavItem, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		class := "nav-item"
		if item.Active {
			class += " active"
		}
		m.raw("<a")
		m.href("href", item.Path)
		m.attr("class", class)
		m.attr("data-nav-item", item.ID)
		if item.Active {
			m.attr("aria-current", "page")
		}
		m.raw(">")
		m.render(ctx, Icon(item.Icon))
		m.raw("<span>")
		m.text(T(loc, item.LabelKey))
		m.raw("</span></a>")
	})
}

// Icon renders an outline icon from the catalog.
func Icon(id icons.ID) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<svg class="icon" fill="none" stroke="currentColor" viewBox="0 0 24 24" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2"`)
		m.attr("d", icons.PathOrDefault(id))
		m.raw("></path></svg>")
	})
}
