package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

// PendingReloadTrigger delays the pending shell's re-request.
const PendingReloadTrigger = "load delay:1s"

// DashboardHeader renders the dashboard title and the user menu slot.
func DashboardHeader(loc Localizer, menu templ.Component) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<header class="header"><h1>`)
		m.text(T(loc, "title.dashboard"))
		m.raw("</h1>")
		m.render(ctx, menu)
		m.raw("</header>")
	})
}

// LoginPrompt asks an anonymous visitor to sign in.
func LoginPrompt(loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<p id="login-prompt">`)
		m.text(T(loc, "auth.prompt_before"))
		m.raw(" <a")
		m.href("href", routepath.Login)
		m.raw(">")
		m.text(T(loc, "auth.prompt_link"))
		m.raw("</a> ")
		m.text(T(loc, "auth.prompt_after"))
		m.raw("</p>")
	})
}

// PendingIndicator shows a loader that re-requests reloadURL into the shell.
func PendingIndicator(reloadURL string, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<div id="session-pending" class="loader" role="status" aria-live="polite"`)
		m.href("hx-get", reloadURL)
		m.attr("hx-trigger", PendingReloadTrigger)
		m.attr("hx-target", "#"+ShellID)
		m.attr("hx-swap", "outerHTML")
		m.raw(">")
		m.text(T(loc, "pending.loading"))
		m.raw("</div>")
	})
}

// DocumentsPanel renders the documents placeholder section.
func DocumentsPanel(loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section id="documents" class="widget"><h2>`)
		m.text(T(loc, "documents.heading"))
		m.raw("</h2><p>")
		m.text(T(loc, "documents.empty"))
		m.raw("</p></section>")
	})
}
