package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

// Landing renders the public landing page body.
func Landing(loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<main class="public" id="landing">`)
		m.render(ctx, Brand(loc))
		m.raw("<p>")
		m.text(T(loc, "landing.tagline"))
		m.raw("</p><p><a")
		m.href("href", routepath.Dashboard)
		m.raw(` class="btn-green">`)
		m.text(T(loc, "landing.open_dashboard"))
		m.raw("</a> <a")
		m.href("href", routepath.Login)
		m.raw(">")
		m.text(T(loc, "landing.sign_in"))
		m.raw("</a></p></main>")
	})
}

// LoginView is the login page render model.
type LoginView struct {
	// ProviderURL is the upstream identity provider sign-in URL.
	ProviderURL string
	// Error is a user-safe message from a failed sign-in attempt.
	Error string
}

// Login renders the login page body.
func Login(view LoginView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<main class="public" id="login">`)
		m.render(ctx, Brand(loc))
		m.raw("<h1>")
		m.text(T(loc, "login.heading"))
		m.raw("</h1>")
		if view.Error != "" {
			m.raw(`<p class="login-error" role="alert" data-login-error>`)
			m.text(view.Error)
			m.raw("</p>")
		}
		if provider := strings.TrimSpace(view.ProviderURL); provider != "" {
			m.raw("<a")
			m.href("href", provider)
			m.raw(` class="btn-green" hx-boost="false" data-login-provider>`)
			m.text(T(loc, "login.continue"))
			m.raw("</a>")
		} else {
			m.raw(`<p data-login-unconfigured>`)
			m.text(T(loc, "login.unconfigured"))
			m.raw("</p>")
		}
		m.raw("</main>")
	})
}
