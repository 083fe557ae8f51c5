package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

// UserMenuID is the element id swapped by menu toggles.
const UserMenuID = "user-menu"

// UserMenuView is the user menu render model.
type UserMenuView struct {
	Open      bool
	Busy      bool
	Name      string
	Email     string
	AvatarURL string
	// ToggleURL flips the menu state.
	ToggleURL string
	LogoutURL string
}

func (v UserMenuView) state() string {
	if v.Open {
		return routepath.MenuOpen
	}
	return routepath.MenuClosed
}

// UserMenu renders the avatar toggle and, when open, identity and logout.
func UserMenu(view UserMenuView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<div class="user-dropdown"`)
		m.attr("id", UserMenuID)
		m.attr("data-menu-state", view.state())
		m.raw("><a")
		m.href("href", view.ToggleURL)
		m.href("hx-get", view.ToggleURL)
		m.attr("hx-target", "#"+UserMenuID)
		m.attr("hx-swap", "outerHTML")
		m.attr("hx-push-url", "false")
		m.attr("class", "avatar-toggle")
		m.attr("aria-label", T(loc, "menu.toggle"))
		if view.Open {
			m.attr("aria-expanded", "true")
		} else {
			m.attr("aria-expanded", "false")
		}
		m.raw("><img")
		m.href("src", view.AvatarURL)
		m.attr("alt", T(loc, "menu.avatar_alt"))
		m.raw(` class="avatar"></a>`)
		if !view.Open {
			m.raw("</div>")
			return
		}
		m.raw(`<div class="dropdown-menu"><div class="user-info"><strong data-user-name>`)
		m.text(view.Name)
		m.raw("</strong><small data-user-email>")
		m.text(view.Email)
		m.raw(`</small></div><form method="post"`)
		m.href("action", view.LogoutURL)
		m.href("hx-post", view.LogoutURL)
		m.attr("hx-target", "#"+UserMenuID)
		m.attr("hx-swap", "outerHTML")
		m.attr("hx-disabled-elt", "find button")
		m.raw(`><input type="hidden"`)
		m.attr("name", routepath.MenuQueryKey)
		m.attr("value", view.state())
		m.raw(`><button type="submit" class="logout-btn" data-logout`)
		m.flag("disabled", view.Busy)
		m.raw(">")
		m.text(T(loc, "menu.logout"))
		m.raw("</button></form></div></div>")
	})
}
