// Package usermenu holds the dashboard user menu state and logout sequencing.
package usermenu

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/clearance/internal/services/web/templates"
)

// Menu is one user menu instance. The zero value is closed and idle.
type Menu struct {
	Open bool
	// Busy renders the logout control disabled while a logout is in flight.
	Busy bool
	// Carried is the raw request query whose sibling UI state the menu's
	// URLs pass through unchanged.
	Carried string
}

// New returns a closed, idle menu.
func New() Menu {
	return Menu{}
}

// FromState restores a menu from its request-carried state value.
func FromState(value string) Menu {
	return Menu{Open: strings.EqualFold(strings.TrimSpace(value), routepath.MenuOpen)}
}

// Toggle flips the menu between open and closed.
func (m *Menu) Toggle() {
	m.Open = !m.Open
}

// State returns the request-carried state value.
func (m Menu) State() string {
	if m.Open {
		return routepath.MenuOpen
	}
	return routepath.MenuClosed
}

// ToggleURL returns the URL that renders this menu flipped.
func (m Menu) ToggleURL() string {
	flipped := m
	flipped.Toggle()
	return routepath.WithState(routepath.DashboardMenu, m.Carried, routepath.MenuQueryKey, flipped.State())
}

// LogoutURL returns the logout action URL. The menu state travels in the form.
func (m Menu) LogoutURL() string {
	return routepath.WithState(routepath.DashboardLogout, m.Carried, routepath.MenuQueryKey, "")
}

// View builds the render model for user. Identity and the logout control are
// only populated while the menu is open.
func (m Menu) View(user session.Session) webtemplates.UserMenuView {
	view := webtemplates.UserMenuView{
		Open:      m.Open,
		Busy:      m.Busy,
		AvatarURL: user.Avatar(),
		ToggleURL: m.ToggleURL(),
	}
	if !m.Open {
		return view
	}
	view.Name = user.Name()
	view.Email = strings.TrimSpace(user.Email)
	view.LogoutURL = m.LogoutURL()
	return view
}

// Component renders the menu for user.
func (m Menu) Component(user session.Session, loc webtemplates.Localizer) templ.Component {
	return webtemplates.UserMenu(m.View(user), loc)
}
