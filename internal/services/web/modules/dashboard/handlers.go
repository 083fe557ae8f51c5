package dashboard

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/services/web/modules/dashboard/usermenu"
	"github.com/louisbranch/clearance/internal/services/web/modules/tradelane"
	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/clearance/internal/services/web/platform/i18n"
	"github.com/louisbranch/clearance/internal/services/web/platform/navigation"
	"github.com/louisbranch/clearance/internal/services/web/platform/observability"
	"github.com/louisbranch/clearance/internal/services/web/platform/pagerender"
	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
	"github.com/louisbranch/clearance/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/clearance/internal/services/web/platform/weberror"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/clearance/internal/services/web/templates"
)

// section selects the authenticated main content.
type section int

const (
	sectionOverview section = iota
	sectionDocuments
)

type handlers struct {
	service      service
	feature      tradelane.Feature
	navigator    navigation.Navigator
	logouter     *usermenu.Logouter
	policy       requestmeta.SchemePolicy
	metrics      *observability.Metrics
	alwaysActive bool
}

// render is the request-carried state for one page render.
type render struct {
	status   session.Status
	composer Composer
	menu     usermenu.Menu
	section  section
}

func (h handlers) stateFromRequest(r *http.Request, status session.Status) render {
	query := r.URL.Query()
	composer := ComposerFromState(query.Get(routepath.WizardQueryKey))
	composer.AlwaysActive = h.alwaysActive
	composer.Carried = r.URL.RawQuery
	menu := usermenu.FromState(query.Get(routepath.MenuQueryKey))
	menu.Carried = r.URL.RawQuery
	return render{
		status:   status,
		composer: composer,
		menu:     menu,
	}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := h.stateFromRequest(r, h.service.resolveStatus(r))
	h.writePage(w, r, state)
}

func (h handlers) handleDocuments(w http.ResponseWriter, r *http.Request) {
	state := h.stateFromRequest(r, h.service.resolveStatus(r))
	state.section = sectionDocuments
	h.writePage(w, r, state)
}

func (h handlers) handleMenu(w http.ResponseWriter, r *http.Request) {
	state := h.stateFromRequest(r, h.service.resolveStatus(r))
	if !httpx.IsHTMXRequest(r) {
		h.writePage(w, r, state)
		return
	}
	user, ok := state.status.User()
	if !ok {
		h.navigator.Navigate(w, r, routepath.Dashboard)
		return
	}
	h.writeMenu(w, r, state.status, state.menu, user)
}

func (h handlers) handleWizard(w http.ResponseWriter, r *http.Request) {
	state := h.stateFromRequest(r, h.service.resolveStatus(r))
	if !httpx.IsHTMXRequest(r) {
		h.writePage(w, r, state)
		return
	}
	if state.status.State != session.StatePresent {
		h.navigator.Navigate(w, r, routepath.Dashboard)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	panel := h.feature.Panel(tradelane.Props{
		WizardVisible: state.composer.WizardVisible(),
		ToggleURL:     state.composer.WizardToggleURL(),
	})
	if err := pagerender.WriteFragment(w, r, http.StatusOK, loc, panel); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	cookieValue, hasSession := sessioncookie.Read(r)
	if hasSession && !h.policy.HasSameOriginProof(r) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	prior := usermenu.FromState(r.PostForm.Get(routepath.MenuQueryKey))
	prior.Carried = r.URL.RawQuery
	status := h.service.resolveStatus(r)
	key := status.Key
	if key == "" {
		key = cookieValue
	}
	result := h.logouter.Logout(w, r, key, prior)
	if result.Outcome == usermenu.OutcomeSucceeded {
		return
	}
	// The failure is logged by the logouter; the menu re-renders unchanged.
	user, ok := status.User()
	if httpx.IsHTMXRequest(r) && ok {
		h.writeMenu(w, r, status, result.Menu, user)
		return
	}
	state := h.stateFromRequest(r, status)
	state.menu = result.Menu
	h.writePage(w, r, state)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

func (h handlers) writeMenu(w http.ResponseWriter, r *http.Request, status session.Status, menu usermenu.Menu, user session.Session) {
	menu.Busy = h.logouter.Busy(status.Key)
	loc, _ := webi18n.ResolveLocalizer(w, r)
	if err := pagerender.WriteFragment(w, r, http.StatusOK, loc, menu.Component(user, loc)); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, state render) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	layout := state.composer.Compose(state.status, r.URL.Path)
	h.metrics.ObserveLayout(string(layout.Variant))
	state.menu.Busy = h.logouter.Busy(state.status.Key)

	err := pagerender.WritePage(w, r, pagerender.Page{
		Title: h.pageTitle(layout, state.section, loc),
		Lang:  lang,
		Loc:   loc,
		Body:  h.layoutComponent(r, layout, state, loc),
	})
	if err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) pageTitle(layout Layout, current section, loc webtemplates.Localizer) string {
	if layout.Variant != VariantAuthenticated {
		return webtemplates.T(loc, "nav.dashboard")
	}
	if current == sectionDocuments {
		return webtemplates.T(loc, "title.documents")
	}
	return webtemplates.T(loc, "title.dashboard")
}

func (h handlers) layoutComponent(r *http.Request, layout Layout, state render, loc webtemplates.Localizer) templ.Component {
	shell := webtemplates.ShellView{Variant: string(layout.Variant), Nav: layout.Nav}
	var main templ.Component
	switch layout.Variant {
	case VariantPending:
		main = webtemplates.PendingIndicator(pendingReloadURL(r), loc)
	case VariantUnauthenticated:
		shell.MainClass = "main-centered"
		main = webtemplates.LoginPrompt(loc)
	default:
		header := webtemplates.DashboardHeader(loc, state.menu.Component(layout.User, loc))
		if state.section == sectionDocuments {
			main = webtemplates.Group(header, webtemplates.DocumentsPanel(loc))
			break
		}
		main = webtemplates.Group(
			header,
			h.feature.Panel(tradelane.Props{
				WizardVisible: layout.WizardVisible,
				ToggleURL:     state.composer.WizardToggleURL(),
			}),
			webtemplates.Widgets(layout.Widgets, loc),
		)
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return webtemplates.Shell(shell, loc).Render(templ.WithChildren(ctx, main), w)
	})
}

// pendingReloadURL is the page URL the pending shell re-requests. Fragment
// and action endpoints reload the dashboard page with their state carried
// over.
func pendingReloadURL(r *http.Request) string {
	reload := *r.URL
	switch reload.Path {
	case routepath.DashboardMenu, routepath.DashboardWizard, routepath.DashboardLogout:
		reload.Path = routepath.Dashboard
	}
	return reload.RequestURI()
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err)
}
