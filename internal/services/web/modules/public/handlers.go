package public

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/clearance/internal/services/web/platform/i18n"
	"github.com/louisbranch/clearance/internal/services/web/platform/pagerender"
	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/clearance/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/clearance/internal/services/web/platform/weberror"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/clearance/internal/services/web/templates"
)

type handlers struct {
	service service
	policy  requestmeta.SchemePolicy
}

func newHandlers(s service, policy requestmeta.SchemePolicy) handlers {
	return handlers{service: s, policy: policy}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, "title.landing", webtemplates.Landing)
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if h.service.signedIn(r) {
		httpx.WriteRedirect(w, r, routepath.Dashboard)
		return
	}
	h.writeLogin(w, r, http.StatusOK, nil)
}

func (h handlers) handleLoginCallback(w http.ResponseWriter, r *http.Request) {
	if !h.service.tokenLoginEnabled() {
		weberror.WriteAppError(w, r, http.StatusNotFound)
		return
	}
	value, err := h.service.exchange(r.Context(), r.URL.Query().Get(routepath.TokenQueryKey))
	if err != nil {
		h.writeLogin(w, r, http.StatusUnauthorized, err)
		return
	}
	sessioncookie.Write(w, r, value, h.policy)
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if !h.service.healthy() {
		_ = httpx.WriteHTML(w, http.StatusServiceUnavailable, "unavailable")
		return
	}
	_ = httpx.WriteHTML(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

func (h handlers) writeLogin(w http.ResponseWriter, r *http.Request, statusCode int, loginErr error) {
	h.writePage(w, r, statusCode, "title.login", func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.Login(webtemplates.LoginView{
			ProviderURL: h.service.providerURL,
			Error:       weberror.PublicMessage(loc, loginErr),
		}, loc)
	})
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, statusCode int, titleKey string, body func(webtemplates.Localizer) templ.Component) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:      webtemplates.T(loc, titleKey),
		Lang:       lang,
		Loc:        loc,
		StatusCode: statusCode,
		Body:       body(loc),
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}
