package dashboard

import (
	"net/http"

	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardDocuments, h.handleDocuments)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardMenu, h.handleMenu)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardWizard, h.handleWizard)
	mux.HandleFunc(http.MethodPost+" "+routepath.DashboardLogout, h.handleLogout)
	mux.Handle(http.MethodGet+" "+routepath.DashboardLogout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{rest...}", h.handleNotFound)
}
