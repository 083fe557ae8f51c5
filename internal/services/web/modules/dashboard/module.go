// Package dashboard serves the session-gated dashboard shell.
package dashboard

import (
	"net/http"
	"time"

	module "github.com/louisbranch/clearance/internal/services/web/module"
	"github.com/louisbranch/clearance/internal/services/web/modules/dashboard/usermenu"
	"github.com/louisbranch/clearance/internal/services/web/modules/tradelane"
	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	"github.com/louisbranch/clearance/internal/services/web/platform/navigation"
	"github.com/louisbranch/clearance/internal/services/web/platform/observability"
	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

// Dependencies carries the collaborators injected into the dashboard.
type Dependencies struct {
	Sessions      session.Provider
	Feature       tradelane.Feature
	Navigator     navigation.Navigator
	SchemePolicy  requestmeta.SchemePolicy
	Metrics       *observability.Metrics
	LogoutTimeout time.Duration
	// AlwaysActive renders every nav entry active.
	AlwaysActive bool
	Logf         httpx.Logf
}

// Module provides the dashboard routes.
type Module struct {
	deps Dependencies
}

// New returns a dashboard module bound to deps.
func New(deps Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Healthy reports whether a session provider is configured.
func (m Module) Healthy() bool {
	return newService(m.deps.Sessions, nil).healthy()
}

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}

func newHandlers(deps Dependencies) handlers {
	feature := deps.Feature
	if feature == nil {
		feature = tradelane.New()
	}
	navigator := deps.Navigator
	if navigator == nil {
		navigator = navigation.HTTP{}
	}
	return handlers{
		service:      newService(deps.Sessions, deps.Metrics),
		feature:      feature,
		navigator:    navigator,
		policy:       deps.SchemePolicy,
		metrics:      deps.Metrics,
		alwaysActive: deps.AlwaysActive,
		logouter: usermenu.NewLogouter(usermenu.LogouterConfig{
			Provider:     deps.Sessions,
			Navigator:    navigator,
			SchemePolicy: deps.SchemePolicy,
			Metrics:      deps.Metrics,
			Timeout:      deps.LogoutTimeout,
			Logf:         deps.Logf,
		}),
	}
}
