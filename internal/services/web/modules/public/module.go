// Package public serves the unauthenticated surface: landing, login, the
// identity provider callback, and health.
package public

import (
	"context"
	"net/http"

	module "github.com/louisbranch/clearance/internal/services/web/module"
	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

// TokenExchanger turns an upstream identity token into a session cookie
// value.
type TokenExchanger interface {
	Exchange(ctx context.Context, token string) (string, error)
}

// Dependencies carries the public module collaborators.
type Dependencies struct {
	Sessions session.Provider
	// Exchanger is nil unless identity tokens are accepted at the callback.
	Exchanger        TokenExchanger
	LoginProviderURL string
	SchemePolicy     requestmeta.SchemePolicy
	// Health reports readiness for /up; nil means always healthy.
	Health func() bool
}

// Module provides unauthenticated root routes.
type Module struct {
	deps Dependencies
}

// New returns a public module.
func New(deps Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "public"
}

// Mount wires public routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.deps), m.deps.SchemePolicy))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
