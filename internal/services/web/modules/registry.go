package modules

import (
	"github.com/louisbranch/clearance/internal/services/web/modules/dashboard"
	"github.com/louisbranch/clearance/internal/services/web/modules/public"
)

// DefaultPublicModules returns the unauthenticated web modules.
func DefaultPublicModules(deps Dependencies) []Module {
	return []Module{
		public.New(public.Dependencies{
			Sessions:         deps.Sessions,
			Exchanger:        deps.Exchanger,
			LoginProviderURL: deps.LoginProviderURL,
			SchemePolicy:     deps.SchemePolicy,
			Health:           deps.Health,
		}),
	}
}

// DefaultProtectedModules returns the session-gated web modules.
func DefaultProtectedModules(deps Dependencies) []Module {
	return []Module{
		dashboard.New(dashboard.Dependencies{
			Sessions:      deps.Sessions,
			Feature:       deps.Feature,
			Navigator:     deps.Navigator,
			SchemePolicy:  deps.SchemePolicy,
			Metrics:       deps.Metrics,
			LogoutTimeout: deps.LogoutTimeout,
			AlwaysActive:  deps.AlwaysActive,
			Logf:          deps.Logf,
		}),
	}
}
