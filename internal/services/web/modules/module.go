// Package modules defines web module registry helpers.
package modules

import (
	"time"

	module "github.com/louisbranch/clearance/internal/services/web/module"
	"github.com/louisbranch/clearance/internal/services/web/modules/public"
	"github.com/louisbranch/clearance/internal/services/web/modules/tradelane"
	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	"github.com/louisbranch/clearance/internal/services/web/platform/navigation"
	"github.com/louisbranch/clearance/internal/services/web/platform/observability"
	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the collaborators shared by the web modules. Each
// module receives only the fields it consumes.
type Dependencies struct {
	Sessions session.Provider
	// Exchanger enables the identity token callback when set.
	Exchanger        public.TokenExchanger
	Feature          tradelane.Feature
	Navigator        navigation.Navigator
	SchemePolicy     requestmeta.SchemePolicy
	Metrics          *observability.Metrics
	LoginProviderURL string
	LogoutTimeout    time.Duration
	AlwaysActive     bool
	Logf             httpx.Logf
	// Health backs the public health endpoint.
	Health func() bool
}
