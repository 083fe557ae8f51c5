package app

import (
	module "github.com/louisbranch/clearance/internal/services/web/module"
	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	PublicModules    []module.Module
	ProtectedModules []module.Module
	SchemePolicy     requestmeta.SchemePolicy
}

// BuildRootHandler composes a root mux using the configured module groups.
func BuildRootHandler(cfg Config) (Root, error) {
	return Compose(ComposeInput{
		PublicModules:       cfg.PublicModules,
		ProtectedModules:    cfg.ProtectedModules,
		RequestSchemePolicy: cfg.SchemePolicy,
	})
}
