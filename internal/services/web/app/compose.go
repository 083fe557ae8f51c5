package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/clearance/internal/services/web/module"
	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/clearance/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Root is the composed handler plus the health reporters found among the
// mounted modules.
type Root struct {
	Handler   http.Handler
	Reporters []module.HealthReporter
}

// Healthy reports whether every mounted health reporter is healthy.
func (r Root) Healthy() bool {
	for _, reporter := range r.Reporters {
		if !reporter.Healthy() {
			return false
		}
	}
	return true
}

// Compose builds a root HTTP handler from module groups. Protected modules
// render their own signed-out state, so they are guarded only against
// cross-origin cookie mutations.
func Compose(input ComposeInput) (Root, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	var reporters []module.HealthReporter

	for _, feature := range input.PublicModules {
		if feature == nil {
			return Root{}, fmt.Errorf("public module is nil")
		}
		if err := mountPublicModule(root, feature, seen); err != nil {
			return Root{}, err
		}
		if reporter, ok := feature.(module.HealthReporter); ok {
			reporters = append(reporters, reporter)
		}
	}

	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return Root{}, fmt.Errorf("protected module is nil")
		}
		if err := mountProtectedModule(root, feature, seen, requireCookieSessionSameOrigin(input.RequestSchemePolicy)); err != nil {
			return Root{}, err
		}
		if reporter, ok := feature.(module.HealthReporter); ok {
			reporters = append(reporters, reporter)
		}
	}

	return Root{Handler: root, Reporters: reporters}, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	prefix string,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	if root == nil || feature == nil {
		return nil
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	root.Handle(prefix, handler)
	return nil
}

func mountPublicModule(root *http.ServeMux, feature module.Module, seen map[string]string) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	if isProtectedPrefix(prefix) {
		return fmt.Errorf("module %q has protected prefix %q in public group", feature.ID(), prefix)
	}
	return mountModule(root, feature, mount, prefix, seen, nil)
}

func mountProtectedModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	if !isProtectedPrefix(prefix) {
		return fmt.Errorf("module %q must mount under %s, got %q", feature.ID(), routepath.DashboardPrefix, prefix)
	}
	if err := mountModule(root, feature, mount, prefix, seen, wrap); err != nil {
		return err
	}
	if alias := protectedSlashlessPrefixAlias(prefix); alias != "" {
		if err := mountModule(root, feature, mount, alias, seen, wrap); err != nil {
			return err
		}
	}
	return nil
}

func isProtectedPrefix(prefix string) bool {
	return strings.HasPrefix(prefix, routepath.DashboardPrefix)
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

// protectedSlashlessPrefixAlias mounts "/dashboard" next to "/dashboard/" so
// the bare path is served instead of redirected.
func protectedSlashlessPrefixAlias(prefix string) string {
	if !isProtectedPrefix(prefix) || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}

func requireCookieSessionSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !policy.HasSameOriginProof(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
