package public

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/louisbranch/clearance/internal/services/web/platform/session"
)

var errTokenLoginDisabled = errors.New("token login is not enabled")

type service struct {
	sessions    session.Provider
	exchanger   TokenExchanger
	providerURL string
	health      func() bool
}

func newService(deps Dependencies) service {
	return service{
		sessions:    deps.Sessions,
		exchanger:   deps.Exchanger,
		providerURL: strings.TrimSpace(deps.LoginProviderURL),
		health:      deps.Health,
	}
}

func (s service) signedIn(r *http.Request) bool {
	if s.sessions == nil {
		return false
	}
	return s.sessions.Resolve(r).State == session.StatePresent
}

func (s service) exchange(ctx context.Context, token string) (string, error) {
	if s.exchanger == nil {
		return "", errTokenLoginDisabled
	}
	return s.exchanger.Exchange(ctx, strings.TrimSpace(token))
}

func (s service) tokenLoginEnabled() bool {
	return s.exchanger != nil
}

func (s service) healthy() bool {
	if s.health == nil {
		return true
	}
	return s.health()
}
