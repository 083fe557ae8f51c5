package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
	"github.com/louisbranch/clearance/internal/services/web/platform/sessioncookie"
	webstorage "github.com/louisbranch/clearance/internal/services/web/storage"
)

// TokenProviderConfig configures a TokenProvider.
type TokenProviderConfig struct {
	Token          TokenConfig
	Revocations    webstorage.TokenRevocationStore
	ResolveTimeout time.Duration
	Logf           httpx.Logf
}

// TokenProvider resolves identity token cookies. Logging out records the
// token id so the same token cannot authenticate again before it expires.
type TokenProvider struct {
	token          TokenConfig
	revocations    webstorage.TokenRevocationStore
	resolveTimeout time.Duration
	logf           httpx.Logf
}

// NewTokenProvider builds a TokenProvider with defaults applied.
func NewTokenProvider(cfg TokenProviderConfig) *TokenProvider {
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = DefaultResolveTimeout
	}
	if cfg.Token.Now == nil {
		cfg.Token.Now = time.Now
	}
	if cfg.Logf == nil {
		cfg.Logf = func(string, ...any) {}
	}
	return &TokenProvider{
		token:          cfg.Token,
		revocations:    cfg.Revocations,
		resolveTimeout: cfg.ResolveTimeout,
		logf:           cfg.Logf,
	}
}

// Resolve validates the request's identity token cookie.
func (p *TokenProvider) Resolve(r *http.Request) session.Status {
	if p == nil || p.revocations == nil {
		return session.Absent()
	}
	raw, ok := sessioncookie.Read(r)
	if !ok {
		return session.Absent()
	}
	identity, err := ValidateToken(raw, p.token)
	if err != nil {
		return session.Absent()
	}

	ctx, cancel := context.WithTimeout(r.Context(), p.resolveTimeout)
	defer cancel()
	revoked, err := p.revocations.IsTokenRevoked(ctx, identity.JWTID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return session.Pending()
		}
		p.logf("session resolve: check token revocation: %v", err)
		return session.Absent()
	}
	if revoked {
		return session.Absent()
	}
	return session.Present(raw, session.Session{
		UserID:      identity.Subject,
		DisplayName: identity.Name,
		Email:       identity.Email,
		PhotoURL:    identity.Picture,
	})
}

// Logout revokes the token carried by the request. Invalid or missing tokens
// are already logged out.
func (p *TokenProvider) Logout(ctx context.Context, r *http.Request) error {
	if p == nil || p.revocations == nil {
		return errors.New("token revocation store is not configured")
	}
	raw, ok := sessioncookie.Read(r)
	if !ok {
		return nil
	}
	identity, err := ValidateToken(raw, p.token)
	if err != nil {
		return nil
	}
	return p.revocations.RevokeToken(ctx, identity.JWTID, identity.ExpiresAt, p.token.Now().UTC())
}

// Exchange validates an upstream identity token before it becomes the
// session cookie value.
func (p *TokenProvider) Exchange(ctx context.Context, raw string) (string, error) {
	if p == nil || p.revocations == nil {
		return "", errors.New("token revocation store is not configured")
	}
	identity, err := ValidateToken(raw, p.token)
	if err != nil {
		return "", err
	}
	revoked, err := p.revocations.IsTokenRevoked(ctx, identity.JWTID)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", invalidToken("identity token is revoked")
	}
	return raw, nil
}

// Healthy reports whether the provider can verify tokens.
func (p *TokenProvider) Healthy() bool {
	return p != nil && p.revocations != nil && len(p.token.Key) > 0
}

var _ session.Provider = (*TokenProvider)(nil)
