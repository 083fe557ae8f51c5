package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/clearance/internal/platform/timeouts"
	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
	"github.com/louisbranch/clearance/internal/services/web/platform/sessioncookie"
	webstorage "github.com/louisbranch/clearance/internal/services/web/storage"
)

// DefaultResolveTimeout bounds one session lookup before the status is
// reported as pending.
const DefaultResolveTimeout = timeouts.SessionResolve

// DefaultSessionTTL is the lifetime of a newly created web session.
const DefaultSessionTTL = 7 * 24 * time.Hour

// StoreConfig configures a StoreProvider.
type StoreConfig struct {
	Sessions       webstorage.WebSessionStore
	Users          webstorage.UserStore
	ResolveTimeout time.Duration
	Now            func() time.Time
	Logf           httpx.Logf
}

// StoreProvider resolves opaque session cookies against persisted web
// sessions.
type StoreProvider struct {
	sessions       webstorage.WebSessionStore
	users          webstorage.UserStore
	resolveTimeout time.Duration
	now            func() time.Time
	logf           httpx.Logf
}

// NewStoreProvider builds a StoreProvider with defaults applied.
func NewStoreProvider(cfg StoreConfig) *StoreProvider {
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = DefaultResolveTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logf == nil {
		cfg.Logf = func(string, ...any) {}
	}
	return &StoreProvider{
		sessions:       cfg.Sessions,
		users:          cfg.Users,
		resolveTimeout: cfg.ResolveTimeout,
		now:            cfg.Now,
		logf:           cfg.Logf,
	}
}

// Resolve maps the request's session cookie to a status. Lookups that
// outlive the resolve timeout report pending; every other failure is absent.
func (p *StoreProvider) Resolve(r *http.Request) session.Status {
	if p == nil || p.sessions == nil || p.users == nil {
		return session.Absent()
	}
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return session.Absent()
	}
	ctx, cancel := context.WithTimeout(r.Context(), p.resolveTimeout)
	defer cancel()

	record, err := p.sessions.GetWebSession(ctx, sessionID)
	if err != nil {
		return p.failed(ctx, "load web session", err)
	}
	if !record.Active(p.now().UTC()) {
		return session.Absent()
	}
	user, err := p.users.GetUser(ctx, record.UserID)
	if err != nil {
		return p.failed(ctx, "load session user", err)
	}
	return session.Present(record.ID, session.Session{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		PhotoURL:    user.PhotoURL,
	})
}

// Logout revokes the session named by the request cookie. A missing cookie
// or unknown session is already logged out.
func (p *StoreProvider) Logout(ctx context.Context, r *http.Request) error {
	if p == nil || p.sessions == nil {
		return errors.New("session store is not configured")
	}
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return nil
	}
	err := p.sessions.RevokeWebSession(ctx, sessionID, p.now().UTC())
	if errors.Is(err, webstorage.ErrNotFound) {
		return nil
	}
	return err
}

// CreateSession starts a web session for userID and returns its cookie
// value.
func (p *StoreProvider) CreateSession(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	if p == nil || p.sessions == nil {
		return "", errors.New("session store is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.New("user id is required")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := p.now().UTC()
	record := webstorage.WebSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := p.sessions.PutWebSession(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// Healthy reports whether the provider has its stores.
func (p *StoreProvider) Healthy() bool {
	return p != nil && p.sessions != nil && p.users != nil
}

func (p *StoreProvider) failed(ctx context.Context, action string, err error) session.Status {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return session.Pending()
	}
	if !errors.Is(err, webstorage.ErrNotFound) {
		p.logf("session resolve: %s: %v", action, err)
	}
	return session.Absent()
}

var _ session.Provider = (*StoreProvider)(nil)
