package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/clearance/internal/services/web/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = apperrors.E(apperrors.KindNotFound, "record not found")

// User is one dashboard identity.
type User struct {
	ID          string
	DisplayName string
	Email       string
	PhotoURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WebSession binds an opaque cookie value to a user.
type WebSession struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Active reports whether the session can still authenticate at now.
func (s WebSession) Active(now time.Time) bool {
	if s.RevokedAt != nil {
		return false
	}
	return s.ExpiresAt.IsZero() || s.ExpiresAt.After(now)
}

// UserStore persists user records.
type UserStore interface {
	PutUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, userID string) (User, error)
}

// WebSessionStore persists opaque web sessions.
type WebSessionStore interface {
	PutWebSession(ctx context.Context, session WebSession) error
	GetWebSession(ctx context.Context, id string) (WebSession, error)
	RevokeWebSession(ctx context.Context, id string, revokedAt time.Time) error
	DeleteExpiredWebSessions(ctx context.Context, now time.Time) error
}

// TokenRevocationStore records identity token ids that must no longer
// authenticate.
type TokenRevocationStore interface {
	RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time, revokedAt time.Time) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Store is the full persistence contract backing the dashboard.
type Store interface {
	UserStore
	WebSessionStore
	TokenRevocationStore
	Close() error
}
