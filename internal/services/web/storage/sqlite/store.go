package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	webstorage "github.com/louisbranch/clearance/internal/services/web/storage"
	"github.com/louisbranch/clearance/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for identities and sessions.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a dashboard SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutUser upserts a user record by id.
func (s *Store) PutUser(ctx context.Context, u webstorage.User) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	u.ID = strings.TrimSpace(u.ID)
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	u.Email = strings.TrimSpace(u.Email)
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO users (id, display_name, email, photo_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    display_name = excluded.display_name,
		    email = excluded.email,
		    photo_url = excluded.photo_url,
		    updated_at = excluded.updated_at`,
		u.ID,
		strings.TrimSpace(u.DisplayName),
		u.Email,
		strings.TrimSpace(u.PhotoURL),
		timeToUnixMillis(u.CreatedAt),
		timeToUnixMillis(u.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// GetUser loads a user record by id.
func (s *Store) GetUser(ctx context.Context, userID string) (webstorage.User, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.User{}, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return webstorage.User{}, fmt.Errorf("user id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, display_name, email, photo_url, created_at, updated_at
		 FROM users
		 WHERE id = ?`,
		userID,
	)

	var u webstorage.User
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(&u.ID, &u.DisplayName, &u.Email, &u.PhotoURL, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.User{}, webstorage.ErrNotFound
		}
		return webstorage.User{}, fmt.Errorf("get user: %w", err)
	}
	u.CreatedAt = unixMillisToTime(createdAt)
	u.UpdatedAt = unixMillisToTime(updatedAt)
	return u, nil
}

// PutWebSession inserts a web session and prunes expired rows.
func (s *Store) PutWebSession(ctx context.Context, session webstorage.WebSession) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	session.UserID = strings.TrimSpace(session.UserID)
	if session.UserID == "" {
		return fmt.Errorf("session user id is required")
	}
	if session.ExpiresAt.IsZero() {
		return fmt.Errorf("session expiry is required")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	if err := s.DeleteExpiredWebSessions(ctx, session.CreatedAt); err != nil {
		return err
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO web_sessions (id, user_id, created_at, expires_at, revoked_at)
		 VALUES (?, ?, ?, ?, NULL)`,
		session.ID,
		session.UserID,
		timeToUnixMillis(session.CreatedAt),
		timeToUnixMillis(session.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put web session: %w", err)
	}
	return nil
}

// GetWebSession loads a web session by id, including revoked rows.
func (s *Store) GetWebSession(ctx context.Context, id string) (webstorage.WebSession, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.WebSession{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return webstorage.WebSession{}, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, user_id, created_at, expires_at, revoked_at
		 FROM web_sessions
		 WHERE id = ?`,
		id,
	)

	var session webstorage.WebSession
	var createdAt int64
	var expiresAt int64
	var revokedAt sql.NullInt64
	if err := row.Scan(&session.ID, &session.UserID, &createdAt, &expiresAt, &revokedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.WebSession{}, webstorage.ErrNotFound
		}
		return webstorage.WebSession{}, fmt.Errorf("get web session: %w", err)
	}
	session.CreatedAt = unixMillisToTime(createdAt)
	session.ExpiresAt = unixMillisToTime(expiresAt)
	if revokedAt.Valid {
		value := unixMillisToTime(revokedAt.Int64)
		session.RevokedAt = &value
	}
	return session, nil
}

// RevokeWebSession marks a session revoked. Revoking twice keeps the first
// timestamp.
func (s *Store) RevokeWebSession(ctx context.Context, id string, revokedAt time.Time) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("session id is required")
	}
	if revokedAt.IsZero() {
		revokedAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE web_sessions SET revoked_at = COALESCE(revoked_at, ?) WHERE id = ?`,
		timeToUnixMillis(revokedAt),
		id,
	)
	if err != nil {
		return fmt.Errorf("revoke web session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("revoke web session: %w", err)
	}
	if affected == 0 {
		return webstorage.ErrNotFound
	}
	return nil
}

// DeleteExpiredWebSessions removes sessions that expired at or before now.
func (s *Store) DeleteExpiredWebSessions(ctx context.Context, now time.Time) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ?`, timeToUnixMillis(now)); err != nil {
		return fmt.Errorf("delete expired web sessions: %w", err)
	}
	return nil
}

// RevokeToken records a token id as revoked until its own expiry. Expired
// entries are pruned on each write.
func (s *Store) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time, revokedAt time.Time) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return fmt.Errorf("token id is required")
	}
	if revokedAt.IsZero() {
		revokedAt = time.Now().UTC()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin revoke token: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at <= ?`, timeToUnixMillis(revokedAt)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prune revoked tokens: %w", err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO revoked_tokens (token_id, expires_at, revoked_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(token_id) DO NOTHING`,
		tokenID,
		timeToUnixMillis(expiresAt),
		timeToUnixMillis(revokedAt),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("revoke token: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token id has been revoked.
func (s *Store) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s == nil || s.sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return false, fmt.Errorf("token id is required")
	}
	var found int
	err := s.sqlDB.QueryRowContext(ctx, `SELECT 1 FROM revoked_tokens WHERE token_id = ?`, tokenID).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return true, nil
}

// runMigrations applies embedded SQL migrations in filename order.
func (s *Store) runMigrations() error {
	return applyMigrations(context.Background(), s.sqlDB, migrations.FS)
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.Store = (*Store)(nil)
