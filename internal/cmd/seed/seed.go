// Package seed creates a local dashboard user and prints a session cookie
// for it.
package seed

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	entrypoint "github.com/louisbranch/clearance/internal/platform/cmd"
	"github.com/louisbranch/clearance/internal/services/web"
	"github.com/louisbranch/clearance/internal/services/web/integration/auth"
	"github.com/louisbranch/clearance/internal/services/web/platform/sessioncookie"
	webstorage "github.com/louisbranch/clearance/internal/services/web/storage"
	"github.com/louisbranch/clearance/internal/services/web/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath      string        `env:"CLEARANCE_WEB_DB_PATH" envDefault:"data/clearance-web.db"`
	SessionMode string        `env:"CLEARANCE_WEB_SESSION_MODE" envDefault:"store"`
	Issuer      string        `env:"CLEARANCE_IDENTITY_TOKEN_ISSUER" envDefault:"clearance-seed"`
	Audience    string        `env:"CLEARANCE_IDENTITY_TOKEN_AUDIENCE" envDefault:"clearance-web"`
	PrivateKey  string        `env:"CLEARANCE_IDENTITY_TOKEN_PRIVATE_KEY"`
	UserID      string        `env:"CLEARANCE_SEED_USER_ID"`
	Email       string        `env:"CLEARANCE_SEED_EMAIL" envDefault:"broker@example.com"`
	DisplayName string        `env:"CLEARANCE_SEED_NAME" envDefault:"Customs Broker"`
	PhotoURL    string        `env:"CLEARANCE_SEED_PHOTO_URL"`
	TTL         time.Duration `env:"CLEARANCE_SEED_TTL" envDefault:"168h"`
	Now         func() time.Time
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	bindFlags(fs, &cfg)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfigFromEnviron is ParseConfig with an explicit environment.
func ParseConfigFromEnviron(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	bindFlags(fs, &cfg)
	if err := entrypoint.ParseConfigFromEnviron(&cfg, environ, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	if fs == nil {
		return
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite session store path")
	fs.StringVar(&cfg.SessionMode, "session-mode", cfg.SessionMode, "Session cookie mode (store, token)")
	fs.StringVar(&cfg.UserID, "user-id", cfg.UserID, "User id (default: generated)")
	fs.StringVar(&cfg.Email, "email", cfg.Email, "User email")
	fs.StringVar(&cfg.DisplayName, "name", cfg.DisplayName, "User display name")
	fs.DurationVar(&cfg.TTL, "ttl", cfg.TTL, "Session lifetime")
}

// Run seeds one user and writes the matching session cookie to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		return seed(ctx, cfg, out)
	})
}

func seed(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if strings.TrimSpace(cfg.UserID) == "" {
		cfg.UserID = uuid.NewString()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = auth.DefaultSessionTTL
	}
	user := webstorage.User{
		ID:          strings.TrimSpace(cfg.UserID),
		DisplayName: strings.TrimSpace(cfg.DisplayName),
		Email:       strings.TrimSpace(cfg.Email),
		PhotoURL:    strings.TrimSpace(cfg.PhotoURL),
		CreatedAt:   cfg.Now().UTC(),
	}

	var (
		value string
		err   error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.SessionMode)) {
	case "", web.SessionModeStore:
		value, err = seedStoreSession(ctx, cfg, user)
	case web.SessionModeToken:
		value, err = seedToken(cfg, user, out)
	default:
		err = fmt.Errorf("unknown session mode %q", cfg.SessionMode)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "user %s %s\n", user.ID, user.Email)
	fmt.Fprintf(out, "cookie %s=%s\n", sessioncookie.Name, value)
	return nil
}

func seedStoreSession(ctx context.Context, cfg Config, user webstorage.User) (string, error) {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return "", fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	if err := store.PutUser(ctx, user); err != nil {
		return "", fmt.Errorf("seed user: %w", err)
	}
	provider := auth.NewStoreProvider(auth.StoreConfig{Sessions: store, Users: store, Now: cfg.Now})
	sessionID, err := provider.CreateSession(ctx, user.ID, cfg.TTL)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return sessionID, nil
}

// seedToken mints an identity token. Without a configured private key a
// fresh key pair is generated and its public half written to out.
func seedToken(cfg Config, user webstorage.User, out io.Writer) (string, error) {
	if user.Email == "" {
		return "", errors.New("user email is required")
	}
	private, generated, err := signingKey(cfg.PrivateKey)
	if err != nil {
		return "", err
	}
	if generated {
		public := private.Public().(ed25519.PublicKey)
		fmt.Fprintf(out, "public_key %s\n", base64.RawStdEncoding.EncodeToString(public))
	}

	now := cfg.Now().UTC()
	return auth.MintToken(private, auth.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    strings.TrimSpace(cfg.Issuer),
			Audience:  jwt.ClaimStrings{strings.TrimSpace(cfg.Audience)},
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
		Name:    user.DisplayName,
		Email:   user.Email,
		Picture: user.PhotoURL,
	})
}

// signingKey accepts either a 32-byte seed or a 64-byte private key.
func signingKey(raw string) (ed25519.PrivateKey, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		_, private, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, false, fmt.Errorf("generate signing key: %w", err)
		}
		return private, true, nil
	}
	decoded, err := auth.DecodeKey(raw)
	if err != nil {
		return nil, false, fmt.Errorf("decode signing key: %w", err)
	}
	switch len(decoded) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(decoded), false, nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(decoded), false, nil
	default:
		return nil, false, fmt.Errorf("signing key must be %d or %d bytes", ed25519.SeedSize, ed25519.PrivateKeySize)
	}
}
