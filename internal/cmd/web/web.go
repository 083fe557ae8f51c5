// Package web parses dashboard service configuration and launches the server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/clearance/internal/platform/cmd"
	"github.com/louisbranch/clearance/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"CLEARANCE_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath              string        `env:"CLEARANCE_WEB_DB_PATH" envDefault:"data/clearance-web.db"`
	SessionMode         string        `env:"CLEARANCE_WEB_SESSION_MODE" envDefault:"store"`
	TokenIssuer         string        `env:"CLEARANCE_IDENTITY_TOKEN_ISSUER"`
	TokenAudience       string        `env:"CLEARANCE_IDENTITY_TOKEN_AUDIENCE"`
	TokenPublicKey      string        `env:"CLEARANCE_IDENTITY_TOKEN_PUBLIC_KEY"`
	LoginProviderURL    string        `env:"CLEARANCE_WEB_LOGIN_URL"`
	ResolveTimeout      time.Duration `env:"CLEARANCE_WEB_SESSION_RESOLVE_TIMEOUT" envDefault:"2s"`
	LogoutTimeout       time.Duration `env:"CLEARANCE_WEB_LOGOUT_TIMEOUT" envDefault:"10s"`
	TrustForwardedProto bool          `env:"CLEARANCE_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	AlwaysActiveNav     bool          `env:"CLEARANCE_WEB_ALWAYS_ACTIVE_NAV" envDefault:"false"`
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
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite session store path")
	fs.StringVar(&cfg.SessionMode, "session-mode", cfg.SessionMode, "Session cookie mode (store, token)")
	fs.StringVar(&cfg.LoginProviderURL, "login-url", cfg.LoginProviderURL, "Identity provider sign-in URL")
	fs.DurationVar(&cfg.ResolveTimeout, "resolve-timeout", cfg.ResolveTimeout, "Session lookup timeout")
	fs.DurationVar(&cfg.LogoutTimeout, "logout-timeout", cfg.LogoutTimeout, "Session revocation timeout")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto")
	fs.BoolVar(&cfg.AlwaysActiveNav, "always-active-nav", cfg.AlwaysActiveNav, "Mark every navigation entry active")
}

// Run starts the dashboard web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, serverConfig(cfg))
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config) web.Config {
	return web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		DBPath:              cfg.DBPath,
		SessionMode:         cfg.SessionMode,
		TokenIssuer:         cfg.TokenIssuer,
		TokenAudience:       cfg.TokenAudience,
		TokenPublicKey:      cfg.TokenPublicKey,
		LoginProviderURL:    cfg.LoginProviderURL,
		ResolveTimeout:      cfg.ResolveTimeout,
		LogoutTimeout:       cfg.LogoutTimeout,
		TrustForwardedProto: cfg.TrustForwardedProto,
		AlwaysActive:        cfg.AlwaysActiveNav,
	}
}
