package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/clearance/internal/platform/timeouts"
	"github.com/louisbranch/clearance/internal/services/web/app"
	"github.com/louisbranch/clearance/internal/services/web/integration/auth"
	"github.com/louisbranch/clearance/internal/services/web/modules"
	"github.com/louisbranch/clearance/internal/services/web/modules/public"
	"github.com/louisbranch/clearance/internal/services/web/modules/tradelane"
	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	"github.com/louisbranch/clearance/internal/services/web/platform/navigation"
	"github.com/louisbranch/clearance/internal/services/web/platform/observability"
	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
	"github.com/louisbranch/clearance/internal/services/web/static"
	"github.com/louisbranch/clearance/internal/services/web/storage/sqlite"
	"github.com/prometheus/client_golang/prometheus"
)

// Session modes select how the session cookie is interpreted.
const (
	// SessionModeStore treats the cookie as an opaque web session id.
	SessionModeStore = "store"
	// SessionModeToken treats the cookie as a signed identity token.
	SessionModeToken = "token"
)

// Config defines the inputs for the dashboard web server.
type Config struct {
	HTTPAddr string
	// DBPath is the SQLite file holding users, sessions, and revoked tokens.
	DBPath      string
	SessionMode string
	// Identity token settings, required in token mode.
	TokenIssuer    string
	TokenAudience  string
	TokenPublicKey string
	// LoginProviderURL is where the login page sends users to authenticate.
	LoginProviderURL    string
	ResolveTimeout      time.Duration
	LogoutTimeout       time.Duration
	TrustForwardedProto bool
	AlwaysActive        bool
	Logger              *log.Logger
}

// Server hosts the dashboard HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
	logger     *log.Logger
}

// handlerDependencies carries the collaborators NewServer builds from config.
type handlerDependencies struct {
	sessions  session.Provider
	exchanger public.TokenExchanger
	registry  *prometheus.Registry
	metrics   *observability.Metrics
}

// NewServer opens storage and builds a configured dashboard server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	mode, err := normalizeSessionMode(cfg.SessionMode)
	if err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	var tokenConfig auth.TokenConfig
	if mode == SessionModeToken {
		tokenConfig, err = auth.NewTokenConfig(cfg.TokenIssuer, cfg.TokenAudience, cfg.TokenPublicKey, time.Now)
		if err != nil {
			return nil, fmt.Errorf("identity token config: %w", err)
		}
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	registry, metrics := observability.NewRegistry()
	deps := handlerDependencies{registry: registry, metrics: metrics}
	switch mode {
	case SessionModeToken:
		provider := auth.NewTokenProvider(auth.TokenProviderConfig{
			Token:          tokenConfig,
			Revocations:    store,
			ResolveTimeout: cfg.ResolveTimeout,
			Logf:           cfg.Logger.Printf,
		})
		deps.sessions = provider
		deps.exchanger = provider
	default:
		deps.sessions = auth.NewStoreProvider(auth.StoreConfig{
			Sessions:       store,
			Users:          store,
			ResolveTimeout: cfg.ResolveTimeout,
			Logf:           cfg.Logger.Printf,
		})
	}

	handler, err := newHandler(cfg, deps)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store:  store,
		logger: cfg.Logger,
	}, nil
}

// newHandler composes modules and wraps them with the shared middleware.
func newHandler(cfg Config, deps handlerDependencies) (http.Handler, error) {
	if deps.sessions == nil {
		return nil, errors.New("session provider is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}

	var root app.Root
	moduleDeps := modules.Dependencies{
		Sessions:         deps.sessions,
		Exchanger:        deps.exchanger,
		Feature:          tradelane.New(),
		Navigator:        navigation.HTTP{},
		SchemePolicy:     policy,
		Metrics:          deps.metrics,
		LoginProviderURL: strings.TrimSpace(cfg.LoginProviderURL),
		LogoutTimeout:    cfg.LogoutTimeout,
		AlwaysActive:     cfg.AlwaysActive,
		Logf:             logger.Printf,
		Health: func() bool {
			return root.Healthy() && providerHealthy(deps.sessions)
		},
	}
	root, err := app.BuildRootHandler(app.Config{
		PublicModules:    modules.DefaultPublicModules(moduleDeps),
		ProtectedModules: modules.DefaultProtectedModules(moduleDeps),
		SchemePolicy:     policy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, static.Handler(routepath.StaticPrefix))
	if deps.registry != nil {
		mux.Handle(routepath.Metrics, observability.Handler(deps.registry))
	}
	mux.Handle(routepath.Root, root.Handler)

	return httpx.Chain(
		mux,
		httpx.RequestID(),
		observability.RequestLogger(logger),
		observability.Instrument(deps.metrics),
		httpx.RecoverPanic(logger.Printf),
	), nil
}

func normalizeSessionMode(mode string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", SessionModeStore:
		return SessionModeStore, nil
	case SessionModeToken:
		return SessionModeToken, nil
	default:
		return "", fmt.Errorf("unknown session mode %q", mode)
	}
}

func providerHealthy(provider session.Provider) bool {
	reporter, ok := provider.(interface{ Healthy() bool })
	if !ok {
		return provider != nil
	}
	return reporter.Healthy()
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("dashboard listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the session store.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Printf("close session store: %v", err)
	}
}
