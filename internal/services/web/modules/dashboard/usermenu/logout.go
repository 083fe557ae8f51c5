package usermenu

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/clearance/internal/platform/timeouts"
	apperrors "github.com/louisbranch/clearance/internal/services/web/platform/errors"
	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	"github.com/louisbranch/clearance/internal/services/web/platform/navigation"
	"github.com/louisbranch/clearance/internal/services/web/platform/observability"
	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
	"github.com/louisbranch/clearance/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

// DefaultLogoutTimeout bounds one provider logout call.
const DefaultLogoutTimeout = timeouts.Logout

// Outcome tags a logout result.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeFailed
)

// String returns the metric label for the outcome.
func (o Outcome) String() string {
	if o == OutcomeFailed {
		return "failed"
	}
	return "succeeded"
}

// Result is the tagged outcome of one logout invocation.
type Result struct {
	Outcome Outcome
	// Err is a KindLogoutFailed error when Outcome is OutcomeFailed.
	Err error
	// Menu is the state to re-render after a failure.
	Menu Menu
}

// LogouterConfig wires a Logouter.
type LogouterConfig struct {
	Provider     session.Provider
	Navigator    navigation.Navigator
	SchemePolicy requestmeta.SchemePolicy
	Metrics      *observability.Metrics
	Timeout      time.Duration
	// Logf receives the single diagnostic entry for a failed logout.
	Logf httpx.Logf
}

// Logouter sequences the logout action: invoke the provider, then navigate to
// the login route on success or log on failure.
type Logouter struct {
	provider  session.Provider
	navigator navigation.Navigator
	policy    requestmeta.SchemePolicy
	metrics   *observability.Metrics
	timeout   time.Duration
	logf      httpx.Logf

	group singleflight.Group

	mu       sync.Mutex
	inflight map[string]int
}

// NewLogouter builds a Logouter. A nil Navigator uses HTTP redirects and a nil
// Logf logs through the standard logger.
func NewLogouter(cfg LogouterConfig) *Logouter {
	navigator := cfg.Navigator
	if navigator == nil {
		navigator = navigation.HTTP{}
	}
	logf := cfg.Logf
	if logf == nil {
		logf = log.Printf
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultLogoutTimeout
	}
	return &Logouter{
		provider:  cfg.Provider,
		navigator: navigator,
		policy:    cfg.SchemePolicy,
		metrics:   cfg.Metrics,
		timeout:   timeout,
		logf:      logf,
		inflight:  map[string]int{},
	}
}

// Busy reports whether a logout for key is in flight.
func (l *Logouter) Busy(key string) bool {
	key = strings.TrimSpace(key)
	if l == nil || key == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inflight[key] > 0
}

// Logout runs the logout action for the session identified by key. Concurrent
// calls with the same key share one provider call. On success the session
// cookie is cleared and the client is sent to the login route; on failure
// nothing is written and the returned menu keeps its prior state.
func (l *Logouter) Logout(w http.ResponseWriter, r *http.Request, key string, menu Menu) Result {
	menu.Busy = false
	err := l.invoke(r, strings.TrimSpace(key))
	if err != nil {
		failure := apperrors.Error{
			Kind:    apperrors.KindLogoutFailed,
			Key:     "error.web.message.logout_failed",
			Message: "logout failed",
			Cause:   err,
		}
		l.metrics.ObserveLogout(OutcomeFailed.String())
		l.logf("logout failed path=%s request_id=%s: %v", r.URL.Path, requestID(r), failure)
		return Result{Outcome: OutcomeFailed, Err: failure, Menu: menu}
	}
	l.metrics.ObserveLogout(OutcomeSucceeded.String())
	sessioncookie.Clear(w, r, l.policy)
	l.navigator.Navigate(w, r, routepath.Login)
	return Result{Outcome: OutcomeSucceeded, Menu: New()}
}

func (l *Logouter) invoke(r *http.Request, key string) error {
	if l.provider == nil {
		return apperrors.E(apperrors.KindUnavailable, "session provider is not configured")
	}
	call := func() (any, error) {
		// The user cannot cancel an in-flight logout.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(httpx.RequestContext(r)), l.timeout)
		defer cancel()
		ctx, span := observability.StartSpan(ctx, "dashboard.logout", attribute.Bool("session.keyed", key != ""))
		err := session.NewAccessor(l.provider, r).Logout(ctx)
		observability.EndSpan(span, err)
		return nil, err
	}
	if key == "" {
		_, err := call()
		return err
	}
	l.track(key, 1)
	defer l.track(key, -1)
	_, err, _ := l.group.Do(key, call)
	return err
}

func (l *Logouter) track(key string, delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inflight[key] += delta
	if l.inflight[key] <= 0 {
		delete(l.inflight, key)
	}
}

func requestID(r *http.Request) string {
	if id := httpx.RequestIDOf(r); id != "" {
		return id
	}
	return "-"
}
