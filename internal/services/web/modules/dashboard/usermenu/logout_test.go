package usermenu

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/louisbranch/clearance/internal/services/web/platform/errors"
	"github.com/louisbranch/clearance/internal/services/web/platform/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newLogoutRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/dashboard/logout", nil)
	req.AddCookie(&http.Cookie{Name: "clearance_session", Value: "ws-1"})
	return req
}

func TestLogoutSuccessNavigatesToLoginOnce(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{}
	nav := &recordingNavigator{}
	logs := &recordingLog{}
	_, metrics := observability.NewRegistry()
	logouter := NewLogouter(LogouterConfig{Provider: provider, Navigator: nav, Logf: logs.Logf, Metrics: metrics})

	rr := httptest.NewRecorder()
	result := logouter.Logout(rr, newLogoutRequest(), "ws-1", FromState("open"))
	if result.Outcome != OutcomeSucceeded || result.Err != nil {
		t.Fatalf("result = %+v, want success", result)
	}
	if got := nav.Paths(); len(got) != 1 || got[0] != "/login" {
		t.Fatalf("navigations = %v, want [/login]", got)
	}
	if got := logs.Entries(); len(got) != 0 {
		t.Fatalf("log entries = %v, want none", got)
	}
	if cookie := rr.Header().Get("Set-Cookie"); !strings.Contains(cookie, "clearance_session=") || !strings.Contains(cookie, "Max-Age=0") {
		t.Fatalf("Set-Cookie = %q, want cleared session cookie", cookie)
	}
	if got := testutil.ToFloat64(metrics.LogoutOutcomes.WithLabelValues("succeeded")); got != 1 {
		t.Fatalf("succeeded logouts = %v, want 1", got)
	}
}

func TestLogoutFailureLogsOnceWithoutNavigation(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{err: errors.New("identity provider offline")}
	nav := &recordingNavigator{}
	logs := &recordingLog{}
	_, metrics := observability.NewRegistry()
	logouter := NewLogouter(LogouterConfig{Provider: provider, Navigator: nav, Logf: logs.Logf, Metrics: metrics})

	rr := httptest.NewRecorder()
	prior := FromState("open")
	result := logouter.Logout(rr, newLogoutRequest(), "ws-1", prior)
	if result.Outcome != OutcomeFailed {
		t.Fatalf("Outcome = %v, want failed", result.Outcome)
	}
	if !apperrors.IsKind(result.Err, apperrors.KindLogoutFailed) {
		t.Fatalf("Err kind = %v, want logout_failed", apperrors.KindOf(result.Err))
	}
	if result.Menu != prior {
		t.Fatalf("Menu = %+v, want prior %+v", result.Menu, prior)
	}
	if got := nav.Paths(); len(got) != 0 {
		t.Fatalf("navigations = %v, want none", got)
	}
	entries := logs.Entries()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if !strings.Contains(entries[0], "identity provider offline") {
		t.Fatalf("log entry missing cause: %q", entries[0])
	}
	if cookie := rr.Header().Get("Set-Cookie"); cookie != "" {
		t.Fatalf("failed logout cleared cookie: %q", cookie)
	}
	if got := testutil.ToFloat64(metrics.LogoutOutcomes.WithLabelValues("failed")); got != 1 {
		t.Fatalf("failed logouts = %v, want 1", got)
	}
}

func TestLogoutWithoutProviderFails(t *testing.T) {
	t.Parallel()

	nav := &recordingNavigator{}
	logs := &recordingLog{}
	logouter := NewLogouter(LogouterConfig{Navigator: nav, Logf: logs.Logf})
	result := logouter.Logout(httptest.NewRecorder(), newLogoutRequest(), "", New())
	if result.Outcome != OutcomeFailed {
		t.Fatalf("Outcome = %v, want failed", result.Outcome)
	}
	if len(nav.Paths()) != 0 || len(logs.Entries()) != 1 {
		t.Fatalf("navigations = %v logs = %v", nav.Paths(), logs.Entries())
	}
}

func TestConcurrentLogoutsShareOneProviderCall(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{started: make(chan struct{}, 1), release: make(chan struct{})}
	nav := &recordingNavigator{}
	logouter := NewLogouter(LogouterConfig{Provider: provider, Navigator: nav, Logf: (&recordingLog{}).Logf})

	const callers = 4
	var ready, done sync.WaitGroup
	ready.Add(callers)
	done.Add(callers)
	results := make([]Result, callers)
	for idx := range callers {
		go func() {
			defer done.Done()
			ready.Done()
			results[idx] = logouter.Logout(httptest.NewRecorder(), newLogoutRequest(), "ws-1", FromState("open"))
		}()
	}
	ready.Wait()
	<-provider.started
	if !logouter.Busy("ws-1") {
		t.Fatalf("Busy() = false during in-flight logout")
	}
	time.Sleep(50 * time.Millisecond)
	close(provider.release)
	done.Wait()

	if got := provider.Calls(); got != 1 {
		t.Fatalf("provider calls = %d, want 1", got)
	}
	for idx, result := range results {
		if result.Outcome != OutcomeSucceeded {
			t.Fatalf("caller %d outcome = %v", idx, result.Outcome)
		}
	}
	if got := len(nav.Paths()); got != callers {
		t.Fatalf("navigations = %d, want one per request (%d)", got, callers)
	}
	if logouter.Busy("ws-1") {
		t.Fatalf("Busy() = true after logout finished")
	}
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	if OutcomeSucceeded.String() != "succeeded" || OutcomeFailed.String() != "failed" {
		t.Fatalf("unexpected outcome labels %q %q", OutcomeSucceeded, OutcomeFailed)
	}
}
