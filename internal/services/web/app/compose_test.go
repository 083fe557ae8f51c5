package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/clearance/internal/services/web/module"
	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/clearance/internal/services/web/platform/sessioncookie"
)

type stubModule struct {
	id      string
	prefix  string
	body    string
	err     error
	nilMux  bool
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount() (module.Mount, error) {
	if m.err != nil {
		return module.Mount{}, m.err
	}
	if m.nilMux {
		return module.Mount{Prefix: m.prefix}, nil
	}
	body := m.body
	if body == "" {
		body = m.id
	}
	return module.Mount{
		Prefix: m.prefix,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body + " " + r.URL.Path))
		}),
	}, nil
}

type healthyStub struct {
	stubModule
	ok bool
}

func (m healthyStub) Healthy() bool { return m.ok }

func TestComposeMountsPublicAndProtectedModules(t *testing.T) {
	t.Parallel()

	root, err := Compose(ComposeInput{
		PublicModules:    []module.Module{stubModule{id: "public", prefix: "/"}},
		ProtectedModules: []module.Module{stubModule{id: "dashboard", prefix: "/dashboard/"}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for path, want := range map[string]string{
		"/":                    "public /",
		"/login":               "public /login",
		"/dashboard":           "dashboard /dashboard",
		"/dashboard/":          "dashboard /dashboard/",
		"/dashboard/documents": "dashboard /dashboard/documents",
	} {
		rr := httptest.NewRecorder()
		root.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusOK)
		}
		if got := rr.Body.String(); got != want {
			t.Fatalf("GET %s body = %q, want %q", path, got, want)
		}
	}
}

func TestComposeRejectsInvalidModules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input ComposeInput
		want  string
	}{
		{
			name:  "nil public",
			input: ComposeInput{PublicModules: []module.Module{nil}},
			want:  "public module is nil",
		},
		{
			name:  "nil protected",
			input: ComposeInput{ProtectedModules: []module.Module{nil}},
			want:  "protected module is nil",
		},
		{
			name:  "mount error",
			input: ComposeInput{PublicModules: []module.Module{stubModule{id: "broken", err: errors.New("boom")}}},
			want:  "boom",
		},
		{
			name:  "empty prefix",
			input: ComposeInput{PublicModules: []module.Module{stubModule{id: "x"}}},
			want:  "prefix is required",
		},
		{
			name:  "relative prefix",
			input: ComposeInput{PublicModules: []module.Module{stubModule{id: "x", prefix: "login/"}}},
			want:  "must begin with /",
		},
		{
			name:  "missing trailing slash",
			input: ComposeInput{PublicModules: []module.Module{stubModule{id: "x", prefix: "/login"}}},
			want:  "must end with /",
		},
		{
			name:  "whitespace prefix",
			input: ComposeInput{PublicModules: []module.Module{stubModule{id: "x", prefix: " /x/"}}},
			want:  "surrounding whitespace",
		},
		{
			name:  "nil handler",
			input: ComposeInput{PublicModules: []module.Module{stubModule{id: "x", prefix: "/x/", nilMux: true}}},
			want:  "handler is required",
		},
		{
			name: "duplicate prefix",
			input: ComposeInput{PublicModules: []module.Module{
				stubModule{id: "a", prefix: "/a/"},
				stubModule{id: "b", prefix: "/a/"},
			}},
			want: "duplicates prefix",
		},
		{
			name:  "protected prefix in public group",
			input: ComposeInput{PublicModules: []module.Module{stubModule{id: "x", prefix: "/dashboard/"}}},
			want:  "protected prefix",
		},
		{
			name:  "protected module outside dashboard",
			input: ComposeInput{ProtectedModules: []module.Module{stubModule{id: "x", prefix: "/settings/"}}},
			want:  "must mount under /dashboard/",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(tc.input)
			if err == nil {
				t.Fatalf("Compose() error = nil, want %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Compose() error = %q, want substring %q", err.Error(), tc.want)
			}
		})
	}
}

func TestComposeGuardsCookieMutationsOnProtectedRoutes(t *testing.T) {
	t.Parallel()

	root, err := Compose(ComposeInput{
		ProtectedModules: []module.Module{stubModule{id: "dashboard", prefix: "/dashboard/"}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		name   string
		origin string
		cookie bool
		want   int
	}{
		{name: "cookie without proof", cookie: true, want: http.StatusForbidden},
		{name: "cookie with foreign origin", origin: "http://evil.example", cookie: true, want: http.StatusForbidden},
		{name: "cookie with same origin", origin: "http://example.com", cookie: true, want: http.StatusOK},
		{name: "no cookie", want: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "http://example.com/dashboard/logout", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.cookie {
				req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "ws-1"})
			}
			rr := httptest.NewRecorder()
			root.Handler.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestComposeGuardHonorsForwardedProto(t *testing.T) {
	t.Parallel()

	root, err := Compose(ComposeInput{
		ProtectedModules:    []module.Module{stubModule{id: "dashboard", prefix: "/dashboard/"}},
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: true},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "http://example.com/dashboard/logout", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("Origin", "https://example.com")
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "ws-1"})
	rr := httptest.NewRecorder()
	root.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestRootHealthyAggregatesReporters(t *testing.T) {
	t.Parallel()

	root, err := BuildRootHandler(Config{
		PublicModules: []module.Module{healthyStub{stubModule: stubModule{id: "public", prefix: "/"}, ok: true}},
		ProtectedModules: []module.Module{
			healthyStub{stubModule: stubModule{id: "dashboard", prefix: "/dashboard/"}, ok: false},
		},
	})
	if err != nil {
		t.Fatalf("BuildRootHandler() error = %v", err)
	}
	if len(root.Reporters) != 2 {
		t.Fatalf("reporters = %d, want 2", len(root.Reporters))
	}
	if root.Healthy() {
		t.Fatalf("Healthy() = true, want false")
	}

	root.Reporters = root.Reporters[:1]
	if !root.Healthy() {
		t.Fatalf("Healthy() = false, want true")
	}
}
