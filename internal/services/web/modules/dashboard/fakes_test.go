package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/louisbranch/clearance/internal/services/web/platform/session"
)

// fakeProvider implements session.Provider with a fixed status and
// configurable logout failure.
type fakeProvider struct {
	mu        sync.Mutex
	status    session.Status
	logoutErr error
	logouts   int
	resolves  int
}

func (p *fakeProvider) Resolve(*http.Request) session.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resolves++
	return p.status
}

func (p *fakeProvider) Logout(context.Context, *http.Request) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logouts++
	return p.logoutErr
}

func presentProvider() *fakeProvider {
	return &fakeProvider{status: session.Present("ws-1", session.Session{Email: "a@b.com"})}
}

type recordingLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLog) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

func (l *recordingLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
