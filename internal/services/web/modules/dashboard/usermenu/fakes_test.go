package usermenu

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/louisbranch/clearance/internal/services/web/platform/session"
)

type fakeProvider struct {
	mu      sync.Mutex
	calls   int
	err     error
	started chan struct{}
	release chan struct{}
}

func (p *fakeProvider) Resolve(*http.Request) session.Status {
	return session.Present("ws-1", session.Session{Email: "a@b.com"})
}

func (p *fakeProvider) Logout(context.Context, *http.Request) error {
	p.mu.Lock()
	p.calls++
	started := p.started
	p.mu.Unlock()
	if started != nil {
		select {
		case started <- struct{}{}:
		default:
		}
	}
	if p.release != nil {
		<-p.release
	}
	return p.err
}

func (p *fakeProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNavigator) Navigate(w http.ResponseWriter, _ *http.Request, path string) {
	n.mu.Lock()
	n.paths = append(n.paths, path)
	n.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (n *recordingNavigator) Paths() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
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

func (l *recordingLog) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}
