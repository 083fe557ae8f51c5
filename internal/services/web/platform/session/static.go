package session

import (
	"context"
	"net/http"
	"sync"
)

// StaticProvider serves a fixed status. It is a test double for packages
// that consume a Provider.
type StaticProvider struct {
	mu        sync.Mutex
	status    Status
	logoutErr error
	logouts   int
}

// NewStaticProvider returns a provider that always resolves to status.
func NewStaticProvider(status Status) *StaticProvider {
	return &StaticProvider{status: status}
}

// Resolve returns the configured status.
func (p *StaticProvider) Resolve(*http.Request) Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// FailLogout makes subsequent logouts return err.
func (p *StaticProvider) FailLogout(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logoutErr = err
}

// Logout records the call and, on success, switches the status to Absent.
func (p *StaticProvider) Logout(context.Context, *http.Request) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logouts++
	if p.logoutErr != nil {
		return p.logoutErr
	}
	p.status = Absent()
	return nil
}

// Logouts reports how many logouts were attempted.
func (p *StaticProvider) Logouts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.logouts
}
