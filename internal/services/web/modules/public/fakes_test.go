package public

import (
	"context"
	"net/http"

	"github.com/louisbranch/clearance/internal/services/web/platform/session"
)

type fakeProvider struct {
	status session.Status
}

func (p fakeProvider) Resolve(*http.Request) session.Status {
	return p.status
}

func (fakeProvider) Logout(context.Context, *http.Request) error {
	return nil
}

type fakeExchanger struct {
	value string
	err   error
	got   string
}

func (e *fakeExchanger) Exchange(_ context.Context, token string) (string, error) {
	e.got = token
	return e.value, e.err
}
