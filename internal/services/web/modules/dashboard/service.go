package dashboard

import (
	"net/http"

	"github.com/louisbranch/clearance/internal/services/web/platform/observability"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
	"go.opentelemetry.io/otel/attribute"
)

type service struct {
	sessions session.Provider
	metrics  *observability.Metrics
}

func newService(sessions session.Provider, metrics *observability.Metrics) service {
	return service{sessions: sessions, metrics: metrics}
}

// resolveStatus reads the session accessor once for the request.
func (s service) resolveStatus(r *http.Request) session.Status {
	_, span := observability.StartSpan(r.Context(), "dashboard.resolve_session")
	status := session.NewAccessor(s.sessions, r).Status()
	span.SetAttributes(attribute.String("session.state", status.State.String()))
	observability.EndSpan(span, nil)
	s.metrics.ObserveSession(status.State.String())
	return status
}

func (s service) healthy() bool {
	return s.sessions != nil
}
