package observability

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRequestLoggerLogsMethodAndPath(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	logger := log.New(&buffer, "", 0)
	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/documents", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	logLine := buffer.String()
	for _, marker := range []string{"method=GET", "path=/dashboard/documents", "status=204", "request_id=req-123"} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("log line missing marker %q: %q", marker, logLine)
		}
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	logger := log.New(&buffer, "", 0)
	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/up", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	logLine := buffer.String()
	for _, marker := range []string{"method=GET", "path=/up", "status=200", "bytes=2", "request_id=-"} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("log line missing marker %q: %q", marker, logLine)
		}
	}
	if !strings.Contains(logLine, "latency=") {
		t.Fatalf("unexpected log line %q", logLine)
	}
}

func TestInstrumentObservesRequestDuration(t *testing.T) {
	t.Parallel()

	reg, metrics := NewRegistry()
	h := Instrument(metrics)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	if got := testutil.CollectAndCount(metrics.RequestDuration, "clearance_web_request_duration_seconds"); got != 1 {
		t.Fatalf("series = %d, want 1", got)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	var samples uint64
	for _, family := range families {
		if family.GetName() != "clearance_web_request_duration_seconds" {
			continue
		}
		for _, metric := range family.GetMetric() {
			samples += metric.GetHistogram().GetSampleCount()
		}
	}
	if samples != 2 {
		t.Fatalf("samples = %d, want 2", samples)
	}
}

func TestInstrumentWithoutMetricsPassesThrough(t *testing.T) {
	t.Parallel()

	h := Instrument(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
}

func TestMetricsCounters(t *testing.T) {
	t.Parallel()

	_, metrics := NewRegistry()
	metrics.ObserveLayout("authenticated")
	metrics.ObserveLayout("authenticated")
	metrics.ObserveLayout("pending")
	metrics.ObserveLogout("failed")
	metrics.ObserveSession("absent")

	if got := testutil.ToFloat64(metrics.LayoutRenders.WithLabelValues("authenticated")); got != 2 {
		t.Fatalf("authenticated renders = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.LayoutRenders.WithLabelValues("pending")); got != 1 {
		t.Fatalf("pending renders = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.LogoutOutcomes.WithLabelValues("failed")); got != 1 {
		t.Fatalf("failed logouts = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.SessionResolutions.WithLabelValues("absent")); got != 1 {
		t.Fatalf("absent sessions = %v, want 1", got)
	}

	var nilMetrics *Metrics
	nilMetrics.ObserveLayout("authenticated")
	nilMetrics.ObserveLogout("succeeded")
	nilMetrics.ObserveSession("present")
}

func TestHandlerServesRegisteredMetrics(t *testing.T) {
	t.Parallel()

	reg, metrics := NewRegistry()
	metrics.ObserveLogout("succeeded")

	rr := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if body := rr.Body.String(); !strings.Contains(body, `clearance_web_logout_outcomes_total{outcome="succeeded"} 1`) {
		t.Fatalf("metrics body missing logout counter: %q", body)
	}
}

func TestStartSpanRecordsErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	_, span := StartSpan(context.Background(), "dashboard.logout", attribute.String("outcome", "failed"))
	EndSpan(span, errors.New("provider offline"))

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	if ended[0].Name() != "dashboard.logout" {
		t.Fatalf("span name = %q, want %q", ended[0].Name(), "dashboard.logout")
	}
	if ended[0].Status().Code != codes.Error {
		t.Fatalf("span status = %v, want error", ended[0].Status().Code)
	}

	EndSpan(nil, nil)
}
