// Package observability provides request logging, metrics, and tracing
// helpers for the web service.
package observability

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
)

// statusRecorder captures the response status and byte count.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(p []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(p)
	s.bytes += n
	return n, err
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

func (s *statusRecorder) code() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// RequestLogger logs one line per request. A nil logger uses the standard logger.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			requestID := httpx.RequestIDOf(r)
			if requestID == "" {
				requestID = "-"
			}
			logger.Printf(
				"http request method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				r.Method,
				r.URL.Path,
				rec.code(),
				rec.bytes,
				time.Since(started).Round(time.Microsecond),
				requestID,
			)
		})
	}
}

// Instrument records request durations on m. A nil m disables recording.
func Instrument(m *Metrics) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			m.RequestDuration.WithLabelValues(r.Method, strconv.Itoa(rec.code())).Observe(time.Since(started).Seconds())
		})
	}
}
