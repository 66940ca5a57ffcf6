package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/okian/concursos/pkg/metrics"
)

// MetricsMiddleware records request counts, latency and error classes for
// one endpoint.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		elapsedMs := float64(time.Since(start).Microseconds()) / 1000
		code := strconv.Itoa(sw.status)
		metrics.RecordHTTPRequest(endpoint, r.Method, code)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, code, elapsedMs)

		kind, severity, failed := classifyStatus(sw.status)
		if !failed {
			return
		}
		metrics.RecordErrorByEndpoint(endpoint, r.Method, kind)
		metrics.RecordErrorByType(kind, severity)
		metrics.RecordErrorLatency("http", kind, elapsedMs)
	}
}

// classifyStatus maps a response status onto an error class and severity.
// Statuses below 400 are not failures.
func classifyStatus(status int) (kind, severity string, failed bool) {
	switch {
	case status < http.StatusBadRequest:
		return "", "", false
	case status == http.StatusNotFound:
		return "not_found", "low", true
	case status == http.StatusMethodNotAllowed:
		return "method_not_allowed", "low", true
	case status < http.StatusInternalServerError:
		return "bad_request", "medium", true
	default:
		return "internal", "high", true
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	if err != nil {
		return n, fmt.Errorf("write response: %w", err)
	}
	return n, nil
}
