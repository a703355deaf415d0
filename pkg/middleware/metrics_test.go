package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestPrometheusMiddleware(t *testing.T) {
	// A fresh registry avoids duplicate registration across tests; the
	// middleware keeps its first-created metrics, so this init runs once.
	registry := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(registry), WithNamespace("test"))

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/upload/file1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418 passed through", rec.Code)
	}
}

func TestRecordUploadBytesWithoutInit(t *testing.T) {
	// Must not panic when called before Prometheus() ran.
	RecordUploadBytes(1024)
}

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}
	sr.Write([]byte("ok"))
	if sr.status != http.StatusOK {
		t.Errorf("status = %d, want 200", sr.status)
	}
}
