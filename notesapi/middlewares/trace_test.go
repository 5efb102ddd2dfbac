package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTraceAssignsID(t *testing.T) {
	var seen string
	handler := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen == "" {
		t.Fatal("expected a trace id in the request context")
	}
	if got := rr.Header().Get("X-Trace-Id"); got != seen {
		t.Errorf("expected header %q, got %q", seen, got)
	}
}

func TestTracePreservesIncomingID(t *testing.T) {
	var seen string
	handler := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Trace-Id", "abc-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen != "abc-123" {
		t.Errorf("expected incoming trace id to be kept, got %q", seen)
	}
}

func TestTraceIDMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := TraceID(req.Context()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}
}
