package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDAssignsULID(t *testing.T) {
	var seen string

	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/clients/1/statement", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if seen == "" {
		t.Fatal("expected a request id in context")
	}

	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Errorf("header id %q does not match context id %q", got, seen)
	}

	if len(seen) != 26 {
		t.Errorf("expected 26-char ULID, got %q", seen)
	}
}

func TestRequestIDEchoesCallerID(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "caller-id" {
			t.Errorf("expected caller id, got %q", got)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "caller-id" {
		t.Errorf("expected caller id echoed in header, got %q", got)
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}
