package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestErrorHandlingMiddleware_Recovers(t *testing.T) {
	handler := ErrorHandlingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after panic, got %d", w.Code)
	}
}

func TestErrorHandlingMiddleware_HTMXFragment(t *testing.T) {
	handler := ErrorHandlingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("POST", "/cart/add", nil)
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after panic, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error-banner") {
		t.Errorf("HTMX requests should get an inline fragment, got %q", w.Body.String())
	}
}

func TestErrorHandlingMiddleware_NoPanic(t *testing.T) {
	handler := ErrorHandlingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fine"))
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "fine" {
		t.Errorf("middleware interfered with a healthy handler: %d %q", w.Code, w.Body.String())
	}
}

func TestNotFoundHandler(t *testing.T) {
	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	NotFoundHandler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Page Not Found") {
		t.Error("404 page should say Page Not Found")
	}
}

func TestMethodNotAllowedHandler(t *testing.T) {
	req := httptest.NewRequest("DELETE", "/cart", nil)
	w := httptest.NewRecorder()
	MethodNotAllowedHandler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
	if w.Header().Get("Allow") == "" {
		t.Error("405 response should carry an Allow header")
	}
}

func TestIsHTMXRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if IsHTMXRequest(req) {
		t.Error("plain request misdetected as HTMX")
	}

	req.Header.Set("HX-Request", "true")
	if !IsHTMXRequest(req) {
		t.Error("HTMX request not detected")
	}
}
