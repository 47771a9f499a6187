package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMaxBodySize_TruncatesOversizedBody(t *testing.T) {
	var readErr error
	handler := MaxBodySize(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if readErr == nil {
		t.Error("expected read error for oversized body")
	}
}

func TestMaxBodySize_AllowsSmallBody(t *testing.T) {
	var got []byte
	handler := MaxBodySize(1024)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(`{"name":"Alice"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if string(got) != `{"name":"Alice"}` {
		t.Errorf("body mangled: %q", got)
	}
}
