package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"kyuna.GO/backend"
)

func TestPingBackend_UsesPublicListing(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// token-protected routes reject the anonymous client; the ping
		// must never touch them
		if r.URL.Path == "/prices/active" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"pagination":{"currentPage":1,"totalPages":1}}`))
	}))
	defer srv.Close()

	api := backend.NewClient(srv.URL, nil, backend.NoToken)
	if err := pingBackend(context.Background(), api); err != nil {
		t.Fatalf("pingBackend: %v", err)
	}
	if gotPath != "/items?page=1" {
		t.Errorf("path = %q, want /items?page=1", gotPath)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none", gotAuth)
	}
}

func TestPingBackend_ReportsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	api := backend.NewClient(srv.URL, nil, backend.NoToken)
	if err := pingBackend(context.Background(), api); err == nil {
		t.Fatal("expected error for unreachable backend")
	}
}
