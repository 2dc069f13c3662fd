package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	_, err := NewServer(context.Background(), Config{APIBaseURL: "http://localhost:8090/api"})
	if err == nil {
		t.Fatal("expected error for empty http address")
	}
}

func TestNewServerRejectsInvalidAPIURL(t *testing.T) {
	_, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", APIBaseURL: "ftp://example.com"})
	if err == nil {
		t.Fatal("expected error for non-http api url")
	}
}

func TestNewServerServesStaticAndPage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"a1","question":"Opening hours?","answer":"9 to 5","category":"massage","isActive":true,"order":1}]}`))
	}))
	defer backend.Close()

	server, err := NewServer(context.Background(), Config{
		HTTPAddr:   "127.0.0.1:0",
		APIBaseURL: backend.URL + "/api/",
		DBPath:     filepath.Join(t.TempDir(), "nested", "admin.db"),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()
	if server.store == nil {
		t.Fatal("expected activity store to be opened")
	}
	if server.apiBaseURL != backend.URL+"/api" {
		t.Fatalf("api base url = %q", server.apiBaseURL)
	}

	rec := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/admin.css", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("static status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("static content type = %q", ct)
	}

	rec = httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faqs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("page status = %d, want %d", rec.Code, http.StatusOK)
	}
	assertContains(t, rec.Body.String(), "Opening hours?")
	assertContains(t, rec.Body.String(), "Recent changes")
}

func TestNewServerWithoutDBPathHidesActivity(t *testing.T) {
	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", APIBaseURL: "http://127.0.0.1:1/api"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()
	if server.store != nil {
		t.Fatal("expected no activity store")
	}
}

func TestListenAndServeStopsOnContextCancel(t *testing.T) {
	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", APIBaseURL: "http://127.0.0.1:1/api"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := server.ListenAndServe(ctx); err != nil {
		t.Fatalf("listen and serve: %v", err)
	}
}

func TestNilServer(t *testing.T) {
	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	server.Close()
}
