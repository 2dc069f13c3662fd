package faqs

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastID   string
}

func (f *fakeService) HandleFaqsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "page"
}

func (f *fakeService) HandleFaqsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "table"
}

func (f *fakeService) HandleFaqNew(http.ResponseWriter, *http.Request) {
	f.lastCall = "new"
}

func (f *fakeService) HandleFaqCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "create"
}

func (f *fakeService) HandleFaqsSeed(http.ResponseWriter, *http.Request) {
	f.lastCall = "seed"
}

func (f *fakeService) HandleFaqEdit(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall = "edit"
	f.lastID = id
}

func (f *fakeService) HandleFaqUpdate(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall = "update"
	f.lastID = id
}

func (f *fakeService) HandleFaqDeleteConfirm(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall = "delete_confirm"
	f.lastID = id
}

func (f *fakeService) HandleFaqDelete(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall = "delete"
	f.lastID = id
}

func (f *fakeService) HandleFaqToggle(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall = "toggle"
	f.lastID = id
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		name     string
		path     string
		method   string
		wantCode int
		wantCall string
		wantID   string
	}{
		{name: "page", path: "/faqs", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "page"},
		{name: "create", path: "/faqs", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "create"},
		{name: "faqs put", path: "/faqs", method: http.MethodPut, wantCode: http.StatusMethodNotAllowed},
		{name: "table", path: "/faqs/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "table"},
		{name: "table post", path: "/faqs/table", method: http.MethodPost, wantCode: http.StatusMethodNotAllowed},
		{name: "new", path: "/faqs/new", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "new"},
		{name: "seed", path: "/faqs/seed", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "seed"},
		{name: "seed get", path: "/faqs/seed", method: http.MethodGet, wantCode: http.StatusMethodNotAllowed},
		{name: "update", path: "/faqs/f-1", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "update", wantID: "f-1"},
		{name: "record get", path: "/faqs/f-1", method: http.MethodGet, wantCode: http.StatusMethodNotAllowed},
		{name: "edit", path: "/faqs/f-1/edit", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "edit", wantID: "f-1"},
		{name: "delete confirm", path: "/faqs/f-1/delete", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "delete_confirm", wantID: "f-1"},
		{name: "delete", path: "/faqs/f-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "delete", wantID: "f-1"},
		{name: "toggle", path: "/faqs/f-1/toggle", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "toggle", wantID: "f-1"},
		{name: "toggle get", path: "/faqs/f-1/toggle", method: http.MethodGet, wantCode: http.StatusMethodNotAllowed},
		{name: "escaped id", path: "/faqs/a%2Fb/edit", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "edit", wantID: "a/b"},
		{name: "unknown subroute", path: "/faqs/f-1/archive", method: http.MethodPost, wantCode: http.StatusNotFound},
		{name: "too deep", path: "/faqs/f-1/edit/extra", method: http.MethodGet, wantCode: http.StatusNotFound},
		{name: "trailing slash", path: "/faqs/f-1/edit/", method: http.MethodGet, wantCode: http.StatusMovedPermanently},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastID = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastID != tc.wantID {
				t.Fatalf("lastID = %q, want %q", svc.lastID, tc.wantID)
			}
		})
	}
}

func TestMethodNotAllowedSetsAllow(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	RegisterRoutes(mux, &fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/faqs/f-1/toggle", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q", got)
	}
}

func TestRegisterRoutesIgnoresNilInputs(t *testing.T) {
	t.Parallel()

	RegisterRoutes(nil, &fakeService{})
	mux := http.NewServeMux()
	RegisterRoutes(mux, nil)

	req := httptest.NewRequest(http.MethodGet, "/faqs", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
