package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		path     string
		wantOK   bool
		wantCode int
		wantLoc  string
	}{
		{
			name:     "no trailing slash",
			path:     "/faqs",
			wantOK:   false,
			wantCode: 200,
		},
		{
			name:     "trailing slash",
			path:     "/faqs/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/faqs",
		},
		{
			name:     "record subroute trailing slash",
			path:     "/faqs/f-1/edit/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/faqs/f-1/edit",
		},
		{
			name:     "keeps query",
			path:     "/faqs/?category=rental&q=a",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/faqs?category=rental&q=a",
		},
		{
			name:     "post keeps method",
			method:   http.MethodPost,
			path:     "/faqs/f-1/toggle/",
			wantOK:   true,
			wantCode: http.StatusPermanentRedirect,
			wantLoc:  "/faqs/f-1/toggle",
		},
		{
			name:     "root path",
			path:     "/",
			wantOK:   false,
			wantCode: 200,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			method := tc.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, tc.path, nil)
			rec := httptest.NewRecorder()

			got := RedirectTrailingSlash(rec, req)
			if got != tc.wantOK {
				t.Fatalf("RedirectTrailingSlash = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got {
				if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
					t.Fatalf("location = %q, want %q", loc, tc.wantLoc)
				}
				return
			}
		})
	}
}
