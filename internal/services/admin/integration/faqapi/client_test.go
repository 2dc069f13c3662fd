package faqapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/faqdesk/internal/faq"
	apperrors "github.com/louisbranch/faqdesk/internal/platform/errors"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
	Header http.Header
}

func newTestServer(t *testing.T, status int, body string) (*Client, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		captured = append(captured, capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(raw),
			Header: r.Header.Clone(),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := New(srv.URL+"/api/", WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, &captured
}

func TestNewValidatesBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "empty", baseURL: "  ", wantErr: true},
		{name: "no scheme", baseURL: "localhost:8090/api", wantErr: true},
		{name: "ftp", baseURL: "ftp://example.com", wantErr: true},
		{name: "no host", baseURL: "http:///api", wantErr: true},
		{name: "http", baseURL: "http://localhost:8090/api"},
		{name: "trailing slash", baseURL: "https://faq.example.com/api/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.baseURL)
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	client, err := New("https://faq.example.com/api/")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if got := client.BaseURL(); got != "https://faq.example.com/api" {
		t.Fatalf("BaseURL() = %q", got)
	}
}

func TestListRequestsCategoryAndDecodesRecords(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"success":true,"data":[
		{"_id":"1","question":"A?","answer":"x","category":"rental","isActive":true,"order":1,
		 "translations":{"ru":{"question":"А?","answer":"х"}},"createdAt":"2024-05-01T10:00:00Z"},
		{"_id":"2","question":"B?","answer":"y","category":"rental","isActive":false,"order":2}
	]}`)

	records, err := client.List(context.Background(), faq.CategoryRental)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].ID != "1" || !records[0].IsActive || records[1].IsActive {
		t.Fatalf("unexpected records: %+v", records)
	}
	if records[0].Translations == nil || records[0].Translations.RU == nil || records[0].Translations.RU.Question != "А?" {
		t.Fatalf("expected ru translation, got %+v", records[0].Translations)
	}
	if records[0].CreatedAt == nil || records[0].CreatedAt.Year() != 2024 {
		t.Fatalf("expected createdAt, got %v", records[0].CreatedAt)
	}

	req := (*captured)[0]
	if req.Method != http.MethodGet || req.Path != "/api/faqs/admin" || req.Query != "category=rental" {
		t.Fatalf("unexpected request: %s %s?%s", req.Method, req.Path, req.Query)
	}
	if req.Header.Get("Accept") != "application/json" {
		t.Fatalf("Accept = %q", req.Header.Get("Accept"))
	}
}

func TestListRejectsUnknownCategory(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"success":true}`)
	_, err := client.List(context.Background(), faq.Category("spa"))
	if apperrors.CodeOf(err) != apperrors.CodeInvalidArgument {
		t.Fatalf("List() error = %v, want invalid argument", err)
	}
	if len(*captured) != 0 {
		t.Fatalf("expected no request, got %d", len(*captured))
	}
}

func TestListMissingDataIsEmpty(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `{"success":true}`)
	records, err := client.List(context.Background(), faq.CategoryMassage)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("records = %#v, want empty slice", records)
	}
}

func TestCreateSendsDraftBody(t *testing.T) {
	client, captured := newTestServer(t, http.StatusCreated, `{"success":true,"message":"created"}`)

	message, err := client.Create(context.Background(), faq.Draft{Question: " Q ", Answer: "A", IsActive: true}.CreateRequest(faq.CategoryMassage))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if message != "created" {
		t.Fatalf("message = %q", message)
	}
	req := (*captured)[0]
	if req.Method != http.MethodPost || req.Path != "/api/faqs" {
		t.Fatalf("unexpected request: %s %s", req.Method, req.Path)
	}
	if req.Header.Get("Content-Type") != "application/json" {
		t.Fatalf("Content-Type = %q", req.Header.Get("Content-Type"))
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["question"] != "Q" || body["answer"] != "A" || body["isActive"] != true || body["category"] != "massage" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestUpdateSendsFullRecord(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"success":true}`)
	record := faq.Record{ID: "abc/1", Question: "Q", Answer: "A", Category: faq.CategoryRental, IsActive: false, Order: 3}

	if _, err := client.Update(context.Background(), record); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	req := (*captured)[0]
	if req.Method != http.MethodPut {
		t.Fatalf("method = %s", req.Method)
	}
	if req.Path != "/api/faqs/abc/1" {
		t.Fatalf("path = %q", req.Path)
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["_id"] != "abc/1" || body["isActive"] != false || body["order"] != float64(3) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestUpdateAndDeleteRequireID(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"success":true}`)
	if _, err := client.Update(context.Background(), faq.Record{}); apperrors.CodeOf(err) != apperrors.CodeInvalidArgument {
		t.Fatalf("Update() code = %q", apperrors.CodeOf(err))
	}
	if _, err := client.Delete(context.Background(), " "); apperrors.CodeOf(err) != apperrors.CodeInvalidArgument {
		t.Fatalf("Delete() code = %q", apperrors.CodeOf(err))
	}
	if len(*captured) != 0 {
		t.Fatalf("expected no requests, got %d", len(*captured))
	}
}

func TestDeleteAndSeed(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"success":true,"message":"Seeded 6 FAQs"}`)

	if _, err := client.Delete(context.Background(), "42"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	message, err := client.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if message != "Seeded 6 FAQs" {
		t.Fatalf("seed message = %q", message)
	}
	if got := (*captured)[0]; got.Method != http.MethodDelete || got.Path != "/api/faqs/42" {
		t.Fatalf("unexpected delete request: %s %s", got.Method, got.Path)
	}
	if got := (*captured)[1]; got.Method != http.MethodPost || got.Path != "/api/faqs/seed" || got.Body != "" {
		t.Fatalf("unexpected seed request: %s %s %q", got.Method, got.Path, got.Body)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    apperrors.Code
		wantMessage string
	}{
		{name: "rejected with message", status: http.StatusOK, body: `{"success":false,"message":"Question exists"}`, wantCode: apperrors.CodeBackendRejected, wantMessage: "Question exists"},
		{name: "rejected without message", status: http.StatusBadRequest, body: `{"success":false}`, wantCode: apperrors.CodeBackendRejected},
		{name: "error status with success flag", status: http.StatusInternalServerError, body: `{"success":true}`, wantCode: apperrors.CodeBackendRejected},
		{name: "html body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantCode: apperrors.CodeBackendUnavailable},
		{name: "empty body", status: http.StatusOK, body: ``, wantCode: apperrors.CodeBackendUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestServer(t, tc.status, tc.body)
			_, err := client.Seed(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.CodeOf(err); got != tc.wantCode {
				t.Fatalf("code = %q, want %q", got, tc.wantCode)
			}
			if got := apperrors.MessageOf(err); got != tc.wantMessage {
				t.Fatalf("message = %q, want %q", got, tc.wantMessage)
			}
			if err.Error() == "" {
				t.Fatal("expected loggable error text")
			}
		})
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client, err := New(baseURL, WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.List(context.Background(), faq.CategoryMassage)
	if !errors.Is(err, apperrors.New(apperrors.CodeBackendUnavailable, "")) {
		t.Fatalf("expected backend unavailable, got %v", err)
	}
}

func TestTimeoutIsUnavailable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	client, err := New(srv.URL, WithTimeout(20*time.Millisecond))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.List(context.Background(), faq.CategoryMassage)
	if apperrors.CodeOf(err) != apperrors.CodeBackendUnavailable {
		t.Fatalf("code = %q, err = %v", apperrors.CodeOf(err), err)
	}
	if !strings.Contains(err.Error(), "deadline") {
		t.Fatalf("expected deadline error, got %v", err)
	}
}
