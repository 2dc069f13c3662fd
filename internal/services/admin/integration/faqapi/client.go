// Package faqapi is the typed HTTP client for the FAQ backend REST contract.
//
// Every call returns either nil or an *apperrors.Error whose code tells the
// caller how to present it: CodeBackendUnavailable for transport and decode
// failures, CodeBackendRejected when the backend answered with
// success:false (Message carries the server's text, possibly empty).
package faqapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/faqdesk/internal/faq"
	apperrors "github.com/louisbranch/faqdesk/internal/platform/errors"
	platformotel "github.com/louisbranch/faqdesk/internal/platform/otel"
	"github.com/louisbranch/faqdesk/internal/platform/timeouts"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName   = "github.com/louisbranch/faqdesk/internal/services/admin/integration/faqapi"
	maxBodyBytes = 4 << 20
)

// Client calls the FAQ backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout bounds each backend call. Non-positive values keep the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New builds a client for the API rooted at baseURL (for example
// http://localhost:8090/api).
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("faq api base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse faq api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("faq api base url must be http or https: %q", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("faq api base url must include a host: %q", baseURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")

	client := &Client{
		baseURL:    parsed,
		httpClient: http.DefaultClient,
		timeout:    timeouts.BackendRequest,
		tracer:     platformotel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// List returns every record of category, active or not.
func (c *Client) List(ctx context.Context, category faq.Category) ([]faq.Record, error) {
	if !category.Valid() {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("unknown category %q", category))
	}
	query := url.Values{}
	query.Set("category", category.String())
	env, err := c.do(ctx, "list", http.MethodGet, "/faqs/admin", query, nil)
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return []faq.Record{}, nil
	}
	var records []faq.Record
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeBackendUnavailable, "", fmt.Errorf("decode faq list: %w", err))
	}
	return records, nil
}

// Create adds a record and returns the server message, if any.
func (c *Client) Create(ctx context.Context, request faq.CreateRequest) (string, error) {
	env, err := c.do(ctx, "create", http.MethodPost, "/faqs", nil, request)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Update replaces a record with the full body of record.
func (c *Client) Update(ctx context.Context, record faq.Record) (string, error) {
	id := strings.TrimSpace(record.ID)
	if id == "" {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "record id is required")
	}
	env, err := c.do(ctx, "update", http.MethodPut, "/faqs/"+url.PathEscape(id), nil, record)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Delete removes the record with id.
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "record id is required")
	}
	env, err := c.do(ctx, "delete", http.MethodDelete, "/faqs/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Seed asks the backend to load its demo data and returns its message.
func (c *Client) Seed(ctx context.Context) (string, error) {
	env, err := c.do(ctx, "seed", http.MethodPost, "/faqs/seed", nil, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// endpoint joins the escaped path onto the base URL.
func (c *Client) endpoint(escapedPath string, query url.Values) string {
	target := *c.baseURL
	target.RawPath = c.baseURL.EscapedPath() + escapedPath
	if unescaped, err := url.PathUnescape(target.RawPath); err == nil {
		target.Path = unescaped
	}
	target.RawQuery = ""
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}
	return target.String()
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (envelope, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "faqapi."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	env, status, err := c.roundTrip(ctx, method, c.endpoint(path, query), body)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.CodeOf(err)))
		return envelope{}, err
	}
	return env, nil
}

func (c *Client) roundTrip(ctx context.Context, method, target string, body any) (envelope, int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return envelope{}, 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return envelope{}, 0, apperrors.Wrap(apperrors.CodeBackendUnavailable, "", fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	platformotel.InjectHTTP(ctx, req.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, 0, apperrors.Wrap(apperrors.CodeBackendUnavailable, "", fmt.Errorf("%s %s: %w", method, target, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return envelope{}, resp.StatusCode, apperrors.Wrap(apperrors.CodeBackendUnavailable, "", fmt.Errorf("read response: %w", err))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		unavailable := apperrors.Wrap(apperrors.CodeBackendUnavailable, "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err))
		unavailable.Metadata = map[string]string{"status": fmt.Sprint(resp.StatusCode)}
		return envelope{}, resp.StatusCode, unavailable
	}
	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		rejected := &apperrors.Error{
			Code:     apperrors.CodeBackendRejected,
			Message:  strings.TrimSpace(env.Message),
			Metadata: map[string]string{"status": fmt.Sprint(resp.StatusCode)},
			Cause:    fmt.Errorf("%s %s rejected with status %d", method, target, resp.StatusCode),
		}
		return envelope{}, resp.StatusCode, rejected
	}
	return env, resp.StatusCode, nil
}
