package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/faqdesk/internal/platform/timeouts"
	"github.com/louisbranch/faqdesk/internal/services/admin/integration/faqapi"
	adminstorage "github.com/louisbranch/faqdesk/internal/services/admin/integration/storage"
	"github.com/louisbranch/faqdesk/internal/services/admin/static"
	"github.com/louisbranch/faqdesk/internal/services/admin/storage"
	"github.com/louisbranch/faqdesk/internal/services/admin/transport/httpmux"
)

// Config defines the inputs for the admin process.
type Config struct {
	HTTPAddr string
	// APIBaseURL is the FAQ backend root, for example http://localhost:8090/api.
	APIBaseURL string
	// RequestTimeout caps each backend call.
	RequestTimeout time.Duration
	// DBPath locates the activity store. Blank disables the activity log.
	DBPath string
}

// Server hosts the FAQ admin page.
type Server struct {
	httpAddr   string
	apiBaseURL string
	httpServer *http.Server
	store      storage.Store
}

// NewServer builds a configured admin server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = timeouts.BackendRequest
	}

	client, err := faqapi.New(config.APIBaseURL, faqapi.WithTimeout(config.RequestTimeout))
	if err != nil {
		return nil, fmt.Errorf("create faq api client: %w", err)
	}

	store, err := adminstorage.OpenActivityStore(config.DBPath)
	if err != nil {
		return nil, err
	}
	var activity storage.ActivityStore
	if store != nil {
		activity = store
	}

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.FS, withStaticMime)
	httpmux.MountAdminRoutes(rootMux, NewHandler(client, activity))

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           rootMux,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		apiBaseURL: client.BaseURL(),
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s (faq api %s)", s.httpAddr, s.apiBaseURL)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the activity store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func withStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(strings.ToLower(r.URL.Path), ".css") {
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		}
		next.ServeHTTP(w, r)
	})
}
