package devapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/louisbranch/faqdesk/internal/platform/timeouts"
)

// Config defines the inputs for the development API process.
type Config struct {
	HTTPAddr string
	// Prefix is the path the FAQ routes are mounted under.
	Prefix string
	// Seed loads the demo records at startup.
	Seed bool
}

// Server hosts the development API.
type Server struct {
	httpAddr string
	prefix   string
	app      *fiber.App
}

// NewServer builds a configured development API server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	store := NewStore()
	if config.Seed {
		added := store.Seed(DemoEntries())
		log.Printf("devapi seeded %d FAQs", added)
	}
	return &Server{
		httpAddr: httpAddr,
		prefix:   normalizePrefix(config.Prefix),
		app:      NewApp(config.Prefix, store),
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("devapi server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("devapi listening on %s%s", s.httpAddr, s.prefix)
	go func() {
		serveErr <- s.app.Listen(s.httpAddr)
	}()

	select {
	case <-ctx.Done():
		if err := s.app.ShutdownWithTimeout(timeouts.Shutdown); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	}
}
