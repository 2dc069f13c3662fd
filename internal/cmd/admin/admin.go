// Package admin parses FAQ admin command flags and starts the page server.
package admin

import (
	"context"
	"flag"
	"time"

	entrypoint "github.com/louisbranch/faqdesk/internal/platform/cmd"
	adminserver "github.com/louisbranch/faqdesk/internal/services/admin"
)

// Config holds admin command configuration.
type Config struct {
	HTTPAddr       string        `env:"FAQDESK_ADMIN_ADDR" envDefault:":8082"`
	APIBaseURL     string        `env:"FAQDESK_API_URL" envDefault:"http://localhost:8090/api"`
	RequestTimeout time.Duration `env:"FAQDESK_API_TIMEOUT" envDefault:"5s"`
	DBPath         string        `env:"FAQDESK_ADMIN_DB_PATH" envDefault:"data/admin.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-url", cfg.APIBaseURL, "FAQ backend base URL")
	fs.DurationVar(&cfg.RequestTimeout, "api-timeout", cfg.RequestTimeout, "FAQ backend request timeout")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Activity log SQLite path (empty disables the log)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the admin page server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAdmin, func(ctx context.Context) error {
		server, err := adminserver.NewServer(ctx, adminserver.Config{
			HTTPAddr:       cfg.HTTPAddr,
			APIBaseURL:     cfg.APIBaseURL,
			RequestTimeout: cfg.RequestTimeout,
			DBPath:         cfg.DBPath,
		})
		if err != nil {
			return err
		}
		defer server.Close()
		return server.ListenAndServe(ctx)
	})
}
