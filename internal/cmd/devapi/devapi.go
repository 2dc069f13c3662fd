// Package devapi parses development API command flags and starts the server.
package devapi

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/faqdesk/internal/platform/cmd"
	devapiserver "github.com/louisbranch/faqdesk/internal/services/devapi"
)

// Config holds development API command configuration.
type Config struct {
	HTTPAddr string `env:"FAQDESK_DEVAPI_ADDR" envDefault:":8090"`
	Prefix   string `env:"FAQDESK_DEVAPI_PREFIX" envDefault:"/api"`
	Seed     bool   `env:"FAQDESK_DEVAPI_SEED"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "Path prefix for the FAQ routes")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "Load demo FAQs at startup")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the development API.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDevAPI, func(ctx context.Context) error {
		server, err := devapiserver.NewServer(devapiserver.Config{
			HTTPAddr: cfg.HTTPAddr,
			Prefix:   cfg.Prefix,
			Seed:     cfg.Seed,
		})
		if err != nil {
			return err
		}
		return server.ListenAndServe(ctx)
	})
}
