// Package seed parses seed command flags and asks the FAQ backend to load its
// demo data.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/louisbranch/faqdesk/internal/faq"
	entrypoint "github.com/louisbranch/faqdesk/internal/platform/cmd"
	"github.com/louisbranch/faqdesk/internal/services/admin/integration/faqapi"
)

// Config holds seed command configuration.
type Config struct {
	APIBaseURL string        `env:"FAQDESK_API_URL" envDefault:"http://localhost:8090/api"`
	Timeout    time.Duration `env:"FAQDESK_API_TIMEOUT" envDefault:"5s"`
	Verbose    bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.APIBaseURL, "api-url", cfg.APIBaseURL, "FAQ backend base URL")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Backend request timeout")
	fs.BoolVar(&cfg.Verbose, "v", false, "Print per-category counts after seeding")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds the backend and reports its message to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	client, err := faqapi.New(cfg.APIBaseURL, faqapi.WithTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	message, err := client.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", client.BaseURL(), err)
	}
	if message == "" {
		message = "Seeded demo FAQs"
	}
	fmt.Fprintln(out, message)

	if !cfg.Verbose {
		return nil
	}
	for _, category := range faq.Categories() {
		records, err := client.List(ctx, category)
		if err != nil {
			return fmt.Errorf("list %s: %w", category, err)
		}
		summary := faq.Summarize(records)
		fmt.Fprintf(out, "  %-8s %d total (%d active, %d inactive)\n", category, summary.Total, summary.Active, summary.Inactive)
	}
	return nil
}
