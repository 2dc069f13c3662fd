package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/faqdesk/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/faqdesk/internal/services/admin/storage"
	"github.com/louisbranch/faqdesk/internal/services/admin/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const (
	// timeFormat is fixed-width so stored timestamps sort lexically.
	timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

	// maxSummaryLen bounds stored summaries; questions can be long.
	maxSummaryLen = 200
)

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutActivity records one mutation attempt.
func (s *Store) PutActivity(ctx context.Context, activity storage.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(string(activity.Action)) == "" {
		return fmt.Errorf("activity action is required")
	}
	if activity.OccurredAt.IsZero() {
		activity.OccurredAt = time.Now().UTC()
	}

	success := 0
	if activity.Success {
		success = 1
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO activity (action, record_id, category, summary, success, message, occurred_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(activity.Action),
		strings.TrimSpace(activity.RecordID),
		strings.TrimSpace(activity.Category),
		truncate(strings.TrimSpace(activity.Summary), maxSummaryLen),
		success,
		strings.TrimSpace(activity.Message),
		activity.OccurredAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListRecentActivity returns up to limit entries, newest first.
func (s *Store) ListRecentActivity(ctx context.Context, limit int) ([]storage.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return []storage.Activity{}, nil
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, action, record_id, category, summary, success, message, occurred_at
FROM activity
ORDER BY occurred_at DESC, id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	out := make([]storage.Activity, 0, limit)
	for rows.Next() {
		var (
			activity   storage.Activity
			action     string
			success    int
			occurredAt string
		)
		if err := rows.Scan(&activity.ID, &action, &activity.RecordID, &activity.Category, &activity.Summary, &success, &activity.Message, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activity.Action = storage.Action(action)
		activity.Success = success == 1
		parsed, err := time.Parse(timeFormat, occurredAt)
		if err != nil {
			return nil, fmt.Errorf("parse activity time %q: %w", occurredAt, err)
		}
		activity.OccurredAt = parsed
		out = append(out, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return out, nil
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}

var _ storage.Store = (*Store)(nil)
