package storage

import (
	"context"
	"time"
)

// Action names a mutation issued from the FAQ page.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionToggle Action = "toggle"
	ActionSeed   Action = "seed"
)

// Activity is one recorded mutation attempt.
type Activity struct {
	ID       int64
	Action   Action
	RecordID string
	Category string
	// Summary is a short human description, usually the question text.
	Summary string
	Success bool
	// Message is the backend message or the error text on failure.
	Message    string
	OccurredAt time.Time
}

// ActivityStore persists mutation attempts for the recent changes panel.
type ActivityStore interface {
	PutActivity(ctx context.Context, activity Activity) error
	// ListRecentActivity returns up to limit entries, newest first.
	ListRecentActivity(ctx context.Context, limit int) ([]Activity, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	ActivityStore
	Close() error
}
