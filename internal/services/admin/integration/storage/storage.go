// Package storage opens the admin activity store from configuration.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	adminstorage "github.com/louisbranch/faqdesk/internal/services/admin/storage"
	adminsqlite "github.com/louisbranch/faqdesk/internal/services/admin/storage/sqlite"
)

// OpenActivityStore opens the SQLite activity store at path, creating its
// parent directory when needed. A blank path disables the activity log and
// returns a nil store.
func OpenActivityStore(path string) (adminstorage.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}
