package devapi

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/faqdesk/internal/faq"
	apperrors "github.com/louisbranch/faqdesk/internal/platform/errors"
)

// Store holds FAQ records in memory.
type Store struct {
	mu      sync.RWMutex
	records map[string]faq.Record
	now     func() time.Time
	newID   func() string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]faq.Record),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// List returns the records of category sorted by order then creation time.
// A blank category lists every record.
func (s *Store) List(category faq.Category, activeOnly bool) []faq.Record {
	s.mu.RLock()
	out := make([]faq.Record, 0, len(s.records))
	for _, record := range s.records {
		if category != "" && record.Category != category {
			continue
		}
		if activeOnly && !record.IsActive {
			continue
		}
		out = append(out, record)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		ci, cj := createdAt(out[i]), createdAt(out[j])
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Create stores a new record and returns it with its assigned id and order.
func (s *Store) Create(request faq.CreateRequest, translations *faq.Translations) faq.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(request, translations)
}

func (s *Store) insertLocked(request faq.CreateRequest, translations *faq.Translations) faq.Record {
	created := s.now().UTC()
	record := faq.Record{
		ID:           s.newID(),
		Question:     strings.TrimSpace(request.Question),
		Answer:       strings.TrimSpace(request.Answer),
		Category:     request.Category,
		IsActive:     request.IsActive,
		Order:        s.maxOrderLocked(request.Category) + 1,
		Translations: translations,
		CreatedAt:    &created,
	}
	s.records[record.ID] = record
	return record
}

// Update replaces the editable fields of the record with id. The identifier
// and creation time are kept; a non-positive order keeps the current one.
func (s *Store) Update(id string, record faq.Record) (faq.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.records[id]
	if !ok {
		return faq.Record{}, apperrors.New(apperrors.CodeNotFound, "FAQ not found")
	}
	current.Question = strings.TrimSpace(record.Question)
	current.Answer = strings.TrimSpace(record.Answer)
	current.Category = record.Category
	current.IsActive = record.IsActive
	if record.Order > 0 {
		current.Order = record.Order
	}
	current.Translations = record.Translations
	s.records[current.ID] = current
	return current, nil
}

// Delete removes the record with id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return apperrors.New(apperrors.CodeNotFound, "FAQ not found")
	}
	delete(s.records, id)
	return nil
}

// Seed inserts the demo records whose question is not already present in
// their category and reports how many were added.
func (s *Store) Seed(entries []SeedEntry) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := 0
	for _, entry := range entries {
		if s.hasQuestionLocked(entry.Category, entry.Question) {
			continue
		}
		s.insertLocked(faq.CreateRequest{
			Question: entry.Question,
			Answer:   entry.Answer,
			IsActive: true,
			Category: entry.Category,
		}, entry.Translations)
		added++
	}
	return added
}

func (s *Store) maxOrderLocked(category faq.Category) int {
	maxOrder := 0
	for _, record := range s.records {
		if record.Category == category && record.Order > maxOrder {
			maxOrder = record.Order
		}
	}
	return maxOrder
}

func (s *Store) hasQuestionLocked(category faq.Category, question string) bool {
	question = strings.TrimSpace(question)
	for _, record := range s.records {
		if record.Category == category && strings.EqualFold(record.Question, question) {
			return true
		}
	}
	return false
}

func createdAt(record faq.Record) time.Time {
	if record.CreatedAt == nil {
		return time.Time{}
	}
	return *record.CreatedAt
}
