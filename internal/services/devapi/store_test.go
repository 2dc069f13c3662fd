package devapi

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/louisbranch/faqdesk/internal/faq"
	apperrors "github.com/louisbranch/faqdesk/internal/platform/errors"
)

// newTestStore returns a store with deterministic ids and a clock that
// advances one second per record.
func newTestStore() *Store {
	store := NewStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := 0
	store.now = func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Second)
	}
	ids := 0
	store.newID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}
	return store
}

func TestStoreCreateAssignsIDAndOrder(t *testing.T) {
	store := newTestStore()

	first := store.Create(faq.CreateRequest{Question: " Q1 ", Answer: "A1", Category: faq.CategoryMassage, IsActive: true}, nil)
	second := store.Create(faq.CreateRequest{Question: "Q2", Answer: "A2", Category: faq.CategoryMassage}, nil)
	other := store.Create(faq.CreateRequest{Question: "R1", Answer: "A", Category: faq.CategoryRental}, nil)

	if first.ID != "id-1" || first.Order != 1 || first.Question != "Q1" || first.CreatedAt == nil {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if second.Order != 2 {
		t.Fatalf("second order = %d, want 2", second.Order)
	}
	if other.Order != 1 {
		t.Fatalf("rental order = %d, want 1", other.Order)
	}
}

func TestStoreListSortsAndFilters(t *testing.T) {
	store := newTestStore()
	a := store.Create(faq.CreateRequest{Question: "A", Answer: "a", Category: faq.CategoryMassage, IsActive: true}, nil)
	b := store.Create(faq.CreateRequest{Question: "B", Answer: "b", Category: faq.CategoryMassage}, nil)
	store.Create(faq.CreateRequest{Question: "R", Answer: "r", Category: faq.CategoryRental, IsActive: true}, nil)

	move := func(order int) {
		t.Helper()
		if _, err := store.Update(a.ID, faq.Record{Question: "A", Answer: "a", Category: faq.CategoryMassage, IsActive: true, Order: order}); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	move(3)
	list := store.List(faq.CategoryMassage, false)
	if len(list) != 2 || list[0].ID != b.ID || list[1].ID != a.ID {
		t.Fatalf("unexpected order: %+v", list)
	}

	// Equal orders fall back to creation time.
	move(2)
	list = store.List(faq.CategoryMassage, false)
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != b.ID {
		t.Fatalf("unexpected tie order: %+v", list)
	}

	active := store.List(faq.CategoryMassage, true)
	if len(active) != 1 || active[0].ID != a.ID {
		t.Fatalf("unexpected active list: %+v", active)
	}

	if all := store.List("", false); len(all) != 3 {
		t.Fatalf("all = %d records, want 3", len(all))
	}
}

func TestStoreUpdateKeepsOwnedFields(t *testing.T) {
	store := newTestStore()
	created := store.Create(faq.CreateRequest{Question: "Q", Answer: "A", Category: faq.CategoryMassage, IsActive: true}, nil)

	updated, err := store.Update(created.ID, faq.Record{
		ID:           "ignored",
		Question:     " Q2 ",
		Answer:       "A2",
		Category:     faq.CategoryRental,
		Translations: &faq.Translations{RU: &faq.Text{Question: "В", Answer: "О"}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID || updated.Order != created.Order || !updated.CreatedAt.Equal(*created.CreatedAt) {
		t.Fatalf("owned fields changed: %+v", updated)
	}
	if updated.Question != "Q2" || updated.IsActive || updated.Category != faq.CategoryRental || updated.Translations.RU == nil {
		t.Fatalf("unexpected updated fields: %+v", updated)
	}
}

func TestStoreMissingRecords(t *testing.T) {
	store := newTestStore()
	if _, err := store.Update("nope", faq.Record{}); !errors.Is(err, apperrors.New(apperrors.CodeNotFound, "")) {
		t.Fatalf("update err = %v, want not found", err)
	}
	if err := store.Delete("nope"); apperrors.CodeOf(err) != apperrors.CodeNotFound {
		t.Fatalf("delete err = %v, want not found", err)
	}
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore()
	created := store.Create(faq.CreateRequest{Question: "Q", Answer: "A", Category: faq.CategoryMassage}, nil)
	if err := store.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if list := store.List(faq.CategoryMassage, false); len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}

func TestStoreSeedIsIdempotent(t *testing.T) {
	store := newTestStore()
	entries := DemoEntries()

	if added := store.Seed(entries); added != len(entries) {
		t.Fatalf("first seed added %d, want %d", added, len(entries))
	}
	if added := store.Seed(entries); added != 0 {
		t.Fatalf("second seed added %d, want 0", added)
	}

	massage := store.List(faq.CategoryMassage, false)
	if len(massage) == 0 || massage[0].Translations == nil || len(massage[0].Translations.Variants()) != 3 {
		t.Fatalf("expected translated massage demo records, got %+v", massage)
	}
	for i, record := range massage {
		if record.Order != i+1 || !record.IsActive {
			t.Fatalf("unexpected seeded record %d: %+v", i, record)
		}
	}
}

func TestDemoEntriesCoverBothCategories(t *testing.T) {
	seen := map[faq.Category]int{}
	for _, entry := range DemoEntries() {
		if entry.Question == "" || entry.Answer == "" || !entry.Category.Valid() {
			t.Fatalf("invalid demo entry: %+v", entry)
		}
		seen[entry.Category]++
	}
	for _, category := range faq.Categories() {
		if seen[category] == 0 {
			t.Fatalf("no demo entries for %s", category)
		}
	}
}
