package admin

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/louisbranch/faqdesk/internal/services/admin/integration/faqapi"
	"github.com/louisbranch/faqdesk/internal/services/devapi"
)

// newDevAPIHandler wires the admin page to a real development API over HTTP.
func newDevAPIHandler(t *testing.T) (http.Handler, *fakeActivityStore) {
	t.Helper()
	backend := httptest.NewServer(adaptor.FiberApp(devapi.NewApp("/api", nil)))
	t.Cleanup(backend.Close)

	client, err := faqapi.New(backend.URL + "/api")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	activity := &fakeActivityStore{}
	return NewHandler(client, activity), activity
}

func TestDevAPIRoundTrip(t *testing.T) {
	handler, activity := newDevAPIHandler(t)

	location := redirectTarget(t, post(t, handler, "/faqs/seed", url.Values{"category": {"rental"}}))
	if got := location.Query().Get("message"); got == "" {
		t.Fatal("expected seed message")
	}
	rental := rowIDs(get(t, handler, location.RequestURI()).Body.String())
	if len(rental) == 0 {
		t.Fatal("expected seeded rental rows")
	}

	// Create, then find the new row by searching for it.
	redirectTarget(t, post(t, handler, "/faqs", url.Values{
		"category": {"rental"},
		"question": {"Can I extend my rental?"},
		"answer":   {"Yes, message us a day before it ends."},
		"isActive": {"true"},
	}))
	found := rowIDs(get(t, handler, "/faqs?category=rental&q=EXTEND").Body.String())
	if len(found) != 1 {
		t.Fatalf("search rows = %v, want one", found)
	}
	id := found[0]

	// Toggle hides the record from the active filter.
	redirectTarget(t, post(t, handler, "/faqs/"+id+"/toggle", url.Values{"category": {"rental"}}))
	body := get(t, handler, "/faqs?category=rental&status=inactive").Body.String()
	if ids := rowIDs(body); !reflect.DeepEqual(ids, []string{id}) {
		t.Fatalf("inactive rows = %v, want [%s]", ids, id)
	}

	// Unconfirmed delete leaves it in place; confirmed delete removes it.
	redirectTarget(t, post(t, handler, "/faqs/"+id+"/delete", url.Values{"category": {"rental"}}))
	if ids := rowIDs(get(t, handler, "/faqs?category=rental&status=inactive").Body.String()); len(ids) != 1 {
		t.Fatalf("unconfirmed delete removed the record: %v", ids)
	}
	redirectTarget(t, post(t, handler, "/faqs/"+id+"/delete", url.Values{"category": {"rental"}, "confirm": {"yes"}}))
	if ids := rowIDs(get(t, handler, "/faqs?category=rental&status=inactive").Body.String()); len(ids) != 0 {
		t.Fatalf("confirmed delete kept the record: %v", ids)
	}

	entries := activity.snapshot()
	if len(entries) != 4 {
		t.Fatalf("activity entries = %d, want 4", len(entries))
	}
	for _, entry := range entries {
		if !entry.Success {
			t.Fatalf("unexpected failed activity: %+v", entry)
		}
	}
}

func TestDevAPIUpdateUnknownRecord(t *testing.T) {
	handler, _ := newDevAPIHandler(t)

	rec := post(t, handler, "/faqs/missing-id", url.Values{"category": {"massage"}, "question": {"Q"}, "answer": {"A"}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	assertContains(t, rec.Body.String(), "That FAQ no longer exists.")
}
