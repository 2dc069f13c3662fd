package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/louisbranch/faqdesk/internal/faq"
	apperrors "github.com/louisbranch/faqdesk/internal/platform/errors"
	"github.com/louisbranch/faqdesk/internal/services/admin/storage"
	"golang.org/x/net/html"
)

// fakeFAQClient is an in-memory backend that records every call.
type fakeFAQClient struct {
	mu      sync.Mutex
	records []faq.Record
	nextID  int
	calls   []string

	listErr   error
	createErr error
	updateErr error
	deleteErr error
	seedErr   error

	seedMessage string
	lastCreate  *faq.CreateRequest
	lastUpdate  *faq.Record
	lastDelete  string
}

func newFakeFAQClient(records ...faq.Record) *fakeFAQClient {
	return &fakeFAQClient{records: records, nextID: len(records) + 1}
}

func (c *fakeFAQClient) List(_ context.Context, category faq.Category) ([]faq.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, "list")
	if c.listErr != nil {
		return nil, c.listErr
	}
	out := []faq.Record{}
	for _, record := range c.records {
		if record.Category == category {
			out = append(out, record)
		}
	}
	return out, nil
}

func (c *fakeFAQClient) Create(_ context.Context, request faq.CreateRequest) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, "create")
	c.lastCreate = &request
	if c.createErr != nil {
		return "", c.createErr
	}
	order := 0
	for _, record := range c.records {
		if record.Category == request.Category && record.Order > order {
			order = record.Order
		}
	}
	c.records = append(c.records, faq.Record{
		ID:       fmt.Sprintf("faq-%d", c.nextID),
		Question: request.Question,
		Answer:   request.Answer,
		Category: request.Category,
		IsActive: request.IsActive,
		Order:    order + 1,
	})
	c.nextID++
	return "FAQ created", nil
}

func (c *fakeFAQClient) Update(_ context.Context, record faq.Record) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, "update")
	c.lastUpdate = &record
	if c.updateErr != nil {
		return "", c.updateErr
	}
	for i := range c.records {
		if c.records[i].ID == record.ID {
			c.records[i] = record
			return "FAQ updated", nil
		}
	}
	return "", &apperrors.Error{Code: apperrors.CodeBackendRejected, Message: "FAQ not found"}
}

func (c *fakeFAQClient) Delete(_ context.Context, id string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, "delete")
	c.lastDelete = id
	if c.deleteErr != nil {
		return "", c.deleteErr
	}
	for i := range c.records {
		if c.records[i].ID == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return "FAQ deleted", nil
		}
	}
	return "", &apperrors.Error{Code: apperrors.CodeBackendRejected, Message: "FAQ not found"}
}

func (c *fakeFAQClient) Seed(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, "seed")
	if c.seedErr != nil {
		return "", c.seedErr
	}
	c.records = append(c.records, faq.Record{
		ID:       fmt.Sprintf("faq-%d", c.nextID),
		Question: "Seeded question?",
		Answer:   "Seeded answer.",
		Category: faq.CategoryMassage,
		IsActive: true,
		Order:    99,
	})
	c.nextID++
	return c.seedMessage, nil
}

// count reports how many calls of op were made.
func (c *fakeFAQClient) count(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, call := range c.calls {
		if call == op {
			n++
		}
	}
	return n
}

// mutations reports every call other than list.
func (c *fakeFAQClient) mutations() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, call := range c.calls {
		if call != "list" {
			out = append(out, call)
		}
	}
	return out
}

func (c *fakeFAQClient) record(id string) (faq.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return faq.Find(c.records, id)
}

// fakeActivityStore keeps activity in memory, newest last.
type fakeActivityStore struct {
	mu      sync.Mutex
	entries []storage.Activity
	putErr  error
	listErr error
}

func (s *fakeActivityStore) PutActivity(_ context.Context, activity storage.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	activity.ID = int64(len(s.entries) + 1)
	s.entries = append(s.entries, activity)
	return nil
}

func (s *fakeActivityStore) ListRecentActivity(_ context.Context, limit int) ([]storage.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]storage.Activity, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

func (s *fakeActivityStore) snapshot() []storage.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]storage.Activity, len(s.entries))
	copy(out, s.entries)
	return out
}

var errStoreDown = errors.New("store down")

func scenarioRecords() []faq.Record {
	return []faq.Record{
		{ID: "faq-1", Question: "A?", Answer: "x", Category: faq.CategoryMassage, IsActive: true, Order: 1,
			Translations: &faq.Translations{TH: &faq.Text{Question: "ถาม", Answer: "ตอบ"}}},
		{ID: "faq-2", Question: "B?", Answer: "y", Category: faq.CategoryMassage, IsActive: false, Order: 2},
		{ID: "faq-3", Question: "Helmet included?", Answer: "Yes", Category: faq.CategoryRental, IsActive: true, Order: 1},
	}
}

// rowIDs returns the data-faq-id of every table row in body.
func rowIDs(body string) []string {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil
	}
	var ids []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			if id := attrValue(n, "data-faq-id"); id != "" {
				ids = append(ids, id)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return ids
}

// rowClass returns the class attribute of the row for id.
func rowClass(body string, id string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", false
	}
	var class string
	var found bool
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found {
			return
		}
		if n.Type == html.ElementNode && n.Data == "tr" && attrValue(n, "data-faq-id") == id {
			class, found = attrValue(n, "class"), true
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return class, found
}

func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}
