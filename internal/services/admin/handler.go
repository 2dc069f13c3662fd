package admin

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/faqdesk/internal/faq"
	"github.com/louisbranch/faqdesk/internal/services/admin/i18n"
	faqsmodule "github.com/louisbranch/faqdesk/internal/services/admin/module/faqs"
	routepath "github.com/louisbranch/faqdesk/internal/services/admin/routepath"
	"github.com/louisbranch/faqdesk/internal/services/admin/storage"
	"github.com/louisbranch/faqdesk/internal/services/admin/templates"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// activityListLimit caps the entries shown in the recent changes panel.
	activityListLimit = 10
)

// FAQClient is the backend contract used by the page.
type FAQClient interface {
	List(ctx context.Context, category faq.Category) ([]faq.Record, error)
	Create(ctx context.Context, request faq.CreateRequest) (string, error)
	Update(ctx context.Context, record faq.Record) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	Seed(ctx context.Context) (string, error)
}

// Handler routes FAQ admin requests.
type Handler struct {
	client   FAQClient
	activity storage.ActivityStore
	now      func() time.Time
}

// NewHandler builds the HTTP handler for the admin server. activity may be
// nil, which hides the recent changes panel.
func NewHandler(client FAQClient, activity storage.ActivityStore) http.Handler {
	return newHandler(client, activity).routes()
}

func newHandler(client FAQClient, activity storage.ActivityStore) *Handler {
	return &Handler{
		client:   client,
		activity: activity,
		now:      time.Now,
	}
}

// localizer resolves the request language and persists an explicit choice.
func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag
}

func (h *Handler) pageContext(tag language.Tag, loc *message.Printer, r *http.Request) templates.PageContext {
	options := i18n.LanguageOptions(tag, r.URL.Path, r.URL.RawQuery)
	languages := make([]templates.LanguageOption, 0, len(options))
	for _, option := range options {
		languages = append(languages, templates.LanguageOption{
			Tag:    option.Tag,
			Label:  option.Label,
			URL:    option.URL,
			Active: option.Active,
		})
	}
	return templates.PageContext{
		Lang:         tag.String(),
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		Languages:    languages,
	}
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(routepath.Root, h.handleRoot)
	faqsmodule.RegisterRoutes(mux, newFaqsModuleService(h))
	return mux
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	target := routepath.Faqs
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("errors.invalid_request"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("errors.invalid_request"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("errors.invalid_request"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("errors.invalid_request"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
