package admin

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/faqdesk/internal/faq"
	apperrors "github.com/louisbranch/faqdesk/internal/platform/errors"
	"github.com/louisbranch/faqdesk/internal/services/admin/i18n"
	routepath "github.com/louisbranch/faqdesk/internal/services/admin/routepath"
	"github.com/louisbranch/faqdesk/internal/services/admin/storage"
	"github.com/louisbranch/faqdesk/internal/services/admin/templates"
	"github.com/louisbranch/faqdesk/internal/services/shared/htmx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// faqsPage is one render of the management page.
type faqsPage struct {
	filter  filterState
	records []faq.Record
	loadErr error
	view    templates.FaqsPageView
}

// loadFaqsPage fetches the category and builds the view for filter.
func (h *Handler) loadFaqsPage(ctx context.Context, loc *message.Printer, tag language.Tag, filter filterState) faqsPage {
	page := faqsPage{filter: filter}
	records, err := h.client.List(ctx, filter.Category)
	if err != nil {
		log.Printf("list faqs %s: %v", filter.Category, err)
		page.loadErr = err
		records = nil
	}
	page.records = records
	page.view = h.buildFaqsView(ctx, loc, tag, page)
	return page
}

func (h *Handler) buildFaqsView(ctx context.Context, loc *message.Printer, tag language.Tag, page faqsPage) templates.FaqsPageView {
	filter := page.filter
	view := templates.FaqsPageView{
		Category:      filter.Category.String(),
		CategoryLabel: loc.Sprintf("faqs.category." + filter.Category.String()),
		Search:        filter.Search,
		Status:        string(filter.Status),
		Hidden:        filter.hidden(),
		TableURL:      routepath.FaqsTable,
		NewURL:        filter.url(routepath.FaqsNew),
		SeedURL:       routepath.FaqsSeed,
		ShowActivity:  h.activity != nil,
	}

	for _, category := range faq.Categories() {
		tabFilter := filterState{Category: category, Status: faq.StatusAll}
		view.Tabs = append(view.Tabs, templates.CategoryTab{
			Value:  category.String(),
			Label:  loc.Sprintf("faqs.category." + category.String()),
			URL:    tabFilter.url(routepath.Faqs),
			Active: category == filter.Category,
		})
	}
	for _, status := range faq.Statuses() {
		view.Statuses = append(view.Statuses, templates.StatusOption{
			Value:    string(status),
			Label:    loc.Sprintf("faqs.filter.status." + string(status)),
			Selected: status == filter.Status,
		})
	}

	if page.loadErr != nil {
		view.LoadError = loc.Sprintf("errors.load_failed")
		if apperrors.CodeOf(page.loadErr) == apperrors.CodeBackendUnavailable {
			view.LoadError = loc.Sprintf("errors.backend_unavailable")
		}
	}

	counts := faq.Summarize(page.records)
	view.Summary = templates.SummaryView{Total: counts.Total, Active: counts.Active, Inactive: counts.Inactive}
	for _, record := range faq.Apply(page.records, filter.filter()) {
		view.Rows = append(view.Rows, faqRowView(tag, filter, record))
	}

	if h.activity != nil {
		view.Activity = h.recentActivityRows(ctx, loc)
	}
	return view
}

func faqRowView(tag language.Tag, filter filterState, record faq.Record) templates.FaqRow {
	row := templates.FaqRow{
		ID:        record.ID,
		Order:     record.Order,
		Question:  record.Question,
		Answer:    record.Answer,
		Active:    record.IsActive,
		EditURL:   filter.url(routepath.FaqEdit(record.ID)),
		DeleteURL: filter.url(routepath.FaqDelete(record.ID)),
		ToggleURL: routepath.FaqToggle(record.ID),
	}
	for _, variant := range record.Translations.Variants() {
		row.Translations = append(row.Translations, templates.TranslationBadge{
			Code:  variant.Tag.String(),
			Label: i18n.LanguageName(tag, variant.Tag),
		})
	}
	return row
}

// renderFaqs writes the page, or its <main> content for HTMX requests.
func (h *Handler) renderFaqs(w http.ResponseWriter, r *http.Request, loc *message.Printer, tag language.Tag, view templates.FaqsPageView, status int) {
	page := h.pageContext(tag, loc, r)
	htmx.RenderPageStatus(w, r, status, templates.FaqsContent(view, page), templates.FaqsPage(view, page), loc.Sprintf("layout.title"))
}

func noticesFromQuery(view *templates.FaqsPageView, r *http.Request) {
	query := r.URL.Query()
	view.Message = strings.TrimSpace(query.Get(paramMessage))
	view.Alert = strings.TrimSpace(query.Get(paramAlert))
}

func (h *Handler) handleFaqsPage(w http.ResponseWriter, r *http.Request) {
	loc, tag := h.localizer(w, r)
	page := h.loadFaqsPage(r.Context(), loc, tag, readFilter(r.URL.Query()))
	noticesFromQuery(&page.view, r)
	h.renderFaqs(w, r, loc, tag, page.view, http.StatusOK)
}

// handleFaqsTable serves the table for the search form, with the toolbar
// actions swapped out of band. The page URL for the filter is pushed so a
// reload or shared link keeps the search.
func (h *Handler) handleFaqsTable(w http.ResponseWriter, r *http.Request) {
	loc, tag := h.localizer(w, r)
	filter := readFilter(r.URL.Query())
	page := h.loadFaqsPage(r.Context(), loc, tag, filter)
	htmx.PushURL(w, r, filter.url(routepath.Faqs))
	component := templates.FaqsTableFragment(page.view, h.pageContext(tag, loc, r))
	htmx.RenderPage(w, r, component, nil, "")
}

func (h *Handler) handleFaqNew(w http.ResponseWriter, r *http.Request) {
	loc, tag := h.localizer(w, r)
	filter := readFilter(r.URL.Query())
	page := h.loadFaqsPage(r.Context(), loc, tag, filter)
	draft := faq.NewDraft()
	page.view.Form = &templates.FormOverlay{
		ActionURL: routepath.Faqs,
		CancelURL: filter.url(routepath.Faqs),
		Question:  draft.Question,
		Answer:    draft.Answer,
		IsActive:  draft.IsActive,
	}
	h.renderFaqs(w, r, loc, tag, page.view, http.StatusOK)
}

func (h *Handler) handleFaqCreate(w http.ResponseWriter, r *http.Request) {
	loc, tag := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	values, err := formValues(r)
	if err != nil {
		http.Error(w, loc.Sprintf("errors.invalid_request"), http.StatusBadRequest)
		return
	}
	filter := readFilter(values)
	draft := draftFromForm(values)
	form := &templates.FormOverlay{
		ActionURL: routepath.Faqs,
		CancelURL: filter.url(routepath.Faqs),
		Question:  draft.Question,
		Answer:    draft.Answer,
		IsActive:  draft.IsActive,
	}

	if err := draft.Validate(); err != nil {
		page := h.loadFaqsPage(r.Context(), loc, tag, filter)
		form.Error = validationMessage(loc, err)
		page.view.Form = form
		h.renderFaqs(w, r, loc, tag, page.view, http.StatusUnprocessableEntity)
		return
	}

	request := draft.CreateRequest(filter.Category)
	_, err = h.client.Create(r.Context(), request)
	h.recordActivity(r.Context(), storage.Activity{
		Action:   storage.ActionCreate,
		Category: filter.Category.String(),
		Summary:  request.Question,
	}, err)
	if err != nil {
		log.Printf("create faq: %v", err)
		page := h.loadFaqsPage(r.Context(), loc, tag, filter)
		form.Error = backendMessage(loc, err, "errors.save_failed")
		page.view.Form = form
		h.renderFaqs(w, r, loc, tag, page.view, backendStatus(err))
		return
	}
	htmx.Redirect(w, r, filter.pageURL(loc.Sprintf("faqs.message.created"), ""))
}

func (h *Handler) handleFaqEdit(w http.ResponseWriter, r *http.Request, id string) {
	loc, tag := h.localizer(w, r)
	filter := readFilter(r.URL.Query())
	page := h.loadFaqsPage(r.Context(), loc, tag, filter)
	if page.loadErr != nil {
		h.renderFaqs(w, r, loc, tag, page.view, http.StatusOK)
		return
	}
	record, ok := faq.Find(page.records, id)
	if !ok {
		page.view.Alert = loc.Sprintf("errors.not_found")
		h.renderFaqs(w, r, loc, tag, page.view, http.StatusNotFound)
		return
	}
	draft := faq.DraftFrom(record)
	page.view.Form = &templates.FormOverlay{
		Editing:   true,
		ActionURL: routepath.Faq(record.ID),
		CancelURL: filter.url(routepath.Faqs),
		Question:  draft.Question,
		Answer:    draft.Answer,
		IsActive:  draft.IsActive,
	}
	h.renderFaqs(w, r, loc, tag, page.view, http.StatusOK)
}

func (h *Handler) handleFaqUpdate(w http.ResponseWriter, r *http.Request, id string) {
	loc, tag := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	values, err := formValues(r)
	if err != nil {
		http.Error(w, loc.Sprintf("errors.invalid_request"), http.StatusBadRequest)
		return
	}
	filter := readFilter(values)
	draft := draftFromForm(values)
	form := &templates.FormOverlay{
		Editing:   true,
		ActionURL: routepath.Faq(id),
		CancelURL: filter.url(routepath.Faqs),
		Question:  draft.Question,
		Answer:    draft.Answer,
		IsActive:  draft.IsActive,
	}

	page := h.loadFaqsPage(r.Context(), loc, tag, filter)
	if page.loadErr != nil {
		form.Error = page.view.LoadError
		page.view.Form = form
		h.renderFaqs(w, r, loc, tag, page.view, backendStatus(page.loadErr))
		return
	}
	record, ok := faq.Find(page.records, id)
	if !ok {
		page.view.Alert = loc.Sprintf("errors.not_found")
		h.renderFaqs(w, r, loc, tag, page.view, http.StatusNotFound)
		return
	}
	if err := draft.Validate(); err != nil {
		form.Error = validationMessage(loc, err)
		page.view.Form = form
		h.renderFaqs(w, r, loc, tag, page.view, http.StatusUnprocessableEntity)
		return
	}

	updated := record.WithDraft(draft)
	_, err = h.client.Update(r.Context(), updated)
	h.recordActivity(r.Context(), storage.Activity{
		Action:   storage.ActionUpdate,
		RecordID: updated.ID,
		Category: updated.Category.String(),
		Summary:  updated.Question,
	}, err)
	if err != nil {
		log.Printf("update faq %s: %v", updated.ID, err)
		form.Error = backendMessage(loc, err, "errors.save_failed")
		page.view.Form = form
		h.renderFaqs(w, r, loc, tag, page.view, backendStatus(err))
		return
	}
	htmx.Redirect(w, r, filter.pageURL(loc.Sprintf("faqs.message.updated"), ""))
}

func (h *Handler) handleFaqDeleteConfirm(w http.ResponseWriter, r *http.Request, id string) {
	loc, tag := h.localizer(w, r)
	filter := readFilter(r.URL.Query())
	page := h.loadFaqsPage(r.Context(), loc, tag, filter)
	if page.loadErr != nil {
		h.renderFaqs(w, r, loc, tag, page.view, http.StatusOK)
		return
	}
	record, ok := faq.Find(page.records, id)
	if !ok {
		page.view.Alert = loc.Sprintf("errors.not_found")
		h.renderFaqs(w, r, loc, tag, page.view, http.StatusNotFound)
		return
	}
	page.view.Delete = &templates.DeleteOverlay{
		ActionURL: routepath.FaqDelete(record.ID),
		CancelURL: filter.url(routepath.Faqs),
		Question:  record.Question,
	}
	h.renderFaqs(w, r, loc, tag, page.view, http.StatusOK)
}

func (h *Handler) handleFaqDelete(w http.ResponseWriter, r *http.Request, id string) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	values, err := formValues(r)
	if err != nil {
		http.Error(w, loc.Sprintf("errors.invalid_request"), http.StatusBadRequest)
		return
	}
	filter := readFilter(values)
	if values.Get(paramConfirm) != "yes" {
		htmx.Redirect(w, r, filter.pageURL("", ""))
		return
	}

	id = strings.TrimSpace(id)
	_, err = h.client.Delete(r.Context(), id)
	h.recordActivity(r.Context(), storage.Activity{
		Action:   storage.ActionDelete,
		RecordID: id,
		Category: filter.Category.String(),
	}, err)
	if err != nil {
		log.Printf("delete faq %s: %v", id, err)
		htmx.Redirect(w, r, filter.pageURL("", backendMessage(loc, err, "errors.delete_failed")))
		return
	}
	htmx.Redirect(w, r, filter.pageURL(loc.Sprintf("faqs.message.deleted"), ""))
}

// handleFaqToggle flips the active flag. Failures are logged and the page
// reloads without a notice.
func (h *Handler) handleFaqToggle(w http.ResponseWriter, r *http.Request, id string) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	values, err := formValues(r)
	if err != nil {
		http.Error(w, loc.Sprintf("errors.invalid_request"), http.StatusBadRequest)
		return
	}
	filter := readFilter(values)
	target := filter.pageURL("", "")

	records, err := h.client.List(r.Context(), filter.Category)
	if err != nil {
		log.Printf("toggle faq %s: list: %v", id, err)
		htmx.Redirect(w, r, target)
		return
	}
	record, ok := faq.Find(records, id)
	if !ok {
		log.Printf("toggle faq %s: not found in %s", id, filter.Category)
		htmx.Redirect(w, r, target)
		return
	}

	toggled := record.Toggled()
	_, err = h.client.Update(r.Context(), toggled)
	h.recordActivity(r.Context(), storage.Activity{
		Action:   storage.ActionToggle,
		RecordID: toggled.ID,
		Category: toggled.Category.String(),
		Summary:  toggled.Question,
	}, err)
	if err != nil {
		log.Printf("toggle faq %s: %v", toggled.ID, err)
	}
	htmx.Redirect(w, r, target)
}

func (h *Handler) handleFaqsSeed(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	values, err := formValues(r)
	if err != nil {
		http.Error(w, loc.Sprintf("errors.invalid_request"), http.StatusBadRequest)
		return
	}
	filter := readFilter(values)

	serverMessage, err := h.client.Seed(r.Context())
	h.recordActivity(r.Context(), storage.Activity{
		Action:  storage.ActionSeed,
		Message: serverMessage,
	}, err)
	if err != nil {
		log.Printf("seed faqs: %v", err)
		htmx.Redirect(w, r, filter.pageURL("", backendMessage(loc, err, "errors.seed_failed")))
		return
	}
	if strings.TrimSpace(serverMessage) == "" {
		serverMessage = loc.Sprintf("faqs.message.seeded")
	}
	htmx.Redirect(w, r, filter.pageURL(serverMessage, ""))
}
