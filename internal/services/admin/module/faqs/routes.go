package faqs

import (
	"net/http"
	"strings"

	sharedpath "github.com/louisbranch/faqdesk/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/faqdesk/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/faqdesk/internal/services/shared/route"
)

// Service defines FAQ route handlers consumed by this route module.
type Service interface {
	HandleFaqsPage(w http.ResponseWriter, r *http.Request)
	HandleFaqsTable(w http.ResponseWriter, r *http.Request)
	HandleFaqNew(w http.ResponseWriter, r *http.Request)
	HandleFaqCreate(w http.ResponseWriter, r *http.Request)
	HandleFaqsSeed(w http.ResponseWriter, r *http.Request)
	HandleFaqEdit(w http.ResponseWriter, r *http.Request, id string)
	HandleFaqUpdate(w http.ResponseWriter, r *http.Request, id string)
	HandleFaqDeleteConfirm(w http.ResponseWriter, r *http.Request, id string)
	HandleFaqDelete(w http.ResponseWriter, r *http.Request, id string)
	HandleFaqToggle(w http.ResponseWriter, r *http.Request, id string)
}

// RegisterRoutes wires FAQ routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Faqs, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			service.HandleFaqsPage(w, r)
		case http.MethodPost:
			service.HandleFaqCreate(w, r)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
	})
	mux.HandleFunc(routepath.FaqsTable, onlyRead(service.HandleFaqsTable))
	mux.HandleFunc(routepath.FaqsNew, onlyRead(service.HandleFaqNew))
	mux.HandleFunc(routepath.FaqsSeed, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		service.HandleFaqsSeed(w, r)
	})
	mux.HandleFunc(routepath.FaqsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleFaqPath(w, r, service)
	})
}

// HandleFaqPath parses record subroutes and dispatches to service handlers.
func HandleFaqPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.EscapedPath(), routepath.FaqsPrefix)
	parts := sharedpath.SplitPathParts(path)
	switch {
	case len(parts) == 1:
		if r.Method != http.MethodPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		service.HandleFaqUpdate(w, r, parts[0])
	case len(parts) == 2 && parts[1] == routepath.SegmentEdit:
		if !isRead(r) {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		service.HandleFaqEdit(w, r, parts[0])
	case len(parts) == 2 && parts[1] == routepath.SegmentDelete:
		switch {
		case isRead(r):
			service.HandleFaqDeleteConfirm(w, r, parts[0])
		case r.Method == http.MethodPost:
			service.HandleFaqDelete(w, r, parts[0])
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
	case len(parts) == 2 && parts[1] == routepath.SegmentToggle:
		if r.Method != http.MethodPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		service.HandleFaqToggle(w, r, parts[0])
	default:
		http.NotFound(w, r)
	}
}

func onlyRead(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isRead(r) {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		next(w, r)
	}
}

func isRead(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
