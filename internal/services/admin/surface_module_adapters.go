package admin

import (
	"net/http"

	faqsmodule "github.com/louisbranch/faqdesk/internal/services/admin/module/faqs"
)

type faqsModuleService struct {
	handler *Handler
}

func newFaqsModuleService(h *Handler) faqsmodule.Service {
	if h == nil {
		return nil
	}
	return faqsModuleService{handler: h}
}

func (s faqsModuleService) HandleFaqsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleFaqsPage(w, r)
}

func (s faqsModuleService) HandleFaqsTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleFaqsTable(w, r)
}

func (s faqsModuleService) HandleFaqNew(w http.ResponseWriter, r *http.Request) {
	s.handler.handleFaqNew(w, r)
}

func (s faqsModuleService) HandleFaqCreate(w http.ResponseWriter, r *http.Request) {
	s.handler.handleFaqCreate(w, r)
}

func (s faqsModuleService) HandleFaqsSeed(w http.ResponseWriter, r *http.Request) {
	s.handler.handleFaqsSeed(w, r)
}

func (s faqsModuleService) HandleFaqEdit(w http.ResponseWriter, r *http.Request, id string) {
	s.handler.handleFaqEdit(w, r, id)
}

func (s faqsModuleService) HandleFaqUpdate(w http.ResponseWriter, r *http.Request, id string) {
	s.handler.handleFaqUpdate(w, r, id)
}

func (s faqsModuleService) HandleFaqDeleteConfirm(w http.ResponseWriter, r *http.Request, id string) {
	s.handler.handleFaqDeleteConfirm(w, r, id)
}

func (s faqsModuleService) HandleFaqDelete(w http.ResponseWriter, r *http.Request, id string) {
	s.handler.handleFaqDelete(w, r, id)
}

func (s faqsModuleService) HandleFaqToggle(w http.ResponseWriter, r *http.Request, id string) {
	s.handler.handleFaqToggle(w, r, id)
}
