package admin

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/faqdesk/internal/faq"
	apperrors "github.com/louisbranch/faqdesk/internal/platform/errors"
	routepath "github.com/louisbranch/faqdesk/internal/services/admin/routepath"
	"github.com/louisbranch/faqdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

const (
	paramCategory = "category"
	paramSearch   = "q"
	paramStatus   = "status"
	paramMessage  = "message"
	paramAlert    = "alert"
	paramConfirm  = "confirm"
)

// filterState is the category tab plus the search and status filter. It
// travels in the query string of GETs and as hidden fields of every form.
type filterState struct {
	Category faq.Category
	Search   string
	Status   faq.Status
}

func readFilter(values url.Values) filterState {
	category, ok := faq.ParseCategory(values.Get(paramCategory))
	if !ok {
		category = faq.DefaultCategory()
	}
	return filterState{
		Category: category,
		Search:   values.Get(paramSearch),
		Status:   faq.ParseStatus(values.Get(paramStatus)),
	}
}

func (f filterState) query() url.Values {
	values := url.Values{}
	values.Set(paramCategory, f.Category.String())
	if f.Search != "" {
		values.Set(paramSearch, f.Search)
	}
	if f.Status != "" && f.Status != faq.StatusAll {
		values.Set(paramStatus, string(f.Status))
	}
	return values
}

func (f filterState) filter() faq.Filter {
	return faq.Filter{Search: f.Search, Status: f.Status}
}

// url appends the filter to path.
func (f filterState) url(path string) string {
	return path + "?" + f.query().Encode()
}

// pageURL is the page URL carrying an optional notice.
func (f filterState) pageURL(messageText string, alertText string) string {
	values := f.query()
	if messageText = strings.TrimSpace(messageText); messageText != "" {
		values.Set(paramMessage, messageText)
	}
	if alertText = strings.TrimSpace(alertText); alertText != "" {
		values.Set(paramAlert, alertText)
	}
	return routepath.Faqs + "?" + values.Encode()
}

func (f filterState) hidden() []templates.HiddenField {
	fields := []templates.HiddenField{{Name: paramCategory, Value: f.Category.String()}}
	if f.Search != "" {
		fields = append(fields, templates.HiddenField{Name: paramSearch, Value: f.Search})
	}
	if f.Status != "" && f.Status != faq.StatusAll {
		fields = append(fields, templates.HiddenField{Name: paramStatus, Value: string(f.Status)})
	}
	return fields
}

// formValues parses a mutation body. Query values are merged in so the
// filter survives either way.
func formValues(r *http.Request) (url.Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.Form, nil
}

func draftFromForm(values url.Values) faq.Draft {
	return faq.Draft{
		Question: values.Get("question"),
		Answer:   values.Get("answer"),
		IsActive: values.Get("isActive") == "true",
	}
}

// validationMessage localizes a draft validation error.
func validationMessage(loc *message.Printer, err error) string {
	switch {
	case errors.Is(err, faq.ErrQuestionRequired):
		return loc.Sprintf("errors.question_required")
	case errors.Is(err, faq.ErrAnswerRequired):
		return loc.Sprintf("errors.answer_required")
	default:
		return loc.Sprintf("errors.invalid_request")
	}
}

// backendMessage is the text shown for a failed backend call. Rejections show
// the server's message, or fallbackKey when it is empty; everything else is a
// connection problem.
func backendMessage(loc *message.Printer, err error, fallbackKey string) string {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeBackendRejected:
		if msg := strings.TrimSpace(apperrors.MessageOf(err)); msg != "" {
			return msg
		}
		return loc.Sprintf(fallbackKey)
	case apperrors.CodeBackendUnavailable:
		return loc.Sprintf("errors.backend_unavailable")
	default:
		return loc.Sprintf(fallbackKey)
	}
}

// backendStatus is the response status for a re-rendered failed save.
func backendStatus(err error) int {
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown {
		return http.StatusBadGateway
	}
	return code.HTTPStatus()
}
