package templates

const (
	// TableTargetID is the element swapped by filter requests.
	TableTargetID = "faq-table"
	// TabsID groups tab requests so a newer tab click aborts an older one.
	TabsID = "category-tabs"
	// ActionsID wraps the toolbar controls that carry the filter state.
	ActionsID = "faq-actions"
)

var tableHeadings = []string{
	"faqs.table.order",
	"faqs.table.question",
	"faqs.table.answer",
	"faqs.table.status",
	"faqs.table.translations",
	"faqs.table.actions",
}

// FaqsPageView provides data for the FAQ management page.
type FaqsPageView struct {
	// Category is the selected category value.
	Category string
	// CategoryLabel is the localized name of the selected category.
	CategoryLabel string
	Tabs          []CategoryTab
	// Search is the raw search string echoed back into the search box.
	Search   string
	Status   string
	Statuses []StatusOption
	// Hidden carries the filter state through mutation forms.
	Hidden  []HiddenField
	Summary SummaryView
	Rows    []FaqRow
	// LoadError is shown with the table when the list could not be fetched.
	LoadError string
	// Message is a success notice shown above the table.
	Message string
	// Alert is an error notice shown above the table.
	Alert string

	TableURL string
	NewURL   string
	SeedURL  string

	Form   *FormOverlay
	Delete *DeleteOverlay

	// ShowActivity is false when no activity store is configured.
	ShowActivity bool
	Activity     []ActivityRow
}

// CategoryTab is one category tab.
type CategoryTab struct {
	Value  string
	Label  string
	URL    string
	Active bool
}

// StatusOption is one entry of the status filter select.
type StatusOption struct {
	Value    string
	Label    string
	Selected bool
}

// HiddenField is a name/value pair rendered as a hidden input.
type HiddenField struct {
	Name  string
	Value string
}

// SummaryView holds counts over the unfiltered category list.
type SummaryView struct {
	Total    int
	Active   int
	Inactive int
}

// FaqRow represents a row in the FAQ table.
type FaqRow struct {
	ID           string
	Order        int
	Question     string
	Answer       string
	Active       bool
	Translations []TranslationBadge
	EditURL      string
	DeleteURL    string
	ToggleURL    string
}

func (r FaqRow) status() string {
	if r.Active {
		return "active"
	}
	return "inactive"
}

func (r FaqRow) toggleKey() string {
	if r.Active {
		return "faqs.action.deactivate"
	}
	return "faqs.action.activate"
}

// TranslationBadge marks one present translation.
type TranslationBadge struct {
	// Code is the BCP 47 tag, for example "th".
	Code string
	// Label is the language name in the UI language.
	Label string
}

// FormOverlay is the open create/edit overlay.
type FormOverlay struct {
	Editing   bool
	ActionURL string
	CancelURL string
	Question  string
	Answer    string
	IsActive  bool
	// Error is the inline validation or save failure message.
	Error string
}

func (f FormOverlay) titleKey() string {
	if f.Editing {
		return "faqs.form.edit_title"
	}
	return "faqs.form.create_title"
}

// DeleteOverlay is the open delete confirmation.
type DeleteOverlay struct {
	ActionURL string
	CancelURL string
	Question  string
}

// ActivityRow is one entry of the recent changes panel.
type ActivityRow struct {
	// Action is the localized action name.
	Action   string
	Category string
	Summary  string
	Outcome  string
	Failed   bool
	// When is the RFC 3339 timestamp.
	When string
	// WhenLabel is the display form of When.
	WhenLabel string
}
