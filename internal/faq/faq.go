package faq

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Category partitions FAQ records into content domains.
type Category string

const (
	// CategoryMassage holds questions about massage services.
	CategoryMassage Category = "massage"
	// CategoryRental holds questions about rentals.
	CategoryRental Category = "rental"
)

var categories = []Category{CategoryMassage, CategoryRental}

// Categories returns the fixed categories in tab order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// DefaultCategory is the tab selected when none is requested.
func DefaultCategory() Category {
	return CategoryMassage
}

// ParseCategory resolves a category name, ignoring case and surrounding space.
func ParseCategory(value string) (Category, bool) {
	category := Category(strings.ToLower(strings.TrimSpace(value)))
	if !category.Valid() {
		return "", false
	}
	return category, true
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	return c == CategoryMassage || c == CategoryRental
}

func (c Category) String() string {
	return string(c)
}

// Text is one question/answer pair.
type Text struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Empty reports whether both sides are blank.
func (t Text) Empty() bool {
	return strings.TrimSpace(t.Question) == "" && strings.TrimSpace(t.Answer) == ""
}

// Translations holds the optional language variants of a record.
type Translations struct {
	TH *Text `json:"th,omitempty"`
	ZH *Text `json:"zh,omitempty"`
	RU *Text `json:"ru,omitempty"`
}

// Variant is a present translation paired with its language.
type Variant struct {
	Tag  language.Tag
	Text Text
}

// TranslationLanguages returns the fixed translation languages in display order.
func TranslationLanguages() []language.Tag {
	return []language.Tag{language.Thai, language.Chinese, language.Russian}
}

// Variants returns the non-empty translations in display order.
func (t *Translations) Variants() []Variant {
	if t == nil {
		return nil
	}
	slots := []*Text{t.TH, t.ZH, t.RU}
	tags := TranslationLanguages()
	out := make([]Variant, 0, len(slots))
	for i, slot := range slots {
		if slot == nil || slot.Empty() {
			continue
		}
		out = append(out, Variant{Tag: tags[i], Text: *slot})
	}
	return out
}

// Record is one FAQ entry as returned by the backend.
type Record struct {
	ID           string        `json:"_id"`
	Question     string        `json:"question"`
	Answer       string        `json:"answer"`
	Category     Category      `json:"category"`
	IsActive     bool          `json:"isActive"`
	Order        int           `json:"order"`
	Translations *Translations `json:"translations,omitempty"`
	CreatedAt    *time.Time    `json:"createdAt,omitempty"`
}

// Toggled returns a copy of r with the active flag inverted and every other
// field preserved, ready to be sent as a full update body.
func (r Record) Toggled() Record {
	r.IsActive = !r.IsActive
	return r
}

// WithDraft returns a copy of r carrying the draft's editable fields.
func (r Record) WithDraft(d Draft) Record {
	d = d.Normalize()
	r.Question = d.Question
	r.Answer = d.Answer
	r.IsActive = d.IsActive
	return r
}

// Find returns the record with the given identifier.
func Find(records []Record, id string) (Record, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, false
	}
	for _, record := range records {
		if record.ID == id {
			return record, true
		}
	}
	return Record{}, false
}
