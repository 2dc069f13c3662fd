package faq

import (
	"errors"
	"strings"
)

var (
	// ErrQuestionRequired reports a blank question in a draft.
	ErrQuestionRequired = errors.New("question is required")
	// ErrAnswerRequired reports a blank answer in a draft.
	ErrAnswerRequired = errors.New("answer is required")
)

// Draft is the editable subset of a record held by the form overlay.
type Draft struct {
	Question string
	Answer   string
	IsActive bool
}

// NewDraft returns the blank draft used when creating a record.
func NewDraft() Draft {
	return Draft{IsActive: true}
}

// DraftFrom pre-fills a draft from an existing record.
func DraftFrom(r Record) Draft {
	return Draft{
		Question: r.Question,
		Answer:   r.Answer,
		IsActive: r.IsActive,
	}
}

// Normalize trims surrounding whitespace from the text fields.
func (d Draft) Normalize() Draft {
	d.Question = strings.TrimSpace(d.Question)
	d.Answer = strings.TrimSpace(d.Answer)
	return d
}

// Validate checks that both question and answer are non-blank.
func (d Draft) Validate() error {
	d = d.Normalize()
	if d.Question == "" {
		return ErrQuestionRequired
	}
	if d.Answer == "" {
		return ErrAnswerRequired
	}
	return nil
}

// CreateRequest is the body sent to create a record.
type CreateRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	IsActive bool     `json:"isActive"`
	Category Category `json:"category"`
}

// CreateRequest builds the create body for the given category.
func (d Draft) CreateRequest(category Category) CreateRequest {
	d = d.Normalize()
	return CreateRequest{
		Question: d.Question,
		Answer:   d.Answer,
		IsActive: d.IsActive,
		Category: category,
	}
}
