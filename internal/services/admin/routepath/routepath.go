package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	Faqs       = "/faqs"
	FaqsTable  = "/faqs/table"
	FaqsNew    = "/faqs/new"
	FaqsSeed   = "/faqs/seed"
	FaqsPrefix = "/faqs/"
)

// Record subroute segments under FaqsPrefix.
const (
	SegmentEdit   = "edit"
	SegmentDelete = "delete"
	SegmentToggle = "toggle"
)

func Faq(id string) string {
	return Faqs + "/" + escapeSegment(id)
}

func FaqEdit(id string) string {
	return Faq(id) + "/" + SegmentEdit
}

func FaqDelete(id string) string {
	return Faq(id) + "/" + SegmentDelete
}

func FaqToggle(id string) string {
	return Faq(id) + "/" + SegmentToggle
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
