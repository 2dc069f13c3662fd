package admin

import (
	"context"
	"log"
	"time"

	apperrors "github.com/louisbranch/faqdesk/internal/platform/errors"
	"github.com/louisbranch/faqdesk/internal/platform/timeouts"
	"github.com/louisbranch/faqdesk/internal/services/admin/storage"
	"github.com/louisbranch/faqdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

const activityTimeLayout = "2006-01-02 15:04"

// recordActivity stores the outcome of a backend call. Store failures are
// logged and never change the response.
func (h *Handler) recordActivity(ctx context.Context, activity storage.Activity, callErr error) {
	if h.activity == nil {
		return
	}
	activity.Success = callErr == nil
	if callErr != nil {
		activity.Message = apperrors.MessageOf(callErr)
		if activity.Message == "" {
			activity.Message = callErr.Error()
		}
	}
	activity.OccurredAt = h.now().UTC()

	// The request may already be cancelled when the backend call timed out.
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.ActivityWrite)
	defer cancel()
	if err := h.activity.PutActivity(storeCtx, activity); err != nil {
		log.Printf("record %s activity: %v", activity.Action, err)
	}
}

func (h *Handler) recentActivityRows(ctx context.Context, loc *message.Printer) []templates.ActivityRow {
	entries, err := h.activity.ListRecentActivity(ctx, activityListLimit)
	if err != nil {
		log.Printf("list activity: %v", err)
		return nil
	}
	rows := make([]templates.ActivityRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, activityRowView(loc, entry))
	}
	return rows
}

func activityRowView(loc *message.Printer, entry storage.Activity) templates.ActivityRow {
	row := templates.ActivityRow{
		Action:    loc.Sprintf("activity.action." + string(entry.Action)),
		Summary:   entry.Summary,
		Failed:    !entry.Success,
		When:      entry.OccurredAt.UTC().Format(time.RFC3339),
		WhenLabel: entry.OccurredAt.Local().Format(activityTimeLayout),
	}
	if entry.Category != "" {
		row.Category = loc.Sprintf("faqs.category." + entry.Category)
	}
	if entry.Success {
		row.Outcome = loc.Sprintf("activity.outcome.ok")
		if entry.Action == storage.ActionSeed && entry.Message != "" {
			row.Outcome += ": " + entry.Message
		}
		return row
	}
	row.Outcome = loc.Sprintf("activity.outcome.failed")
	if entry.Message != "" {
		row.Outcome += ": " + entry.Message
	}
	return row
}
