// Package domain holds transport-facing DTOs for monthly reports
package domain

import (
	"fieldnotes/internal/core/highlight"
	feeddom "fieldnotes/internal/services/api/feed/domain"
)

// ListInput selects the generated reports for one centre
type ListInput struct {
	CenterID string `json:"center_id" validate:"required,uuid"`
}

// MonthInput selects one centre and reporting month
type MonthInput struct {
	CenterID string `json:"center_id" validate:"required,uuid"`
	Period   string `json:"period" validate:"required,datetime=2006-01"`
}

// Report is one stored monthly report row
type Report struct {
	ID          string `json:"id"`
	Period      string `json:"period"`
	Body        string `json:"body"`
	GeneratedAt string `json:"generated_at"`
}

// AnnotatedNote is a feed note plus its child-alias mentions.
// Body is NFC-normalized so the span offsets index into it directly
type AnnotatedNote struct {
	feeddom.Note
	Mentions []highlight.Span `json:"mentions,omitempty"`
}

// MonthView is the assembled month page: the stored report when one exists,
// the reconciled activity for the window, and the notes annotated with
// alias mentions
type MonthView struct {
	CenterID string  `json:"center_id"`
	Period   string  `json:"period"`
	Report   *Report `json:"report,omitempty"`

	WindowStart string          `json:"window_start"`
	WindowEnd   string          `json:"window_end"`
	Images      []feeddom.Image `json:"images"`
	Notes       []AnnotatedNote `json:"notes"`
}
