// Package service assembles monthly report listings and month views
package service

import (
	"context"

	"fieldnotes/internal/core/highlight"
	"fieldnotes/internal/modkit/repokit"
	perr "fieldnotes/internal/platform/errors"
	feeddom "fieldnotes/internal/services/api/feed/domain"
	"fieldnotes/internal/services/api/reports/domain"
	"fieldnotes/internal/services/api/reports/repo"
	rosterdom "fieldnotes/internal/services/api/roster/domain"
)

// Service defines the service contract for reports
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo      repo.Repo
	Assembler feeddom.AssemblerPort
	Aliases   rosterdom.AliasesPort

	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new reports service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	assembler feeddom.AssemblerPort,
	aliases rosterdom.AliasesPort,
) *Svc {
	if db == nil {
		panic("reports.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reports.Service requires a non nil Repo binder")
	}
	if assembler == nil {
		panic("reports.Service requires the feed Assembler port")
	}
	if aliases == nil {
		panic("reports.Service requires the roster Aliases port")
	}
	return &Svc{
		Repo:      binder.Bind(db),
		Assembler: assembler,
		Aliases:   aliases,
		binder:    binder,
		db:        db,
	}
}

// List returns every generated report for the centre, newest period first
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Report, error) {
	rows, err := s.Repo.ListByCenter(ctx, in.CenterID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Report, 0, len(rows))
	for _, r := range rows {
		out = append(out, toReport(r))
	}
	return out, nil
}

// Month assembles the month page for one centre: the stored report when one
// exists (a missing report is not an error), the reconciled activity for the
// window, and the notes annotated with child-alias mentions
func (s *Svc) Month(ctx context.Context, in domain.MonthInput) (domain.MonthView, error) {
	activity, err := s.Assembler.Assemble(ctx, in.CenterID, in.Period)
	if err != nil {
		return domain.MonthView{}, err
	}

	var report *domain.Report
	row, err := s.Repo.ForMonth(ctx, in.CenterID, in.Period)
	switch {
	case err == nil:
		r := toReport(row)
		report = &r
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		// no report generated for this month yet
	default:
		return domain.MonthView{}, err
	}

	aliases, err := s.Aliases.ActiveAliases(ctx, in.CenterID)
	if err != nil {
		return domain.MonthView{}, err
	}
	matcher := highlight.Pattern(aliases)

	notes := make([]domain.AnnotatedNote, 0, len(activity.Notes))
	for _, n := range activity.Notes {
		n.Body = highlight.Normalize(n.Body)
		notes = append(notes, domain.AnnotatedNote{
			Note:     n,
			Mentions: highlight.Spans(n.Body, matcher),
		})
	}

	return domain.MonthView{
		CenterID:    in.CenterID,
		Period:      in.Period,
		Report:      report,
		WindowStart: activity.WindowStart,
		WindowEnd:   activity.WindowEnd,
		Images:      activity.Images,
		Notes:       notes,
	}, nil
}

func toReport(r repo.RowReport) domain.Report {
	return domain.Report{
		ID:          r.ID,
		Period:      r.Period,
		Body:        r.Body,
		GeneratedAt: r.GeneratedAt,
	}
}
