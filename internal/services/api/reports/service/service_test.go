package service

import (
	"context"
	"testing"

	perr "fieldnotes/internal/platform/errors"
	"fieldnotes/internal/platform/testkit"
	feeddom "fieldnotes/internal/services/api/feed/domain"
	"fieldnotes/internal/services/api/reports/domain"
	"fieldnotes/internal/services/api/reports/repo"
)

type fakeRepo struct {
	list     []repo.RowReport
	listErr  error
	month    repo.RowReport
	monthErr error

	gotCenter string
	gotPeriod string
}

func (f *fakeRepo) ListByCenter(_ context.Context, centerID string) ([]repo.RowReport, error) {
	f.gotCenter = centerID
	return f.list, f.listErr
}

func (f *fakeRepo) ForMonth(_ context.Context, centerID, period string) (repo.RowReport, error) {
	f.gotCenter, f.gotPeriod = centerID, period
	return f.month, f.monthErr
}

type fakeAssembler struct {
	activity feeddom.Activity
	err      error
}

func (f *fakeAssembler) Assemble(_ context.Context, centerID, period string) (feeddom.Activity, error) {
	if f.err != nil {
		return feeddom.Activity{}, f.err
	}
	out := f.activity
	out.CenterID, out.Period = centerID, period
	return out, nil
}

type fakeAliases struct {
	aliases []string
	err     error
}

func (f *fakeAliases) ActiveAliases(_ context.Context, _ string) ([]string, error) {
	return f.aliases, f.err
}

func newSvc(r repo.Repo, a *fakeAssembler, al *fakeAliases) *Svc {
	return &Svc{Repo: r, Assembler: a, Aliases: al}
}

func TestList_NewestFirstPassThrough(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{list: []repo.RowReport{
		{ID: "r2", Period: "2025-02", Body: "feb"},
		{ID: "r1", Period: "2025-01", Body: "jan"},
	}}
	s := newSvc(fr, &fakeAssembler{}, &fakeAliases{})

	got, err := s.List(context.Background(), domain.ListInput{CenterID: "c1"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if fr.gotCenter != "c1" {
		t.Fatalf("centre not passed, got %q", fr.gotCenter)
	}
	if len(got) != 2 || got[0].Period != "2025-02" || got[1].Period != "2025-01" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestMonth_MissingReportIsNotError(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{monthErr: perr.ErrNotFound}
	s := newSvc(fr, &fakeAssembler{}, &fakeAliases{})

	got, err := s.Month(context.Background(), domain.MonthInput{CenterID: "c1", Period: "2025-02"})
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if got.Report != nil {
		t.Fatalf("expected nil report, got %+v", got.Report)
	}
}

func TestMonth_MapsReportAndAnnotatesNotes(t *testing.T) {
	t.Parallel()

	fa := &fakeAssembler{activity: feeddom.Activity{
		WindowStart: "2025-02-01",
		WindowEnd:   "2025-03-01",
		Notes: []feeddom.Note{
			{ID: "n1", Body: "Ravi built a kite with Anita today"},
		},
	}}
	fr := &fakeRepo{month: repo.RowReport{ID: "r1", Period: "2025-02", Body: "summary"}}
	s := newSvc(fr, fa, &fakeAliases{aliases: []string{"Ravi", "Anita"}})

	got, err := s.Month(context.Background(), domain.MonthInput{CenterID: "c1", Period: "2025-02"})
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if got.Report == nil || got.Report.ID != "r1" {
		t.Fatalf("report not mapped: %+v", got.Report)
	}
	if got.WindowStart != "2025-02-01" || got.WindowEnd != "2025-03-01" {
		t.Fatalf("window not carried over: %+v", got)
	}
	if len(got.Notes) != 1 {
		t.Fatalf("expected one note, got %+v", got.Notes)
	}
	spans := got.Notes[0].Mentions
	if len(spans) != 2 || spans[0].Alias != "Ravi" || spans[1].Alias != "Anita" {
		t.Fatalf("unexpected mentions %+v", spans)
	}
	body := got.Notes[0].Body
	if body[spans[0].Start:spans[0].End] != "Ravi" {
		t.Fatalf("span offsets do not index the note body")
	}
}

func TestMonth_NoAliasesNoMentions(t *testing.T) {
	t.Parallel()

	fa := &fakeAssembler{activity: feeddom.Activity{
		Notes: []feeddom.Note{{ID: "n1", Body: "quiet week"}},
	}}
	s := newSvc(&fakeRepo{monthErr: perr.ErrNotFound}, fa, &fakeAliases{})

	got, err := s.Month(context.Background(), domain.MonthInput{CenterID: "c1", Period: "2025-02"})
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if len(got.Notes) != 1 || got.Notes[0].Mentions != nil {
		t.Fatalf("expected no mentions, got %+v", got.Notes)
	}
}

func TestMonth_AssemblerErrorPassesThrough(t *testing.T) {
	t.Parallel()

	fa := &fakeAssembler{err: perr.InvalidArgf("bad period")}
	s := newSvc(&fakeRepo{}, fa, &fakeAliases{})

	_, err := s.Month(context.Background(), domain.MonthInput{CenterID: "c1", Period: "nope"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestNew_PanicsOnNilDeps(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() { New(nil, nil, nil, nil) })
}
