package service

import (
	"context"
	"testing"
	"time"

	perr "fieldnotes/internal/platform/errors"
	"fieldnotes/internal/platform/testkit"
	"fieldnotes/internal/services/api/feed/domain"
	"fieldnotes/internal/services/api/feed/repo"
)

type fakeRepo struct {
	imgSent    []repo.RowImage
	imgCreated []repo.RowImage
	noteSent   []repo.RowNote
	noteCreat  []repo.RowNote

	imgSentErr error

	gotCenter string
	gotStart  time.Time
	gotEnd    time.Time
}

func (f *fakeRepo) ImagesSentIn(_ context.Context, centerID string, start, end time.Time) ([]repo.RowImage, error) {
	f.gotCenter, f.gotStart, f.gotEnd = centerID, start, end
	return f.imgSent, f.imgSentErr
}

func (f *fakeRepo) ImagesCreatedIn(_ context.Context, _ string, _, _ time.Time) ([]repo.RowImage, error) {
	return f.imgCreated, nil
}

func (f *fakeRepo) NotesSentIn(_ context.Context, _ string, _, _ time.Time) ([]repo.RowNote, error) {
	return f.noteSent, nil
}

func (f *fakeRepo) NotesCreatedIn(_ context.Context, _ string, _, _ time.Time) ([]repo.RowNote, error) {
	return f.noteCreat, nil
}

func newSvc(r repo.Repo) *Svc { return &Svc{Repo: r} }

func TestActivity_BadPeriod(t *testing.T) {
	t.Parallel()

	s := newSvc(&fakeRepo{})
	_, err := s.Activity(context.Background(), domain.ActivityInput{CenterID: "c1", Period: "2025-13"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestActivity_WindowAndCenterPassed(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{}
	s := newSvc(fr)

	got, err := s.Activity(context.Background(), domain.ActivityInput{CenterID: "c1", Period: "2025-02"})
	if err != nil {
		t.Fatalf("Activity: %v", err)
	}
	if fr.gotCenter != "c1" {
		t.Fatalf("centre not passed, got %q", fr.gotCenter)
	}
	if got.WindowStart != "2025-02-01" || got.WindowEnd != "2025-03-01" {
		t.Fatalf("unexpected window %q..%q", got.WindowStart, got.WindowEnd)
	}
	if fr.gotEnd.Sub(fr.gotStart) != 28*24*time.Hour {
		t.Fatalf("unexpected window span %v", fr.gotEnd.Sub(fr.gotStart))
	}
	if len(got.Images) != 0 || len(got.Notes) != 0 {
		t.Fatalf("expected empty feed, got %+v", got)
	}
}

func TestActivity_MergesPairsByEffectiveTime(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{
		imgSent: []repo.RowImage{
			{ID: "i2", URL: "u2", Sent: "2025-02-10T08:00:00Z", Created: "2025-02-20T00:00:00Z"},
		},
		imgCreated: []repo.RowImage{
			{ID: "i1", URL: "u1", Created: "2025-02-03T12:00:00Z"},
		},
		noteSent: []repo.RowNote{
			{ID: "n1", Body: "late", Sent: "2025-02-28T09:00:00Z", Created: "2025-02-28T09:30:00Z"},
		},
		noteCreat: []repo.RowNote{
			{ID: "n2", Body: "early", Created: "2025-02-01T00:00:00Z"},
		},
	}
	s := newSvc(fr)

	got, err := s.Activity(context.Background(), domain.ActivityInput{CenterID: "c1", Period: "2025-02"})
	if err != nil {
		t.Fatalf("Activity: %v", err)
	}
	if len(got.Images) != 2 || got.Images[0].ID != "i1" || got.Images[1].ID != "i2" {
		t.Fatalf("images out of order: %+v", got.Images)
	}
	if len(got.Notes) != 2 || got.Notes[0].ID != "n2" || got.Notes[1].ID != "n1" {
		t.Fatalf("notes out of order: %+v", got.Notes)
	}
	if got.Images[1].EffectiveAt == nil || !got.Images[1].EffectiveAt.Equal(time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("sent time should drive effective time, got %v", got.Images[1].EffectiveAt)
	}
}

func TestActivity_UntimestampedWinsOnCollision(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{
		noteSent: []repo.RowNote{
			{ID: "n1", Body: "stale copy", Sent: "2025-02-05T00:00:00Z", Created: "2025-02-05T00:00:00Z"},
		},
		noteCreat: []repo.RowNote{
			{ID: "n1", Body: "fresh copy", Created: "2025-02-06T00:00:00Z"},
		},
	}
	s := newSvc(fr)

	got, err := s.Activity(context.Background(), domain.ActivityInput{CenterID: "c1", Period: "2025-02"})
	if err != nil {
		t.Fatalf("Activity: %v", err)
	}
	if len(got.Notes) != 1 || got.Notes[0].Body != "fresh copy" {
		t.Fatalf("collision should keep the untimestamped row, got %+v", got.Notes)
	}
}

func TestActivity_MalformedTimesSortLastWithNilEffective(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{
		imgSent: []repo.RowImage{
			{ID: "bad", URL: "u", Sent: "soon", Created: "later"},
			{ID: "ok", URL: "u", Sent: "2025-02-02T00:00:00Z", Created: "2025-02-02T00:00:00Z"},
		},
	}
	s := newSvc(fr)

	got, err := s.Activity(context.Background(), domain.ActivityInput{CenterID: "c1", Period: "2025-02"})
	if err != nil {
		t.Fatalf("Activity: %v", err)
	}
	if len(got.Images) != 2 || got.Images[0].ID != "ok" || got.Images[1].ID != "bad" {
		t.Fatalf("malformed rows should sort last: %+v", got.Images)
	}
	if got.Images[1].EffectiveAt != nil {
		t.Fatalf("malformed timestamps must yield nil effective time, got %v", got.Images[1].EffectiveAt)
	}
}

func TestActivity_QueryErrorFailsCall(t *testing.T) {
	t.Parallel()

	s := newSvc(&fakeRepo{imgSentErr: perr.Internalf("boom")})
	_, err := s.Activity(context.Background(), domain.ActivityInput{CenterID: "c1", Period: "2025-02"})
	if err == nil {
		t.Fatal("expected error when one query fails")
	}
}

func TestNew_PanicsOnNilDeps(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() { New(nil, nil) })
}
