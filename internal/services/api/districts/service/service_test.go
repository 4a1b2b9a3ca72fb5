package service

import (
	"context"
	"testing"

	perr "fieldnotes/internal/platform/errors"
	"fieldnotes/internal/platform/testkit"
	"fieldnotes/internal/services/api/districts/domain"
	"fieldnotes/internal/services/api/districts/repo"
)

type fakeRepo struct {
	list    []repo.RowDistrict
	listErr error
	get     repo.RowDetail
	getErr  error

	gotName string
	gotID   string
}

func (f *fakeRepo) List(_ context.Context, name string) ([]repo.RowDistrict, error) {
	f.gotName = name
	return f.list, f.listErr
}

func (f *fakeRepo) Get(_ context.Context, id string) (repo.RowDetail, error) {
	f.gotID = id
	return f.get, f.getErr
}

func newSvc(t *testing.T, r repo.Repo) *Svc {
	t.Helper()
	return &Svc{Repo: r}
}

func TestList_MapsRows(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{list: []repo.RowDistrict{
		{ID: "d1", Name: "East", State: "TS", CenterCount: 3, CreatedAt: "2025-01-01T00:00:00Z"},
	}}
	s := newSvc(t, fr)

	got, err := s.List(context.Background(), domain.ListInput{Name: "Ea"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if fr.gotName != "Ea" {
		t.Fatalf("filter not passed, got %q", fr.gotName)
	}
	if len(got) != 1 || got[0].CenterCount != 3 || got[0].Name != "East" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestList_EmptyIsNotError(t *testing.T) {
	t.Parallel()

	s := newSvc(t, &fakeRepo{})
	got, err := s.List(context.Background(), domain.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestGet_NotFoundPassesThrough(t *testing.T) {
	t.Parallel()

	s := newSvc(t, &fakeRepo{getErr: perr.ErrNotFound})
	_, err := s.Get(context.Background(), domain.GetInput{DistrictID: "missing"})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGet_MapsDetail(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{get: repo.RowDetail{
		RowDistrict:   repo.RowDistrict{ID: "d1", Name: "East", State: "TS", CenterCount: 5},
		ActiveCenters: 4,
	}}
	s := newSvc(t, fr)

	got, err := s.Get(context.Background(), domain.GetInput{DistrictID: "d1"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fr.gotID != "d1" {
		t.Fatalf("id not passed, got %q", fr.gotID)
	}
	if got.ActiveCenters != 4 || got.CenterCount != 5 {
		t.Fatalf("unexpected detail %+v", got)
	}
}

func TestNew_PanicsOnNilDeps(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() { New(nil, nil) })
}
