package service

import (
	"context"
	"testing"

	perr "fieldnotes/internal/platform/errors"
	"fieldnotes/internal/platform/testkit"
	"fieldnotes/internal/services/api/roster/domain"
	"fieldnotes/internal/services/api/roster/repo"
)

type fakeRepo struct {
	people   []repo.RowPerson
	partners []repo.RowPartner
	children []repo.RowChild
	aliases  []string
	err      error

	gotCenter string
	gotActive bool
}

func (f *fakeRepo) Facilitators(_ context.Context, centerID string, activeOnly bool) ([]repo.RowPerson, error) {
	f.gotCenter, f.gotActive = centerID, activeOnly
	return f.people, f.err
}

func (f *fakeRepo) Volunteers(_ context.Context, centerID string, activeOnly bool) ([]repo.RowPerson, error) {
	f.gotCenter, f.gotActive = centerID, activeOnly
	return f.people, f.err
}

func (f *fakeRepo) Partners(_ context.Context, centerID string) ([]repo.RowPartner, error) {
	f.gotCenter = centerID
	return f.partners, f.err
}

func (f *fakeRepo) Children(_ context.Context, centerID string, activeOnly bool) ([]repo.RowChild, error) {
	f.gotCenter, f.gotActive = centerID, activeOnly
	return f.children, f.err
}

func (f *fakeRepo) ActiveAliases(_ context.Context, centerID string) ([]string, error) {
	f.gotCenter = centerID
	return f.aliases, f.err
}

func newSvc(r repo.Repo) *Svc { return &Svc{Repo: r} }

func TestFacilitators_MapsRowsAndPassesFilters(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{people: []repo.RowPerson{
		{ID: "f1", Name: "Meena", Phone: "555-0101", JoinedOn: "2024-06-01", Active: true},
	}}
	s := newSvc(fr)

	got, err := s.Facilitators(context.Background(), domain.RosterInput{CenterID: "c1", ActiveOnly: true})
	if err != nil {
		t.Fatalf("Facilitators: %v", err)
	}
	if fr.gotCenter != "c1" || !fr.gotActive {
		t.Fatalf("filters not passed: centre=%q active=%v", fr.gotCenter, fr.gotActive)
	}
	if len(got) != 1 || got[0].Name != "Meena" || !got[0].Active {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestVolunteers_EmptyIsNotError(t *testing.T) {
	t.Parallel()

	s := newSvc(&fakeRepo{})
	got, err := s.Volunteers(context.Background(), domain.RosterInput{CenterID: "c1"})
	if err != nil {
		t.Fatalf("Volunteers: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestPartners_MapsRows(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{partners: []repo.RowPartner{
		{ID: "p1", OrgName: "Seva Trust", ContactName: "Arjun", Phone: "555-0199"},
	}}
	s := newSvc(fr)

	got, err := s.Partners(context.Background(), domain.RosterInput{CenterID: "c1"})
	if err != nil {
		t.Fatalf("Partners: %v", err)
	}
	if len(got) != 1 || got[0].OrgName != "Seva Trust" || got[0].ContactName != "Arjun" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestChildren_MapsAlias(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{children: []repo.RowChild{
		{ID: "k1", FullName: "Ravi Kumar", Alias: "Ravi", BirthYear: 2016, EnrolledOn: "2023-01-15", Active: true},
	}}
	s := newSvc(fr)

	got, err := s.Children(context.Background(), domain.RosterInput{CenterID: "c1"})
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(got) != 1 || got[0].Alias != "Ravi" || got[0].BirthYear != 2016 {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestActiveAliases_PassThrough(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{aliases: []string{"Anita", "Ravi"}}
	s := newSvc(fr)

	got, err := s.ActiveAliases(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ActiveAliases: %v", err)
	}
	if fr.gotCenter != "c1" {
		t.Fatalf("centre not passed, got %q", fr.gotCenter)
	}
	if len(got) != 2 || got[0] != "Anita" || got[1] != "Ravi" {
		t.Fatalf("unexpected aliases %v", got)
	}
}

func TestRepoErrorPassesThrough(t *testing.T) {
	t.Parallel()

	s := newSvc(&fakeRepo{err: perr.Internalf("boom")})
	if _, err := s.Children(context.Background(), domain.RosterInput{CenterID: "c1"}); err == nil {
		t.Fatal("expected error from repo")
	}
	if _, err := s.ActiveAliases(context.Background(), "c1"); err == nil {
		t.Fatal("expected error from repo")
	}
}

func TestNew_PanicsOnNilDeps(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() { New(nil, nil) })
}
