// Package service contains roster workflows
package service

import (
	"context"

	"fieldnotes/internal/modkit/repokit"
	"fieldnotes/internal/services/api/roster/domain"
	"fieldnotes/internal/services/api/roster/repo"
)

// Service defines the service contract for roster
type Service interface {
	domain.ServicePort
	domain.AliasesPort
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new roster service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("roster.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("roster.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Facilitators lists a centre's facilitators
func (s *Svc) Facilitators(ctx context.Context, in domain.RosterInput) ([]domain.Facilitator, error) {
	rows, err := s.Repo.Facilitators(ctx, in.CenterID, in.ActiveOnly)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Facilitator, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Facilitator{
			ID: r.ID, Name: r.Name, Phone: r.Phone, JoinedOn: r.JoinedOn, Active: r.Active,
		})
	}
	return out, nil
}

// Volunteers lists a centre's volunteers
func (s *Svc) Volunteers(ctx context.Context, in domain.RosterInput) ([]domain.Volunteer, error) {
	rows, err := s.Repo.Volunteers(ctx, in.CenterID, in.ActiveOnly)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Volunteer, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Volunteer{
			ID: r.ID, Name: r.Name, Phone: r.Phone, JoinedOn: r.JoinedOn, Active: r.Active,
		})
	}
	return out, nil
}

// Partners lists a centre's partner organisations
func (s *Svc) Partners(ctx context.Context, in domain.RosterInput) ([]domain.Partner, error) {
	rows, err := s.Repo.Partners(ctx, in.CenterID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Partner, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Partner{
			ID: r.ID, OrgName: r.OrgName, ContactName: r.ContactName, Phone: r.Phone,
		})
	}
	return out, nil
}

// Children lists a centre's enrolled children with their note aliases
func (s *Svc) Children(ctx context.Context, in domain.RosterInput) ([]domain.Child, error) {
	rows, err := s.Repo.Children(ctx, in.CenterID, in.ActiveOnly)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Child, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Child{
			ID:         r.ID,
			FullName:   r.FullName,
			Alias:      r.Alias,
			BirthYear:  r.BirthYear,
			EnrolledOn: r.EnrolledOn,
			Active:     r.Active,
		})
	}
	return out, nil
}

// ActiveAliases returns the active children's aliases for a centre
func (s *Svc) ActiveAliases(ctx context.Context, centerID string) ([]string, error) {
	return s.Repo.ActiveAliases(ctx, centerID)
}
