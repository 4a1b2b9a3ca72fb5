// Package service contains district workflows
package service

import (
	"context"

	"fieldnotes/internal/modkit/repokit"
	"fieldnotes/internal/services/api/districts/domain"
	"fieldnotes/internal/services/api/districts/repo"
)

// Service defines the service contract for districts
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new districts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("districts.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("districts.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns districts ordered by name, optionally filtered by name
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.District, error) {
	rows, err := s.Repo.List(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	out := make([]domain.District, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDistrict(r))
	}
	return out, nil
}

// Get returns one district with centre roll-up counts
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Detail, error) {
	r, err := s.Repo.Get(ctx, in.DistrictID)
	if err != nil {
		return domain.Detail{}, err
	}
	return domain.Detail{
		District:      toDistrict(r.RowDistrict),
		ActiveCenters: r.ActiveCenters,
	}, nil
}

func toDistrict(r repo.RowDistrict) domain.District {
	return domain.District{
		ID:          r.ID,
		Name:        r.Name,
		State:       r.State,
		CenterCount: r.CenterCount,
		CreatedAt:   r.CreatedAt,
	}
}
