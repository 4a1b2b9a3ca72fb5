// Package service contains centre workflows
package service

import (
	"context"

	"fieldnotes/internal/modkit/repokit"
	"fieldnotes/internal/services/api/centers/domain"
	"fieldnotes/internal/services/api/centers/repo"
)

// Service defines the service contract for centers
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new centers service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("centers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("centers.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns centres ordered by name, optionally filtered by district and status
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Center, error) {
	rows, err := s.Repo.List(ctx, in.DistrictID, in.Status)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Center, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCenter(r))
	}
	return out, nil
}

// Get returns one centre with its district name and roster counts
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Detail, error) {
	r, err := s.Repo.Get(ctx, in.CenterID)
	if err != nil {
		return domain.Detail{}, err
	}
	return domain.Detail{
		Center:       toCenter(r.RowCenter),
		DistrictName: r.DistrictName,
		Facilitators: r.Facilitators,
		Volunteers:   r.Volunteers,
		Partners:     r.Partners,
		Children:     r.Children,
	}, nil
}

func toCenter(r repo.RowCenter) domain.Center {
	return domain.Center{
		ID:         r.ID,
		DistrictID: r.DistrictID,
		Name:       r.Name,
		Village:    r.Village,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}
