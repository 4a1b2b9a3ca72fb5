// Package repo provides postgres access for districts
package repo

import (
	"context"

	"fieldnotes/internal/modkit/repokit"
	perr "fieldnotes/internal/platform/errors"
)

// Repo defines the repository contract for districts
type Repo interface {
	List(ctx context.Context, name string) ([]RowDistrict, error)
	Get(ctx context.Context, id string) (RowDetail, error)
}

// RowDistrict represents a district row with its centre count
type RowDistrict struct {
	ID          string
	Name        string
	State       string
	CenterCount int
	CreatedAt   string
}

// RowDetail is a district row with roll-up counts
type RowDetail struct {
	RowDistrict
	ActiveCenters int
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) List(ctx context.Context, name string) ([]RowDistrict, error) {
	const sql = `
select d.id::text, d.name, d.state, count(c.id)::int as center_count, d.created_at::text
from districts d
left join centers c on c.district_id = d.id
where ($1 = '' or d.name ilike '%' || $1 || '%')
group by d.id, d.name, d.state, d.created_at
order by d.name asc
`
	rows, err := r.q.Query(ctx, sql, name)
	if err != nil {
		return nil, perr.FromPostgres(err, "districts list query failed")
	}
	defer rows.Close()
	var out []RowDistrict
	for rows.Next() {
		var rr RowDistrict
		if err := rows.Scan(&rr.ID, &rr.Name, &rr.State, &rr.CenterCount, &rr.CreatedAt); err != nil {
			return nil, perr.FromPostgres(err, "districts list scan failed")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Get(ctx context.Context, id string) (RowDetail, error) {
	const sql = `
select d.id::text, d.name, d.state,
count(c.id)::int as center_count,
count(c.id) filter (where c.status = 'active')::int as active_centers,
d.created_at::text
from districts d
left join centers c on c.district_id = d.id
where d.id = $1
group by d.id, d.name, d.state, d.created_at
`
	return repokit.One(ctx, r.q, func(row repokit.Row) (RowDetail, error) {
		var rr RowDetail
		err := row.Scan(&rr.ID, &rr.Name, &rr.State, &rr.CenterCount, &rr.ActiveCenters, &rr.CreatedAt)
		return rr, err
	}, sql, id)
}
