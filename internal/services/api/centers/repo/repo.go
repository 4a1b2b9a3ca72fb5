// Package repo provides postgres access for centers
package repo

import (
	"context"

	"fieldnotes/internal/modkit/repokit"
	perr "fieldnotes/internal/platform/errors"
)

// Repo defines the repository contract for centers
type Repo interface {
	List(ctx context.Context, districtID, status string) ([]RowCenter, error)
	Get(ctx context.Context, id string) (RowDetail, error)
}

// RowCenter represents a centre row
type RowCenter struct {
	ID         string
	DistrictID string
	Name       string
	Village    string
	Status     string
	CreatedAt  string
}

// RowDetail is a centre row with district name and roster counts
type RowDetail struct {
	RowCenter
	DistrictName string
	Facilitators int
	Volunteers   int
	Partners     int
	Children     int
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

func (r *queries) List(ctx context.Context, districtID, status string) ([]RowCenter, error) {
	const sql = `
select c.id::text, c.district_id::text, c.name, c.village, c.status, c.created_at::text
from centers c
where ($1 = '' or c.district_id::text = $1)
and ($2 = '' or c.status = $2)
order by c.name asc
`
	rows, err := r.q.Query(ctx, sql, districtID, status)
	if err != nil {
		return nil, perr.FromPostgres(err, "centers list query failed")
	}
	defer rows.Close()
	var out []RowCenter
	for rows.Next() {
		var rr RowCenter
		if err := rows.Scan(&rr.ID, &rr.DistrictID, &rr.Name, &rr.Village, &rr.Status, &rr.CreatedAt); err != nil {
			return nil, perr.FromPostgres(err, "centers list scan failed")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Get(ctx context.Context, id string) (RowDetail, error) {
	const sql = `
select c.id::text, c.district_id::text, c.name, c.village, c.status, c.created_at::text,
d.name as district_name,
(select count(*) from facilitators f where f.center_id = c.id)::int,
(select count(*) from volunteers v where v.center_id = c.id)::int,
(select count(*) from partners p where p.center_id = c.id)::int,
(select count(*) from children k where k.center_id = c.id)::int
from centers c
join districts d on d.id = c.district_id
where c.id = $1
`
	return repokit.One(ctx, r.q, func(row repokit.Row) (RowDetail, error) {
		var rr RowDetail
		err := row.Scan(
			&rr.ID, &rr.DistrictID, &rr.Name, &rr.Village, &rr.Status, &rr.CreatedAt,
			&rr.DistrictName,
			&rr.Facilitators, &rr.Volunteers, &rr.Partners, &rr.Children,
		)
		return rr, err
	}, sql, id)
}
