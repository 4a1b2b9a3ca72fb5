// Package repo provides postgres access for monthly reports
package repo

import (
	"context"

	"fieldnotes/internal/modkit/repokit"
	perr "fieldnotes/internal/platform/errors"
)

// Repo defines the repository contract for reports
type Repo interface {
	ListByCenter(ctx context.Context, centerID string) ([]RowReport, error)
	ForMonth(ctx context.Context, centerID, period string) (RowReport, error)
}

// RowReport represents one monthly_reports row
type RowReport struct {
	ID          string
	Period      string
	Body        string
	GeneratedAt string
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

func (r *queries) ListByCenter(ctx context.Context, centerID string) ([]RowReport, error) {
	const sql = `
select id::text, period_month, body, generated_at::text
from monthly_reports
where center_id = $1
order by period_month desc
`
	out, err := repokit.Many(ctx, r.q, scanReport, sql, centerID)
	if err != nil {
		return nil, perr.FromPostgres(err, "reports list query failed")
	}
	return out, nil
}

func (r *queries) ForMonth(ctx context.Context, centerID, period string) (RowReport, error) {
	const sql = `
select id::text, period_month, body, generated_at::text
from monthly_reports
where center_id = $1 and period_month = $2
`
	return repokit.One(ctx, r.q, scanReport, sql, centerID, period)
}

func scanReport(row repokit.Row) (RowReport, error) {
	var rr RowReport
	err := row.Scan(&rr.ID, &rr.Period, &rr.Body, &rr.GeneratedAt)
	return rr, err
}
