// Package repo provides postgres access for rosters
package repo

import (
	"context"

	"fieldnotes/internal/modkit/repokit"
	perr "fieldnotes/internal/platform/errors"
)

// Repo defines the repository contract for rosters
type Repo interface {
	Facilitators(ctx context.Context, centerID string, activeOnly bool) ([]RowPerson, error)
	Volunteers(ctx context.Context, centerID string, activeOnly bool) ([]RowPerson, error)
	Partners(ctx context.Context, centerID string) ([]RowPartner, error)
	Children(ctx context.Context, centerID string, activeOnly bool) ([]RowChild, error)
	ActiveAliases(ctx context.Context, centerID string) ([]string, error)
}

// RowPerson covers facilitators and volunteers, which share a shape
type RowPerson struct {
	ID       string
	Name     string
	Phone    string
	JoinedOn string
	Active   bool
}

// RowPartner is one partner organisation row
type RowPartner struct {
	ID          string
	OrgName     string
	ContactName string
	Phone       string
}

// RowChild is one enrolled child row
type RowChild struct {
	ID         string
	FullName   string
	Alias      string
	BirthYear  int
	EnrolledOn string
	Active     bool
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

func (r *queries) people(ctx context.Context, table, centerID string, activeOnly bool) ([]RowPerson, error) {
	// table is a compile-time constant at both call sites, never user input
	sql := `
select id::text, name, phone, joined_on::text, active
from ` + table + `
where center_id = $1
and ($2 = false or active)
order by name asc
`
	out, err := repokit.Many(ctx, r.q, func(row repokit.Row) (RowPerson, error) {
		var rr RowPerson
		err := row.Scan(&rr.ID, &rr.Name, &rr.Phone, &rr.JoinedOn, &rr.Active)
		return rr, err
	}, sql, centerID, activeOnly)
	if err != nil {
		return nil, perr.FromPostgresf(err, "%s roster query failed", table)
	}
	return out, nil
}

func (r *queries) Facilitators(ctx context.Context, centerID string, activeOnly bool) ([]RowPerson, error) {
	return r.people(ctx, "facilitators", centerID, activeOnly)
}

func (r *queries) Volunteers(ctx context.Context, centerID string, activeOnly bool) ([]RowPerson, error) {
	return r.people(ctx, "volunteers", centerID, activeOnly)
}

func (r *queries) Partners(ctx context.Context, centerID string) ([]RowPartner, error) {
	const sql = `
select id::text, org_name, contact_name, phone
from partners
where center_id = $1
order by org_name asc
`
	out, err := repokit.Many(ctx, r.q, func(row repokit.Row) (RowPartner, error) {
		var rr RowPartner
		err := row.Scan(&rr.ID, &rr.OrgName, &rr.ContactName, &rr.Phone)
		return rr, err
	}, sql, centerID)
	if err != nil {
		return nil, perr.FromPostgres(err, "partners roster query failed")
	}
	return out, nil
}

func (r *queries) Children(ctx context.Context, centerID string, activeOnly bool) ([]RowChild, error) {
	const sql = `
select id::text, full_name, alias, birth_year, enrolled_on::text, active
from children
where center_id = $1
and ($2 = false or active)
order by full_name asc
`
	out, err := repokit.Many(ctx, r.q, func(row repokit.Row) (RowChild, error) {
		var rr RowChild
		err := row.Scan(&rr.ID, &rr.FullName, &rr.Alias, &rr.BirthYear, &rr.EnrolledOn, &rr.Active)
		return rr, err
	}, sql, centerID, activeOnly)
	if err != nil {
		return nil, perr.FromPostgres(err, "children roster query failed")
	}
	return out, nil
}

func (r *queries) ActiveAliases(ctx context.Context, centerID string) ([]string, error) {
	const sql = `
select alias
from children
where center_id = $1
and active
and alias <> ''
order by alias asc
`
	out, err := repokit.Many(ctx, r.q, func(row repokit.Row) (string, error) {
		var s string
		err := row.Scan(&s)
		return s, err
	}, sql, centerID)
	if err != nil {
		return nil, perr.FromPostgres(err, "aliases query failed")
	}
	return out, nil
}
