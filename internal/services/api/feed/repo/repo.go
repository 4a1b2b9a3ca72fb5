// Package repo provides postgres access for the activity feed
package repo

import (
	"context"
	"time"

	"fieldnotes/internal/modkit/repokit"
	perr "fieldnotes/internal/platform/errors"
)

// Repo defines the repository contract for the feed
//
// Each collection is fetched as two sets: rows whose sent time falls in the
// window, and rows without a sent time whose created time falls in the window.
// The reconciler merges the pair
type Repo interface {
	ImagesSentIn(ctx context.Context, centerID string, start, end time.Time) ([]RowImage, error)
	ImagesCreatedIn(ctx context.Context, centerID string, start, end time.Time) ([]RowImage, error)
	NotesSentIn(ctx context.Context, centerID string, start, end time.Time) ([]RowNote, error)
	NotesCreatedIn(ctx context.Context, centerID string, start, end time.Time) ([]RowNote, error)
}

// RowImage is one center_images row. Sent is the raw text column; Created is
// the timestamptz in wire form
type RowImage struct {
	ID      string
	URL     string
	Caption string
	Sent    string
	Created string
}

// MergeKey implements the reconciler item surface
func (r RowImage) MergeKey() string { return r.ID }

// SentAt implements the reconciler item surface
func (r RowImage) SentAt() string { return r.Sent }

// CreatedAt implements the reconciler item surface
func (r RowImage) CreatedAt() string { return r.Created }

// RowNote is one center_notes row
type RowNote struct {
	ID      string
	Body    string
	Sent    string
	Created string
}

// MergeKey implements the reconciler item surface
func (r RowNote) MergeKey() string { return r.ID }

// SentAt implements the reconciler item surface
func (r RowNote) SentAt() string { return r.Sent }

// CreatedAt implements the reconciler item surface
func (r RowNote) CreatedAt() string { return r.Created }

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

// sent_at is a text column fed by upstream imports; ISO-8601 strings compare
// lexicographically so the window bounds are passed as RFC3339 text

func (r *queries) ImagesSentIn(ctx context.Context, centerID string, start, end time.Time) ([]RowImage, error) {
	const sql = `
select id::text, image_url, coalesce(caption, ''), sent_at, created_at::text
from center_images
where center_id = $1
and sent_at is not null and sent_at <> ''
and sent_at >= $2 and sent_at < $3
order by sent_at asc
`
	out, err := repokit.Many(ctx, r.q, scanImage, sql,
		centerID, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, perr.FromPostgres(err, "images sent window query failed")
	}
	return out, nil
}

func (r *queries) ImagesCreatedIn(ctx context.Context, centerID string, start, end time.Time) ([]RowImage, error) {
	const sql = `
select id::text, image_url, coalesce(caption, ''), coalesce(sent_at, ''), created_at::text
from center_images
where center_id = $1
and (sent_at is null or sent_at = '')
and created_at >= $2 and created_at < $3
order by created_at asc
`
	out, err := repokit.Many(ctx, r.q, scanImage, sql, centerID, start, end)
	if err != nil {
		return nil, perr.FromPostgres(err, "images created window query failed")
	}
	return out, nil
}

func (r *queries) NotesSentIn(ctx context.Context, centerID string, start, end time.Time) ([]RowNote, error) {
	const sql = `
select id::text, body, sent_at, created_at::text
from center_notes
where center_id = $1
and sent_at is not null and sent_at <> ''
and sent_at >= $2 and sent_at < $3
order by sent_at asc
`
	out, err := repokit.Many(ctx, r.q, scanNote, sql,
		centerID, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, perr.FromPostgres(err, "notes sent window query failed")
	}
	return out, nil
}

func (r *queries) NotesCreatedIn(ctx context.Context, centerID string, start, end time.Time) ([]RowNote, error) {
	const sql = `
select id::text, body, coalesce(sent_at, ''), created_at::text
from center_notes
where center_id = $1
and (sent_at is null or sent_at = '')
and created_at >= $2 and created_at < $3
order by created_at asc
`
	out, err := repokit.Many(ctx, r.q, scanNote, sql, centerID, start, end)
	if err != nil {
		return nil, perr.FromPostgres(err, "notes created window query failed")
	}
	return out, nil
}

func scanImage(row repokit.Row) (RowImage, error) {
	var rr RowImage
	err := row.Scan(&rr.ID, &rr.URL, &rr.Caption, &rr.Sent, &rr.Created)
	return rr, err
}

func scanNote(row repokit.Row) (RowNote, error) {
	var rr RowNote
	err := row.Scan(&rr.ID, &rr.Body, &rr.Sent, &rr.Created)
	return rr, err
}
