// Package service assembles the reconciled activity feed
package service

import (
	"context"

	"fieldnotes/internal/core/period"
	"fieldnotes/internal/core/reconcile"
	"fieldnotes/internal/modkit/repokit"
	ptime "fieldnotes/internal/platform/time"
	"fieldnotes/internal/services/api/feed/domain"
	"fieldnotes/internal/services/api/feed/repo"

	"golang.org/x/sync/errgroup"
)

// Service defines the service contract for the feed
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new feed service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("feed.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("feed.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Activity returns the reconciled feed for one centre and period.
//
// The two queries of each collection pair run concurrently; if either fails
// the whole call fails. Each pair is merged into one de-duplicated sequence
// ascending by effective time
func (s *Svc) Activity(ctx context.Context, in domain.ActivityInput) (domain.Activity, error) {
	win, err := period.Month(in.Period)
	if err != nil {
		return domain.Activity{}, err
	}

	var (
		imgSent, imgCreated   []repo.RowImage
		noteSent, noteCreated []repo.RowNote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		imgSent, err = s.Repo.ImagesSentIn(gctx, in.CenterID, win.Start, win.End)
		return err
	})
	g.Go(func() error {
		var err error
		imgCreated, err = s.Repo.ImagesCreatedIn(gctx, in.CenterID, win.Start, win.End)
		return err
	})
	g.Go(func() error {
		var err error
		noteSent, err = s.Repo.NotesSentIn(gctx, in.CenterID, win.Start, win.End)
		return err
	})
	g.Go(func() error {
		var err error
		noteCreated, err = s.Repo.NotesCreatedIn(gctx, in.CenterID, win.Start, win.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Activity{}, err
	}

	images := reconcile.Merge(imgSent, imgCreated)
	notes := reconcile.Merge(noteSent, noteCreated)

	out := domain.Activity{
		CenterID:    in.CenterID,
		Period:      in.Period,
		WindowStart: win.Start.UTC().Format("2006-01-02"),
		WindowEnd:   win.End.UTC().Format("2006-01-02"),
		Images:      make([]domain.Image, 0, len(images)),
		Notes:       make([]domain.Note, 0, len(notes)),
	}
	for _, r := range images {
		out.Images = append(out.Images, toImage(r))
	}
	for _, r := range notes {
		out.Notes = append(out.Notes, toNote(r))
	}
	return out, nil
}

func toImage(r repo.RowImage) domain.Image {
	img := domain.Image{
		ID:        r.ID,
		ImageURL:  r.URL,
		Caption:   r.Caption,
		SentAt:    r.Sent,
		CreatedAt: r.Created,
	}
	if t, ok := reconcile.EffectiveTime(r); ok {
		img.EffectiveAt = ptime.Ptr(t.UTC())
	}
	return img
}

func toNote(r repo.RowNote) domain.Note {
	n := domain.Note{
		ID:        r.ID,
		Body:      r.Body,
		SentAt:    r.Sent,
		CreatedAt: r.Created,
	}
	if t, ok := reconcile.EffectiveTime(r); ok {
		n.EffectiveAt = ptime.Ptr(t.UTC())
	}
	return n
}
