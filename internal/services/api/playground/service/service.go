// Package service runs ad-hoc LLM summaries over a centre's monthly activity
package service

import (
	"context"

	perr "fieldnotes/internal/platform/errors"
	feeddom "fieldnotes/internal/services/api/feed/domain"
	"fieldnotes/internal/services/api/playground/domain"

	"github.com/google/uuid"
)

// seam for tests
var newRunID = uuid.NewString

// defaultPrompt is used when the caller does not steer the summary
const defaultPrompt = "Summarize this month's field notes from a children's learning centre for a program dashboard."

// Service defines the service contract for the playground
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Assembler  feeddom.AssemblerPort
	Summarizer domain.Summarizer
}

// New creates a new playground service. summarizer may be nil when no LLM is
// configured; Summarize then reports Unavailable
func New(assembler feeddom.AssemblerPort, summarizer domain.Summarizer) *Svc {
	if assembler == nil {
		panic("playground.Service requires the feed Assembler port")
	}
	return &Svc{Assembler: assembler, Summarizer: summarizer}
}

// Summarize assembles the period's activity and asks the model for a summary
func (s *Svc) Summarize(ctx context.Context, in domain.SummarizeInput) (domain.SummarizeOutput, error) {
	if s.Summarizer == nil {
		return domain.SummarizeOutput{}, perr.Unavailablef("no summarizer configured")
	}

	activity, err := s.Assembler.Assemble(ctx, in.CenterID, in.Period)
	if err != nil {
		return domain.SummarizeOutput{}, err
	}

	notes := make([]string, 0, len(activity.Notes))
	for _, n := range activity.Notes {
		if n.Body != "" {
			notes = append(notes, n.Body)
		}
	}
	var images []string
	if in.IncludeImages {
		images = make([]string, 0, len(activity.Images))
		for _, img := range activity.Images {
			images = append(images, img.ImageURL)
		}
	}
	if len(notes) == 0 && len(images) == 0 {
		return domain.SummarizeOutput{}, perr.InvalidArgf("no activity to summarize for %s", in.Period)
	}

	prompt := in.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}
	summary, err := s.Summarizer.Summarize(ctx, prompt, notes, images)
	if err != nil {
		return domain.SummarizeOutput{}, err
	}

	return domain.SummarizeOutput{
		RunID:      newRunID(),
		Model:      s.Summarizer.Model(),
		Summary:    summary,
		NotesUsed:  len(notes),
		ImagesUsed: len(images),
	}, nil
}
