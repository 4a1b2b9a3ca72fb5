package service

import (
	"context"
	"testing"

	perr "fieldnotes/internal/platform/errors"
	"fieldnotes/internal/platform/testkit"
	feeddom "fieldnotes/internal/services/api/feed/domain"
	"fieldnotes/internal/services/api/playground/domain"
)

type fakeAssembler struct {
	activity feeddom.Activity
	err      error
}

func (f *fakeAssembler) Assemble(_ context.Context, _, _ string) (feeddom.Activity, error) {
	return f.activity, f.err
}

type fakeSummarizer struct {
	summary string
	err     error

	gotPrompt string
	gotNotes  []string
	gotImages []string
}

func (f *fakeSummarizer) Model() string { return "test-model" }

func (f *fakeSummarizer) Summarize(_ context.Context, prompt string, notes, images []string) (string, error) {
	f.gotPrompt, f.gotNotes, f.gotImages = prompt, notes, images
	return f.summary, f.err
}

func TestSummarize_NoSummarizerIsUnavailable(t *testing.T) {
	t.Parallel()

	s := New(&fakeAssembler{}, nil)
	_, err := s.Summarize(context.Background(), domain.SummarizeInput{CenterID: "c1", Period: "2025-02"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestSummarize_ForwardsNotesAndPrompt(t *testing.T) {
	t.Parallel()

	fa := &fakeAssembler{activity: feeddom.Activity{
		Notes: []feeddom.Note{
			{ID: "n1", Body: "built a kite"},
			{ID: "n2", Body: ""},
			{ID: "n3", Body: "planted beans"},
		},
		Images: []feeddom.Image{{ID: "i1", ImageURL: "https://img/1.jpg"}},
	}}
	fs := &fakeSummarizer{summary: "a good month"}
	s := New(fa, fs)

	testkit.Serial(t)
	testkit.Swap(t, &newRunID, func() string { return "run-1" })

	got, err := s.Summarize(context.Background(), domain.SummarizeInput{
		CenterID: "c1", Period: "2025-02", Prompt: "two sentences",
	})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got.RunID != "run-1" || got.Model != "test-model" || got.Summary != "a good month" {
		t.Fatalf("unexpected output %+v", got)
	}
	if got.NotesUsed != 2 || got.ImagesUsed != 0 {
		t.Fatalf("empty note should be dropped and images excluded by default: %+v", got)
	}
	if fs.gotPrompt != "two sentences" || len(fs.gotNotes) != 2 || len(fs.gotImages) != 0 {
		t.Fatalf("summarizer saw %q %v %v", fs.gotPrompt, fs.gotNotes, fs.gotImages)
	}
}

func TestSummarize_EmptyPromptGetsDefault(t *testing.T) {
	t.Parallel()

	fa := &fakeAssembler{activity: feeddom.Activity{
		Notes: []feeddom.Note{{ID: "n1", Body: "built a kite"}},
	}}
	fs := &fakeSummarizer{summary: "ok"}
	s := New(fa, fs)

	if _, err := s.Summarize(context.Background(), domain.SummarizeInput{
		CenterID: "c1", Period: "2025-02",
	}); err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if fs.gotPrompt != defaultPrompt {
		t.Fatalf("expected the default instruction, got %q", fs.gotPrompt)
	}
}

func TestSummarize_IncludeImages(t *testing.T) {
	t.Parallel()

	fa := &fakeAssembler{activity: feeddom.Activity{
		Images: []feeddom.Image{{ID: "i1", ImageURL: "https://img/1.jpg"}},
	}}
	fs := &fakeSummarizer{summary: "pictures only"}
	s := New(fa, fs)

	got, err := s.Summarize(context.Background(), domain.SummarizeInput{
		CenterID: "c1", Period: "2025-02", IncludeImages: true,
	})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got.ImagesUsed != 1 || len(fs.gotImages) != 1 {
		t.Fatalf("images not forwarded: %+v", got)
	}
}

func TestSummarize_EmptyPeriodIsInvalid(t *testing.T) {
	t.Parallel()

	s := New(&fakeAssembler{}, &fakeSummarizer{})
	_, err := s.Summarize(context.Background(), domain.SummarizeInput{CenterID: "c1", Period: "2025-02"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for an empty month, got %v", err)
	}
}

func TestSummarize_ModelErrorPassesThrough(t *testing.T) {
	t.Parallel()

	fa := &fakeAssembler{activity: feeddom.Activity{
		Notes: []feeddom.Note{{ID: "n1", Body: "note"}},
	}}
	s := New(fa, &fakeSummarizer{err: perr.Unavailablef("model offline")})

	_, err := s.Summarize(context.Background(), domain.SummarizeInput{CenterID: "c1", Period: "2025-02"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestNew_PanicsWithoutAssembler(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() { New(nil, nil) })
}
