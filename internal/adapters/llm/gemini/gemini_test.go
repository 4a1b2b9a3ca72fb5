package gemini

import (
	"context"
	"strings"
	"testing"

	perr "fieldnotes/internal/platform/errors"
)

func TestOpen_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestBuildRequestText(t *testing.T) {
	t.Parallel()

	got := buildRequestText(
		"Summarize the month. ",
		[]string{"children practiced letters", "", "two new volunteers joined"},
		[]string{"https://cdn.example/a.jpg"},
	)

	if !strings.HasPrefix(got, "Summarize the month.") {
		t.Fatalf("prompt not first: %q", got)
	}
	if !strings.Contains(got, "- children practiced letters\n") {
		t.Fatalf("missing first note: %q", got)
	}
	if strings.Contains(got, "- \n") {
		t.Fatalf("blank note should be skipped: %q", got)
	}
	if !strings.Contains(got, "Images shared this period:\n- https://cdn.example/a.jpg") {
		t.Fatalf("missing image reference: %q", got)
	}
}

func TestBuildRequestText_NoExtras(t *testing.T) {
	t.Parallel()

	got := buildRequestText("just the prompt", nil, nil)
	if got != "just the prompt" {
		t.Fatalf("got %q", got)
	}
}
