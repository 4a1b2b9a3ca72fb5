package period

import (
	"testing"
	"time"
)

func TestMonth_Window(t *testing.T) {
	t.Parallel()
	w, err := Month("2024-03")
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	wantStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
		t.Fatalf("window = [%v, %v), want [%v, %v)", w.Start, w.End, wantStart, wantEnd)
	}
}

func TestMonth_DecemberRollsOver(t *testing.T) {
	t.Parallel()
	w, err := Month("2023-12")
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if w.End.Year() != 2024 || w.End.Month() != time.January {
		t.Fatalf("end = %v, want 2024-01-01", w.End)
	}
}

func TestMonth_Invalid(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "2024", "2024-13", "03-2024", "2024-3"} {
		if _, err := Month(s); err == nil {
			t.Fatalf("Month(%q): expected error", s)
		}
	}
}

func TestWindow_ContainsHalfOpen(t *testing.T) {
	t.Parallel()
	w, _ := Month("2024-03")
	if !w.Contains(w.Start) {
		t.Fatalf("start should be inside the window")
	}
	if w.Contains(w.End) {
		t.Fatalf("end should be outside the window")
	}
	if !w.Contains(w.End.Add(-time.Nanosecond)) {
		t.Fatalf("last instant of the month should be inside")
	}
}

func TestWindow_Label(t *testing.T) {
	t.Parallel()
	w, _ := Month("2024-03")
	if got := w.Label(); got != "2024-03" {
		t.Fatalf("Label = %q, want 2024-03", got)
	}
}
