package highlight

import (
	"reflect"
	"testing"
)

func TestPattern_EmptyAndBlankAliases(t *testing.T) {
	t.Parallel()
	if Pattern(nil) != nil {
		t.Fatalf("nil aliases should produce no matcher")
	}
	if Pattern([]string{"", "   "}) != nil {
		t.Fatalf("blank aliases should produce no matcher")
	}
}

func TestSpans_CaseInsensitive(t *testing.T) {
	t.Parallel()
	re := Pattern([]string{"Ravi"})
	got := Spans("ravi played today. RAVI read aloud.", re)
	if len(got) != 2 {
		t.Fatalf("expected 2 spans, got %d: %+v", len(got), got)
	}
	if got[0].Alias != "ravi" || got[1].Alias != "RAVI" {
		t.Fatalf("aliases = %q, %q", got[0].Alias, got[1].Alias)
	}
}

func TestSpans_WordBoundary(t *testing.T) {
	t.Parallel()
	re := Pattern([]string{"Ani"})
	if got := Spans("Anita was absent", re); got != nil {
		t.Fatalf("matched inside a longer word: %+v", got)
	}
	if got := Spans("Ani was present", re); len(got) != 1 {
		t.Fatalf("expected a whole-word match, got %+v", got)
	}
}

func TestSpans_LongestAliasWins(t *testing.T) {
	t.Parallel()
	re := Pattern([]string{"Ravi", "Ravi Kumar"})
	got := Spans("Ravi Kumar finished the workbook", re)
	if len(got) != 1 || got[0].Alias != "Ravi Kumar" {
		t.Fatalf("expected the full name to match once, got %+v", got)
	}
}

func TestSpans_OffsetsIndexText(t *testing.T) {
	t.Parallel()
	re := Pattern([]string{"Meena"})
	text := Normalize("Today Meena solved ten sums")
	got := Spans(text, re)
	if len(got) != 1 {
		t.Fatalf("expected 1 span, got %+v", got)
	}
	if text[got[0].Start:got[0].End] != "Meena" {
		t.Fatalf("span offsets do not slice the alias: %+v", got[0])
	}
}

func TestSpans_RegexMetaInAlias(t *testing.T) {
	t.Parallel()
	// aliases come from user data; meta characters must be inert
	re := Pattern([]string{"A.B"})
	if got := Spans("AxB should not match", re); got != nil {
		t.Fatalf("dot matched literally: %+v", got)
	}
	if got := Spans("A.B should match", re); len(got) != 1 {
		t.Fatalf("expected literal match, got %+v", got)
	}
}

func TestMark_WrapsMentions(t *testing.T) {
	t.Parallel()
	re := Pattern([]string{"Sita", "Gita"})
	got := Mark("Sita helped Gita with letters", re, "<mark>", "</mark>")
	want := "<mark>Sita</mark> helped <mark>Gita</mark> with letters"
	if got != want {
		t.Fatalf("Mark = %q, want %q", got, want)
	}
}

func TestMark_NilMatcherPassesThrough(t *testing.T) {
	t.Parallel()
	if got := Mark("untouched", nil, "<", ">"); got != "untouched" {
		t.Fatalf("Mark with nil matcher = %q", got)
	}
}

func TestSpans_MultipleAliasesLeftToRight(t *testing.T) {
	t.Parallel()
	re := Pattern([]string{"Sita", "Gita"})
	got := Spans("Gita then Sita", re)
	want := []string{"Gita", "Sita"}
	names := []string{got[0].Alias, got[1].Alias}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
}
