// Package highlight marks child-alias mentions inside free-text field notes.
//
// Aliases are a dynamic per-centre list; matching is one compiled
// case-insensitive alternation so a note is scanned once regardless of how
// many children a centre has.
package highlight

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Span is one alias mention; Start and End are byte offsets into the
// normalized text, End exclusive
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Alias string `json:"alias"`
}

// Normalize returns the NFC form of s
// both the alias list and the scanned text must pass through it so that span
// offsets line up with the text the caller holds
func Normalize(s string) string { return norm.NFC.String(s) }

// Pattern compiles the alias list into a single case-insensitive matcher.
// Blank aliases are skipped, longer aliases are preferred over their own
// prefixes ("Ravi Kumar" beats "Ravi"), and matches are anchored on word
// boundaries so "Ani" does not fire inside "Anita".
// Returns nil when no usable alias remains.
func Pattern(aliases []string) *regexp.Regexp {
	cleaned := make([]string, 0, len(aliases))
	for _, a := range aliases {
		a = strings.TrimSpace(Normalize(a))
		if a != "" {
			cleaned = append(cleaned, a)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	sort.Slice(cleaned, func(i, j int) bool {
		if len(cleaned[i]) != len(cleaned[j]) {
			return len(cleaned[i]) > len(cleaned[j])
		}
		return cleaned[i] < cleaned[j]
	})

	quoted := make([]string, len(cleaned))
	for i, a := range cleaned {
		quoted[i] = regexp.QuoteMeta(a)
	}
	// compile error is unreachable with quoted input; fall back to no matcher
	re, err := regexp.Compile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil
	}
	return re
}

// Spans returns every alias mention in text, left to right
// text should already be Normalize'd; a nil matcher yields no spans
func Spans(text string, re *regexp.Regexp) []Span {
	if re == nil || text == "" {
		return nil
	}
	idx := re.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	out := make([]Span, 0, len(idx))
	for _, m := range idx {
		out = append(out, Span{Start: m[0], End: m[1], Alias: text[m[0]:m[1]]})
	}
	return out
}

// Mark wraps every alias mention with the open and close markers, e.g.
// Mark(s, re, "<mark>", "</mark>") for the dashboard's rendered notes
func Mark(text string, re *regexp.Regexp, open, close string) string {
	if re == nil || text == "" {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return open + m + close
	})
}
