// Package reconcile merges the two row sets that feed a reporting-period
// activity view into one de-duplicated, time-ordered sequence.
//
// The hosted store cannot sort by "sent time when present else created time"
// across rows where sent time is sometimes null, so callers issue two queries
// per collection: rows whose sent time falls in the window, and rows without
// a sent time whose created time falls in the window. Merge is the seam that
// restores the single consistent view those two result sets imply.
package reconcile

import (
	"sort"
	"time"
)

// Item is the minimal surface a feed row exposes to the merge.
// Both timestamps are wire strings as scanned from the store; parsing
// tolerance lives here so repos stay dumb.
type Item interface {
	// MergeKey is the row identity; rows sharing a key collapse to one
	MergeKey() string
	// SentAt is the authoritative event time, empty when the row was never sent
	SentAt() string
	// CreatedAt is the row creation time, used only when SentAt is absent
	CreatedAt() string
}

// timeLayouts are tried in order when parsing wire timestamps
// covers RFC3339(Nano) and the text form postgres emits for timestamptz
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05",
}

func parseWireTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EffectiveTime returns the instant an item orders by: its sent time when
// parseable, else its created time. ok is false when neither parses; such
// items sort after every item with a defined effective time.
func EffectiveTime(it Item) (time.Time, bool) {
	if t, ok := parseWireTime(it.SentAt()); ok {
		return t, true
	}
	return parseWireTime(it.CreatedAt())
}

// Merge combines the sent-timestamped set with the untimestamped set into one
// sequence, ascending by effective time.
//
// De-duplication is by MergeKey: timestamped rows are taken first, then
// untimestamped rows, and the last copy taken wins. The two upstream queries
// are disjoint by construction, so a collision should not happen; when it
// does, the untimestamped copy winning is the declared rule, not an error.
//
// Ordering is fully deterministic: effective time ascending, items without a
// defined effective time after all timed items, MergeKey ascending as the
// tie-break within either group. Merge never fails; malformed timestamps
// degrade to "missing" and the row is kept.
func Merge[T Item](timestamped, untimestamped []T) []T {
	byKey := make(map[string]T, len(timestamped)+len(untimestamped))
	for _, it := range timestamped {
		byKey[it.MergeKey()] = it
	}
	for _, it := range untimestamped {
		byKey[it.MergeKey()] = it
	}

	out := make([]T, 0, len(byKey))
	for _, it := range byKey {
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool {
		ti, oki := EffectiveTime(out[i])
		tj, okj := EffectiveTime(out[j])
		if oki != okj {
			return oki // defined times sort before undefined ones
		}
		if oki && okj && !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return out[i].MergeKey() < out[j].MergeKey()
	})
	return out
}
