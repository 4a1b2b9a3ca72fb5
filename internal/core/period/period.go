// Package period resolves reporting periods into the half-open time windows
// that scope feed queries.
package period

import (
	"time"

	perr "fieldnotes/internal/platform/errors"
)

// Layout is the wire format for a reporting period, e.g. "2024-03"
const Layout = "2006-01"

// Window is a half-open UTC range [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// Month parses a "YYYY-MM" period into the window covering that calendar
// month: [first instant of the month, first instant of the next month)
func Month(s string) (Window, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Window{}, perr.InvalidArgf("invalid period %q, want YYYY-MM", s)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// Contains reports whether ts falls inside the window
func (w Window) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && ts.Before(w.End)
}

// Label renders the window's period back in wire form
func (w Window) Label() string { return w.Start.Format(Layout) }
