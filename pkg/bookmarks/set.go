package bookmarks

import (
	"sort"

	"github.com/XolaniXAD/cosmic-calendar/pkg/record"
)

// Set maps a date string to the record snapshot saved for that day. Snapshots
// carry no freshness guarantee; a saved record may go stale relative to
// upstream and that is accepted.
type Set map[string]*record.Record

// Has reports membership by date.
func (s Set) Has(date string) bool {
	_, ok := s[date]
	return ok
}

// Sorted returns the snapshots ordered newest-date-first for display. The
// ISO date strings sort lexically in calendar order.
func (s Set) Sorted() []*record.Record {
	out := make([]*record.Record, 0, len(s))
	for _, r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Clone returns an independent copy of the set, deep enough that mutating the
// copy's records leaves the original untouched.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for d, r := range s {
		out[d] = r.Clone()
	}
	return out
}
