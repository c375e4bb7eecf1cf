package score

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/labyrinth/difficulty"
)

// Entry is one completed run; ordering uses Seconds only
type Entry struct {
	Seconds    int
	RunID      uuid.UUID
	RecordedAt time.Time
}

// Ledger keeps one ascending sequence of entries per tier for the life of the process
type Ledger struct {
	tiers map[difficulty.Tier][]Entry
	now   func() time.Time
}

// NewLedger creates an empty ledger stamping entries with the wall clock
func NewLedger() *Ledger {
	return NewLedgerAt(time.Now)
}

// NewLedgerAt creates an empty ledger that stamps Record entries with now
func NewLedgerAt(now func() time.Time) *Ledger {
	return &Ledger{
		tiers: make(map[difficulty.Tier][]Entry, len(difficulty.All())),
		now:   now,
	}
}

// Record appends a run duration to the tier and re-sorts it ascending.
// Equal durations keep insertion order.
func (l *Ledger) Record(tier difficulty.Tier, seconds int) Entry {
	return l.RecordEntry(tier, Entry{Seconds: seconds, RecordedAt: l.now()})
}

// RecordEntry inserts a fully populated entry; RecordedAt is kept as given
func (l *Ledger) RecordEntry(tier difficulty.Tier, e Entry) Entry {
	entries := append(l.tiers[tier], e)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Seconds, b.Seconds)
	})
	l.tiers[tier] = entries
	return e
}

// TopN returns the first min(n, len) entries of the tier in ascending order.
// The returned slice is a copy.
func (l *Ledger) TopN(tier difficulty.Tier, n int) []Entry {
	entries := l.tiers[tier]
	if n <= 0 || len(entries) == 0 {
		return []Entry{}
	}
	if n > len(entries) {
		n = len(entries)
	}
	return slices.Clone(entries[:n])
}

// TopSeconds is TopN reduced to durations
func (l *Ledger) TopSeconds(tier difficulty.Tier, n int) []int {
	top := l.TopN(tier, n)
	out := make([]int, len(top))
	for i, e := range top {
		out[i] = e.Seconds
	}
	return out
}

// Len returns the number of entries recorded for the tier
func (l *Ledger) Len(tier difficulty.Tier) int {
	return len(l.tiers[tier])
}

// Best returns the fastest entry for the tier, if any
func (l *Ledger) Best(tier difficulty.Tier) (Entry, bool) {
	entries := l.tiers[tier]
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[0], true
}
