package core

import "threadedppc/internal/record"

// defaultSafetyMargin is how many records of headroom a clear reserves
// before the arena is considered full, so a single block's worth of
// records never straddles a wipe mid-build.
const defaultSafetyMargin = 4096

// Arena is the single contiguous, append-only record buffer every
// built block's records live in. It never reallocates: capacity is
// reserved once at construction and the arena is wiped wholesale
// (Reset) instead of grown, so that block descriptors built before a
// given point in time can hold stable indices into it for their
// entire lifetime.
type Arena struct {
	records      []record.Record
	safetyMargin int
}

// NewArena reserves a flat buffer of the given capacity.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	margin := defaultSafetyMargin
	if margin > capacity/4 {
		margin = capacity / 4
	}
	return &Arena{
		records:      make([]record.Record, 0, capacity),
		safetyMargin: margin,
	}
}

// Len returns the number of records appended since the last Reset.
func (a *Arena) Len() int { return len(a.records) }

// NearCapacity reports whether fewer than the safety margin of records
// remain before the arena hits its reserved capacity.
func (a *Arena) NearCapacity() bool {
	return cap(a.records)-len(a.records) < a.safetyMargin
}

// Append adds a record to the tail of the arena and returns its index.
func (a *Arena) Append(r record.Record) int {
	a.records = append(a.records, r)
	return len(a.records) - 1
}

// Slice returns the live arena contents. The returned slice is only
// valid until the next Reset.
func (a *Arena) Slice() []record.Record { return a.records }

// Reset wipes the arena back to empty. Every index any cached block
// descriptor holds becomes invalid the instant this is called, so
// callers must clear the block cache in the same critical section.
func (a *Arena) Reset() {
	a.records = a.records[:0]
}
