package order

import "time"

// HistoryEntry is one record in an order's append-only audit trail:
// which status the order entered, who moved it there, and when.
//
// The first entry is written at creation; every transition appends exactly
// one entry. Entries are never mutated or removed, and the last entry's
// status always equals the order's current status.
type HistoryEntry struct {
	Status    Status
	UpdatedBy string
	UpdatedAt time.Time
}
