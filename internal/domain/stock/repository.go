package stock

import (
	"context"
)

// LedgerRepository persists the stock ledger.
// The ledger is written as a whole snapshot after every mutation, mirroring
// how the in-memory ledger notifies its listeners.
type LedgerRepository interface {
	// LoadEntries reads all persisted ledger entries
	LoadEntries(ctx context.Context) (Entries, error)
	// ReplaceEntries atomically replaces the persisted ledger with the snapshot
	ReplaceEntries(ctx context.Context, entries Entries) error
}
