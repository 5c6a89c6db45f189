package stock

import (
	"github.com/google/uuid"
)

// Entries is a snapshot of the ledger: product ID to on-hand quantity.
// A product absent from the map is untracked, which is distinct from a
// tracked product with quantity zero.
type Entries map[uuid.UUID]int

// ChangeListener observes successful ledger mutations. It receives a
// snapshot of the full ledger taken after the mutation was applied.
type ChangeListener func(entries Entries)

// Ledger tracks on-hand quantities for every product the shop carries.
// Quantities never go negative; operations that would break that are
// rejected before any state changes. Listeners are notified synchronously,
// exactly once per successful mutation and never on failed or no-op calls.
type Ledger struct {
	entries   Entries
	listeners []ChangeListener
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{entries: make(Entries)}
}

// NewLedgerFromEntries creates a ledger preloaded with the given entries.
// Entries with negative quantities are skipped.
func NewLedgerFromEntries(entries Entries) *Ledger {
	l := NewLedger()
	for id, qty := range entries {
		if qty >= 0 {
			l.entries[id] = qty
		}
	}
	return l
}

// Subscribe registers a listener for ledger changes
func (l *Ledger) Subscribe(listener ChangeListener) {
	if listener != nil {
		l.listeners = append(l.listeners, listener)
	}
}

// Register starts tracking a product with an initial quantity.
// Returns false without touching the ledger when the product is already
// tracked. A zero initial quantity is allowed.
func (l *Ledger) Register(productID uuid.UUID, quantity int) (bool, error) {
	if quantity < 0 {
		return false, ErrInvalidQuantity
	}
	if _, exists := l.entries[productID]; exists {
		return false, nil
	}

	l.entries[productID] = quantity
	l.notify()
	return true, nil
}

// Increase adds quantity to a tracked product.
// Returns false without touching the ledger when the product is untracked.
func (l *Ledger) Increase(productID uuid.UUID, amount int) (bool, error) {
	if amount <= 0 {
		return false, ErrInvalidQuantity
	}
	if _, exists := l.entries[productID]; !exists {
		return false, nil
	}

	l.entries[productID] += amount
	l.notify()
	return true, nil
}

// Decrease removes quantity from a tracked product.
// Fails with PRODUCT_NOT_TRACKED for untracked products and with
// INSUFFICIENT_STOCK when the amount exceeds the available quantity.
// On failure the ledger is left untouched.
func (l *Ledger) Decrease(productID uuid.UUID, amount int) error {
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	available, exists := l.entries[productID]
	if !exists {
		return ErrProductNotTracked
	}
	if amount > available {
		return NewInsufficientStockError(productID, amount, available)
	}

	l.entries[productID] = available - amount
	l.notify()
	return nil
}

// Remove stops tracking a product entirely, regardless of its quantity.
// Returns false when the product was not tracked.
func (l *Ledger) Remove(productID uuid.UUID) bool {
	if _, exists := l.entries[productID]; !exists {
		return false
	}

	delete(l.entries, productID)
	l.notify()
	return true
}

// Has returns true if the product is tracked
func (l *Ledger) Has(productID uuid.UUID) bool {
	_, exists := l.entries[productID]
	return exists
}

// Quantity returns the tracked quantity for a product.
// The second return value is false for untracked products.
func (l *Ledger) Quantity(productID uuid.UUID) (int, bool) {
	qty, exists := l.entries[productID]
	return qty, exists
}

// Entries returns a snapshot copy of the ledger
func (l *Ledger) Entries() Entries {
	return l.snapshot()
}

// Len returns the number of tracked products
func (l *Ledger) Len() int {
	return len(l.entries)
}

func (l *Ledger) snapshot() Entries {
	snapshot := make(Entries, len(l.entries))
	for id, qty := range l.entries {
		snapshot[id] = qty
	}
	return snapshot
}

func (l *Ledger) notify() {
	if len(l.listeners) == 0 {
		return
	}
	snapshot := l.snapshot()
	for _, listener := range l.listeners {
		listener(snapshot)
	}
}
