package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/stock"
	"gorm.io/gorm"
)

// StockEntry is the persisted form of one ledger entry
type StockEntry struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StockEntry) TableName() string {
	return "stock_entries"
}

// GormLedgerRepository implements LedgerRepository using GORM.
// The ledger is small enough to persist as a full snapshot; the
// replace-all write keeps it in lockstep with the in-memory state.
type GormLedgerRepository struct {
	db *gorm.DB
}

var _ stock.LedgerRepository = (*GormLedgerRepository)(nil)

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// LoadEntries reads all persisted ledger entries
func (r *GormLedgerRepository) LoadEntries(ctx context.Context) (stock.Entries, error) {
	var rows []StockEntry
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make(stock.Entries, len(rows))
	for _, row := range rows {
		entries[row.ProductID] = row.Quantity
	}
	return entries, nil
}

// ReplaceEntries atomically replaces the persisted ledger with the snapshot
func (r *GormLedgerRepository) ReplaceEntries(ctx context.Context, entries stock.Entries) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&StockEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		rows := make([]StockEntry, 0, len(entries))
		for id, qty := range entries {
			rows = append(rows, StockEntry{ProductID: id, Quantity: qty})
		}
		return tx.Create(&rows).Error
	})
}
