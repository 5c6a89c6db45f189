package stock

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/stock"
	"go.uber.org/zap"
)

// StockService owns the live stock ledger and serializes access to it.
// The domain ledger itself is not goroutine safe; all mutations go
// through the service's mutex, including sale finalization via Locked.
type StockService struct {
	mu          sync.Mutex
	ledger      *stock.Ledger
	ledgerRepo  stock.LedgerRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewStockService creates a StockService with an empty ledger.
// Call Load to hydrate it from the repository.
func NewStockService(ledgerRepo stock.LedgerRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *StockService {
	s := &StockService{
		ledgerRepo:  ledgerRepo,
		productRepo: productRepo,
		logger:      logger,
	}
	s.ledger = stock.NewLedger()
	s.ledger.Subscribe(s.persistSnapshot)
	return s
}

// Load replaces the in-memory ledger with the persisted entries.
// Entries whose product no longer exists in the catalog are dropped,
// so a product deleted while the server was down does not resurrect.
func (s *StockService) Load(ctx context.Context) error {
	entries, err := s.ledgerRepo.LoadEntries(ctx)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}

	known := make(map[uuid.UUID]struct{}, len(ids))
	if len(ids) > 0 {
		products, err := s.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		for i := range products {
			known[products[i].ID] = struct{}{}
		}
	}

	kept := make(stock.Entries, len(entries))
	for id, qty := range entries {
		if _, ok := known[id]; !ok {
			s.logger.Warn("dropping ledger entry for missing product",
				zap.String("product_id", id.String()),
				zap.Int("quantity", qty),
			)
			continue
		}
		kept[id] = qty
	}

	// Write the pruned snapshot back as well, otherwise the stale rows
	// would survive until the next ledger mutation.
	if len(kept) != len(entries) {
		if err := s.ledgerRepo.ReplaceEntries(ctx, kept); err != nil {
			return err
		}
	}

	ledger := stock.NewLedgerFromEntries(kept)
	ledger.Subscribe(s.persistSnapshot)

	s.mu.Lock()
	s.ledger = ledger
	s.mu.Unlock()

	s.logger.Info("stock ledger loaded",
		zap.Int("tracked", len(kept)),
		zap.Int("dropped", len(entries)-len(kept)),
	)
	return nil
}

// Locked runs fn while holding the ledger lock. Used by operations that
// must read and mutate the ledger atomically, such as sale finalization.
func (s *StockService) Locked(fn func(ledger *stock.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.ledger)
}

// Register starts tracking a product with an initial quantity.
// Zero is a valid starting quantity. Fails if the product is unknown
// to the catalog or already tracked.
func (s *StockService) Register(ctx context.Context, req RegisterStockRequest) (*StockItemResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	registered, err := s.ledger.Register(req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, shared.NewDomainError("PRODUCT_ALREADY_TRACKED", "Product is already in stock, use replenish instead")
	}

	qty, _ := s.ledger.Quantity(req.ProductID)
	return &StockItemResponse{
		ProductID:   product.ID,
		ProductCode: product.Code,
		ProductName: product.Name,
		Quantity:    qty,
	}, nil
}

// Replenish increases the quantity of an already tracked product
func (s *StockService) Replenish(ctx context.Context, productID uuid.UUID, req AdjustStockRequest) (*StockItemResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	increased, err := s.ledger.Increase(productID, req.Amount)
	if err != nil {
		return nil, err
	}
	if !increased {
		return nil, stock.ErrProductNotTracked
	}

	qty, _ := s.ledger.Quantity(productID)
	return s.itemResponse(ctx, productID, qty), nil
}

// WriteDown decreases the quantity of a tracked product, for breakage
// or manual corrections. Fails when the product is untracked or the
// amount exceeds the available quantity.
func (s *StockService) WriteDown(ctx context.Context, productID uuid.UUID, req AdjustStockRequest) (*StockItemResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledger.Decrease(productID, req.Amount); err != nil {
		return nil, err
	}

	qty, _ := s.ledger.Quantity(productID)
	return s.itemResponse(ctx, productID, qty), nil
}

// Remove stops tracking a product regardless of its remaining quantity
func (s *StockService) Remove(ctx context.Context, productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.Remove(productID) {
		return shared.ErrNotFound
	}
	return nil
}

// Quantity returns the tracked quantity for a product
func (s *StockService) Quantity(ctx context.Context, productID uuid.UUID) (*StockItemResponse, error) {
	s.mu.Lock()
	qty, tracked := s.ledger.Quantity(productID)
	s.mu.Unlock()

	if !tracked {
		return nil, stock.ErrProductNotTracked
	}
	return s.itemResponse(ctx, productID, qty), nil
}

// Inventory lists every tracked product with its quantity, joined with
// the catalog for codes and names, sorted by product name
func (s *StockService) Inventory(ctx context.Context) ([]StockItemResponse, error) {
	s.mu.Lock()
	entries := s.ledger.Entries()
	s.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}

	byID := make(map[uuid.UUID]*catalog.Product, len(ids))
	if len(ids) > 0 {
		products, err := s.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range products {
			byID[products[i].ID] = &products[i]
		}
	}

	items := make([]StockItemResponse, 0, len(entries))
	for id, qty := range entries {
		item := StockItemResponse{ProductID: id, Quantity: qty}
		if p, ok := byID[id]; ok {
			item.ProductCode = p.Code
			item.ProductName = p.Name
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ProductName != items[j].ProductName {
			return items[i].ProductName < items[j].ProductName
		}
		return items[i].ProductID.String() < items[j].ProductID.String()
	})
	return items, nil
}

func (s *StockService) itemResponse(ctx context.Context, productID uuid.UUID, qty int) *StockItemResponse {
	item := &StockItemResponse{ProductID: productID, Quantity: qty}
	if product, err := s.productRepo.FindByID(ctx, productID); err == nil {
		item.ProductCode = product.Code
		item.ProductName = product.Name
	}
	return item
}

// persistSnapshot writes the post-mutation snapshot to the repository.
// Persistence failures are logged, not propagated; the in-memory ledger
// remains the source of truth for the running process.
func (s *StockService) persistSnapshot(entries stock.Entries) {
	if err := s.ledgerRepo.ReplaceEntries(context.Background(), entries); err != nil {
		s.logger.Error("failed to persist stock ledger snapshot",
			zap.Int("tracked", len(entries)),
			zap.Error(err),
		)
	}
}
