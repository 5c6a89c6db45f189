package stock

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/stock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockLedgerRepository is a mock implementation of LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) LoadEntries(ctx context.Context) (stock.Entries, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(stock.Entries), args.Error(1)
}

func (m *MockLedgerRepository) ReplaceEntries(ctx context.Context, entries stock.Entries) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) FindByKind(ctx context.Context, kind catalog.ProductKind, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, kind, filter)
	return args.Get(0).(shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestProduct(t *testing.T, name string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewMachineProduct("MAQ-"+uuid.NewString()[:8], name,
		decimal.NewFromInt(100), decimal.NewFromInt(150), time.Now(), uuid.New())
	require.NoError(t, err)
	return product
}

// =============================================================================
// StockService Tests
// =============================================================================

func TestStockService_Load(t *testing.T) {
	t.Run("drops entries whose product no longer exists", func(t *testing.T) {
		alive := newTestProduct(t, "Espresso Machine")
		gone := uuid.New()

		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())

		ledgerRepo.On("LoadEntries", mock.Anything).Return(stock.Entries{
			alive.ID: 7,
			gone:     3,
		}, nil)
		productRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]catalog.Product{*alive}, nil)
		ledgerRepo.On("ReplaceEntries", mock.Anything, stock.Entries{alive.ID: 7}).Return(nil)

		require.NoError(t, service.Load(context.Background()))

		productRepo.On("FindByID", mock.Anything, alive.ID).Return(alive, nil)
		item, err := service.Quantity(context.Background(), alive.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, item.Quantity)

		_, err = service.Quantity(context.Background(), gone)
		assert.ErrorIs(t, err, stock.ErrProductNotTracked)

		// The pruned snapshot is written back right away.
		ledgerRepo.AssertExpectations(t)
	})

	t.Run("does not rewrite the snapshot when nothing was dropped", func(t *testing.T) {
		alive := newTestProduct(t, "Espresso Machine")

		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())

		ledgerRepo.On("LoadEntries", mock.Anything).Return(stock.Entries{alive.ID: 4}, nil)
		productRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]catalog.Product{*alive}, nil)

		require.NoError(t, service.Load(context.Background()))

		ledgerRepo.AssertNotCalled(t, "ReplaceEntries")
	})

	t.Run("empty repository yields empty ledger", func(t *testing.T) {
		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())

		ledgerRepo.On("LoadEntries", mock.Anything).Return(stock.Entries{}, nil)

		require.NoError(t, service.Load(context.Background()))

		items, err := service.Inventory(context.Background())
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestStockService_Register(t *testing.T) {
	t.Run("registers and persists a snapshot", func(t *testing.T) {
		product := newTestProduct(t, "Espresso Machine")
		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		ledgerRepo.On("ReplaceEntries", mock.Anything, stock.Entries{product.ID: 10}).Return(nil)

		item, err := service.Register(context.Background(), RegisterStockRequest{
			ProductID: product.ID,
			Quantity:  10,
		})

		require.NoError(t, err)
		assert.Equal(t, 10, item.Quantity)
		assert.Equal(t, "Espresso Machine", item.ProductName)
		ledgerRepo.AssertExpectations(t)
	})

	t.Run("rejects a second registration", func(t *testing.T) {
		product := newTestProduct(t, "Espresso Machine")
		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		ledgerRepo.On("ReplaceEntries", mock.Anything, mock.Anything).Return(nil)

		_, err := service.Register(context.Background(), RegisterStockRequest{ProductID: product.ID, Quantity: 5})
		require.NoError(t, err)

		_, err = service.Register(context.Background(), RegisterStockRequest{ProductID: product.ID, Quantity: 5})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PRODUCT_ALREADY_TRACKED", domainErr.Code)
		ledgerRepo.AssertNumberOfCalls(t, "ReplaceEntries", 1)
	})

	t.Run("rejects products unknown to the catalog", func(t *testing.T) {
		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())

		id := uuid.New()
		productRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.Register(context.Background(), RegisterStockRequest{ProductID: id, Quantity: 1})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		ledgerRepo.AssertNotCalled(t, "ReplaceEntries")
	})
}

func TestStockService_Adjustments(t *testing.T) {
	setup := func(t *testing.T, product *catalog.Product, qty int) (*StockService, *MockLedgerRepository, *MockProductRepository) {
		t.Helper()
		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		ledgerRepo.On("ReplaceEntries", mock.Anything, mock.Anything).Return(nil)

		_, err := service.Register(context.Background(), RegisterStockRequest{ProductID: product.ID, Quantity: qty})
		require.NoError(t, err)
		return service, ledgerRepo, productRepo
	}

	t.Run("replenish increases quantity", func(t *testing.T) {
		product := newTestProduct(t, "Grinder")
		service, _, _ := setup(t, product, 4)

		item, err := service.Replenish(context.Background(), product.ID, AdjustStockRequest{Amount: 6})

		require.NoError(t, err)
		assert.Equal(t, 10, item.Quantity)
	})

	t.Run("replenish of untracked product fails", func(t *testing.T) {
		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())

		_, err := service.Replenish(context.Background(), uuid.New(), AdjustStockRequest{Amount: 1})

		assert.ErrorIs(t, err, stock.ErrProductNotTracked)
	})

	t.Run("write-down below zero fails and persists nothing", func(t *testing.T) {
		product := newTestProduct(t, "Grinder")
		service, ledgerRepo, _ := setup(t, product, 2)

		_, err := service.WriteDown(context.Background(), product.ID, AdjustStockRequest{Amount: 5})

		require.Error(t, err)
		var insufficient *stock.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 5, insufficient.Requested)
		assert.Equal(t, 2, insufficient.Available)
		// only the registration snapshot was written
		ledgerRepo.AssertNumberOfCalls(t, "ReplaceEntries", 1)
	})

	t.Run("remove stops tracking regardless of quantity", func(t *testing.T) {
		product := newTestProduct(t, "Grinder")
		service, _, _ := setup(t, product, 9)

		require.NoError(t, service.Remove(context.Background(), product.ID))

		_, err := service.Quantity(context.Background(), product.ID)
		assert.ErrorIs(t, err, stock.ErrProductNotTracked)
	})
}

func TestStockService_Inventory(t *testing.T) {
	t.Run("joins catalog data and sorts by name", func(t *testing.T) {
		machine := newTestProduct(t, "Espresso Machine")
		grinder := newTestProduct(t, "Burr Grinder")

		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())

		ledgerRepo.On("ReplaceEntries", mock.Anything, mock.Anything).Return(nil)
		productRepo.On("FindByID", mock.Anything, machine.ID).Return(machine, nil)
		productRepo.On("FindByID", mock.Anything, grinder.ID).Return(grinder, nil)
		productRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]catalog.Product{*machine, *grinder}, nil)

		_, err := service.Register(context.Background(), RegisterStockRequest{ProductID: machine.ID, Quantity: 2})
		require.NoError(t, err)
		_, err = service.Register(context.Background(), RegisterStockRequest{ProductID: grinder.ID, Quantity: 5})
		require.NoError(t, err)

		items, err := service.Inventory(context.Background())

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Burr Grinder", items[0].ProductName)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, "Espresso Machine", items[1].ProductName)
		assert.Equal(t, 2, items[1].Quantity)
	})
}

// =============================================================================
// ProductDiscontinuedHandler Tests
// =============================================================================

func TestProductDiscontinuedHandler(t *testing.T) {
	t.Run("removes a tracked product from the ledger", func(t *testing.T) {
		product := newTestProduct(t, "Espresso Machine")
		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())
		handler := NewProductDiscontinuedHandler(service, zap.NewNop())

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		ledgerRepo.On("ReplaceEntries", mock.Anything, mock.Anything).Return(nil)

		_, err := service.Register(context.Background(), RegisterStockRequest{ProductID: product.ID, Quantity: 3})
		require.NoError(t, err)

		require.NoError(t, product.Discontinue())
		events := product.PendingEvents()
		var event shared.DomainEvent
		for _, e := range events {
			if e.EventType() == catalog.EventTypeProductDiscontinued {
				event = e
			}
		}
		require.NotNil(t, event)

		require.NoError(t, handler.Handle(context.Background(), event))

		_, err = service.Quantity(context.Background(), product.ID)
		assert.ErrorIs(t, err, stock.ErrProductNotTracked)
	})

	t.Run("untracked product is a no-op", func(t *testing.T) {
		product := newTestProduct(t, "Espresso Machine")
		ledgerRepo := new(MockLedgerRepository)
		productRepo := new(MockProductRepository)
		service := NewStockService(ledgerRepo, productRepo, zap.NewNop())
		handler := NewProductDiscontinuedHandler(service, zap.NewNop())

		require.NoError(t, product.Discontinue())
		events := product.PendingEvents()
		require.NotEmpty(t, events)

		assert.NoError(t, handler.Handle(context.Background(), events[len(events)-1]))
	})
}
