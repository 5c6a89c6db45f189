package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockSupplierRepository is a mock implementation of SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByCNPJ(ctx context.Context, cnpj string) (*partner.Supplier, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.Supplier], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[partner.Supplier]), args.Error(1)
}

func (m *MockSupplierRepository) FindByKind(ctx context.Context, kind partner.SupplierKind) ([]partner.Supplier, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	args := m.Called(ctx, cnpj)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// SupplierService Tests
// =============================================================================

func TestSupplierService_Create(t *testing.T) {
	t.Run("registers coffee supplier with normalized CNPJ", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)

		repo.On("ExistsByCNPJ", mock.Anything, "11222333000181").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		resp, err := service.Create(context.Background(), CreateSupplierRequest{
			CNPJ:       "11.222.333/0001-81",
			Name:       "Fazenda Santa Clara",
			Kind:       "coffee",
			CoffeeType: "arabica",
		})

		require.NoError(t, err)
		assert.Equal(t, "11222333000181", resp.CNPJ)
		assert.Equal(t, "coffee", resp.Kind)
		assert.Equal(t, "arabica", resp.CoffeeType)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate CNPJ", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)

		repo.On("ExistsByCNPJ", mock.Anything, "11222333000181").Return(true, nil)

		_, err := service.Create(context.Background(), CreateSupplierRequest{
			CNPJ: "11222333000181",
			Name: "Fazenda Santa Clara",
			Kind: "coffee",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects malformed CNPJ before hitting the repository", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)

		_, err := service.Create(context.Background(), CreateSupplierRequest{
			CNPJ: "123",
			Name: "Fazenda Santa Clara",
			Kind: "coffee",
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "ExistsByCNPJ")
	})
}

func TestSupplierService_Update(t *testing.T) {
	t.Run("updates contact data and coffee type", func(t *testing.T) {
		supplier, err := partner.NewCoffeeSupplier("11222333000181", "Fazenda Santa Clara", "", "", "arabica")
		require.NoError(t, err)
		supplier.ClearEvents()

		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)

		repo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		repo.On("Save", mock.Anything, supplier).Return(nil)

		phone := "+55 35 99999-0000"
		coffeeType := "bourbon"
		resp, err := service.Update(context.Background(), supplier.ID, UpdateSupplierRequest{
			Phone:      &phone,
			CoffeeType: &coffeeType,
		})

		require.NoError(t, err)
		assert.Equal(t, phone, resp.Phone)
		assert.Equal(t, "bourbon", resp.CoffeeType)
		assert.Equal(t, "Fazenda Santa Clara", resp.Name)
		repo.AssertExpectations(t)
	})

	t.Run("rejects country of origin on a coffee supplier", func(t *testing.T) {
		supplier, err := partner.NewCoffeeSupplier("11222333000181", "Fazenda Santa Clara", "", "", "arabica")
		require.NoError(t, err)

		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)
		repo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)

		country := "Italy"
		_, err = service.Update(context.Background(), supplier.ID, UpdateSupplierRequest{
			CountryOfOrigin: &country,
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestSupplierService_List(t *testing.T) {
	t.Run("filters by kind", func(t *testing.T) {
		machine, err := partner.NewMachineSupplier("11444777000161", "Macchine SRL", "", "", "Italy")
		require.NoError(t, err)

		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)
		repo.On("FindByKind", mock.Anything, partner.SupplierKindMachine).Return([]partner.Supplier{*machine}, nil)

		page, err := service.List(context.Background(), SupplierListFilter{Kind: "machine"})

		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Macchine SRL", page.Items[0].Name)
		assert.Equal(t, "Italy", page.Items[0].CountryOfOrigin)
	})
}

func TestSupplierService_Delete(t *testing.T) {
	t.Run("returns not found for unknown supplier", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "Delete")
	})
}
