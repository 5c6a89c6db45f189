package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*partner.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.Customer], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[partner.Customer]), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("Ana Souza", "ana@example.com", "secret123",
		decimal.NewFromInt(100), catalog.TasteProfileSweetMild)
	require.NoError(t, err)
	customer.ClearEvents()
	return customer
}

// =============================================================================
// CustomerService Tests
// =============================================================================

func TestCustomerService_Create(t *testing.T) {
	t.Run("registers customer and hides the password hash", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		repo.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Customer")).Return(nil)

		resp, err := service.Create(context.Background(), CreateCustomerRequest{
			Name:           "Ana Souza",
			Email:          "ana@example.com",
			Password:       "secret123",
			InitialBalance: decimal.NewFromInt(50),
			Profile:        "sweet_mild",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", resp.Name)
		assert.Equal(t, "sweet_mild", resp.Profile)
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(50)))
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		repo.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(true, nil)

		_, err := service.Create(context.Background(), CreateCustomerRequest{
			Name:     "Ana Souza",
			Email:    "ana@example.com",
			Password: "secret123",
			Profile:  "sweet_mild",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects unknown taste profile", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		repo.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(false, nil)

		_, err := service.Create(context.Background(), CreateCustomerRequest{
			Name:     "Ana Souza",
			Email:    "ana@example.com",
			Password: "secret123",
			Profile:  "espresso_lover",
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestCustomerService_Deposit(t *testing.T) {
	t.Run("credits the balance", func(t *testing.T) {
		customer := newTestCustomer(t)
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		repo.On("Save", mock.Anything, customer).Return(nil)

		resp, err := service.Deposit(context.Background(), customer.ID, DepositRequest{
			Amount: decimal.NewFromInt(25),
		})

		require.NoError(t, err)
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(125)))
		repo.AssertExpectations(t)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		customer := newTestCustomer(t)
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)
		repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		_, err := service.Deposit(context.Background(), customer.ID, DepositRequest{
			Amount: decimal.NewFromInt(-5),
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestCustomerService_ChangePassword(t *testing.T) {
	t.Run("replaces the password when the current one matches", func(t *testing.T) {
		customer := newTestCustomer(t)
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		repo.On("Save", mock.Anything, customer).Return(nil)

		err := service.ChangePassword(context.Background(), customer.ID, ChangePasswordRequest{
			CurrentPassword: "secret123",
			NewPassword:     "evenbetter456",
		})

		require.NoError(t, err)
		assert.True(t, customer.VerifyPassword("evenbetter456"))
		repo.AssertExpectations(t)
	})

	t.Run("fails on wrong current password", func(t *testing.T) {
		customer := newTestCustomer(t)
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)
		repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		err := service.ChangePassword(context.Background(), customer.ID, ChangePasswordRequest{
			CurrentPassword: "wrongpass",
			NewPassword:     "evenbetter456",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestCustomerService_Delete(t *testing.T) {
	t.Run("removes the customer after password verification", func(t *testing.T) {
		customer := newTestCustomer(t)
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		repo.On("Delete", mock.Anything, customer.ID).Return(nil)

		err := service.Delete(context.Background(), customer.ID, DeleteCustomerRequest{Password: "secret123"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("refuses deletion with a wrong password", func(t *testing.T) {
		customer := newTestCustomer(t)
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)
		repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		err := service.Delete(context.Background(), customer.ID, DeleteCustomerRequest{Password: "nope"})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
		repo.AssertNotCalled(t, "Delete")
	})
}

func TestCustomerService_Recommendations(t *testing.T) {
	customer := newTestCustomer(t)
	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo, nil)
	repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

	resp, err := service.Recommendations(context.Background(), customer.ID)

	require.NoError(t, err)
	assert.Equal(t, "sweet_mild", resp.Profile)
	assert.NotEmpty(t, resp.Recommendations)
}
