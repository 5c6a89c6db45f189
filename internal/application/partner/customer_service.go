package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo   partner.CustomerRepository
	eventPublisher shared.EventPublisher
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, eventPublisher shared.EventPublisher) *CustomerService {
	return &CustomerService{
		customerRepo:   customerRepo,
		eventPublisher: eventPublisher,
	}
}

// Create registers a customer with an initial balance
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	exists, err := s.customerRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")
	}

	profile, err := catalog.NewTasteProfile(req.Profile)
	if err != nil {
		return nil, err
	}

	customer, err := partner.NewCustomer(req.Name, req.Email, req.Password, req.InitialBalance, profile)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, customer)

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// GetByEmail retrieves a customer by email
func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// List returns customers with pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) (*shared.Paginated[CustomerResponse], error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	}
	page, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]CustomerResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToCustomerResponse(&page.Items[i])
	}
	result := shared.NewPaginated(items, page.Total, page.Page, page.PageSize)
	return &result, nil
}

// Update modifies a customer's name, email, or taste profile
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := customer.Name
	if req.Name != nil {
		name = *req.Name
	}
	email := customer.Email
	if req.Email != nil && *req.Email != customer.Email {
		exists, err := s.customerRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")
		}
		email = *req.Email
	}
	profile := customer.Profile
	if req.Profile != nil {
		profile, err = catalog.NewTasteProfile(*req.Profile)
		if err != nil {
			return nil, err
		}
	}

	if err := customer.Update(name, email, profile); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, customer)

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Deposit credits an amount to the customer's balance
func (s *CustomerService) Deposit(ctx context.Context, id uuid.UUID, req DepositRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.AddBalance(req.Amount); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, customer)

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// ChangePassword replaces the customer's password after verifying the current one
func (s *CustomerService) ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := customer.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return s.customerRepo.Save(ctx, customer)
}

// Delete removes a customer after verifying their current password
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID, req DeleteCustomerRequest) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !customer.VerifyPassword(req.Password) {
		return shared.ErrInvalidCredentials
	}
	return s.customerRepo.Delete(ctx, id)
}

// Recommendations returns the coffee suggestions for the customer's taste profile
func (s *CustomerService) Recommendations(ctx context.Context, id uuid.UUID) (*RecommendationsResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RecommendationsResponse{
		Profile:         customer.Profile.String(),
		Recommendations: customer.RecommendedCoffees(),
	}, nil
}

func (s *CustomerService) publishEvents(ctx context.Context, customer *partner.Customer) {
	if s.eventPublisher == nil {
		return
	}
	events := customer.PendingEvents()
	if len(events) == 0 {
		return
	}
	// event delivery is best effort; persistence already succeeded
	_ = s.eventPublisher.Publish(ctx, events...)
	customer.ClearEvents()
}
