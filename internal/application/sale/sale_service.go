package sale

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/sale"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/stock"
)

// LedgerLocker provides exclusive access to the live stock ledger.
// Finalization needs the check-then-commit sequence to run without
// interleaved stock mutations.
type LedgerLocker interface {
	Locked(fn func(ledger *stock.Ledger) error) error
}

// SaleService drives the sale lifecycle from opening a cart to finalization
type SaleService struct {
	saleRepo       sale.SaleRepository
	customerRepo   partner.CustomerRepository
	productRepo    catalog.ProductRepository
	ledger         LedgerLocker
	eventPublisher shared.EventPublisher
}

// NewSaleService creates a new SaleService
func NewSaleService(
	saleRepo sale.SaleRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	ledger LedgerLocker,
	eventPublisher shared.EventPublisher,
) *SaleService {
	return &SaleService{
		saleRepo:       saleRepo,
		customerRepo:   customerRepo,
		productRepo:    productRepo,
		ledger:         ledger,
		eventPublisher: eventPublisher,
	}
}

// Open starts a new sale for an existing customer
func (s *SaleService) Open(ctx context.Context, req OpenSaleRequest) (*SaleResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	newSale, err := sale.NewSale(customer.ID, customer.Name)
	if err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, newSale); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, newSale)

	resp := ToSaleResponse(newSale)
	return &resp, nil
}

// GetByID retrieves a sale by ID
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	found, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSaleResponse(found)
	return &resp, nil
}

// GetByNumber retrieves a sale by its human-readable number
func (s *SaleService) GetByNumber(ctx context.Context, number string) (*SaleResponse, error) {
	found, err := s.saleRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	resp := ToSaleResponse(found)
	return &resp, nil
}

// List returns sales with pagination, optionally filtered by status
func (s *SaleService) List(ctx context.Context, filter SaleListFilter) (*shared.Paginated[SaleResponse], error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}

	var page shared.Paginated[sale.Sale]
	var err error
	if filter.Status != "" {
		page, err = s.saleRepo.FindByStatus(ctx, sale.SaleStatus(filter.Status), domainFilter)
	} else {
		page, err = s.saleRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	items := make([]SaleResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToSaleResponse(&page.Items[i])
	}
	result := shared.NewPaginated(items, page.Total, page.Page, page.PageSize)
	return &result, nil
}

// ListByCustomer returns all sales of one customer
func (s *SaleService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]SaleResponse, error) {
	sales, err := s.saleRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	items := make([]SaleResponse, len(sales))
	for i := range sales {
		items[i] = ToSaleResponse(&sales[i])
	}
	return items, nil
}

// AddItem puts product units in the cart, merging with an existing line
func (s *SaleService) AddItem(ctx context.Context, saleID uuid.UUID, req AddItemRequest) (*SaleResponse, error) {
	current, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("PRODUCT_DISCONTINUED", "Discontinued products cannot be sold")
	}

	if err := current.AddProduct(product, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.saleRepo.Save(ctx, current); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, current)

	resp := ToSaleResponse(current)
	return &resp, nil
}

// RemoveItem deletes a product line from the cart. Absent lines are a no-op.
func (s *SaleService) RemoveItem(ctx context.Context, saleID, productID uuid.UUID) (*SaleResponse, error) {
	current, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := current.RemoveProduct(productID); err != nil {
		return nil, err
	}
	if err := s.saleRepo.Save(ctx, current); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, current)

	resp := ToSaleResponse(current)
	return &resp, nil
}

// DecreaseItem takes units off a cart line and reports what happened
func (s *SaleService) DecreaseItem(ctx context.Context, saleID, productID uuid.UUID, req DecreaseItemRequest) (*DecreaseItemResponse, error) {
	current, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	result, err := current.DecreaseQuantity(productID, req.Quantity)
	if err != nil {
		return nil, err
	}
	// A miss leaves the cart untouched, so there is nothing to save.
	if result.Outcome != sale.DecreaseOutcomeNotInCart {
		if err := s.saleRepo.Save(ctx, current); err != nil {
			return nil, err
		}
		s.publishEvents(ctx, current)
	}

	return &DecreaseItemResponse{
		Outcome:      string(result.Outcome),
		UnitsRemoved: result.UnitsRemoved,
		Sale:         ToSaleResponse(current),
	}, nil
}

// Finalize closes the sale: it validates the cart against the live stock
// ledger and the customer's balance, and on success commits the stock
// decrements and the balance debit together. Any failed check leaves
// sale, ledger, and balance untouched.
func (s *SaleService) Finalize(ctx context.Context, saleID uuid.UUID) (*SaleResponse, error) {
	current, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByID(ctx, current.CustomerID)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Locked(func(ledger *stock.Ledger) error {
		return current.Finalize(customer, ledger)
	}); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, current); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, current)
	s.publishCustomerEvents(ctx, customer)

	resp := ToSaleResponse(current)
	return &resp, nil
}

// Cancel deletes a sale that is still in progress. Finalized sales are
// immutable history and cannot be cancelled.
func (s *SaleService) Cancel(ctx context.Context, saleID uuid.UUID) error {
	current, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return err
	}

	if current.IsFinalized() {
		return sale.ErrSaleNotInProgress
	}
	return s.saleRepo.Delete(ctx, saleID)
}

func (s *SaleService) publishEvents(ctx context.Context, current *sale.Sale) {
	if s.eventPublisher == nil {
		return
	}
	events := current.PendingEvents()
	if len(events) == 0 {
		return
	}
	// event delivery is best effort; persistence already succeeded
	_ = s.eventPublisher.Publish(ctx, events...)
	current.ClearEvents()
}

func (s *SaleService) publishCustomerEvents(ctx context.Context, customer *partner.Customer) {
	if s.eventPublisher == nil {
		return
	}
	events := customer.PendingEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	customer.ClearEvents()
}
