package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo   partner.SupplierRepository
	eventPublisher shared.EventPublisher
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, eventPublisher shared.EventPublisher) *SupplierService {
	return &SupplierService{
		supplierRepo:   supplierRepo,
		eventPublisher: eventPublisher,
	}
}

// Create registers a supplier. The CNPJ is normalized first so two
// spellings of the same number cannot coexist.
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	cnpj, err := partner.NormalizeCNPJ(req.CNPJ)
	if err != nil {
		return nil, err
	}

	exists, err := s.supplierRepo.ExistsByCNPJ(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this CNPJ already exists")
	}

	var supplier *partner.Supplier
	switch partner.SupplierKind(req.Kind) {
	case partner.SupplierKindCoffee:
		supplier, err = partner.NewCoffeeSupplier(cnpj, req.Name, req.Address, req.Phone, req.CoffeeType)
	case partner.SupplierKindMachine:
		supplier, err = partner.NewMachineSupplier(cnpj, req.Name, req.Address, req.Phone, req.CountryOfOrigin)
	default:
		return nil, shared.NewDomainError("INVALID_SUPPLIER_KIND", "Supplier kind must be coffee or machine")
	}
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, supplier)

	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// GetByCNPJ retrieves a supplier by its CNPJ
func (s *SupplierService) GetByCNPJ(ctx context.Context, cnpj string) (*SupplierResponse, error) {
	normalized, err := partner.NormalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.FindByCNPJ(ctx, normalized)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// List returns suppliers with pagination, optionally filtered by kind
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) (*shared.Paginated[SupplierResponse], error) {
	if filter.Kind != "" {
		suppliers, err := s.supplierRepo.FindByKind(ctx, partner.SupplierKind(filter.Kind))
		if err != nil {
			return nil, err
		}
		items := make([]SupplierResponse, len(suppliers))
		for i := range suppliers {
			items[i] = ToSupplierResponse(&suppliers[i])
		}
		result := shared.NewPaginated(items, int64(len(items)), 1, len(items))
		return &result, nil
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	}
	page, err := s.supplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]SupplierResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToSupplierResponse(&page.Items[i])
	}
	result := shared.NewPaginated(items, page.Total, page.Page, page.PageSize)
	return &result, nil
}

// Update modifies a supplier's contact data and kind-specific fields
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := supplier.Name
	if req.Name != nil {
		name = *req.Name
	}
	address := supplier.Address
	if req.Address != nil {
		address = *req.Address
	}
	phone := supplier.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	if err := supplier.Update(name, address, phone); err != nil {
		return nil, err
	}

	if req.CoffeeType != nil {
		if err := supplier.SetCoffeeType(*req.CoffeeType); err != nil {
			return nil, err
		}
	}
	if req.CountryOfOrigin != nil {
		if err := supplier.SetCountryOfOrigin(*req.CountryOfOrigin); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, supplier)

	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

func (s *SupplierService) publishEvents(ctx context.Context, supplier *partner.Supplier) {
	if s.eventPublisher == nil {
		return
	}
	events := supplier.PendingEvents()
	if len(events) == 0 {
		return
	}
	// event delivery is best effort; persistence already succeeded
	_ = s.eventPublisher.Publish(ctx, events...)
	supplier.ClearEvents()
}
