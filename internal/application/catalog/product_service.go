package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// ProductService handles catalog business operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	supplierRepo   partner.SupplierRepository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, supplierRepo partner.SupplierRepository, eventPublisher shared.EventPublisher) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		supplierRepo:   supplierRepo,
		eventPublisher: eventPublisher,
	}
}

// Create adds a product to the catalog.
// The referenced supplier must exist and supply the product's kind:
// coffees come from coffee suppliers, machines from machine suppliers.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this code already exists")
	}

	supplier, err := s.supplierRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	kind := catalog.ProductKind(req.Kind)
	var product *catalog.Product
	switch kind {
	case catalog.ProductKindCoffee:
		if !supplier.SuppliesCoffee() {
			return nil, shared.NewDomainError("SUPPLIER_KIND_MISMATCH", "Coffee products require a coffee supplier")
		}
		product, err = catalog.NewCoffeeProduct(req.Code, req.Name, req.PurchasePrice, req.SellingPrice,
			req.ManufacturedAt, supplier.ID, toCoffeeDetails(req.Coffee))
	case catalog.ProductKindMachine:
		if !supplier.SuppliesMachines() {
			return nil, shared.NewDomainError("SUPPLIER_KIND_MISMATCH", "Machine products require a machine supplier")
		}
		product, err = catalog.NewMachineProduct(req.Code, req.Name, req.PurchasePrice, req.SellingPrice,
			req.ManufacturedAt, supplier.ID)
	default:
		return nil, shared.NewDomainError("INVALID_PRODUCT_KIND", "Product kind must be coffee or machine")
	}
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, product)

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByCode retrieves a product by its catalog code
func (s *ProductService) GetByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (shared.Paginated[ProductResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search

	var (
		page shared.Paginated[catalog.Product]
		err  error
	)
	if filter.Kind != "" {
		page, err = s.productRepo.FindByKind(ctx, catalog.ProductKind(filter.Kind), domainFilter)
	} else {
		page, err = s.productRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	items := make([]ProductResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, ToProductResponse(&page.Items[i]))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// Update changes a product's basic information and, for coffees, its
// tasting attributes
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	manufacturedAt := product.ManufacturedAt
	if req.ManufacturedAt != nil {
		manufacturedAt = *req.ManufacturedAt
	}
	if err := product.Update(name, manufacturedAt); err != nil {
		return nil, err
	}

	if req.Coffee != nil {
		if err := product.UpdateCoffeeDetails(toCoffeeDetails(req.Coffee)); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, product)

	resp := ToProductResponse(product)
	return &resp, nil
}

// UpdatePrices changes a product's purchase and selling prices
func (s *ProductService) UpdatePrices(ctx context.Context, id uuid.UUID, req UpdatePricesRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.SetPrices(req.PurchasePrice, req.SellingPrice); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, product)

	resp := ToProductResponse(product)
	return &resp, nil
}

// Discontinue removes a product from the active catalog. The stock
// context reacts to the published event and drops the ledger entry.
func (s *ProductService) Discontinue(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Discontinue(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, product)

	resp := ToProductResponse(product)
	return &resp, nil
}

// Reactivate returns a discontinued product to the active catalog
func (s *ProductService) Reactivate(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Reactivate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, product)

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product permanently. The discontinued event is
// published first so the stock ledger entry is dropped as well.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if product.IsActive() {
		if err := product.Discontinue(); err != nil {
			return err
		}
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishEvents(ctx, product)
	return nil
}

// Recommendations returns the coffee styles for a taste profile
func (s *ProductService) Recommendations(profile string) ([]string, error) {
	p, err := catalog.NewTasteProfile(profile)
	if err != nil {
		return nil, err
	}
	return p.Recommendations(), nil
}

func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	if s.eventPublisher == nil {
		return
	}
	events := product.PendingEvents()
	if len(events) == 0 {
		return
	}
	// event delivery is best effort; persistence already succeeded
	_ = s.eventPublisher.Publish(ctx, events...)
	product.ClearEvents()
}
