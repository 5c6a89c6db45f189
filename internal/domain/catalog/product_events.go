package catalog

import (
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// Event type constants for product events
const (
	EventTypeProductCreated      = "catalog.product.created"
	EventTypeProductUpdated      = "catalog.product.updated"
	EventTypeProductPriceChanged = "catalog.product.price_changed"
	EventTypeProductDiscontinued = "catalog.product.discontinued"
)

// AggregateTypeProduct is the aggregate type name for products
const AggregateTypeProduct = "product"

// ProductCreatedEvent is raised when a new product is added to the catalog
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Code string      `json:"code"`
	Name string      `json:"name"`
	Kind ProductKind `json:"kind"`
}

// NewProductCreatedEvent creates a new product created event
func NewProductCreatedEvent(p *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, p.ID),
		Code:            p.Code,
		Name:            p.Name,
		Kind:            p.Kind,
	}
}

// ProductUpdatedEvent is raised when product information changes
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewProductUpdatedEvent creates a new product updated event
func NewProductUpdatedEvent(p *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, p.ID),
		Name:            p.Name,
	}
}

// ProductPriceChangedEvent is raised when prices change
type ProductPriceChangedEvent struct {
	shared.BaseDomainEvent
	PurchasePrice string `json:"purchase_price"`
	SellingPrice  string `json:"selling_price"`
}

// NewProductPriceChangedEvent creates a new price changed event
func NewProductPriceChangedEvent(p *Product) *ProductPriceChangedEvent {
	return &ProductPriceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductPriceChanged, AggregateTypeProduct, p.ID),
		PurchasePrice:   p.PurchasePrice.String(),
		SellingPrice:    p.SellingPrice.String(),
	}
}

// ProductDiscontinuedEvent is raised when a product leaves the catalog
type ProductDiscontinuedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
}

// NewProductDiscontinuedEvent creates a new product discontinued event
func NewProductDiscontinuedEvent(p *Product) *ProductDiscontinuedEvent {
	return &ProductDiscontinuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDiscontinued, AggregateTypeProduct, p.ID),
		Code:            p.Code,
	}
}
