package sale

import (
	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event type constants for sale events
const (
	EventTypeSaleOpened        = "sale.opened"
	EventTypeSaleItemAdded     = "sale.item_added"
	EventTypeSaleItemRemoved   = "sale.item_removed"
	EventTypeSaleItemDecreased = "sale.item_decreased"
	EventTypeSaleFinalized     = "sale.finalized"
)

// AggregateTypeSale is the aggregate type name for sales
const AggregateTypeSale = "sale"

// SaleOpenedEvent is raised when a new sale starts
type SaleOpenedEvent struct {
	shared.BaseDomainEvent
	Number     string    `json:"number"`
	CustomerID uuid.UUID `json:"customer_id"`
}

// NewSaleOpenedEvent creates a new sale opened event
func NewSaleOpenedEvent(s *Sale) *SaleOpenedEvent {
	return &SaleOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleOpened, AggregateTypeSale, s.ID),
		Number:          s.Number,
		CustomerID:      s.CustomerID,
	}
}

// SaleItemAddedEvent is raised when a product enters the cart or its
// line quantity grows
type SaleItemAddedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	TotalDue  decimal.Decimal `json:"total_due"`
}

// NewSaleItemAddedEvent creates a new item added event
func NewSaleItemAddedEvent(s *Sale, productID uuid.UUID, quantity int) *SaleItemAddedEvent {
	return &SaleItemAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleItemAdded, AggregateTypeSale, s.ID),
		ProductID:       productID,
		Quantity:        quantity,
		TotalDue:        s.TotalDue,
	}
}

// SaleItemRemovedEvent is raised when a cart line disappears
type SaleItemRemovedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID       `json:"product_id"`
	TotalDue  decimal.Decimal `json:"total_due"`
}

// NewSaleItemRemovedEvent creates a new item removed event
func NewSaleItemRemovedEvent(s *Sale, productID uuid.UUID) *SaleItemRemovedEvent {
	return &SaleItemRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleItemRemoved, AggregateTypeSale, s.ID),
		ProductID:       productID,
		TotalDue:        s.TotalDue,
	}
}

// SaleItemDecreasedEvent is raised when a cart line shrinks but stays
type SaleItemDecreasedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	TotalDue  decimal.Decimal `json:"total_due"`
}

// NewSaleItemDecreasedEvent creates a new item decreased event
func NewSaleItemDecreasedEvent(s *Sale, productID uuid.UUID, quantity int) *SaleItemDecreasedEvent {
	return &SaleItemDecreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleItemDecreased, AggregateTypeSale, s.ID),
		ProductID:       productID,
		Quantity:        quantity,
		TotalDue:        s.TotalDue,
	}
}

// SaleFinalizedEvent is raised when a sale is settled
type SaleFinalizedEvent struct {
	shared.BaseDomainEvent
	Number     string          `json:"number"`
	CustomerID uuid.UUID       `json:"customer_id"`
	TotalDue   decimal.Decimal `json:"total_due"`
}

// NewSaleFinalizedEvent creates a new sale finalized event
func NewSaleFinalizedEvent(s *Sale) *SaleFinalizedEvent {
	return &SaleFinalizedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleFinalized, AggregateTypeSale, s.ID),
		Number:          s.Number,
		CustomerID:      s.CustomerID,
		TotalDue:        s.TotalDue,
	}
}
