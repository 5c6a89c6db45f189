package partner

import (
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// Event type constants for supplier events
const (
	EventTypeSupplierCreated = "partner.supplier.created"
	EventTypeSupplierUpdated = "partner.supplier.updated"
)

// AggregateTypeSupplier is the aggregate type name for suppliers
const AggregateTypeSupplier = "supplier"

// SupplierCreatedEvent is raised when a supplier is registered
type SupplierCreatedEvent struct {
	shared.BaseDomainEvent
	CNPJ string       `json:"cnpj"`
	Name string       `json:"name"`
	Kind SupplierKind `json:"kind"`
}

// NewSupplierCreatedEvent creates a new supplier created event
func NewSupplierCreatedEvent(s *Supplier) *SupplierCreatedEvent {
	return &SupplierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierCreated, AggregateTypeSupplier, s.ID),
		CNPJ:            s.CNPJ,
		Name:            s.Name,
		Kind:            s.Kind,
	}
}

// SupplierUpdatedEvent is raised when supplier information changes
type SupplierUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewSupplierUpdatedEvent creates a new supplier updated event
func NewSupplierUpdatedEvent(s *Supplier) *SupplierUpdatedEvent {
	return &SupplierUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierUpdated, AggregateTypeSupplier, s.ID),
		Name:            s.Name,
	}
}
