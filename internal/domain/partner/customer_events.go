package partner

import (
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event type constants for customer events
const (
	EventTypeCustomerCreated        = "partner.customer.created"
	EventTypeCustomerUpdated        = "partner.customer.updated"
	EventTypeCustomerBalanceChanged = "partner.customer.balance_changed"
)

// AggregateTypeCustomer is the aggregate type name for customers
const AggregateTypeCustomer = "customer"

// CustomerCreatedEvent is raised when a customer registers
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewCustomerCreatedEvent creates a new customer created event
func NewCustomerCreatedEvent(c *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, AggregateTypeCustomer, c.ID),
		Name:            c.Name,
		Email:           c.Email,
	}
}

// CustomerUpdatedEvent is raised when customer information changes
type CustomerUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCustomerUpdatedEvent creates a new customer updated event
func NewCustomerUpdatedEvent(c *Customer) *CustomerUpdatedEvent {
	return &CustomerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerUpdated, AggregateTypeCustomer, c.ID),
		Name:            c.Name,
	}
}

// CustomerBalanceChangedEvent is raised on every balance credit or debit.
// Delta is positive for credits and negative for debits.
type CustomerBalanceChangedEvent struct {
	shared.BaseDomainEvent
	Delta      decimal.Decimal `json:"delta"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// NewCustomerBalanceChangedEvent creates a new balance changed event
func NewCustomerBalanceChangedEvent(c *Customer, delta decimal.Decimal) *CustomerBalanceChangedEvent {
	return &CustomerBalanceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerBalanceChanged, AggregateTypeCustomer, c.ID),
		Delta:           delta,
		NewBalance:      c.Balance,
	}
}
