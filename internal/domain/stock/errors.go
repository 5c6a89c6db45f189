package stock

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// Errors returned by ledger operations
var (
	ErrProductNotTracked = shared.NewDomainError("PRODUCT_NOT_TRACKED", "Product is not tracked by the stock ledger")
	ErrInvalidQuantity   = shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
)

// InsufficientStockError reports a decrease that would drive a ledger
// entry negative. It carries the product and both quantities so callers
// can build precise messages.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Requested int
	Available int
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// Unwrap exposes the underlying domain error code for HTTP mapping
func (e *InsufficientStockError) Unwrap() error {
	return shared.NewDomainError("INSUFFICIENT_STOCK", e.Error())
}

// NewInsufficientStockError creates a new insufficient stock error
func NewInsufficientStockError(productID uuid.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}
