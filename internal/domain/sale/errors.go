package sale

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// Errors returned by sale operations
var (
	ErrSaleNotInProgress = shared.NewDomainError("SALE_NOT_IN_PROGRESS", "Sale is not in progress")
	ErrEmptyCart         = shared.NewDomainError("EMPTY_CART", "Cannot finalize a sale with an empty cart")
	ErrInvalidQuantity   = shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
)

// NewProductNotInStockError reports a cart product that the stock ledger
// does not track at finalization time
func NewProductNotInStockError(productID uuid.UUID, name string) *shared.DomainError {
	return shared.NewDomainError("PRODUCT_NOT_IN_STOCK",
		fmt.Sprintf("Product '%s' (%s) is not available in stock", name, productID))
}
