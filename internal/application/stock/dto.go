package stock

import (
	"github.com/google/uuid"
)

// RegisterStockRequest starts tracking a product in the ledger
type RegisterStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"min=0"`
}

// AdjustStockRequest carries the amount for a replenish or write-down
type AdjustStockRequest struct {
	Amount int `json:"amount" binding:"required,min=1"`
}

// StockItemResponse represents one tracked product and its quantity
type StockItemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity"`
}
