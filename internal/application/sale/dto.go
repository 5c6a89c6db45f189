package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// OpenSaleRequest starts a new sale for a customer
type OpenSaleRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
}

// AddItemRequest puts product units in the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// DecreaseItemRequest takes units off a cart line
type DecreaseItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// SaleListFilter carries list filtering options
type SaleListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status" binding:"omitempty,oneof=in_progress finalized"`
}

// SaleItemResponse represents one cart line in API responses
type SaleItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID           uuid.UUID          `json:"id"`
	Number       string             `json:"number"`
	CustomerID   uuid.UUID          `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	Status       string             `json:"status"`
	TotalDue     decimal.Decimal    `json:"total_due"`
	Items        []SaleItemResponse `json:"items"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// DecreaseItemResponse reports what the decrease actually did
type DecreaseItemResponse struct {
	Outcome      string       `json:"outcome"`
	UnitsRemoved int          `json:"units_removed"`
	Sale         SaleResponse `json:"sale"`
}

// ToSaleResponse converts a domain sale to a response DTO
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i := range s.Items {
		item := &s.Items[i]
		items[i] = SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal(),
		}
	}
	return SaleResponse{
		ID:           s.ID,
		Number:       s.Number,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		Status:       s.Status.String(),
		TotalDue:     s.TotalDue,
		Items:        items,
		CompletedAt:  s.CompletedAt,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
