package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Product DTOs
// =============================================================================

// CoffeeDetailsRequest carries the coffee-specific attributes
type CoffeeDetailsRequest struct {
	Origin             string `json:"origin" binding:"max=100"`
	Variety            string `json:"variety" binding:"max=100"`
	AltitudeMeters     int    `json:"altitude_meters" binding:"min=0"`
	Grind              string `json:"grind" binding:"max=50"`
	TastingNotes       string `json:"tasting_notes"`
	RecommendedProfile string `json:"recommended_profile" binding:"omitempty,oneof=sweet_mild bright_fruity bold_full_bodied balanced_complete"`
}

// CreateProductRequest represents a request to add a product to the catalog
type CreateProductRequest struct {
	Code           string                `json:"code" binding:"required,min=1,max=50"`
	Name           string                `json:"name" binding:"required,min=1,max=200"`
	Kind           string                `json:"kind" binding:"required,oneof=coffee machine"`
	PurchasePrice  decimal.Decimal       `json:"purchase_price" binding:"required"`
	SellingPrice   decimal.Decimal       `json:"selling_price" binding:"required"`
	ManufacturedAt time.Time             `json:"manufactured_at" binding:"required"`
	SupplierID     uuid.UUID             `json:"supplier_id" binding:"required"`
	Coffee         *CoffeeDetailsRequest `json:"coffee"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name           *string               `json:"name" binding:"omitempty,min=1,max=200"`
	ManufacturedAt *time.Time            `json:"manufactured_at"`
	Coffee         *CoffeeDetailsRequest `json:"coffee"`
}

// UpdatePricesRequest represents a request to change a product's prices
type UpdatePricesRequest struct {
	PurchasePrice decimal.Decimal `json:"purchase_price" binding:"required"`
	SellingPrice  decimal.Decimal `json:"selling_price" binding:"required"`
}

// ProductListFilter carries list filtering options
type ProductListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Kind     string `form:"kind" binding:"omitempty,oneof=coffee machine"`
}

// CoffeeDetailsResponse mirrors the coffee attributes in responses
type CoffeeDetailsResponse struct {
	Origin             string `json:"origin"`
	Variety            string `json:"variety"`
	AltitudeMeters     int    `json:"altitude_meters"`
	Grind              string `json:"grind"`
	TastingNotes       string `json:"tasting_notes"`
	RecommendedProfile string `json:"recommended_profile,omitempty"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID             uuid.UUID              `json:"id"`
	Code           string                 `json:"code"`
	Name           string                 `json:"name"`
	Kind           string                 `json:"kind"`
	Status         string                 `json:"status"`
	PurchasePrice  decimal.Decimal        `json:"purchase_price"`
	SellingPrice   decimal.Decimal        `json:"selling_price"`
	UnitProfit     decimal.Decimal        `json:"unit_profit"`
	ManufacturedAt time.Time              `json:"manufactured_at"`
	SupplierID     uuid.UUID              `json:"supplier_id"`
	Coffee         *CoffeeDetailsResponse `json:"coffee,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	resp := ProductResponse{
		ID:             p.ID,
		Code:           p.Code,
		Name:           p.Name,
		Kind:           string(p.Kind),
		Status:         string(p.Status),
		PurchasePrice:  p.PurchasePrice,
		SellingPrice:   p.SellingPrice,
		UnitProfit:     p.UnitProfit(),
		ManufacturedAt: p.ManufacturedAt,
		SupplierID:     p.SupplierID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.IsCoffee() {
		resp.Coffee = &CoffeeDetailsResponse{
			Origin:             p.Coffee.Origin,
			Variety:            p.Coffee.Variety,
			AltitudeMeters:     p.Coffee.AltitudeMeters,
			Grind:              p.Coffee.Grind,
			TastingNotes:       p.Coffee.TastingNotes,
			RecommendedProfile: p.Coffee.RecommendedProfile.String(),
		}
	}
	return resp
}

func toCoffeeDetails(req *CoffeeDetailsRequest) catalog.CoffeeDetails {
	if req == nil {
		return catalog.CoffeeDetails{}
	}
	return catalog.CoffeeDetails{
		Origin:             req.Origin,
		Variety:            req.Variety,
		AltitudeMeters:     req.AltitudeMeters,
		Grind:              req.Grind,
		TastingNotes:       req.TastingNotes,
		RecommendedProfile: catalog.TasteProfile(req.RecommendedProfile),
	}
}
