package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to register a supplier
type CreateSupplierRequest struct {
	CNPJ    string `json:"cnpj" binding:"required"`
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Kind    string `json:"kind" binding:"required,oneof=coffee machine"`
	Address string `json:"address"`
	Phone   string `json:"phone" binding:"max=50"`
	// CoffeeType applies to coffee suppliers, CountryOfOrigin to machine suppliers
	CoffeeType      string `json:"coffee_type" binding:"max=100"`
	CountryOfOrigin string `json:"country_of_origin" binding:"max=100"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address         *string `json:"address"`
	Phone           *string `json:"phone" binding:"omitempty,max=50"`
	CoffeeType      *string `json:"coffee_type" binding:"omitempty,max=100"`
	CountryOfOrigin *string `json:"country_of_origin" binding:"omitempty,max=100"`
}

// SupplierListFilter carries list filtering options
type SupplierListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Kind     string `form:"kind" binding:"omitempty,oneof=coffee machine"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID              uuid.UUID `json:"id"`
	CNPJ            string    `json:"cnpj"`
	Name            string    `json:"name"`
	Kind            string    `json:"kind"`
	Address         string    `json:"address,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	CoffeeType      string    `json:"coffee_type,omitempty"`
	CountryOfOrigin string    `json:"country_of_origin,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToSupplierResponse converts a domain supplier to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:              s.ID,
		CNPJ:            s.CNPJ,
		Name:            s.Name,
		Kind:            string(s.Kind),
		Address:         s.Address,
		Phone:           s.Phone,
		CoffeeType:      s.CoffeeType,
		CountryOfOrigin: s.CountryOfOrigin,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to register a customer
type CreateCustomerRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=200"`
	Email          string          `json:"email" binding:"required,email"`
	Password       string          `json:"password" binding:"required,min=6"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Profile        string          `json:"profile" binding:"required,oneof=sweet_mild bright_fruity bold_full_bodied balanced_complete"`
}

// UpdateCustomerRequest represents a request to update a customer's profile data
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Profile *string `json:"profile" binding:"omitempty,oneof=sweet_mild bright_fruity bold_full_bodied balanced_complete"`
}

// DepositRequest represents a balance top-up
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ChangePasswordRequest carries the current and the replacement password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// DeleteCustomerRequest requires the current password to confirm removal
type DeleteCustomerRequest struct {
	Password string `json:"password" binding:"required"`
}

// CustomerListFilter carries list filtering options
type CustomerListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// CustomerResponse represents a customer in API responses.
// The password hash is never exposed.
type CustomerResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Balance   decimal.Decimal `json:"balance"`
	Profile   string          `json:"profile"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Balance:   c.Balance,
		Profile:   c.Profile.String(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// RecommendationsResponse lists suggested coffees for a customer's taste profile
type RecommendationsResponse struct {
	Profile         string   `json:"profile"`
	Recommendations []string `json:"recommendations"`
}
