package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductKind distinguishes the two product families sold by the shop
type ProductKind string

const (
	ProductKindCoffee  ProductKind = "coffee"
	ProductKindMachine ProductKind = "machine"
)

// IsValid checks if the product kind is valid
func (k ProductKind) IsValid() bool {
	return k == ProductKindCoffee || k == ProductKindMachine
}

// ProductStatus represents the lifecycle status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// CoffeeDetails holds the attributes specific to coffee products
type CoffeeDetails struct {
	Origin             string       `gorm:"type:varchar(100)"`
	Variety            string       `gorm:"type:varchar(100)"`
	AltitudeMeters     int          `gorm:"not null;default:0"`
	Grind              string       `gorm:"type:varchar(50)"`
	TastingNotes       string       `gorm:"type:text"`
	RecommendedProfile TasteProfile `gorm:"type:varchar(30)"`
}

// Product represents a sellable item in the catalog.
// It is the aggregate root for both coffees and machines; coffee-specific
// attributes live in the embedded CoffeeDetails and are zero-valued for
// machines.
type Product struct {
	shared.BaseAggregateRoot
	Code           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string          `gorm:"type:varchar(200);not null"`
	Kind           ProductKind     `gorm:"type:varchar(20);not null"`
	Status         ProductStatus   `gorm:"type:varchar(20);not null;default:'active'"`
	PurchasePrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SellingPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ManufacturedAt time.Time       `gorm:"not null"`
	SupplierID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Coffee         CoffeeDetails   `gorm:"embedded;embeddedPrefix:coffee_"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewCoffeeProduct creates a coffee product with its tasting attributes
func NewCoffeeProduct(code, name string, purchasePrice, sellingPrice decimal.Decimal,
	manufacturedAt time.Time, supplierID uuid.UUID, details CoffeeDetails) (*Product, error) {
	p, err := newProduct(code, name, ProductKindCoffee, purchasePrice, sellingPrice, manufacturedAt, supplierID)
	if err != nil {
		return nil, err
	}
	if details.AltitudeMeters < 0 {
		return nil, shared.NewDomainError("INVALID_ALTITUDE", "Altitude cannot be negative")
	}
	if details.RecommendedProfile != "" && !details.RecommendedProfile.IsValid() {
		return nil, shared.NewDomainError("INVALID_TASTE_PROFILE",
			"Recommended profile '"+details.RecommendedProfile.String()+"' does not exist")
	}
	p.Coffee = details

	p.RecordEvent(NewProductCreatedEvent(p))
	return p, nil
}

// NewMachineProduct creates a coffee machine product
func NewMachineProduct(code, name string, purchasePrice, sellingPrice decimal.Decimal,
	manufacturedAt time.Time, supplierID uuid.UUID) (*Product, error) {
	p, err := newProduct(code, name, ProductKindMachine, purchasePrice, sellingPrice, manufacturedAt, supplierID)
	if err != nil {
		return nil, err
	}

	p.RecordEvent(NewProductCreatedEvent(p))
	return p, nil
}

func newProduct(code, name string, kind ProductKind, purchasePrice, sellingPrice decimal.Decimal,
	manufacturedAt time.Time, supplierID uuid.UUID) (*Product, error) {
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_PRODUCT_KIND", "Product kind must be coffee or machine")
	}
	if purchasePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Product must reference a supplier")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Kind:              kind,
		Status:            ProductStatusActive,
		PurchasePrice:     purchasePrice,
		SellingPrice:      sellingPrice,
		ManufacturedAt:    manufacturedAt,
		SupplierID:        supplierID,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name string, manufacturedAt time.Time) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.ManufacturedAt = manufacturedAt
	p.Touch()

	p.RecordEvent(NewProductUpdatedEvent(p))
	return nil
}

// SetPrices updates both prices, rejecting negative values
func (p *Product) SetPrices(purchasePrice, sellingPrice decimal.Decimal) error {
	if purchasePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}
	if sellingPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}

	p.PurchasePrice = purchasePrice
	p.SellingPrice = sellingPrice
	p.Touch()

	p.RecordEvent(NewProductPriceChangedEvent(p))
	return nil
}

// SetSellingPrice updates only the selling price
func (p *Product) SetSellingPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}

	p.SellingPrice = price
	p.Touch()

	p.RecordEvent(NewProductPriceChangedEvent(p))
	return nil
}

// UpdateCoffeeDetails replaces the coffee attributes.
// Fails for machine products.
func (p *Product) UpdateCoffeeDetails(details CoffeeDetails) error {
	if p.Kind != ProductKindCoffee {
		return shared.NewDomainError("NOT_A_COFFEE", "Only coffee products carry tasting attributes")
	}
	if details.AltitudeMeters < 0 {
		return shared.NewDomainError("INVALID_ALTITUDE", "Altitude cannot be negative")
	}
	if details.RecommendedProfile != "" && !details.RecommendedProfile.IsValid() {
		return shared.NewDomainError("INVALID_TASTE_PROFILE",
			"Recommended profile '"+details.RecommendedProfile.String()+"' does not exist")
	}

	p.Coffee = details
	p.Touch()

	p.RecordEvent(NewProductUpdatedEvent(p))
	return nil
}

// Discontinue marks the product as no longer sold
func (p *Product) Discontinue() error {
	if p.Status == ProductStatusDiscontinued {
		return shared.NewDomainError("ALREADY_DISCONTINUED", "Product is already discontinued")
	}

	p.Status = ProductStatusDiscontinued
	p.Touch()

	p.RecordEvent(NewProductDiscontinuedEvent(p))
	return nil
}

// Reactivate returns a discontinued product to the active catalog
func (p *Product) Reactivate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	p.Status = ProductStatusActive
	p.Touch()

	p.RecordEvent(NewProductUpdatedEvent(p))
	return nil
}

// UnitProfit returns the difference between selling and purchase price
func (p *Product) UnitProfit() decimal.Decimal {
	return p.SellingPrice.Sub(p.PurchasePrice)
}

// IsActive returns true if the product can be sold
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// IsCoffee returns true for coffee products
func (p *Product) IsCoffee() bool {
	return p.Kind == ProductKindCoffee
}

// IsMachine returns true for machine products
func (p *Product) IsMachine() bool {
	return p.Kind == ProductKindMachine
}

func validateProductCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	return nil
}

func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
