package partner

import (
	"strings"

	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// SupplierKind distinguishes coffee bean suppliers from machine suppliers
type SupplierKind string

const (
	SupplierKindCoffee  SupplierKind = "coffee"
	SupplierKindMachine SupplierKind = "machine"
)

// IsValid checks if the supplier kind is valid
func (k SupplierKind) IsValid() bool {
	return k == SupplierKindCoffee || k == SupplierKindMachine
}

// Supplier represents a supplying company.
// CNPJ (the Brazilian company registration number) is the natural unique key.
// Coffee suppliers carry the type of coffee they provide; machine suppliers
// carry the country their machines come from.
type Supplier struct {
	shared.BaseAggregateRoot
	CNPJ            string       `gorm:"type:varchar(14);not null;uniqueIndex"`
	Name            string       `gorm:"type:varchar(200);not null"`
	Kind            SupplierKind `gorm:"type:varchar(20);not null"`
	Address         string       `gorm:"type:text"`
	Phone           string       `gorm:"type:varchar(50)"`
	CoffeeType      string       `gorm:"type:varchar(100)"`
	CountryOfOrigin string       `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewCoffeeSupplier creates a supplier of coffee beans
func NewCoffeeSupplier(cnpj, name, address, phone, coffeeType string) (*Supplier, error) {
	s, err := newSupplier(cnpj, name, SupplierKindCoffee, address, phone)
	if err != nil {
		return nil, err
	}
	s.CoffeeType = coffeeType

	s.RecordEvent(NewSupplierCreatedEvent(s))
	return s, nil
}

// NewMachineSupplier creates a supplier of coffee machines
func NewMachineSupplier(cnpj, name, address, phone, countryOfOrigin string) (*Supplier, error) {
	s, err := newSupplier(cnpj, name, SupplierKindMachine, address, phone)
	if err != nil {
		return nil, err
	}
	s.CountryOfOrigin = countryOfOrigin

	s.RecordEvent(NewSupplierCreatedEvent(s))
	return s, nil
}

func newSupplier(cnpj, name string, kind SupplierKind, address, phone string) (*Supplier, error) {
	normalized, err := NormalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_KIND", "Supplier kind must be coffee or machine")
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CNPJ:              normalized,
		Name:              name,
		Kind:              kind,
		Address:           address,
		Phone:             phone,
	}, nil
}

// Update updates the supplier's contact information
func (s *Supplier) Update(name, address, phone string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}

	s.Name = name
	s.Address = address
	s.Phone = phone
	s.Touch()

	s.RecordEvent(NewSupplierUpdatedEvent(s))
	return nil
}

// SetCoffeeType updates the coffee type for coffee suppliers
func (s *Supplier) SetCoffeeType(coffeeType string) error {
	if s.Kind != SupplierKindCoffee {
		return shared.NewDomainError("NOT_A_COFFEE_SUPPLIER", "Only coffee suppliers carry a coffee type")
	}

	s.CoffeeType = coffeeType
	s.Touch()

	s.RecordEvent(NewSupplierUpdatedEvent(s))
	return nil
}

// SetCountryOfOrigin updates the machine origin for machine suppliers
func (s *Supplier) SetCountryOfOrigin(country string) error {
	if s.Kind != SupplierKindMachine {
		return shared.NewDomainError("NOT_A_MACHINE_SUPPLIER", "Only machine suppliers carry a country of origin")
	}

	s.CountryOfOrigin = country
	s.Touch()

	s.RecordEvent(NewSupplierUpdatedEvent(s))
	return nil
}

// SuppliesCoffee returns true for coffee suppliers
func (s *Supplier) SuppliesCoffee() bool {
	return s.Kind == SupplierKindCoffee
}

// SuppliesMachines returns true for machine suppliers
func (s *Supplier) SuppliesMachines() bool {
	return s.Kind == SupplierKindMachine
}

// NormalizeCNPJ strips formatting characters and validates that the result
// is a 14-digit CNPJ
func NormalizeCNPJ(cnpj string) (string, error) {
	var b strings.Builder
	for _, r := range cnpj {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '/' || r == '-' || r == ' ':
			// formatting characters are tolerated
		default:
			return "", shared.NewDomainError("INVALID_CNPJ", "CNPJ contains invalid characters")
		}
	}
	digits := b.String()
	if len(digits) != 14 {
		return "", shared.NewDomainError("INVALID_CNPJ", "CNPJ must contain exactly 14 digits")
	}
	return digits, nil
}

func validateSupplierName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}
