package partner

import (
	"strings"

	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// Customer represents a registered customer with a prepaid balance.
// Sales are settled against this balance at finalization time. The taste
// profile drives coffee recommendations.
type Customer struct {
	shared.BaseAggregateRoot
	Name         string               `gorm:"type:varchar(200);not null"`
	Email        string               `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string               `gorm:"type:varchar(200);not null"`
	Balance      decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	Profile      catalog.TasteProfile `gorm:"type:varchar(30);not null"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with an initial balance.
// The plaintext password is hashed here and never stored.
func NewCustomer(name, email, password string, initialBalance decimal.Decimal, profile catalog.TasteProfile) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if err := validateCustomerEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if initialBalance.IsNegative() {
		return nil, shared.NewDomainError("INVALID_BALANCE", "Initial balance cannot be negative")
	}
	if !profile.IsValid() {
		return nil, shared.NewDomainError("INVALID_TASTE_PROFILE",
			"Taste profile '"+profile.String()+"' does not exist")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             strings.ToLower(email),
		PasswordHash:      hash,
		Balance:           initialBalance,
		Profile:           profile,
	}

	customer.RecordEvent(NewCustomerCreatedEvent(customer))
	return customer, nil
}

// Update updates the customer's basic information
func (c *Customer) Update(name, email string, profile catalog.TasteProfile) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}
	if err := validateCustomerEmail(email); err != nil {
		return err
	}
	if !profile.IsValid() {
		return shared.NewDomainError("INVALID_TASTE_PROFILE",
			"Taste profile '"+profile.String()+"' does not exist")
	}

	c.Name = name
	c.Email = strings.ToLower(email)
	c.Profile = profile
	c.Touch()

	c.RecordEvent(NewCustomerUpdatedEvent(c))
	return nil
}

// VerifyPassword verifies if the provided password matches
func (c *Customer) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password))
	return err == nil
}

// ChangePassword replaces the password after verifying the current one
func (c *Customer) ChangePassword(currentPassword, newPassword string) error {
	if !c.VerifyPassword(currentPassword) {
		return shared.ErrInvalidCredentials
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	c.PasswordHash = hash
	c.Touch()
	return nil
}

// AddBalance credits the customer's prepaid balance
func (c *Customer) AddBalance(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount to add must be positive")
	}

	c.Balance = c.Balance.Add(amount)
	c.Touch()

	c.RecordEvent(NewCustomerBalanceChangedEvent(c, amount))
	return nil
}

// DeductBalance debits the customer's prepaid balance.
// Fails with INSUFFICIENT_BALANCE when the balance does not cover the amount.
func (c *Customer) DeductBalance(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount to deduct must be positive")
	}
	if c.Balance.LessThan(amount) {
		return shared.ErrInsufficientBalance
	}

	c.Balance = c.Balance.Sub(amount)
	c.Touch()

	c.RecordEvent(NewCustomerBalanceChangedEvent(c, amount.Neg()))
	return nil
}

// CanAfford returns true if the balance covers the given amount
func (c *Customer) CanAfford(amount decimal.Decimal) bool {
	return c.Balance.GreaterThanOrEqual(amount)
}

// RecommendedCoffees returns the coffee styles suggested for the
// customer's taste profile
func (c *Customer) RecommendedCoffees() []string {
	return c.Profile.Recommendations()
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	return nil
}

func validateCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

func validateCustomerEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Customer email cannot be empty")
	}
	if !strings.Contains(email, "@") || len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Customer email is not valid")
	}
	return nil
}
