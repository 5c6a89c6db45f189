package sale

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// SaleStatus represents the lifecycle status of a sale
type SaleStatus string

const (
	SaleStatusInProgress SaleStatus = "in_progress"
	SaleStatusFinalized  SaleStatus = "finalized"
)

// IsValid checks if the status is valid
func (s SaleStatus) IsValid() bool {
	return s == SaleStatusInProgress || s == SaleStatusFinalized
}

// String returns the string representation of the status
func (s SaleStatus) String() string {
	return string(s)
}

// SaleItem is a cart line: a product with the quantity being bought.
// The unit price is captured when the product enters the cart.
type SaleItem struct {
	shared.BaseEntity
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// Subtotal returns unit price times quantity
func (i *SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DecreaseOutcome describes the result of a quantity decrease.
// These are informational results, not errors: a missing product or an
// over-large decrease are reported without failing the call.
type DecreaseOutcome string

const (
	DecreaseOutcomeNotInCart  DecreaseOutcome = "not_in_cart"
	DecreaseOutcomeRemovedAll DecreaseOutcome = "removed_all"
	DecreaseOutcomeDecreased  DecreaseOutcome = "decreased"
)

// DecreaseResult carries the outcome of DecreaseQuantity together with
// the number of units actually taken off the cart
type DecreaseResult struct {
	Outcome      DecreaseOutcome
	UnitsRemoved int
}

// Sale is the aggregate root for a shopping cart and its finalization.
// The lifecycle is one-way: a sale starts in progress and, once finalized,
// never accepts further mutations. The total is recomputed from the cart
// after every change, so it always equals the sum of the line subtotals.
type Sale struct {
	shared.BaseAggregateRoot
	Number       string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName string          `gorm:"type:varchar(200);not null"`
	Status       SaleStatus      `gorm:"type:varchar(20);not null;default:'in_progress'"`
	TotalDue     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CompletedAt  *time.Time
	Items        []SaleItem `gorm:"foreignKey:SaleID"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale opens a new in-progress sale for a customer
func NewSale(customerID uuid.UUID, customerName string) (*Sale, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Sale must reference a customer")
	}

	s := &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		CustomerName:      customerName,
		Status:            SaleStatusInProgress,
		TotalDue:          decimal.Zero,
		Items:             make([]SaleItem, 0),
	}
	s.Number = generateSaleNumber(s.ID)

	s.RecordEvent(NewSaleOpenedEvent(s))
	return s, nil
}

// IsInProgress returns true while the cart can still be modified
func (s *Sale) IsInProgress() bool {
	return s.Status == SaleStatusInProgress
}

// IsFinalized returns true once the sale has been settled
func (s *Sale) IsFinalized() bool {
	return s.Status == SaleStatusFinalized
}

// AddProduct puts a product in the cart, merging with an existing line
// for the same product. A non-positive quantity is a silent no-op.
// Stock is not consulted here; availability is checked at finalization.
func (s *Sale) AddProduct(product *catalog.Product, quantity int) error {
	if !s.IsInProgress() {
		return ErrSaleNotInProgress
	}
	if quantity <= 0 {
		return nil
	}

	if item := s.itemFor(product.ID); item != nil {
		item.Quantity += quantity
		item.UpdatedAt = time.Now()
	} else {
		s.Items = append(s.Items, SaleItem{
			BaseEntity:  shared.NewBaseEntity(),
			SaleID:      s.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.SellingPrice,
			Quantity:    quantity,
		})
	}

	s.recalculateTotal()
	s.RecordEvent(NewSaleItemAddedEvent(s, product.ID, quantity))
	return nil
}

// RemoveProduct deletes the product's line from the cart entirely.
// Removing a product that is not in the cart is a no-op.
func (s *Sale) RemoveProduct(productID uuid.UUID) error {
	if !s.IsInProgress() {
		return ErrSaleNotInProgress
	}

	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			s.recalculateTotal()
			s.RecordEvent(NewSaleItemRemovedEvent(s, productID))
			return nil
		}
	}
	return nil
}

// DecreaseQuantity takes units off a cart line. Decreasing by the line's
// full quantity or more removes the line. The outcome is informational;
// only a non-positive quantity or a finalized sale produce errors.
func (s *Sale) DecreaseQuantity(productID uuid.UUID, quantity int) (DecreaseResult, error) {
	if !s.IsInProgress() {
		return DecreaseResult{}, ErrSaleNotInProgress
	}
	if quantity <= 0 {
		return DecreaseResult{}, ErrInvalidQuantity
	}

	item := s.itemFor(productID)
	if item == nil {
		return DecreaseResult{Outcome: DecreaseOutcomeNotInCart}, nil
	}

	if quantity >= item.Quantity {
		removed := item.Quantity
		_ = s.RemoveProduct(productID)
		return DecreaseResult{Outcome: DecreaseOutcomeRemovedAll, UnitsRemoved: removed}, nil
	}

	item.Quantity -= quantity
	item.UpdatedAt = time.Now()
	s.recalculateTotal()
	s.RecordEvent(NewSaleItemDecreasedEvent(s, productID, quantity))
	return DecreaseResult{Outcome: DecreaseOutcomeDecreased, UnitsRemoved: quantity}, nil
}

// Finalize settles the sale against the customer's balance and the stock
// ledger. Every check runs before any state changes, so a failure at any
// point leaves the sale, the customer and the ledger untouched:
//
//  1. the sale must be in progress
//  2. the cart must not be empty
//  3. the customer's balance must cover the total
//  4. every cart line must be tracked with enough stock
//
// Only after all checks pass are the ledger decremented, the balance
// debited and the sale marked finalized.
func (s *Sale) Finalize(customer *partner.Customer, ledger *stock.Ledger) error {
	if !s.IsInProgress() {
		return ErrSaleNotInProgress
	}
	if len(s.Items) == 0 {
		return ErrEmptyCart
	}
	if customer.ID != s.CustomerID {
		return shared.NewDomainError("INVALID_CUSTOMER", "Sale belongs to a different customer")
	}
	if !customer.CanAfford(s.TotalDue) {
		return shared.ErrInsufficientBalance
	}
	for i := range s.Items {
		item := &s.Items[i]
		available, tracked := ledger.Quantity(item.ProductID)
		if !tracked {
			return NewProductNotInStockError(item.ProductID, item.ProductName)
		}
		if item.Quantity > available {
			return stock.NewInsufficientStockError(item.ProductID, item.Quantity, available)
		}
	}

	for i := range s.Items {
		item := &s.Items[i]
		if err := ledger.Decrease(item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	if err := customer.DeductBalance(s.TotalDue); err != nil {
		return err
	}

	now := time.Now()
	s.CompletedAt = &now
	s.Status = SaleStatusFinalized
	s.Touch()

	s.RecordEvent(NewSaleFinalizedEvent(s))
	return nil
}

// ItemCount returns the number of distinct cart lines
func (s *Sale) ItemCount() int {
	return len(s.Items)
}

// QuantityOf returns the cart quantity for a product, zero when absent
func (s *Sale) QuantityOf(productID uuid.UUID) int {
	if item := s.itemFor(productID); item != nil {
		return item.Quantity
	}
	return 0
}

func (s *Sale) itemFor(productID uuid.UUID) *SaleItem {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			return &s.Items[i]
		}
	}
	return nil
}

func (s *Sale) recalculateTotal() {
	total := decimal.Zero
	for i := range s.Items {
		total = total.Add(s.Items[i].Subtotal())
	}
	s.TotalDue = total
	s.UpdatedAt = time.Now()
}

func generateSaleNumber(id uuid.UUID) string {
	return fmt.Sprintf("SALE-%s-%s", time.Now().Format("20060102"), id.String()[:8])
}
