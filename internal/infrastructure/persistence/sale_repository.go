package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/sale"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM.
// Items are replaced wholesale on save; the aggregate always carries
// the full cart.
type GormSaleRepository struct {
	db *gorm.DB
}

var _ sale.SaleRepository = (*GormSaleRepository)(nil)

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale with its items by ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	var s sale.Sale
	if err := r.db.WithContext(ctx).Preload("Items").First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindByNumber finds a sale with its items by its number
func (r *GormSaleRepository) FindByNumber(ctx context.Context, number string) (*sale.Sale, error) {
	var s sale.Sale
	if err := r.db.WithContext(ctx).Preload("Items").First(&s, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll finds sales matching the filter, paginated
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[sale.Sale], error) {
	return r.findPaginated(ctx, r.db.WithContext(ctx).Model(&sale.Sale{}), filter)
}

// FindByStatus finds sales in one status, paginated
func (r *GormSaleRepository) FindByStatus(ctx context.Context, status sale.SaleStatus, filter shared.Filter) (shared.Paginated[sale.Sale], error) {
	query := r.db.WithContext(ctx).Model(&sale.Sale{}).Where("status = ?", status)
	return r.findPaginated(ctx, query, filter)
}

// FindByCustomer finds all sales of one customer, newest first
func (r *GormSaleRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]sale.Sale, error) {
	var sales []sale.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// FindFinalized returns every finalized sale with items, oldest first
func (r *GormSaleRepository) FindFinalized(ctx context.Context) ([]sale.Sale, error) {
	var sales []sale.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", sale.SaleStatusFinalized).
		Order("completed_at asc").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Save creates or updates a sale together with its items
func (r *GormSaleRepository) Save(ctx context.Context, s *sale.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// removed cart lines must not linger in the items table
		if err := tx.Where("sale_id = ?", s.ID).Delete(&sale.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Save(s).Error
	})
}

// Delete removes a sale and its items
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&sale.SaleItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&sale.Sale{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormSaleRepository) findPaginated(ctx context.Context, query *gorm.DB, filter shared.Filter) (shared.Paginated[sale.Sale], error) {
	filter = normalizeFilter(filter)
	query = searchLike(query, filter.Search, "number", "customer_name")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[sale.Sale]{}, err
	}

	var sales []sale.Sale
	if err := paginate(query.Preload("Items").Order("created_at desc"), filter).Find(&sales).Error; err != nil {
		return shared.Paginated[sale.Sale]{}, err
	}
	return shared.NewPaginated(sales, total, filter.Page, filter.PageSize), nil
}
