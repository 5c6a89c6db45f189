package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByCode finds a product by its code
func (r *GormProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs finds multiple products by their IDs. Missing IDs are simply
// absent from the result, the caller decides whether that matters.
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAll finds products matching the filter, paginated
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	return r.findPaginated(ctx, r.db.WithContext(ctx).Model(&catalog.Product{}), filter)
}

// FindByKind finds products of one kind, paginated
func (r *GormProductRepository) FindByKind(ctx context.Context, kind catalog.ProductKind, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	query := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("kind = ?", kind)
	return r.findPaginated(ctx, query, filter)
}

// FindBySupplier finds all products referencing a supplier
func (r *GormProductRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("name asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ExistsByCode checks whether a product with the code exists
func (r *GormProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product by ID
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormProductRepository) findPaginated(ctx context.Context, query *gorm.DB, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	filter = normalizeFilter(filter)
	query = searchLike(query, filter.Search, "name", "code")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[catalog.Product]{}, err
	}

	var products []catalog.Product
	if err := paginate(query.Order("name asc"), filter).Find(&products).Error; err != nil {
		return shared.Paginated[catalog.Product]{}, err
	}
	return shared.NewPaginated(products, total, filter.Page, filter.PageSize), nil
}
