package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindByCNPJ finds a supplier by its normalized CNPJ
func (r *GormSupplierRepository) FindByCNPJ(ctx context.Context, cnpj string) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "cnpj = ?", cnpj).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindAll finds suppliers matching the filter, paginated
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.Supplier], error) {
	filter = normalizeFilter(filter)
	query := r.db.WithContext(ctx).Model(&partner.Supplier{})
	query = searchLike(query, filter.Search, "name", "cnpj")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[partner.Supplier]{}, err
	}

	var suppliers []partner.Supplier
	if err := paginate(query.Order("name asc"), filter).Find(&suppliers).Error; err != nil {
		return shared.Paginated[partner.Supplier]{}, err
	}
	return shared.NewPaginated(suppliers, total, filter.Page, filter.PageSize), nil
}

// FindByKind finds all suppliers of one kind
func (r *GormSupplierRepository) FindByKind(ctx context.Context, kind partner.SupplierKind) ([]partner.Supplier, error) {
	var suppliers []partner.Supplier
	if err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("name asc").
		Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// ExistsByCNPJ checks whether a supplier with the CNPJ exists
func (r *GormSupplierRepository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&partner.Supplier{}).
		Where("cnpj = ?", cnpj).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete removes a supplier by ID
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
