package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// ProductRepository defines the persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Product], error)
	FindByKind(ctx context.Context, kind ProductKind, filter shared.Filter) (shared.Paginated[Product], error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]Product, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
