package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// SupplierRepository defines the persistence operations for suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Supplier], error)
	FindByKind(ctx context.Context, kind SupplierKind) ([]Supplier, error)
	ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}
