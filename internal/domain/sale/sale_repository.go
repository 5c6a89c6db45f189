package sale

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// SaleRepository defines the persistence operations for sales
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindByNumber(ctx context.Context, number string) (*Sale, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Sale], error)
	FindByStatus(ctx context.Context, status SaleStatus, filter shared.Filter) (shared.Paginated[Sale], error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Sale, error)
	FindFinalized(ctx context.Context) ([]Sale, error)
	Save(ctx context.Context, s *Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
}
