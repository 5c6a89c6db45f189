package stock

import (
	"context"
	"fmt"

	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductDiscontinuedHandler drops the ledger entry when a product
// leaves the catalog, so discontinued products cannot be sold.
type ProductDiscontinuedHandler struct {
	stockService *StockService
	logger       *zap.Logger
}

// NewProductDiscontinuedHandler creates a new handler for product discontinued events
func NewProductDiscontinuedHandler(stockService *StockService, logger *zap.Logger) *ProductDiscontinuedHandler {
	return &ProductDiscontinuedHandler{
		stockService: stockService,
		logger:       logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *ProductDiscontinuedHandler) EventTypes() []string {
	return []string{catalog.EventTypeProductDiscontinued}
}

// Handle removes the discontinued product from the stock ledger
func (h *ProductDiscontinuedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	discontinued, ok := event.(*catalog.ProductDiscontinuedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			catalog.EventTypeProductDiscontinued, event.EventType())
	}

	err := h.stockService.Remove(ctx, discontinued.AggregateID())
	if err != nil {
		// untracked products have nothing to remove
		h.logger.Debug("discontinued product was not tracked in stock",
			zap.String("product_id", discontinued.AggregateID().String()),
			zap.String("code", discontinued.Code),
		)
		return nil
	}

	h.logger.Info("removed discontinued product from stock",
		zap.String("product_id", discontinued.AggregateID().String()),
		zap.String("code", discontinued.Code),
	)
	return nil
}
