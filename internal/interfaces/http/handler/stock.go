package handler

import (
	"github.com/gin-gonic/gin"
	stockapp "github.com/salmoriadev/Sistema-CaFerri/internal/application/stock"
)

// StockHandler handles stock ledger API endpoints
type StockHandler struct {
	BaseHandler
	stockService *stockapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *stockapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Register starts tracking a catalog product in the stock ledger
func (h *StockHandler) Register(c *gin.Context) {
	var req stockapp.RegisterStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	item, err := h.stockService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// Inventory lists every tracked product with its quantity
func (h *StockHandler) Inventory(c *gin.Context) {
	items, err := h.stockService.Inventory(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// Quantity returns the quantity on hand for one product
func (h *StockHandler) Quantity(c *gin.Context) {
	productID, ok := h.parseIDParam(c, "product_id")
	if !ok {
		return
	}

	item, err := h.stockService.Quantity(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Replenish increases a tracked product's quantity
func (h *StockHandler) Replenish(c *gin.Context) {
	productID, ok := h.parseIDParam(c, "product_id")
	if !ok {
		return
	}

	var req stockapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	item, err := h.stockService.Replenish(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// WriteDown decreases a tracked product's quantity for loss or breakage
func (h *StockHandler) WriteDown(c *gin.Context) {
	productID, ok := h.parseIDParam(c, "product_id")
	if !ok {
		return
	}

	var req stockapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	item, err := h.stockService.WriteDown(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Remove stops tracking a product in the stock ledger
func (h *StockHandler) Remove(c *gin.Context) {
	productID, ok := h.parseIDParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.stockService.Remove(c.Request.Context(), productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock")
	{
		stock.POST("", h.Register)
		stock.GET("", h.Inventory)
		stock.GET("/:product_id", h.Quantity)
		stock.POST("/:product_id/replenish", h.Replenish)
		stock.POST("/:product_id/write-down", h.WriteDown)
		stock.DELETE("/:product_id", h.Remove)
	}
}
