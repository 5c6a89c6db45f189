package handler

import (
	"github.com/gin-gonic/gin"
	saleapp "github.com/salmoriadev/Sistema-CaFerri/internal/application/sale"
)

// SaleHandler handles sale API endpoints
type SaleHandler struct {
	BaseHandler
	saleService *saleapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *saleapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Open starts a new in-progress sale for a customer
func (h *SaleHandler) Open(c *gin.Context) {
	var req saleapp.OpenSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	s, err := h.saleService.Open(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, s)
}

// GetByID retrieves a sale by ID
func (h *SaleHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	s, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, s)
}

// GetByNumber retrieves a sale by its human-readable number
func (h *SaleHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Sale number is required")
		return
	}

	s, err := h.saleService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, s)
}

// List retrieves sales with optional status filter
func (h *SaleHandler) List(c *gin.Context) {
	var filter saleapp.SaleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	page, err := h.saleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListByCustomer retrieves every sale of one customer
func (h *SaleHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := h.parseIDParam(c, "customer_id")
	if !ok {
		return
	}

	sales, err := h.saleService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sales)
}

// AddItem adds units of a product to the cart
func (h *SaleHandler) AddItem(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req saleapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	s, err := h.saleService.AddItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, s)
}

// RemoveItem drops a cart line entirely
func (h *SaleHandler) RemoveItem(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	productID, ok := h.parseIDParam(c, "product_id")
	if !ok {
		return
	}

	s, err := h.saleService.RemoveItem(c.Request.Context(), id, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, s)
}

// DecreaseItem removes units from a cart line. The response reports
// whether units came off, the line disappeared, or the product was not
// in the cart at all.
func (h *SaleHandler) DecreaseItem(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	productID, ok := h.parseIDParam(c, "product_id")
	if !ok {
		return
	}

	var req saleapp.DecreaseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.saleService.DecreaseItem(c.Request.Context(), id, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Finalize settles the sale, charging the customer and moving stock
func (h *SaleHandler) Finalize(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	s, err := h.saleService.Finalize(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, s)
}

// Cancel abandons an in-progress sale
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.saleService.Cancel(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.Open)
		sales.GET("", h.List)
		sales.GET("/:id", h.GetByID)
		sales.GET("/number/:number", h.GetByNumber)
		sales.GET("/customer/:customer_id", h.ListByCustomer)
		sales.POST("/:id/items", h.AddItem)
		sales.DELETE("/:id/items/:product_id", h.RemoveItem)
		sales.POST("/:id/items/:product_id/decrease", h.DecreaseItem)
		sales.POST("/:id/finalize", h.Finalize)
		sales.DELETE("/:id", h.Cancel)
	}
}
