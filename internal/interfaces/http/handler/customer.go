package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/salmoriadev/Sistema-CaFerri/internal/application/partner"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create registers a new customer account
func (h *CustomerHandler) Create(c *gin.Context) {
	var req partnerapp.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, customer)
}

// GetByID retrieves a customer by ID
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// GetByEmail retrieves a customer by email
func (h *CustomerHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		h.BadRequest(c, "Email is required")
		return
	}

	customer, err := h.customerService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// List retrieves customers with optional search
func (h *CustomerHandler) List(c *gin.Context) {
	var filter partnerapp.CustomerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	page, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update modifies a customer's profile data
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req partnerapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// Deposit adds funds to a customer's balance
func (h *CustomerHandler) Deposit(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req partnerapp.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	customer, err := h.customerService.Deposit(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// ChangePassword replaces the customer's password after verifying the current one
func (h *CustomerHandler) ChangePassword(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req partnerapp.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.customerService.ChangePassword(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete removes a customer account after verifying the account password
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req partnerapp.DeleteCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Recommendations lists the coffees suggested for the customer's taste profile
func (h *CustomerHandler) Recommendations(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	recommendations, err := h.customerService.Recommendations(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recommendations)
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.GetByID)
		customers.GET("/email/:email", h.GetByEmail)
		customers.PUT("/:id", h.Update)
		customers.POST("/:id/deposit", h.Deposit)
		customers.PUT("/:id/password", h.ChangePassword)
		customers.DELETE("/:id", h.Delete)
		customers.GET("/:id/recommendations", h.Recommendations)
	}
}
