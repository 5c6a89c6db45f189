package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/salmoriadev/Sistema-CaFerri/internal/application/report"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
)

// ReportHandler handles reporting API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// FinalizedSales reports every settled sale with the total revenue
func (h *ReportHandler) FinalizedSales(c *gin.Context) {
	rep, err := h.reportService.FinalizedSales(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rep)
}

// TopProducts ranks products of one kind by units sold
func (h *ReportHandler) TopProducts(c *gin.Context) {
	kind := catalog.ProductKind(c.Query("kind"))
	if !kind.IsValid() {
		h.BadRequest(c, "Query parameter 'kind' must be coffee or machine")
		return
	}

	ranking, err := h.reportService.TopProducts(c.Request.Context(), kind)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ranking)
}

// TopSuppliers ranks suppliers by revenue from finalized sales
func (h *ReportHandler) TopSuppliers(c *gin.Context) {
	ranking, err := h.reportService.TopSuppliers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ranking)
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.FinalizedSales)
		reports.GET("/top-products", h.TopProducts)
		reports.GET("/top-suppliers", h.TopSuppliers)
	}
}
