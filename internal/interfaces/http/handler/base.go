package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/stock"
	"github.com/salmoriadev/Sistema-CaFerri/internal/interfaces/http/dto"
	"github.com/salmoriadev/Sistema-CaFerri/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	requestID := middleware.GetRequestID(c)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(dto.ErrCodeBadRequest, message, requestID))
}

// HandleBindingError sends a 400 response describing the failed fields
func (h *BaseHandler) HandleBindingError(c *gin.Context, err error) {
	requestID := middleware.GetRequestID(c)
	c.JSON(http.StatusBadRequest, middleware.FormatValidationErrors(err, requestID))
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	requestID := middleware.GetRequestID(c)
	c.JSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(dto.ErrCodeNotFound, message, requestID))
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	requestID := middleware.GetRequestID(c)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(dto.ErrCodeInternal, message, requestID))
}

// HandleError converts domain errors to HTTP responses. An insufficient
// stock error additionally carries the requested and available quantities
// so the client can show how short the ledger is.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	requestID := middleware.GetRequestID(c)

	var stockErr *stock.InsufficientStockError
	if errors.As(err, &stockErr) {
		resp := dto.NewErrorResponseWithRequestID("INSUFFICIENT_STOCK", stockErr.Error(), requestID)
		resp.Error.Details = gin.H{
			"product_id": stockErr.ProductID,
			"requested":  stockErr.Requested,
			"available":  stockErr.Available,
		}
		c.JSON(dto.GetHTTPStatus("INSUFFICIENT_STOCK"), resp)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code),
			dto.NewErrorResponseWithRequestID(domainErr.Code, domainErr.Message, requestID))
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}

// parseIDParam parses a UUID path parameter, replying 400 on failure
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
