package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:         http.StatusBadRequest,
	"INVALID_INPUT":           http.StatusBadRequest,
	"INVALID_CNPJ":            http.StatusBadRequest,
	"INVALID_EMAIL":           http.StatusBadRequest,
	"INVALID_NAME":            http.StatusBadRequest,
	"INVALID_CODE":            http.StatusBadRequest,
	"INVALID_PRICE":           http.StatusBadRequest,
	"INVALID_AMOUNT":          http.StatusBadRequest,
	"INVALID_BALANCE":         http.StatusBadRequest,
	"INVALID_QUANTITY":        http.StatusBadRequest,
	"INVALID_PASSWORD":        http.StatusBadRequest,
	"INVALID_CUSTOMER":        http.StatusBadRequest,
	"INVALID_SUPPLIER":        http.StatusBadRequest,
	"INVALID_ALTITUDE":        http.StatusBadRequest,
	"INVALID_PRODUCT_KIND":    http.StatusBadRequest,
	"INVALID_SUPPLIER_KIND":   http.StatusBadRequest,
	"INVALID_TASTE_PROFILE":   http.StatusBadRequest,
	"INVALID_CONVERSION_RATE": http.StatusBadRequest,

	// Auth errors -> 401 Unauthorized
	"INVALID_CREDENTIALS": http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:         http.StatusNotFound,
	"PRODUCT_NOT_TRACKED":   http.StatusNotFound,
	"ALREADY_EXISTS":        http.StatusConflict,
	"PRODUCT_ALREADY_TRACKED": http.StatusConflict,
	"CONCURRENCY_CONFLICT":  http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	"INVALID_STATE":          http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":     http.StatusUnprocessableEntity,
	"INSUFFICIENT_BALANCE":   http.StatusUnprocessableEntity,
	"PRODUCT_NOT_IN_STOCK":   http.StatusUnprocessableEntity,
	"PRODUCT_DISCONTINUED":   http.StatusUnprocessableEntity,
	"EMPTY_CART":             http.StatusUnprocessableEntity,
	"SALE_NOT_IN_PROGRESS":   http.StatusUnprocessableEntity,
	"SUPPLIER_KIND_MISMATCH": http.StatusUnprocessableEntity,
	"NOT_A_COFFEE":           http.StatusUnprocessableEntity,
	"NOT_A_COFFEE_SUPPLIER":  http.StatusUnprocessableEntity,
	"NOT_A_MACHINE_SUPPLIER": http.StatusUnprocessableEntity,
	"ALREADY_ACTIVE":         http.StatusUnprocessableEntity,
	"ALREADY_DISCONTINUED":   http.StatusUnprocessableEntity,

	// Internal
	ErrCodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Codes not listed above are treated as business rule violations.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
