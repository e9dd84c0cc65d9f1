package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/warebilllabs/warebill/internal/billing/domain"
	carrierdomain "github.com/warebilllabs/warebill/internal/carrier/domain"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
)

type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Message }

func invalidRequestError() *apiError {
	return &apiError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "request body or query is malformed",
	}
}

func newValidationError(field, code, message string) *apiError {
	return &apiError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// AbortWithError translates domain sentinel errors into HTTP responses.
// Anything unrecognized is a 500 with a generic body.
func AbortWithError(c *gin.Context, err error) {
	var api *apiError
	if errors.As(err, &api) {
		c.AbortWithStatusJSON(api.Status, gin.H{"error": api})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case isNotFoundError(err):
		status = http.StatusNotFound
	case isConflictError(err):
		status = http.StatusConflict
	case isValidationError(err):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, gin.H{"error": gin.H{
			"code":    "internal",
			"message": "internal server error",
		}})
		return
	}

	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{
		"code":    "domain_error",
		"message": err.Error(),
	}})
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, carrierdomain.ErrNotFound),
		errors.Is(err, carrierdomain.ErrServiceNotFound),
		errors.Is(err, templatedomain.ErrNotFound),
		errors.Is(err, operationdomain.ErrNotFound):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, customerdomain.ErrDuplicateCode),
		errors.Is(err, customerdomain.ErrGroupCodeTaken),
		errors.Is(err, carrierdomain.ErrDuplicateCode):
		return true
	default:
		return false
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, customerdomain.ErrInvalidID),
		errors.Is(err, customerdomain.ErrInvalidCode),
		errors.Is(err, customerdomain.ErrInvalidName),
		errors.Is(err, customerdomain.ErrGroupNotFound),
		errors.Is(err, carrierdomain.ErrInvalidID),
		errors.Is(err, carrierdomain.ErrInvalidCode),
		errors.Is(err, carrierdomain.ErrInvalidName),
		errors.Is(err, carrierdomain.ErrInvalidChannel),
		errors.Is(err, templatedomain.ErrInvalidID),
		errors.Is(err, templatedomain.ErrInvalidName),
		errors.Is(err, templatedomain.ErrInvalidScope),
		errors.Is(err, templatedomain.ErrScopeTargetReq),
		errors.Is(err, templatedomain.ErrInvalidCategory),
		errors.Is(err, templatedomain.ErrInvalidMode),
		errors.Is(err, templatedomain.ErrFlatPriceReq),
		errors.Is(err, templatedomain.ErrTiersRequired),
		errors.Is(err, templatedomain.ErrTierOrder),
		errors.Is(err, templatedomain.ErrTierOverlap),
		errors.Is(err, templatedomain.ErrTierUnbounded),
		errors.Is(err, templatedomain.ErrTierNegativePrice),
		errors.Is(err, templatedomain.ErrNoRules),
		errors.Is(err, operationdomain.ErrInvalidID),
		errors.Is(err, operationdomain.ErrInvalidCustomer),
		errors.Is(err, operationdomain.ErrInvalidType),
		errors.Is(err, operationdomain.ErrInvalidQuantity),
		errors.Is(err, billingdomain.ErrInvalidCustomer),
		errors.Is(err, billingdomain.ErrInvalidRange):
		return true
	default:
		return false
	}
}
