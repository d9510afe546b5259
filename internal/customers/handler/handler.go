package handler

import (
	"context"
	"net/http"

	"saas_cpq_api/internal/customers/transport"
	"saas_cpq_api/platform/httpkit"
	"saas_cpq_api/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "invalid request body"

// CustomerService is the service surface the handler depends on.
type CustomerService interface {
	Create(ctx context.Context, req transport.CreateCustomerRequest) (transport.CustomerResponse, error)
}

// Handler handles HTTP requests for customers.
type Handler struct {
	svc CustomerService
	val *validator.Validator
}

// New creates a new customers handler.
func New(svc CustomerService, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the customer routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/customers", h.Create)
}

// Create handles POST /customers.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "name is required and must be a non-empty string")
		return
	}

	customer, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, gin.H{"customer": customer})
}
