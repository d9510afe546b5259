package handler

import (
	"context"
	"net/http"
	"strconv"

	"saas_cpq_api/internal/quotes/transport"
	"saas_cpq_api/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest = "invalid request body"
	msgInvalidID      = "id must be an integer"
)

// QuoteService is the service surface the handler depends on.
type QuoteService interface {
	Create(ctx context.Context, req transport.CreateQuoteRequest) (transport.QuoteResponse, []transport.LineItemResponse, error)
	GetByID(ctx context.Context, id int64) (transport.QuoteResponse, []transport.LineItemResponse, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]transport.QuoteResponse, error)
}

// Handler handles HTTP requests for quotes.
type Handler struct {
	svc QuoteService
}

// New creates a new quotes handler.
func New(svc QuoteService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the quote routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quotes", h.Create)
	rg.GET("/quotes/:id", h.GetByID)
	rg.GET("/quotes/:id/pdf", h.DownloadPDF)
	rg.GET("/customers/:id/quotes", h.ListByCustomer)
}

// Create handles POST /quotes.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	quote, items, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, gin.H{"quote": quote, "line_items": items})
}

// GetByID handles GET /quotes/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	quote, items, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"quote": quote, "line_items": items})
}

// ListByCustomer handles GET /customers/:id/quotes. A customer with zero
// quotes (or an unknown customer) yields an empty list, not an error.
func (h *Handler) ListByCustomer(c *gin.Context) {
	customerID, ok := parseID(c)
	if !ok {
		return
	}

	quotes, err := h.svc.ListByCustomer(c.Request.Context(), customerID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"customer_id": customerID, "quotes": quotes})
}

// DownloadPDF handles GET /quotes/:id/pdf.
func (h *Handler) DownloadPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	quote, items, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	pdfBytes, err := renderQuotePDF(quote, items)
	if httpkit.HandleError(c, err) {
		return
	}

	filename := "quote-" + strconv.FormatInt(quote.ID, 10) + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}
