package transport

import (
	"time"
)

// ItemType is the fixed enumeration of line item kinds.
type ItemType string

const (
	ItemTypeLabor     ItemType = "labor"
	ItemTypeEquipment ItemType = "equipment"
	ItemTypeMaterial  ItemType = "material"
)

// DefaultCurrency is applied when a quote request omits the currency code.
const DefaultCurrency = "USD"

// ============================================================================
// Requests
// ============================================================================

// LineItemRequest is the input for a single line item.
type LineItemRequest struct {
	Type        string  `json:"type" validate:"required"`
	UOM         string  `json:"uom" validate:"required"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Cost        float64 `json:"cost"`
	Sell        float64 `json:"sell"`
}

// CreateQuoteRequest is the request body for creating a quote with its items.
type CreateQuoteRequest struct {
	CustomerID int64             `json:"customer_id" validate:"required,gt=0"`
	JobName    string            `json:"job_name" validate:"required"`
	Currency   string            `json:"currency"`
	TaxRate    float64           `json:"tax_rate"`
	Discount   float64           `json:"discount"`
	LineItems  []LineItemRequest `json:"line_items" validate:"required,min=1"`
}

// ============================================================================
// Normalized forms
// ============================================================================

// NormalizedLineItem is a line item after validation and normalization.
type NormalizedLineItem struct {
	Type        ItemType
	UOM         string
	Description string
	Qty         float64
	Cost        float64
	Sell        float64
}

// NormalizedQuote is a quote creation request after validation and
// normalization, ready for pricing and persistence.
type NormalizedQuote struct {
	CustomerID int64
	JobName    string
	Currency   string
	TaxRate    float64
	Discount   float64
	Items      []NormalizedLineItem
}

// ============================================================================
// Responses
// ============================================================================

// QuoteResponse is the wire representation of a quote header.
type QuoteResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	JobName    string    `json:"job_name"`
	Currency   string    `json:"currency"`
	TaxRate    float64   `json:"tax_rate"`
	Discount   float64   `json:"discount"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}

// LineItemResponse is the wire representation of a persisted line item.
type LineItemResponse struct {
	ID          int64   `json:"id"`
	QuoteID     int64   `json:"quote_id"`
	Type        string  `json:"type"`
	UOM         string  `json:"uom"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Cost        float64 `json:"cost"`
	Sell        float64 `json:"sell"`
}
