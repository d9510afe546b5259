package repository

import (
	"context"
	"time"
)

// Quote is the database model for a quote header.
type Quote struct {
	ID         int64     `db:"id"`
	CustomerID int64     `db:"customer_id"`
	JobName    string    `db:"job_name"`
	Currency   string    `db:"currency"`
	TaxRate    float64   `db:"tax_rate"`
	Discount   float64   `db:"discount"`
	Total      float64   `db:"total"`
	CreatedAt  time.Time `db:"created_at"`
}

// LineItem is the database model for a quote line item.
type LineItem struct {
	ID          int64   `db:"id"`
	QuoteID     int64   `db:"quote_id"`
	Type        string  `db:"item_type"`
	UOM         string  `db:"uom"`
	Description string  `db:"description"`
	Qty         float64 `db:"qty"`
	Cost        float64 `db:"cost"`
	Sell        float64 `db:"sell"`
}

// Repository defines the storage operations the quotes service depends on.
// Defined as an interface so tests can substitute a fake.
type Repository interface {
	// CreateWithItems persists a quote and its line items as one atomic unit.
	// On success the quote's ID and CreatedAt and every item's ID and QuoteID
	// are filled in. On any failure nothing is persisted.
	CreateWithItems(ctx context.Context, quote *Quote, items []LineItem) error
	GetByID(ctx context.Context, id int64) (*Quote, error)
	GetItemsByQuoteID(ctx context.Context, quoteID int64) ([]LineItem, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Quote, error)
}
