package repository

import (
	"context"
	"errors"
	"fmt"

	"saas_cpq_api/platform/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	checkCustomerQuery = `SELECT id FROM customers WHERE id = $1`

	insertQuoteQuery = `
	INSERT INTO quotes (customer_id, job_name, currency, tax_rate, discount, total)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at`

	insertLineItemQuery = `
	INSERT INTO quote_line_items (quote_id, item_type, uom, description, qty, cost, sell)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`

	getQuoteQuery = `
	SELECT id, customer_id, job_name, currency, tax_rate, discount, total, created_at
	FROM quotes
	WHERE id = $1`

	getLineItemsQuery = `
	SELECT id, quote_id, item_type, uom, description, qty, cost, sell
	FROM quote_line_items
	WHERE quote_id = $1
	ORDER BY id ASC`

	listQuotesByCustomerQuery = `
	SELECT id, customer_id, job_name, currency, tax_rate, discount, total, created_at
	FROM quotes
	WHERE customer_id = $1
	ORDER BY created_at DESC, id DESC`
)

// PG is the PostgreSQL-backed quotes repository.
type PG struct {
	pool *pgxpool.Pool
}

// New creates a new quotes repository.
func New(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

// CreateWithItems inserts a quote and its line items in a single transaction.
// The referenced customer is verified inside the same transaction; if it does
// not exist nothing is persisted and a NotFound error is returned. Line items
// are inserted in submission order so that ascending ids preserve it.
func (r *PG) CreateWithItems(ctx context.Context, quote *Quote, items []LineItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback after a successful commit is a no-op, so the transaction is
	// released exactly once on every path.
	defer tx.Rollback(ctx)

	var customerID int64
	if err := tx.QueryRow(ctx, checkCustomerQuery, quote.CustomerID).Scan(&customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("customer_id %d not found", quote.CustomerID))
		}
		return fmt.Errorf("failed to verify customer: %w", err)
	}

	if err := tx.QueryRow(ctx, insertQuoteQuery,
		quote.CustomerID, quote.JobName, quote.Currency, quote.TaxRate, quote.Discount, quote.Total,
	).Scan(&quote.ID, &quote.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	for i := range items {
		items[i].QuoteID = quote.ID
		if err := tx.QueryRow(ctx, insertLineItemQuery,
			items[i].QuoteID, items[i].Type, items[i].UOM, items[i].Description,
			items[i].Qty, items[i].Cost, items[i].Sell,
		).Scan(&items[i].ID); err != nil {
			return fmt.Errorf("failed to insert line item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a quote header by its id.
func (r *PG) GetByID(ctx context.Context, id int64) (*Quote, error) {
	var q Quote
	err := r.pool.QueryRow(ctx, getQuoteQuery, id).Scan(
		&q.ID, &q.CustomerID, &q.JobName, &q.Currency, &q.TaxRate, &q.Discount, &q.Total, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("quote not found")
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &q, nil
}

// GetItemsByQuoteID retrieves all line items for a quote in submission order.
func (r *PG) GetItemsByQuoteID(ctx context.Context, quoteID int64) ([]LineItem, error) {
	rows, err := r.pool.Query(ctx, getLineItemsQuery, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	items := []LineItem{}
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(
			&it.ID, &it.QuoteID, &it.Type, &it.UOM, &it.Description, &it.Qty, &it.Cost, &it.Sell,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}
	return items, nil
}

// ListByCustomer retrieves all quotes for a customer, most recent first.
// An unknown customer yields an empty slice, not an error.
func (r *PG) ListByCustomer(ctx context.Context, customerID int64) ([]Quote, error) {
	rows, err := r.pool.Query(ctx, listQuotesByCustomerQuery, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	quotes := []Quote{}
	for rows.Next() {
		var q Quote
		if err := rows.Scan(
			&q.ID, &q.CustomerID, &q.JobName, &q.Currency, &q.TaxRate, &q.Discount, &q.Total, &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotes: %w", err)
	}
	return quotes, nil
}

// Compile-time check that PG implements Repository.
var _ Repository = (*PG)(nil)
