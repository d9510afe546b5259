package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createCustomerQuery = `
	INSERT INTO customers (name)
	VALUES ($1)
	RETURNING id, name, created_at`

// PG is the PostgreSQL-backed customers repository.
type PG struct {
	pool *pgxpool.Pool
}

// New creates a new customers repository.
func New(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

// Create inserts a customer and returns the stored row with its assigned id
// and creation timestamp.
func (r *PG) Create(ctx context.Context, name string) (Customer, error) {
	var c Customer
	err := r.pool.QueryRow(ctx, createCustomerQuery, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}
	return c, nil
}

// Compile-time check that PG implements Repository.
var _ Repository = (*PG)(nil)
