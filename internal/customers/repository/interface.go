package repository

import (
	"context"
	"time"
)

// Customer is the database model for a customer.
type Customer struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Repository defines the storage operations the customers service depends on.
// Defined as an interface so tests can substitute a fake.
type Repository interface {
	Create(ctx context.Context, name string) (Customer, error)
}
