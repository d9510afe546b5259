package transport

import (
	"strings"
	"time"

	"saas_cpq_api/platform/apperr"
)

// ============================================================================
// Requests
// ============================================================================

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required"`
}

// Normalize trims the customer name and rejects empty input. Validation
// happens here, before any storage access, so handlers never persist
// unchecked data.
func (r CreateCustomerRequest) Normalize() (string, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return "", apperr.Validation("name is required and must be a non-empty string")
	}
	return name, nil
}

// ============================================================================
// Responses
// ============================================================================

// CustomerResponse is the wire representation of a customer.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
