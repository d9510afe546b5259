// Package service contains the customers business logic.
package service

import (
	"context"

	"saas_cpq_api/internal/customers/repository"
	"saas_cpq_api/internal/customers/transport"
	"saas_cpq_api/platform/logger"
)

// Service provides business logic for customers.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new customers service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create validates and persists a new customer.
func (s *Service) Create(ctx context.Context, req transport.CreateCustomerRequest) (transport.CustomerResponse, error) {
	name, err := req.Normalize()
	if err != nil {
		return transport.CustomerResponse{}, err
	}

	customer, err := s.repo.Create(ctx, name)
	if err != nil {
		s.log.WithContext(ctx).DatabaseError("create customer", err)
		return transport.CustomerResponse{}, err
	}

	s.log.WithContext(ctx).Info("customer created", "id", customer.ID)
	return toCustomerResponse(customer), nil
}

func toCustomerResponse(c repository.Customer) transport.CustomerResponse {
	return transport.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}
