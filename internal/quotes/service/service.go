// Package service contains the quotes business logic: request normalization
// hand-off, pricing and the atomic create flow.
package service

import (
	"context"

	"saas_cpq_api/internal/quotes/repository"
	"saas_cpq_api/internal/quotes/transport"
	"saas_cpq_api/platform/apperr"
	"saas_cpq_api/platform/logger"
)

// Service provides business logic for quotes.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new quotes service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create validates the request, computes the total and persists the quote
// with its line items atomically. Validation happens entirely before any
// storage access.
func (s *Service) Create(ctx context.Context, req transport.CreateQuoteRequest) (transport.QuoteResponse, []transport.LineItemResponse, error) {
	normalized, err := req.Normalize()
	if err != nil {
		return transport.QuoteResponse{}, nil, err
	}

	total := Total(Subtotal(normalized.Items), normalized.TaxRate, normalized.Discount)

	quote := repository.Quote{
		CustomerID: normalized.CustomerID,
		JobName:    normalized.JobName,
		Currency:   normalized.Currency,
		TaxRate:    normalized.TaxRate,
		Discount:   normalized.Discount,
		Total:      total,
	}
	items := make([]repository.LineItem, 0, len(normalized.Items))
	for _, item := range normalized.Items {
		items = append(items, repository.LineItem{
			Type:        string(item.Type),
			UOM:         item.UOM,
			Description: item.Description,
			Qty:         item.Qty,
			Cost:        item.Cost,
			Sell:        item.Sell,
		})
	}

	if err := s.repo.CreateWithItems(ctx, &quote, items); err != nil {
		if apperr.GetKind(err) == apperr.KindUnknown {
			s.log.WithContext(ctx).DatabaseError("create quote", err)
		}
		return transport.QuoteResponse{}, nil, err
	}

	s.log.WithContext(ctx).Info("quote created",
		"id", quote.ID, "customer_id", quote.CustomerID, "line_items", len(items), "total", quote.Total)

	return toQuoteResponse(quote), toLineItemResponses(items), nil
}

// GetByID retrieves a quote and its line items in submission order.
func (s *Service) GetByID(ctx context.Context, id int64) (transport.QuoteResponse, []transport.LineItemResponse, error) {
	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.QuoteResponse{}, nil, err
	}

	items, err := s.repo.GetItemsByQuoteID(ctx, id)
	if err != nil {
		s.log.WithContext(ctx).DatabaseError("get quote items", err)
		return transport.QuoteResponse{}, nil, err
	}

	return toQuoteResponse(*quote), toLineItemResponses(items), nil
}

// ListByCustomer retrieves all quotes for a customer, most recent first.
// Customers with no quotes yield an empty list.
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]transport.QuoteResponse, error) {
	quotes, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.log.WithContext(ctx).DatabaseError("list quotes by customer", err)
		return nil, err
	}

	responses := make([]transport.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		responses = append(responses, toQuoteResponse(q))
	}
	return responses, nil
}

func toQuoteResponse(q repository.Quote) transport.QuoteResponse {
	return transport.QuoteResponse{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		JobName:    q.JobName,
		Currency:   q.Currency,
		TaxRate:    q.TaxRate,
		Discount:   q.Discount,
		Total:      q.Total,
		CreatedAt:  q.CreatedAt,
	}
}

func toLineItemResponses(items []repository.LineItem) []transport.LineItemResponse {
	responses := make([]transport.LineItemResponse, 0, len(items))
	for _, it := range items {
		responses = append(responses, transport.LineItemResponse{
			ID:          it.ID,
			QuoteID:     it.QuoteID,
			Type:        it.Type,
			UOM:         it.UOM,
			Description: it.Description,
			Qty:         it.Qty,
			Cost:        it.Cost,
			Sell:        it.Sell,
		})
	}
	return responses
}
