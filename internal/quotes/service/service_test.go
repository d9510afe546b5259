package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"saas_cpq_api/internal/quotes/repository"
	"saas_cpq_api/internal/quotes/transport"
	"saas_cpq_api/platform/apperr"
	"saas_cpq_api/platform/logger"
)

type fakeRepo struct {
	createCalled bool
	createQuote  repository.Quote
	createItems  []repository.LineItem
	createErr    error

	quote    *repository.Quote
	quoteErr error

	items    []repository.LineItem
	itemsErr error

	listQuotes []repository.Quote
	listErr    error
}

func (f *fakeRepo) CreateWithItems(_ context.Context, quote *repository.Quote, items []repository.LineItem) error {
	f.createCalled = true
	if f.createErr != nil {
		return f.createErr
	}
	quote.ID = 42
	quote.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range items {
		items[i].ID = int64(i + 1)
		items[i].QuoteID = quote.ID
	}
	f.createQuote = *quote
	f.createItems = items
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*repository.Quote, error) {
	return f.quote, f.quoteErr
}

func (f *fakeRepo) GetItemsByQuoteID(_ context.Context, _ int64) ([]repository.LineItem, error) {
	return f.items, f.itemsErr
}

func (f *fakeRepo) ListByCustomer(_ context.Context, _ int64) ([]repository.Quote, error) {
	return f.listQuotes, f.listErr
}

func newTestService(repo *fakeRepo) *Service {
	return New(repo, logger.New("development"))
}

func createRequest() transport.CreateQuoteRequest {
	return transport.CreateQuoteRequest{
		CustomerID: 7,
		JobName:    "Warehouse retrofit",
		Currency:   "usd",
		TaxRate:    0.2,
		Discount:   30,
		LineItems: []transport.LineItemRequest{
			{Type: "labor", UOM: "HOURS", Description: "Install", Qty: 10, Cost: 15, Sell: 25},
		},
	}
}

func TestCreateComputesTotalBeforePersisting(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	quote, items, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10 * 25 = 250 subtotal, * 1.2 tax = 300, - 30 discount = 270
	if repo.createQuote.Total != 270.00 {
		t.Fatalf("expected total 270.00 passed to repository, got %v", repo.createQuote.Total)
	}
	if quote.Total != 270.00 {
		t.Fatalf("expected total 270.00 in response, got %v", quote.Total)
	}
	if quote.ID != 42 {
		t.Fatalf("expected assigned quote id in response, got %d", quote.ID)
	}
	if len(items) != 1 || items[0].QuoteID != 42 {
		t.Fatalf("expected line items bound to the created quote, got %+v", items)
	}
	if quote.Currency != "USD" {
		t.Fatalf("expected normalized currency USD, got %q", quote.Currency)
	}
}

func TestCreateRejectsInvalidRequestWithoutStorageAccess(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	req := createRequest()
	req.LineItems[0].Qty = 0

	_, _, err := svc.Create(context.Background(), req)
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.createCalled {
		t.Fatal("repository must not be called when validation fails")
	}
}

func TestCreatePassesThroughRepositoryErrors(t *testing.T) {
	repo := &fakeRepo{createErr: apperr.NotFound("customer_id 7 not found")}
	svc := newTestService(repo)

	_, _, err := svc.Create(context.Background(), createRequest())
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetByIDReturnsQuoteWithItems(t *testing.T) {
	repo := &fakeRepo{
		quote: &repository.Quote{ID: 5, CustomerID: 3, JobName: "Roof", Currency: "USD", Total: 100},
		items: []repository.LineItem{
			{ID: 1, QuoteID: 5, Type: "labor", UOM: "HOURS", Qty: 2, Sell: 50},
		},
	}
	svc := newTestService(repo)

	quote, items, err := svc.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.ID != 5 || quote.JobName != "Roof" {
		t.Fatalf("unexpected quote response: %+v", quote)
	}
	if len(items) != 1 || items[0].Type != "labor" {
		t.Fatalf("unexpected line items: %+v", items)
	}
}

func TestGetByIDPropagatesNotFound(t *testing.T) {
	repo := &fakeRepo{quoteErr: apperr.NotFound("quote not found")}
	svc := newTestService(repo)

	_, _, err := svc.GetByID(context.Background(), 999)
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestListByCustomerReturnsEmptySliceForUnknownCustomer(t *testing.T) {
	repo := &fakeRepo{listQuotes: []repository.Quote{}}
	svc := newTestService(repo)

	quotes, err := svc.ListByCustomer(context.Background(), 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quotes == nil || len(quotes) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", quotes)
	}
}

func TestListByCustomerPropagatesErrors(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	svc := newTestService(repo)

	if _, err := svc.ListByCustomer(context.Background(), 1); err == nil {
		t.Fatal("expected error from repository to propagate")
	}
}
