package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"saas_cpq_api/internal/customers/repository"
	"saas_cpq_api/internal/customers/transport"
	"saas_cpq_api/platform/apperr"
	"saas_cpq_api/platform/logger"
)

type fakeRepo struct {
	created  string
	err      error
	called   bool
	customer repository.Customer
}

func (f *fakeRepo) Create(_ context.Context, name string) (repository.Customer, error) {
	f.called = true
	f.created = name
	if f.err != nil {
		return repository.Customer{}, f.err
	}
	f.customer = repository.Customer{ID: 1, Name: name, CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return f.customer, nil
}

func TestCreatePersistsTrimmedName(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("development"))

	customer, err := svc.Create(context.Background(), transport.CreateCustomerRequest{Name: "  Acme Corp  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created != "Acme Corp" {
		t.Fatalf("expected trimmed name passed to repository, got %q", repo.created)
	}
	if customer.ID != 1 || customer.Name != "Acme Corp" {
		t.Fatalf("unexpected response: %+v", customer)
	}
}

func TestCreateRejectsBlankNameWithoutStorageAccess(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("development"))

	_, err := svc.Create(context.Background(), transport.CreateCustomerRequest{Name: "   "})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.called {
		t.Fatal("repository must not be called when validation fails")
	}
}

func TestCreatePropagatesRepositoryErrors(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	svc := New(repo, logger.New("development"))

	if _, err := svc.Create(context.Background(), transport.CreateCustomerRequest{Name: "Acme"}); err == nil {
		t.Fatal("expected repository error to propagate")
	}
}
