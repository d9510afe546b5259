package repository

import (
	"strings"
	"testing"
)

func TestLineItemsQueryPreservesSubmissionOrder(t *testing.T) {
	query := strings.ToLower(getLineItemsQuery)

	// Item ids are assigned in insertion order; ascending id order is the
	// submission order guarantee.
	if !strings.Contains(query, "order by id asc") {
		t.Fatalf("expected line items query to order by id ascending, got %q", query)
	}
}

func TestListQuotesByCustomerOrdersMostRecentFirst(t *testing.T) {
	query := strings.ToLower(listQuotesByCustomerQuery)

	if !strings.Contains(query, "order by created_at desc") {
		t.Fatalf("expected customer quotes to be ordered most recent first, got %q", query)
	}
	if !strings.Contains(query, "where customer_id = $1") {
		t.Fatalf("expected customer quotes query to filter by customer_id, got %q", query)
	}
}

func TestInsertQueriesReturnAssignedIdentifiers(t *testing.T) {
	if !strings.Contains(strings.ToLower(insertQuoteQuery), "returning id, created_at") {
		t.Fatal("quote insert must return the assigned id and creation timestamp")
	}
	if !strings.Contains(strings.ToLower(insertLineItemQuery), "returning id") {
		t.Fatal("line item insert must return the assigned id")
	}
}

func TestCustomerCheckRunsBeforeInsert(t *testing.T) {
	query := strings.ToLower(checkCustomerQuery)

	if !strings.Contains(query, "from customers") || !strings.Contains(query, "where id = $1") {
		t.Fatalf("expected customer existence check by id, got %q", query)
	}
}
