package transport

import (
	"testing"

	"saas_cpq_api/platform/apperr"
)

func TestNormalizeTrimsName(t *testing.T) {
	name, err := CreateCustomerRequest{Name: "  Acme Corp  "}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Acme Corp" {
		t.Fatalf("expected trimmed name, got %q", name)
	}
}

func TestNormalizeRejectsEmptyAndWhitespaceNames(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := CreateCustomerRequest{Name: input}.Normalize()
		if apperr.GetKind(err) != apperr.KindValidation {
			t.Fatalf("input %q: expected validation error, got %v", input, err)
		}
		if got := err.Error(); got != "name is required and must be a non-empty string" {
			t.Fatalf("input %q: unexpected message %q", input, got)
		}
	}
}
