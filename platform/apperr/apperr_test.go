package apperr

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindBadRequest, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
		{KindUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := New(tt.kind, "boom").HTTPStatus(); got != tt.want {
			t.Errorf("kind %v: expected status %d, got %d", tt.kind, tt.want, got)
		}
	}
}

func TestGetKindOnUntypedError(t *testing.T) {
	if got := GetKind(errors.New("plain")); got != KindUnknown {
		t.Fatalf("expected KindUnknown for untyped error, got %v", got)
	}
	if got := GetKind(nil); got != KindUnknown {
		t.Fatalf("expected KindUnknown for nil error, got %v", got)
	}
}

func TestWrapPreservesUnderlyingError(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindInternal, "query failed", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause reachable via errors.Is")
	}
	if err.Error() != "query failed" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestErrorIncludesOperation(t *testing.T) {
	err := Validation("qty must be greater than 0").WithOp("quotes.create")
	if err.Error() != "quotes.create: qty must be greater than 0" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
