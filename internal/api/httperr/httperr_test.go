package httperr

import (
	"errors"
	"net/http"
	"testing"
)

func TestError_BodyHidesCauseUnlessExposed(t *testing.T) {
	cause := errors.New("connection refused")
	e := Internal("Failed to fetch todos", cause)

	if got := e.Body(false); got.Details != "" {
		t.Fatalf("expected no details, got %q", got.Details)
	}
	if got := e.Body(true); got.Details != "connection refused" {
		t.Fatalf("expected cause as details, got %q", got.Details)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected Unwrap to expose cause")
	}
}

func TestError_ExplicitDetailsAlwaysShown(t *testing.T) {
	e := New(http.StatusUnauthorized, "Invalid token.").WithDetails("invalid or expired token")
	if got := e.Body(false); got.Details != "invalid or expired token" {
		t.Fatalf("unexpected details %q", got.Details)
	}
}

func TestValidation_NeverNilIssues(t *testing.T) {
	e := Validation()
	if e.Status != http.StatusBadRequest || e.Message != "Validation error" {
		t.Fatalf("unexpected error: %+v", e)
	}
	if e.Issues == nil {
		t.Fatalf("expected non-nil issues")
	}
}
