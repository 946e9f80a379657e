package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/api/httperr"
	"github.com/99minutos/todo-service/internal/core/domain"
)

func runErrorHandler(t *testing.T, method string, exposeCause bool, err error) (*httptest.ResponseRecorder, httperr.Body) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/api/todo", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), exposeCause)(err, c)

	var body httperr.Body
	if rec.Body.Len() > 0 {
		if jerr := json.Unmarshal(rec.Body.Bytes(), &body); jerr != nil {
			t.Fatalf("decode body: %v", jerr)
		}
	}
	return rec, body
}

func TestErrorHandler_HidesCauseInProduction(t *testing.T) {
	cause := errors.New("connection refused: mongo-0:27017")

	rec, body := runErrorHandler(t, http.MethodGet, false, httperr.Internal("Failed to fetch todos", cause))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Error != "Failed to fetch todos" {
		t.Fatalf("unexpected message %q", body.Error)
	}
	if body.Details != "" {
		t.Fatalf("cause leaked: %q", body.Details)
	}
}

func TestErrorHandler_ExposesCauseOutsideProduction(t *testing.T) {
	cause := errors.New("connection refused")

	_, body := runErrorHandler(t, http.MethodGet, true, httperr.Internal("Failed to fetch todos", cause))
	if body.Details != cause.Error() {
		t.Fatalf("expected details %q, got %q", cause.Error(), body.Details)
	}
}

func TestErrorHandler_UnknownErrorIsGeneric500(t *testing.T) {
	rec, body := runErrorHandler(t, http.MethodGet, false, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError || body.Error != "Internal server error" {
		t.Fatalf("got %d %q", rec.Code, body.Error)
	}
}

func TestErrorHandler_MapsEscapedDomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.ErrTodoNotFound, http.StatusNotFound, "Not found"},
		{domain.ErrUserExists, http.StatusConflict, "User with this email already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "Invalid token."},
	}
	for _, tc := range cases {
		rec, body := runErrorHandler(t, http.MethodGet, false, tc.err)
		if rec.Code != tc.status || body.Error != tc.msg {
			t.Errorf("%v: got %d %q, want %d %q", tc.err, rec.Code, body.Error, tc.status, tc.msg)
		}
	}
}

func TestErrorHandler_EchoNotFound(t *testing.T) {
	rec, body := runErrorHandler(t, http.MethodGet, false, echo.ErrNotFound)
	if rec.Code != http.StatusNotFound || body.Error != "Not found" {
		t.Fatalf("got %d %q", rec.Code, body.Error)
	}
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	rec, _ := runErrorHandler(t, http.MethodHead, false, httperr.NotFound())
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestErrorHandler_ValidationIssues(t *testing.T) {
	issue := httperr.Issue{Path: []string{"title"}, Message: "Required", Code: "invalid_type"}
	rec, body := runErrorHandler(t, http.MethodPost, false, httperr.Validation(issue))
	if rec.Code != http.StatusBadRequest || body.Error != "Validation error" {
		t.Fatalf("got %d %q", rec.Code, body.Error)
	}
	if len(body.Issues) != 1 || body.Issues[0].Path[0] != "title" {
		t.Fatalf("unexpected issues %+v", body.Issues)
	}
}
