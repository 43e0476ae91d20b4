package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spotnere-backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runFail(t *testing.T, err error) (*httptest.ResponseRecorder, detail) {
	t.Helper()
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fail(ctx, zap.NewNop(), "fetching places", err)

	var body detail
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec, body
}

func TestFailMapsServiceErrors(t *testing.T) {
	rec, body := runFail(t, service.NotFoundf("Place with id p1 not found"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("not found status: %d", rec.Code)
	}
	if body.Detail != "Place with id p1 not found" {
		t.Fatalf("not found detail: %q", body.Detail)
	}

	rec, body = runFail(t, service.Validationf("bad rating"))
	if rec.Code != http.StatusBadRequest || body.Detail != "bad rating" {
		t.Fatalf("validation mapping: %d %q", rec.Code, body.Detail)
	}

	rec, body = runFail(t, service.Unauthorizedf("Invalid email or password"))
	if rec.Code != http.StatusUnauthorized || body.Detail != "Invalid email or password" {
		t.Fatalf("unauthorized mapping: %d %q", rec.Code, body.Detail)
	}
}

func TestFailWrapsUnknownErrors(t *testing.T) {
	rec, body := runFail(t, errors.New("connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unknown error status: %d", rec.Code)
	}
	if body.Detail != "Error fetching places: connection refused" {
		t.Fatalf("unknown error detail: %q", body.Detail)
	}
}

func TestFailPreservesWrappedServiceError(t *testing.T) {
	wrapped := errorWrap{service.NotFoundf("Admin not found")}
	rec, body := runFail(t, wrapped)
	if rec.Code != http.StatusNotFound || body.Detail != "Admin not found" {
		t.Fatalf("wrapped mapping: %d %q", rec.Code, body.Detail)
	}
}

type errorWrap struct{ err error }

func (w errorWrap) Error() string { return w.err.Error() }
func (w errorWrap) Unwrap() error { return w.err }
