package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	xhttp "StockCast/pkg/http"
	xlogger "StockCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

// newTestRig registers the handler on a bare echo instance. Validation
// failures never reach the predictor, so these tests run without one.
func newTestRig(t *testing.T) *echo.Echo {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	e := echo.New()
	NewPredictHandler(l, nil).RegisterRoutes(e)
	return e
}

func postPredict(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) xhttp.FailureBody {
	t.Helper()
	var body xhttp.FailureBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestPredictRejectsMissingSymbol(t *testing.T) {
	e := newTestRig(t)
	rec := postPredict(e, `{"days": 5}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeFailure(t, rec)
	if body.Success {
		t.Fatal("expected success=false")
	}
	if !strings.Contains(body.Error, "symbol") {
		t.Fatalf("error should name the symbol field: %q", body.Error)
	}
}

func TestPredictRejectsBlankSymbol(t *testing.T) {
	e := newTestRig(t)
	rec := postPredict(e, `{"symbol": "   "}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeFailure(t, rec)
	if body.Error != "symbol is required" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestPredictRejectsZeroDays(t *testing.T) {
	e := newTestRig(t)
	rec := postPredict(e, `{"symbol": "TCS", "days": 0}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeFailure(t, rec)
	if !strings.Contains(body.Error, "days") {
		t.Fatalf("error should name the days field: %q", body.Error)
	}
}

func TestPredictRejectsOversizedHorizon(t *testing.T) {
	e := newTestRig(t)
	rec := postPredict(e, `{"symbol": "TCS", "days": 31}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeFailure(t, rec)
	if body.Success {
		t.Fatal("expected success=false")
	}
}

func TestPredictRejectsMalformedJSON(t *testing.T) {
	e := newTestRig(t)
	rec := postPredict(e, `{"symbol": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	e := newTestRig(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body xhttp.HealthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "healthy" {
		t.Fatalf("unexpected status %q", body.Status)
	}
	if body.Service == "" || body.Version == "" {
		t.Fatal("service and version must be populated")
	}
}
