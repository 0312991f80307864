package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CleanExpo/RestoreAssist-sub007/testhelpers"
)

func TestHandleEstimateExportExcel_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPricingProfile(t, app, "Standard Rates")
	report := testhelpers.CreateTestReport(t, app, "Export Me")

	create := HandleEstimateCreate(app)
	req := newJSONRequest(t, http.MethodPost, "/api/reports/"+report.Id+"/estimate", estimateRequestBody())
	req.SetPathValue("id", report.Id)
	rec := httptest.NewRecorder()
	if err := create(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("create handler returned error: %v", err)
	}
	estimateID, _ := decodeJSONResponse(t, rec)["id"].(string)

	handler := HandleEstimateExportExcel(app)

	req = httptest.NewRequest(http.MethodGet, "/api/estimates/"+estimateID+"/export/excel", nil)
	req.SetPathValue("id", estimateID)
	rec = httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Estimate_Export-Me_") || !strings.Contains(cd, ".xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("response body is empty")
	}
}

func TestHandleEstimateExportPDF_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPricingProfile(t, app, "Standard Rates")
	report := testhelpers.CreateTestReport(t, app, "Export Me")

	create := HandleEstimateCreate(app)
	req := newJSONRequest(t, http.MethodPost, "/api/reports/"+report.Id+"/estimate", estimateRequestBody())
	req.SetPathValue("id", report.Id)
	rec := httptest.NewRecorder()
	if err := create(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("create handler returned error: %v", err)
	}
	estimateID, _ := decodeJSONResponse(t, rec)["id"].(string)

	handler := HandleEstimateExportPDF(app)

	req = httptest.NewRequest(http.MethodGet, "/api/estimates/"+estimateID+"/export/pdf", nil)
	req.SetPathValue("id", estimateID)
	rec = httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.Bytes()
	if len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("response body is not a PDF document")
	}
}

func TestHandleEstimateExportExcel_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleEstimateExportExcel(app)

	req := httptest.NewRequest(http.MethodGet, "/api/estimates/missing/export/excel", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleEstimateExportPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleEstimateExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/api/estimates/missing/export/pdf", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Burst Pipe - Unit 4", "Burst-Pipe---Unit-4"},
		{"a/b\\c:d", "a-b-c-d"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
