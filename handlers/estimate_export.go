package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/CleanExpo/RestoreAssist-sub007/services"
)

// buildEstimateExportData loads a stored estimate and its report, returning
// the data the document generators consume.
func buildEstimateExportData(app *pocketbase.PocketBase, estimateID string) (services.EstimateExportData, error) {
	record, err := app.FindRecordById("estimates", estimateID)
	if err != nil {
		return services.EstimateExportData{}, fmt.Errorf("estimate not found: %w", err)
	}

	var result services.CostEstimationResult
	if err := json.Unmarshal([]byte(record.GetString("result")), &result); err != nil {
		return services.EstimateExportData{}, fmt.Errorf("stored estimate is corrupt: %w", err)
	}

	data := services.EstimateExportData{
		Title:       "Cost Estimate",
		CreatedDate: "-",
		Result:      &result,
	}

	if dt := record.GetDateTime("created"); !dt.IsZero() {
		data.CreatedDate = dt.Time().Format("02 Jan 2006")
	}

	if report, err := app.FindRecordById("reports", record.GetString("report")); err == nil {
		data.Title = report.GetString("title")
		data.ClaimNumber = report.GetString("claim_number")
		data.ClientName = report.GetString("client_name")
	}

	return data, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleEstimateExportExcel returns a handler that generates and downloads
// an Excel workbook for a stored estimate.
func HandleEstimateExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		if estimateID == "" {
			return e.String(http.StatusBadRequest, "Missing estimate ID")
		}

		data, err := buildEstimateExportData(app, estimateID)
		if err != nil {
			log.Printf("estimate_export_excel: %v", err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		xlsxBytes, err := services.GenerateEstimateExcel(data)
		if err != nil {
			log.Printf("estimate_export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Estimate_%s_%s.xlsx", sanitizeFilename(data.Title), estimateID)

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleEstimateExportPDF returns a handler that generates and downloads a
// PDF document for a stored estimate.
func HandleEstimateExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		if estimateID == "" {
			return e.String(http.StatusBadRequest, "Missing estimate ID")
		}

		data, err := buildEstimateExportData(app, estimateID)
		if err != nil {
			log.Printf("estimate_export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		pdfBytes, err := services.GenerateEstimatePDF(data)
		if err != nil {
			log.Printf("estimate_export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Estimate_%s_%s.pdf", sanitizeFilename(data.Title), estimateID)

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
