package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleReportView returns a handler that serves a report's metadata along
// with the id of its most recent estimate, if any.
func HandleReportView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		reportID := e.Request.PathValue("id")
		if reportID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing report ID"})
		}

		report, err := app.FindRecordById("reports", reportID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "report not found"})
		}

		latestEstimateID := ""
		estimatesCol, err := app.FindCollectionByNameOrId("estimates")
		if err != nil {
			log.Printf("report_view: could not find estimates collection: %v", err)
		} else {
			estimates, err := app.FindRecordsByFilter(estimatesCol, "report = {:reportId}", "-created", 1, 0, map[string]any{"reportId": reportID})
			if err == nil && len(estimates) > 0 {
				latestEstimateID = estimates[0].Id
			}
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":               report.Id,
			"title":            report.GetString("title"),
			"client_name":      report.GetString("client_name"),
			"claim_number":     report.GetString("claim_number"),
			"property_address": report.GetString("property_address"),
			"status":           report.GetString("status"),
			"pricing_profile":  report.GetString("pricing_profile"),
			"latest_estimate":  latestEstimateID,
		})
	}
}
