package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// reportRequest is the JSON body accepted when creating a report.
type reportRequest struct {
	Title           string `json:"title"`
	ClientName      string `json:"client_name"`
	ClaimNumber     string `json:"claim_number"`
	PropertyAddress string `json:"property_address"`
	PricingProfile  string `json:"pricing_profile"`
}

// HandleReportCreate returns a handler that creates a new inspection report
// shell. Estimates are generated against it separately.
func HandleReportCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req reportRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		}
		if req.Title == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
		}

		col, err := app.FindCollectionByNameOrId("reports")
		if err != nil {
			log.Printf("report_create: could not find reports collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}

		record := core.NewRecord(col)
		record.Set("title", req.Title)
		record.Set("client_name", req.ClientName)
		record.Set("claim_number", req.ClaimNumber)
		record.Set("property_address", req.PropertyAddress)
		record.Set("status", "draft")
		if req.PricingProfile != "" {
			if _, err := app.FindRecordById("pricing_profiles", req.PricingProfile); err != nil {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": "unknown pricing profile"})
			}
			record.Set("pricing_profile", req.PricingProfile)
		}

		if err := app.Save(record); err != nil {
			log.Printf("report_create: could not save report: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save report"})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":           record.Id,
			"title":        record.GetString("title"),
			"client_name":  record.GetString("client_name"),
			"claim_number": record.GetString("claim_number"),
			"status":       record.GetString("status"),
		})
	}
}
