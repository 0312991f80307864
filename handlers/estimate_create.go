package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/CleanExpo/RestoreAssist-sub007/services"
)

// HandleEstimateCreate returns a handler that runs the cost estimation
// engine over a work-breakdown snapshot and stores the result as a new
// immutable estimate record for the report.
//
// Invalid rates or quantities reject the whole computation with 422: a bad
// pricing configuration must block estimate generation rather than produce a
// silently wrong dollar figure.
func HandleEstimateCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		reportID := e.Request.PathValue("id")
		if reportID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing report ID"})
		}

		report, err := app.FindRecordById("reports", reportID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "report not found"})
		}

		var input services.EstimationInput
		if err := json.NewDecoder(e.Request.Body).Decode(&input); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid work breakdown JSON"})
		}

		profile, err := findPricingProfile(app, report)
		if err != nil {
			log.Printf("estimate_create: %v", err)
			return e.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "no pricing profile configured"})
		}
		rates := catalogFromRecord(profile)
		benchmarks := loadBenchmarkConfig(app)

		result, err := services.CalculateEstimation(input, rates, benchmarks)
		if err != nil {
			if errors.Is(err, services.ErrInvalidRate) || errors.Is(err, services.ErrInvalidQuantity) {
				return e.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			}
			log.Printf("estimate_create: estimation failed: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "estimation failed"})
		}

		resultJSON, err := json.Marshal(result)
		if err != nil {
			log.Printf("estimate_create: could not marshal result: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}

		estimatesCol, err := app.FindCollectionByNameOrId("estimates")
		if err != nil {
			log.Printf("estimate_create: could not find estimates collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}

		record := core.NewRecord(estimatesCol)
		record.Set("report", report.Id)
		record.Set("result", string(resultJSON))
		record.Set("subtotal", result.Subtotal.InexactFloat64())
		record.Set("grand_total", result.GrandTotal.InexactFloat64())

		if err := app.Save(record); err != nil {
			log.Printf("estimate_create: could not save estimate: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save estimate"})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":     record.Id,
			"report": report.Id,
			"result": result,
		})
	}
}
