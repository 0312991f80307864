package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleEstimateView returns a handler that serves a stored estimate. The
// result JSON is returned exactly as persisted; estimates are immutable
// historical records.
func HandleEstimateView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		if estimateID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing estimate ID"})
		}

		record, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "estimate not found"})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":      record.Id,
			"report":  record.GetString("report"),
			"created": record.GetDateTime("created"),
			"result":  json.RawMessage(record.GetString("result")),
		})
	}
}
