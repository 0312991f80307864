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

// HandlePricingView returns a handler that serves the active pricing profile
// as a RateCatalog JSON document.
func HandlePricingView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		profile, err := findPricingProfile(app, nil)
		if err != nil {
			log.Printf("pricing_view: %v", err)
			return e.JSON(http.StatusNotFound, map[string]string{"error": "no pricing profile configured"})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":      profile.Id,
			"name":    profile.GetString("name"),
			"catalog": catalogFromRecord(profile),
		})
	}
}

// HandlePricingUpdate returns a handler that replaces the active pricing
// profile's rates. The incoming catalog is validated before anything is
// saved, so a negative or nonsense rate can never reach stored pricing.
func HandlePricingUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var catalog services.RateCatalog
		if err := json.NewDecoder(e.Request.Body).Decode(&catalog); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid rate catalog JSON"})
		}

		if err := catalog.Validate(); err != nil {
			if errors.Is(err, services.ErrInvalidRate) {
				return e.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			}
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		profile, err := findPricingProfile(app, nil)
		if err != nil {
			log.Printf("pricing_update: %v", err)
			return e.JSON(http.StatusNotFound, map[string]string{"error": "no pricing profile configured"})
		}

		applyCatalogToRecord(profile, catalog)
		if err := app.Save(profile); err != nil {
			log.Printf("pricing_update: could not save profile: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save pricing profile"})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":      profile.Id,
			"name":    profile.GetString("name"),
			"catalog": catalogFromRecord(profile),
		})
	}
}
