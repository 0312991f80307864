package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/CleanExpo/RestoreAssist-sub007/collections"
	"github.com/CleanExpo/RestoreAssist-sub007/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed default pricing on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Reports ──────────────────────────────────────────────
		se.Router.POST("/api/reports", handlers.HandleReportCreate(app))
		se.Router.GET("/api/reports/{id}", handlers.HandleReportView(app))

		// ── Estimation ───────────────────────────────────────────
		se.Router.POST("/api/reports/{id}/estimate", handlers.HandleEstimateCreate(app))
		se.Router.GET("/api/estimates/{id}", handlers.HandleEstimateView(app))
		se.Router.GET("/api/estimates/{id}/export/excel", handlers.HandleEstimateExportExcel(app))
		se.Router.GET("/api/estimates/{id}/export/pdf", handlers.HandleEstimateExportPDF(app))

		// ── Pricing configuration ────────────────────────────────
		se.Router.GET("/api/pricing", handlers.HandlePricingView(app))
		se.Router.POST("/api/pricing", handlers.HandlePricingUpdate(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
