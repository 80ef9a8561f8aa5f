// handlers/wellness.go - Wellness handler wiring
package handlers

import (
	"teampulse/database"
	"teampulse/services"
)

var (
	wellnessStore  *database.Store
	metricsService *services.MetricsService
	teamService    *services.TeamService
	alertService   *services.AlertService
	analyzerClient *services.AnalyzerClient
)

// InitWellnessHandlers wires the store and services. Must run after
// database.InitDB.
func InitWellnessHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitWellnessHandlers")
	}

	wellnessStore = database.NewStore(db)
	alertService = services.NewAlertService(wellnessStore)
	metricsService = services.NewMetricsService(wellnessStore)
	teamService = services.NewTeamService(wellnessStore, alertService)
	analyzerClient = services.NewAnalyzerClient()
}
