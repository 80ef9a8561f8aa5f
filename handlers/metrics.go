// handlers/metrics.go - Personal dashboard metrics
package handlers

import (
	"log"

	"teampulse/middleware"
	"teampulse/models"
	"teampulse/services"

	"github.com/gofiber/fiber/v2"
)

// GetMetrics returns the caller's personal wellness metrics, plus the team
// summary block when the caller holds the manager capability.
// GET /api/metrics
func GetMetrics(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	personal, err := metricsService.GetPersonalMetrics(userID)
	if err != nil {
		log.Printf("Personal metrics error for user %d: %v", userID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch metrics"})
	}

	var team *services.TeamSummary
	role := middleware.GetRole(c)
	if role == models.RoleManager || role == models.RoleAdmin {
		if teamID, ok := middleware.GetTeamID(c); ok {
			team, err = teamService.GetTeamSummary(teamID)
			if err != nil {
				log.Printf("Team summary error for team %d: %v", teamID, err)
				return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch metrics"})
			}
		}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"personal": personal,
		"team":     team,
	})
}
