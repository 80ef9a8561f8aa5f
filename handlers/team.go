// handlers/team.go - Manager team analytics endpoints
//
// All routes in this file sit behind middleware.RequireManager; the
// aggregation services assume the capability check already happened.
package handlers

import (
	"log"
	"time"

	"teampulse/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetTeamAnalytics returns the member breakdown and mood distribution for
// the caller's team
// GET /api/team/analytics
func GetTeamAnalytics(c *fiber.Ctx) error {
	teamID, ok := middleware.GetTeamID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "No team assigned"})
	}

	team, err := wellnessStore.TeamByID(teamID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team not found"})
	}

	analytics, err := teamService.GetTeamAnalytics(team)
	if err != nil {
		log.Printf("Team analytics error for team %d: %v", teamID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch team analytics"})
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"organization":      analytics.Organization,
		"member_stats":      analytics.MemberStats,
		"mood_distribution": analytics.MoodDistribution,
	})
}

// GetTeamHeatmap returns daily flow score averages for the last 7 days and
// evaluates the burnout alert threshold as a side effect
// GET /api/team/heatmap
func GetTeamHeatmap(c *fiber.Ctx) error {
	teamID, ok := middleware.GetTeamID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "No team assigned"})
	}

	heatmap, err := teamService.GetTeamHeatmap(teamID)
	if err != nil {
		log.Printf("Team heatmap error for team %d: %v", teamID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch team heatmap"})
	}

	if heatmap.TotalSamples > 0 {
		BroadcastPulse(PulseEvent{
			Event: "pulse.updated",
			Payload: fiber.Map{
				"team_id":            teamID,
				"average_flow_score": heatmap.TeamAverageFlowScore,
			},
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"heatmap": heatmap,
	})
}

// GetTeamPeriodMetrics returns the precomputed rollup for a period, or an
// on-the-fly computation when none exists
// GET /api/team/metrics?period=YYYY-MM
func GetTeamPeriodMetrics(c *fiber.Ctx) error {
	teamID, ok := middleware.GetTeamID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "No team assigned"})
	}

	period := c.Query("period")
	if period == "" {
		period = time.Now().Format("2006-01")
	}

	metrics, err := teamService.GetPeriodMetrics(teamID, period)
	if err != nil {
		log.Printf("Period metrics error for team %d period %s: %v", teamID, period, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch team metrics"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"metrics": metrics,
	})
}
