// handlers/checkin.go - Daily wellness check-in submission
package handlers

import (
	"teampulse/middleware"
	"teampulse/models"
	"teampulse/scoring"

	"github.com/gofiber/fiber/v2"
)

type CheckInRequest struct {
	// Categorical intake: when Mood is set the score triple is derived
	// from the label and the explicit scores are ignored.
	Mood string `json:"mood,omitempty"`

	MoodScore   *float64 `json:"mood_score,omitempty"`
	EnergyScore *float64 `json:"energy_score,omitempty"`
	StressScore *float64 `json:"stress_score,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// SubmitCheckIn records one immutable wellness sample
// POST /api/check-in
func SubmitCheckIn(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	var mood, energy, stress float64
	if req.Mood != "" {
		mood, energy, stress = scoring.ScoresForMood(models.MoodLabel(req.Mood))
	} else {
		if req.MoodScore == nil || req.EnergyScore == nil || req.StressScore == nil {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Either a mood label or all three scores are required",
			})
		}
		// Scoring assumes in-range input; clamp at the boundary.
		mood = clamp(*req.MoodScore, 1, 10)
		energy = clamp(*req.EnergyScore, 0, 10)
		stress = clamp(*req.StressScore, 0, 10)
	}

	checkin := &models.CheckIn{
		UserID:      userID,
		MoodScore:   mood,
		EnergyScore: energy,
		StressScore: stress,
	}
	if req.Note != "" {
		checkin.Note = &req.Note
	}

	if err := wellnessStore.CreateCheckIn(checkin); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save check-in"})
	}

	// Live pulse feed for team dashboards
	if teamID, ok := middleware.GetTeamID(c); ok {
		BroadcastPulse(PulseEvent{
			Event: "checkin.created",
			Payload: fiber.Map{
				"team_id":   teamID,
				"mood":      scoring.MoodBucket(mood),
				"timestamp": checkin.CreatedAt,
			},
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"entry": fiber.Map{
			"id":        checkin.ID,
			"timestamp": checkin.CreatedAt,
		},
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
