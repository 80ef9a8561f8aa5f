// handlers/sync.go - Biometric sync and FlowScore calculation
package handlers

import (
	"io"
	"log"
	"time"

	"teampulse/middleware"
	"teampulse/models"
	"teampulse/scoring"

	"github.com/gofiber/fiber/v2"
)

// SyncBiometrics accepts an audio+image pair, forwards it to the external
// analyzer and persists the resulting daily flow metric. The analyzer is an
// opaque collaborator; this handler never inspects the media itself.
// POST /api/sync/biometrics
func SyncBiometrics(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	audio, err := formFileBytes(c, "audioFile")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "audioFile is required"})
	}

	image, err := formFileBytes(c, "imageFile")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "imageFile is required"})
	}

	analysis, err := analyzerClient.Analyze(audio, image)
	if err != nil {
		log.Printf("Biometric analysis failed for user %d: %v", userID, err)
		return c.Status(502).JSON(fiber.Map{"success": false, "error": "Biometric analysis unavailable"})
	}

	flowScore := scoring.FlowScore(analysis.Fatigue, analysis.Stress)

	now := time.Now()
	metric := &models.DailyMetric{
		UserID:       userID,
		Date:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		FlowScore:    flowScore,
		FatigueScore: analysis.Fatigue,
		VoiceStress:  analysis.Stress,
	}

	if err := wellnessStore.CreateDailyMetric(metric); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save metrics"})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"flow_score":    flowScore,
		"fatigue_score": analysis.Fatigue,
		"stress_score":  analysis.Stress,
		"coach_message": scoring.CoachMessage(flowScore),
		"metric_id":     metric.ID,
	})
}

func formFileBytes(c *fiber.Ctx, field string) ([]byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
