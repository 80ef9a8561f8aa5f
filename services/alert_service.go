// services/alert_service.go - Burnout alert evaluation
package services

import (
	"fmt"
	"log"
	"time"

	"teampulse/models"
)

// Alert thresholds over the team average flow score
const (
	alertThreshold   = 50.0
	alertHighBelow   = 30.0
	alertMediumBelow = 40.0
)

// AlertSink persists burnout alerts. CreateAlertOnce must be atomic per
// (team, date): when a row for that pair already exists it creates nothing
// and reports false.
type AlertSink interface {
	CreateAlertOnce(alert *models.BurnoutAlert) (bool, error)
}

type AlertService struct {
	sink AlertSink
}

func NewAlertService(sink AlertSink) *AlertService {
	return &AlertService{sink: sink}
}

// EvaluateTeamAverage raises a burnout alert when a team's average flow
// score falls below the threshold. At most one alert per team per calendar
// day is created; a worse average later the same day does not escalate an
// existing alert.
//
// Alerting is a best-effort side effect of metrics computation. Persistence
// failures are logged and swallowed so the enclosing request still succeeds.
func (s *AlertService) EvaluateTeamAverage(teamID uint, teamAverage float64, sampleCount int) {
	if sampleCount == 0 || teamAverage >= alertThreshold {
		return
	}

	severity := models.AlertSeverityLow
	if teamAverage < alertHighBelow {
		severity = models.AlertSeverityHigh
	} else if teamAverage < alertMediumBelow {
		severity = models.AlertSeverityMed
	}

	now := time.Now()
	alert := &models.BurnoutAlert{
		TeamID:    teamID,
		Severity:  severity,
		Reason:    fmt.Sprintf("Team average FlowScore (%.1f) below threshold (%.0f)", teamAverage, alertThreshold),
		AlertDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}

	created, err := s.sink.CreateAlertOnce(alert)
	if err != nil {
		log.Printf("⚠️ Failed to persist burnout alert for team %d: %v", teamID, err)
		return
	}

	if created {
		log.Printf("🚨 Burnout alert raised for team %d: severity=%s avg=%.1f", teamID, severity, teamAverage)
	}
}
