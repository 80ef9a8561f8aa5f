// models/burnout_alert.go
package models

import "time"

type AlertSeverity string

const (
	AlertSeverityLow  AlertSeverity = "LOW"
	AlertSeverityMed  AlertSeverity = "MED"
	AlertSeverityHigh AlertSeverity = "HIGH"
)

// BurnoutAlert is raised when a team's average flow score drops below the
// alert threshold. The unique (team_id, alert_date) index is what enforces
// at-most-one-per-team-per-day: concurrent evaluators both insert and the
// database keeps exactly one row.
type BurnoutAlert struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	TeamID    uint          `json:"team_id" gorm:"not null;uniqueIndex:idx_burnout_alerts_team_date"`
	Team      *Team         `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Severity  AlertSeverity `json:"severity" gorm:"not null;size:10"`
	Reason    string        `json:"reason" gorm:"not null;type:text"`
	AlertDate time.Time     `json:"alert_date" gorm:"type:date;not null;uniqueIndex:idx_burnout_alerts_team_date"`
	CreatedAt time.Time     `json:"created_at"`
}

func (BurnoutAlert) TableName() string {
	return "burnout_alerts"
}
