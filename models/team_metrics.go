// models/team_metrics.go
package models

import "time"

// TeamMetrics is a precomputed per-period rollup. When no row exists for a
// requested period the team service computes the same numbers on the fly
// from raw check-ins.
type TeamMetrics struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	TeamID          uint      `json:"team_id" gorm:"not null;index:idx_team_metrics_team_period"`
	Team            *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Period          string    `json:"period" gorm:"not null;size:10;index:idx_team_metrics_team_period"` // "2026-08"
	AvgMood         float64   `json:"avg_mood"`
	BurnoutIndex    float64   `json:"burnout_index"`
	EngagementIndex float64   `json:"engagement_index"`
	ComputedAt      time.Time `json:"computed_at"`
}

func (TeamMetrics) TableName() string {
	return "team_metrics"
}
