// models/daily_metric.go
package models

import "time"

// DailyMetric is one biometric sync result. FatigueScore and VoiceStress
// come back from the external analyzer in [0,1]; FlowScore is derived from
// them on a 0-100 scale. This is a separate pipeline from check-ins and the
// two score scales are never mixed.
type DailyMetric struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index:idx_daily_metrics_user_date"`
	User         *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Date         time.Time `json:"date" gorm:"type:date;not null;index:idx_daily_metrics_user_date"`
	FlowScore    float64   `json:"flow_score" gorm:"not null"`
	FatigueScore float64   `json:"fatigue_score" gorm:"not null"`
	VoiceStress  float64   `json:"voice_stress" gorm:"not null"`
	MeetingCount int       `json:"meeting_count" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
}

func (DailyMetric) TableName() string {
	return "daily_metrics"
}
