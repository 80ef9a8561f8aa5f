// models/checkin.go
package models

import "time"

// CheckIn is one self-reported wellness sample. Rows are immutable once
// created; scoring reads them but never writes them back.
//
// Scales: MoodScore [1,10], EnergyScore [0,10], StressScore [0,10].
// The check-in handler clamps incoming values into range; the scoring
// package assumes in-range input.
type CheckIn struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	UserID      uint    `json:"user_id" gorm:"not null;index:idx_check_ins_user_time"`
	User        *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	MoodScore   float64 `json:"mood_score" gorm:"not null"`
	EnergyScore float64 `json:"energy_score" gorm:"not null"`
	StressScore float64 `json:"stress_score" gorm:"not null"`
	Note        *string `json:"note,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"index:idx_check_ins_user_time"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}

// MoodLabel is the categorical intake variant. Unknown labels fall back to
// the neutral triple at the mapping site.
type MoodLabel string

const (
	MoodEnergized MoodLabel = "Energized"
	MoodHappy     MoodLabel = "Happy"
	MoodNeutral   MoodLabel = "Neutral"
	MoodDrained   MoodLabel = "Drained"
)
