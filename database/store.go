// database/store.go - GORM-backed store consumed by the service layer
package database

import (
	"errors"
	"time"

	"teampulse/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store wraps the gorm connection behind the query methods the services
// need. Services depend on narrow interfaces, so tests substitute in-memory
// fakes instead of a database.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ================== CHECK-INS ==================

// CreateCheckIn persists a new immutable sample
func (s *Store) CreateCheckIn(checkin *models.CheckIn) error {
	return s.db.Create(checkin).Error
}

// RecentCheckIns returns a user's samples since the cutoff, newest first,
// capped at limit
func (s *Store) RecentCheckIns(userID uint, since time.Time, limit int) ([]models.CheckIn, error) {
	var checkins []models.CheckIn
	query := s.db.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&checkins).Error
	return checkins, err
}

// TeamCheckIns returns every sample from every member of a team since the
// cutoff, newest first, with the owning user preloaded
func (s *Store) TeamCheckIns(teamID uint, since time.Time) ([]models.CheckIn, error) {
	var checkins []models.CheckIn
	err := s.db.Joins("JOIN users ON users.id = check_ins.user_id").
		Where("users.team_id = ? AND check_ins.created_at >= ?", teamID, since).
		Preload("User").
		Order("check_ins.created_at DESC").
		Find(&checkins).Error

	return checkins, err
}

// DeleteCheckInsBefore removes samples older than the cutoff (retention sweep)
func (s *Store) DeleteCheckInsBefore(cutoff time.Time) (int64, error) {
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.CheckIn{})
	return result.RowsAffected, result.Error
}

// ================== USERS & TEAMS ==================

// TeamMembers returns all members of a team, including those without any
// recent check-ins
func (s *Store) TeamMembers(teamID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.Where("team_id = ?", teamID).Find(&users).Error
	return users, err
}

// TeamByID retrieves an active team
func (s *Store) TeamByID(teamID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("id = ? AND is_active = ?", teamID, true).First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ================== BIOMETRIC METRICS ==================

// CreateDailyMetric persists one biometric sync result
func (s *Store) CreateDailyMetric(metric *models.DailyMetric) error {
	return s.db.Create(metric).Error
}

// TeamFlowMetrics returns a team's daily metrics within [from, to]
func (s *Store) TeamFlowMetrics(teamID uint, from, to time.Time) ([]models.DailyMetric, error) {
	var metrics []models.DailyMetric
	err := s.db.Joins("JOIN users ON users.id = daily_metrics.user_id").
		Where("users.team_id = ? AND daily_metrics.date >= ? AND daily_metrics.date <= ?", teamID, from, to).
		Find(&metrics).Error

	return metrics, err
}

// ================== ALERTS ==================

// CreateAlertOnce inserts a burnout alert unless one already exists for the
// same team and date. The (team_id, alert_date) unique index plus ON
// CONFLICT DO NOTHING makes the once-per-day guarantee hold even when two
// heatmap requests race. Returns true when this call created the row.
func (s *Store) CreateAlertOnce(alert *models.BurnoutAlert) (bool, error) {
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "alert_date"}},
		DoNothing: true,
	}).Create(alert)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// ================== PRECOMPUTED TEAM METRICS ==================

// TeamMetricsForPeriod returns the precomputed rollup for a team and period,
// or nil when none has been materialized yet
func (s *Store) TeamMetricsForPeriod(teamID uint, period string) (*models.TeamMetrics, error) {
	var metrics models.TeamMetrics
	err := s.db.Where("team_id = ? AND period = ?", teamID, period).
		Order("computed_at DESC").
		First(&metrics).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &metrics, nil
}
