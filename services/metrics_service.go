// services/metrics_service.go - Personal wellness metrics aggregation
package services

import (
	"time"

	"teampulse/models"
	"teampulse/scoring"
)

const (
	// Trailing window and fetch cap for personal metrics
	metricsWindowDays = 30
	metricsFetchLimit = 30

	// Number of samples returned for the dashboard chart
	recentEntryCount = 7
)

// CheckInSource is the slice of the store the personal aggregator needs.
type CheckInSource interface {
	RecentCheckIns(userID uint, since time.Time, limit int) ([]models.CheckIn, error)
}

// RecentEntry is one point on the personal trend chart.
type RecentEntry struct {
	Date   time.Time `json:"date"`
	Mood   float64   `json:"mood"`
	Energy float64   `json:"energy"`
	Stress float64   `json:"stress"`
}

// PersonalMetrics is the dashboard payload for one user. With zero samples
// in the window every average is 0 and the entries list is empty; the client
// treats that as "insufficient data", not a healthy zero-state.
type PersonalMetrics struct {
	TotalCheckIns int               `json:"total_check_ins"`
	AvgMood       float64           `json:"avg_mood"`
	AvgEnergy     float64           `json:"avg_energy"`
	AvgStress     float64           `json:"avg_stress"`
	BurnoutRisk   int               `json:"burnout_risk"`
	Insights      []scoring.Insight `json:"insights"`
	RecentEntries []RecentEntry     `json:"recent_entries"`
}

type MetricsService struct {
	checkins CheckInSource
}

func NewMetricsService(checkins CheckInSource) *MetricsService {
	return &MetricsService{checkins: checkins}
}

// GetPersonalMetrics recomputes a user's summary from their recent samples.
// Averages are reported to one decimal, burnout risk as a whole percentage.
func (s *MetricsService) GetPersonalMetrics(userID uint) (*PersonalMetrics, error) {
	since := time.Now().AddDate(0, 0, -metricsWindowDays)

	checkins, err := s.checkins.RecentCheckIns(userID, since, metricsFetchLimit)
	if err != nil {
		return nil, err
	}

	metrics := &PersonalMetrics{
		TotalCheckIns: len(checkins),
		RecentEntries: []RecentEntry{},
	}

	var avgMood, avgEnergy, avgStress float64
	if len(checkins) > 0 {
		var sumMood, sumEnergy, sumStress float64
		for _, c := range checkins {
			sumMood += c.MoodScore
			sumEnergy += c.EnergyScore
			sumStress += c.StressScore
		}
		n := float64(len(checkins))
		avgMood = sumMood / n
		avgEnergy = sumEnergy / n
		avgStress = sumStress / n
	}

	burnoutPct := scoring.BurnoutRisk(checkins)

	metrics.AvgMood = scoring.Round1(avgMood)
	metrics.AvgEnergy = scoring.Round1(avgEnergy)
	metrics.AvgStress = scoring.Round1(avgStress)
	metrics.BurnoutRisk = int(burnoutPct + 0.5)
	metrics.Insights = scoring.GenerateInsights(avgStress, avgEnergy, burnoutPct, len(checkins))

	// First N of the already-descending fetch, reversed so the chart reads
	// chronologically.
	count := recentEntryCount
	if len(checkins) < count {
		count = len(checkins)
	}
	for i := count - 1; i >= 0; i-- {
		c := checkins[i]
		metrics.RecentEntries = append(metrics.RecentEntries, RecentEntry{
			Date:   c.CreatedAt,
			Mood:   c.MoodScore,
			Energy: c.EnergyScore,
			Stress: c.StressScore,
		})
	}

	return metrics, nil
}
