package services

import (
	"errors"
	"testing"
	"time"

	"teampulse/models"
	"teampulse/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCheckInSource returns canned samples, newest first, honoring the
// fetch cap the way the real store does.
type fakeCheckInSource struct {
	checkins []models.CheckIn
	err      error
}

func (f *fakeCheckInSource) RecentCheckIns(userID uint, since time.Time, limit int) ([]models.CheckIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.checkins) > limit {
		return f.checkins[:limit], nil
	}
	return f.checkins, nil
}

func descCheckIns(count int, mood, energy, stress float64) []models.CheckIn {
	now := time.Now()
	checkins := make([]models.CheckIn, count)
	for i := range checkins {
		checkins[i] = models.CheckIn{
			UserID:      1,
			MoodScore:   mood,
			EnergyScore: energy,
			StressScore: stress,
			CreatedAt:   now.Add(-time.Duration(i) * 24 * time.Hour),
		}
	}
	return checkins
}

func TestPersonalMetricsEmptyWindow(t *testing.T) {
	svc := NewMetricsService(&fakeCheckInSource{})

	metrics, err := svc.GetPersonalMetrics(1)
	require.NoError(t, err)

	assert.Equal(t, 0, metrics.TotalCheckIns)
	assert.Equal(t, 0.0, metrics.AvgMood)
	assert.Equal(t, 0.0, metrics.AvgEnergy)
	assert.Equal(t, 0.0, metrics.AvgStress)
	assert.Equal(t, 0, metrics.BurnoutRisk)
	assert.Empty(t, metrics.RecentEntries)
	assert.NotEmpty(t, metrics.Insights)
}

func TestPersonalMetricsAveragesAndRounding(t *testing.T) {
	now := time.Now()
	source := &fakeCheckInSource{checkins: []models.CheckIn{
		{MoodScore: 8, EnergyScore: 7, StressScore: 3, CreatedAt: now},
		{MoodScore: 7, EnergyScore: 6, StressScore: 4, CreatedAt: now.Add(-24 * time.Hour)},
		{MoodScore: 6, EnergyScore: 5, StressScore: 5, CreatedAt: now.Add(-48 * time.Hour)},
	}}
	svc := NewMetricsService(source)

	metrics, err := svc.GetPersonalMetrics(1)
	require.NoError(t, err)

	assert.Equal(t, 3, metrics.TotalCheckIns)
	assert.Equal(t, 7.0, metrics.AvgMood)
	assert.Equal(t, 6.0, metrics.AvgEnergy)
	assert.Equal(t, 4.0, metrics.AvgStress)

	wantRisk := int(scoring.BurnoutRisk(source.checkins) + 0.5)
	assert.Equal(t, wantRisk, metrics.BurnoutRisk)
}

func TestPersonalMetricsOneDecimalAverages(t *testing.T) {
	now := time.Now()
	source := &fakeCheckInSource{checkins: []models.CheckIn{
		{MoodScore: 8, EnergyScore: 5, StressScore: 5, CreatedAt: now},
		{MoodScore: 7, EnergyScore: 5, StressScore: 5, CreatedAt: now.Add(-time.Hour)},
		{MoodScore: 7, EnergyScore: 5, StressScore: 5, CreatedAt: now.Add(-2 * time.Hour)},
	}}
	svc := NewMetricsService(source)

	metrics, err := svc.GetPersonalMetrics(1)
	require.NoError(t, err)

	// 22/3 = 7.333... reported as 7.3
	assert.Equal(t, 7.3, metrics.AvgMood)
}

func TestPersonalMetricsRecentEntriesChronological(t *testing.T) {
	svc := NewMetricsService(&fakeCheckInSource{checkins: descCheckIns(10, 7, 6, 4)})

	metrics, err := svc.GetPersonalMetrics(1)
	require.NoError(t, err)

	// First 7 of the descending fetch, reversed to ascending.
	require.Len(t, metrics.RecentEntries, 7)
	for i := 1; i < len(metrics.RecentEntries); i++ {
		assert.True(t, metrics.RecentEntries[i].Date.After(metrics.RecentEntries[i-1].Date))
	}
}

func TestPersonalMetricsFewerEntriesThanChartCap(t *testing.T) {
	svc := NewMetricsService(&fakeCheckInSource{checkins: descCheckIns(2, 7, 6, 4)})

	metrics, err := svc.GetPersonalMetrics(1)
	require.NoError(t, err)

	assert.Len(t, metrics.RecentEntries, 2)
}

func TestPersonalMetricsStoreError(t *testing.T) {
	svc := NewMetricsService(&fakeCheckInSource{err: errors.New("connection refused")})

	_, err := svc.GetPersonalMetrics(1)
	assert.Error(t, err)
}
