package services

import (
	"testing"
	"time"

	"teampulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTeamStore struct {
	checkins []models.CheckIn
	members  []models.User
	flow     []models.DailyMetric
	period   *models.TeamMetrics
}

func (f *fakeTeamStore) TeamCheckIns(teamID uint, since time.Time) ([]models.CheckIn, error) {
	return f.checkins, nil
}

func (f *fakeTeamStore) TeamMembers(teamID uint) ([]models.User, error) {
	return f.members, nil
}

func (f *fakeTeamStore) TeamFlowMetrics(teamID uint, from, to time.Time) ([]models.DailyMetric, error) {
	return f.flow, nil
}

func (f *fakeTeamStore) TeamMetricsForPeriod(teamID uint, period string) (*models.TeamMetrics, error) {
	return f.period, nil
}

func userWithPublicID(id uint, publicID string) *models.User {
	return &models.User{ID: id, PublicID: publicID}
}

func TestTeamSummaryGrandMeans(t *testing.T) {
	now := time.Now()
	store := &fakeTeamStore{checkins: []models.CheckIn{
		{UserID: 1, MoodScore: 10, EnergyScore: 8, CreatedAt: now, User: userWithPublicID(1, "aaaaaaaa-1111-2222-3333-444444444444")},
		{UserID: 1, MoodScore: 10, EnergyScore: 8, CreatedAt: now.Add(-time.Hour), User: userWithPublicID(1, "aaaaaaaa-1111-2222-3333-444444444444")},
		{UserID: 2, MoodScore: 3, EnergyScore: 2, CreatedAt: now.Add(-2 * time.Hour), User: userWithPublicID(2, "bbbbbbbb-5555-6666-7777-888888888888")},
	}}
	svc := NewTeamService(store, nil)

	summary, err := svc.GetTeamSummary(1)
	require.NoError(t, err)

	// Grand means: the user with two check-ins weighs twice as much as the
	// user with one, so this is not the mean of per-user means.
	assert.Equal(t, 7.7, summary.AvgMood)
	assert.Equal(t, 6.0, summary.AvgEnergy)
	assert.Equal(t, 2, summary.ActiveMembers)
	assert.Equal(t, 3, summary.TotalCheckIns)
}

func TestTeamSummaryRecentActivityAnonymized(t *testing.T) {
	now := time.Now()
	store := &fakeTeamStore{checkins: []models.CheckIn{
		{UserID: 1, MoodScore: 10, CreatedAt: now, User: userWithPublicID(1, "aaaaaaaa-1111-2222-3333-444444444444")},
		{UserID: 2, MoodScore: 5, CreatedAt: now.Add(-time.Hour), User: userWithPublicID(2, "bbbbbbbb-5555-6666-7777-888888888888")},
		{UserID: 2, MoodScore: 3, CreatedAt: now.Add(-2 * time.Hour), User: userWithPublicID(2, "bbbbbbbb-5555-6666-7777-888888888888")},
	}}
	svc := NewTeamService(store, nil)

	summary, err := svc.GetTeamSummary(1)
	require.NoError(t, err)

	require.Len(t, summary.RecentActivity, 3)
	assert.Equal(t, "aaaaaaaa", summary.RecentActivity[0].UserID)
	assert.Equal(t, "bbbbbbbb", summary.RecentActivity[1].UserID)

	assert.Equal(t, "happy", summary.RecentActivity[0].Mood)
	assert.Equal(t, "neutral", summary.RecentActivity[1].Mood)
	assert.Equal(t, "drained", summary.RecentActivity[2].Mood)
}

func TestTeamSummaryActivityFeedCapped(t *testing.T) {
	now := time.Now()
	var checkins []models.CheckIn
	for i := 0; i < 9; i++ {
		checkins = append(checkins, models.CheckIn{
			UserID:    1,
			MoodScore: 5,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
			User:      userWithPublicID(1, "aaaaaaaa-1111-2222-3333-444444444444"),
		})
	}
	svc := NewTeamService(&fakeTeamStore{checkins: checkins}, nil)

	summary, err := svc.GetTeamSummary(1)
	require.NoError(t, err)

	assert.Len(t, summary.RecentActivity, 5)
}

func TestTeamSummaryEmptyWindow(t *testing.T) {
	svc := NewTeamService(&fakeTeamStore{}, nil)

	summary, err := svc.GetTeamSummary(1)
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.AvgMood)
	assert.Equal(t, 0, summary.ActiveMembers)
	assert.Empty(t, summary.RecentActivity)
}

func TestTeamAnalyticsMemberBreakdown(t *testing.T) {
	now := time.Now()
	store := &fakeTeamStore{
		members: []models.User{
			{ID: 1, Name: "Ada", Role: models.RoleEmployee},
			{ID: 2, Name: "Ben", Role: models.RoleEmployee},
			{ID: 3, Name: "Cam", Role: models.RoleManager},
		},
		checkins: []models.CheckIn{
			{UserID: 1, MoodScore: 9, EnergyScore: 8, StressScore: 2, CreatedAt: now},
			{UserID: 1, MoodScore: 9, EnergyScore: 8, StressScore: 2, CreatedAt: now.Add(-time.Hour)},
			{UserID: 2, MoodScore: 3, EnergyScore: 2, StressScore: 8, CreatedAt: now.Add(-2 * time.Hour)},
		},
	}
	svc := NewTeamService(store, nil)

	analytics, err := svc.GetTeamAnalytics(&models.Team{ID: 1, Name: "Platform"})
	require.NoError(t, err)

	assert.Equal(t, "Platform", analytics.Organization.Name)
	assert.Equal(t, 3, analytics.Organization.MemberCount)
	assert.Equal(t, 2, analytics.Organization.ActiveMembers)

	require.Len(t, analytics.MemberStats, 3)
	stats := make(map[string]MemberStat)
	for _, s := range analytics.MemberStats {
		stats[s.Name] = s
	}

	ada := stats["Ada"]
	require.NotNil(t, ada.AvgMood)
	assert.Equal(t, 9.0, *ada.AvgMood)
	assert.Equal(t, 2, ada.CheckInCount)
	// stress 2, exhaustion 2: (2*0.5 + 2*0.3)/8*100 = 20
	assert.Equal(t, 20, ada.RiskScore)
	assert.Equal(t, "stable", ada.Status)
	require.NotNil(t, ada.LastCheckIn)
	assert.True(t, ada.LastCheckIn.Equal(now))

	ben := stats["Ben"]
	// stress 8, exhaustion 8: (8*0.5 + 8*0.3)/8*100 = 80
	assert.Equal(t, 80, ben.RiskScore)
	assert.Equal(t, "critical", ben.Status)

	// Zero-sample members still get a row, with no averages and stable
	// status.
	cam := stats["Cam"]
	assert.Nil(t, cam.AvgMood)
	assert.Nil(t, cam.LastCheckIn)
	assert.Equal(t, 0, cam.CheckInCount)
	assert.Equal(t, 0, cam.RiskScore)
	assert.Equal(t, "stable", cam.Status)
}

func TestTeamAnalyticsMoodDistribution(t *testing.T) {
	now := time.Now()
	store := &fakeTeamStore{
		members: []models.User{
			{ID: 1, Name: "Ada"}, {ID: 2, Name: "Ben"},
			{ID: 3, Name: "Cam"}, {ID: 4, Name: "Dee"}, {ID: 5, Name: "Eli"},
		},
		checkins: []models.CheckIn{
			{UserID: 1, MoodScore: 8.5, CreatedAt: now},
			{UserID: 2, MoodScore: 6, CreatedAt: now},
			{UserID: 3, MoodScore: 4, CreatedAt: now},
			{UserID: 4, MoodScore: 3, CreatedAt: now},
			// Eli has no samples and lands in no bucket.
		},
	}
	svc := NewTeamService(store, nil)

	analytics, err := svc.GetTeamAnalytics(&models.Team{ID: 1, Name: "Platform"})
	require.NoError(t, err)

	assert.Equal(t, 1, analytics.MoodDistribution.Energized)
	assert.Equal(t, 1, analytics.MoodDistribution.Happy)
	assert.Equal(t, 1, analytics.MoodDistribution.Neutral)
	assert.Equal(t, 1, analytics.MoodDistribution.Drained)
}

func TestTeamHeatmapDailyAverages(t *testing.T) {
	day1 := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)
	store := &fakeTeamStore{flow: []models.DailyMetric{
		{UserID: 1, Date: day1, FlowScore: 40},
		{UserID: 2, Date: day1, FlowScore: 60},
		{UserID: 1, Date: day2, FlowScore: 20},
	}}
	svc := NewTeamService(store, nil)

	heatmap, err := svc.GetTeamHeatmap(1)
	require.NoError(t, err)

	assert.Equal(t, 3, heatmap.TotalSamples)
	assert.InDelta(t, 40.0, heatmap.TeamAverageFlowScore, 1e-9)

	require.Len(t, heatmap.DailyAverages, 2)
	byDate := make(map[string]HeatmapDay)
	for _, day := range heatmap.DailyAverages {
		byDate[day.Date] = day
	}

	assert.InDelta(t, 50.0, byDate["2026-08-24"].AverageFlowScore, 1e-9)
	assert.Equal(t, 2, byDate["2026-08-24"].SampleCount)
	assert.InDelta(t, 20.0, byDate["2026-08-25"].AverageFlowScore, 1e-9)
}

func TestTeamHeatmapTriggersAlert(t *testing.T) {
	day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	store := &fakeTeamStore{flow: []models.DailyMetric{
		{UserID: 1, Date: day, FlowScore: 20},
		{UserID: 2, Date: day, FlowScore: 30},
	}}
	sink := &fakeAlertSink{}
	svc := NewTeamService(store, NewAlertService(sink))

	heatmap, err := svc.GetTeamHeatmap(9)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, heatmap.TeamAverageFlowScore, 1e-9)

	require.Len(t, sink.created, 1)
	assert.Equal(t, uint(9), sink.created[0].TeamID)
	assert.Equal(t, models.AlertSeverityHigh, sink.created[0].Severity)
}

func TestTeamHeatmapEmptyWindowNoAlert(t *testing.T) {
	sink := &fakeAlertSink{}
	svc := NewTeamService(&fakeTeamStore{}, NewAlertService(sink))

	heatmap, err := svc.GetTeamHeatmap(1)
	require.NoError(t, err)

	assert.Equal(t, 0.0, heatmap.TeamAverageFlowScore)
	assert.Empty(t, sink.created)
}

func TestPeriodMetricsPrecomputedWins(t *testing.T) {
	store := &fakeTeamStore{period: &models.TeamMetrics{
		TeamID:          1,
		Period:          "2026-07",
		AvgMood:         6.8,
		BurnoutIndex:    41.5,
		EngagementIndex: 82.0,
	}}
	svc := NewTeamService(store, nil)

	metrics, err := svc.GetPeriodMetrics(1, "2026-07")
	require.NoError(t, err)

	assert.True(t, metrics.Precomputed)
	assert.Equal(t, 6.8, metrics.AvgMood)
	assert.Equal(t, 41.5, metrics.BurnoutIndex)
}

func TestPeriodMetricsComputedOnTheFly(t *testing.T) {
	now := time.Now()
	store := &fakeTeamStore{checkins: []models.CheckIn{
		{UserID: 1, MoodScore: 5, EnergyScore: 5, StressScore: 5, CreatedAt: now},
		{UserID: 2, MoodScore: 5, EnergyScore: 5, StressScore: 5, CreatedAt: now},
	}}
	svc := NewTeamService(store, nil)

	metrics, err := svc.GetPeriodMetrics(1, "2026-08")
	require.NoError(t, err)

	assert.False(t, metrics.Precomputed)
	assert.Equal(t, 5.0, metrics.AvgMood)
	// stress/10*50 + (10-energy)/10*50 = 25 + 25
	assert.Equal(t, 50.0, metrics.BurnoutIndex)
	// 100 - 25 + 12.5
	assert.Equal(t, 87.5, metrics.EngagementIndex)
}

func TestPeriodMetricsInvalidPeriod(t *testing.T) {
	svc := NewTeamService(&fakeTeamStore{}, nil)

	_, err := svc.GetPeriodMetrics(1, "August")
	assert.Error(t, err)
}

func TestPeriodMetricsEmptyWindow(t *testing.T) {
	svc := NewTeamService(&fakeTeamStore{}, nil)

	metrics, err := svc.GetPeriodMetrics(1, "2026-08")
	require.NoError(t, err)

	assert.Equal(t, 0.0, metrics.AvgMood)
	assert.Equal(t, 0.0, metrics.BurnoutIndex)
	assert.Equal(t, 0.0, metrics.EngagementIndex)
}
