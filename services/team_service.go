// services/team_service.go - Team-level wellness aggregation
//
// Everything here is manager/admin-only. The role gate lives in the
// middleware layer; by the time these methods run the caller has already
// been authorized.
package services

import (
	"fmt"
	"time"

	"teampulse/models"
	"teampulse/scoring"
)

const (
	// Trailing windows for team aggregates
	teamWindowDays    = 30
	heatmapWindowDays = 7

	// Number of entries in the anonymized activity feed
	recentActivityCount = 5

	// Length of the anonymized user prefix shown in the feed
	anonPrefixLen = 8
)

// TeamStore is the slice of the store the team aggregator needs.
type TeamStore interface {
	TeamCheckIns(teamID uint, since time.Time) ([]models.CheckIn, error)
	TeamMembers(teamID uint) ([]models.User, error)
	TeamFlowMetrics(teamID uint, from, to time.Time) ([]models.DailyMetric, error)
	TeamMetricsForPeriod(teamID uint, period string) (*models.TeamMetrics, error)
}

// TeamActivity is one entry in the anonymized recent-activity feed. UserID
// is a short prefix of the member's public ID, never the full identifier.
type TeamActivity struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Mood      string    `json:"mood"` // happy, neutral, drained
}

// TeamSummary is the manager block on the dashboard. Averages are grand
// means over every sample in the window, so members who check in more often
// weigh proportionally more.
type TeamSummary struct {
	AvgMood        float64        `json:"avg_mood"`
	AvgEnergy      float64        `json:"avg_energy"`
	ActiveMembers  int            `json:"active_members"`
	TotalCheckIns  int            `json:"total_check_ins"`
	RecentActivity []TeamActivity `json:"recent_activity"`
}

// MemberStat is one row of the team breakdown. AvgMood is nil when the
// member has no samples in the window.
type MemberStat struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Role        models.Role `json:"role"`
	CheckInCount int        `json:"check_in_count"`
	AvgMood     *float64    `json:"avg_mood"`
	RiskScore   int         `json:"risk_score"`
	LastCheckIn *time.Time  `json:"last_check_in"`
	Status      string      `json:"status"`
}

// MoodDistribution buckets members by their own average mood. Members with
// no samples fall into no bucket.
type MoodDistribution struct {
	Energized int `json:"Energized"`
	Happy     int `json:"Happy"`
	Neutral   int `json:"Neutral"`
	Drained   int `json:"Drained"`
}

type OrganizationSummary struct {
	Name          string `json:"name"`
	MemberCount   int    `json:"member_count"`
	ActiveMembers int    `json:"active_members"`
}

type TeamAnalytics struct {
	Organization     OrganizationSummary `json:"organization"`
	MemberStats      []MemberStat        `json:"member_stats"`
	MoodDistribution MoodDistribution    `json:"mood_distribution"`
}

// HeatmapDay is one day's average flow score across the team.
type HeatmapDay struct {
	Date             string  `json:"date"`
	AverageFlowScore float64 `json:"average_flow_score"`
	SampleCount      int     `json:"sample_count"`
}

type TeamHeatmap struct {
	TeamID               uint         `json:"team_id"`
	TeamAverageFlowScore float64      `json:"team_average_flow_score"`
	DailyAverages        []HeatmapDay `json:"daily_averages"`
	TotalSamples         int          `json:"total_samples"`
}

// PeriodMetrics is the reconciled per-period rollup: the precomputed row
// when one exists, otherwise computed on the fly from raw samples.
type PeriodMetrics struct {
	Period          string  `json:"period"`
	AvgMood         float64 `json:"avg_mood"`
	BurnoutIndex    float64 `json:"burnout_index"`
	EngagementIndex float64 `json:"engagement_index"`
	Precomputed     bool    `json:"precomputed"`
}

type TeamService struct {
	store  TeamStore
	alerts *AlertService
}

// NewTeamService builds the team aggregator. alerts may be nil, in which
// case heatmap computation skips alert evaluation.
func NewTeamService(store TeamStore, alerts *AlertService) *TeamService {
	return &TeamService{store: store, alerts: alerts}
}

// GetTeamSummary computes the manager dashboard block for a team.
func (s *TeamService) GetTeamSummary(teamID uint) (*TeamSummary, error) {
	since := time.Now().AddDate(0, 0, -teamWindowDays)

	checkins, err := s.store.TeamCheckIns(teamID, since)
	if err != nil {
		return nil, err
	}

	summary := &TeamSummary{
		TotalCheckIns:  len(checkins),
		RecentActivity: []TeamActivity{},
	}

	if len(checkins) > 0 {
		var sumMood, sumEnergy float64
		contributors := make(map[uint]struct{})
		for _, c := range checkins {
			sumMood += c.MoodScore
			sumEnergy += c.EnergyScore
			contributors[c.UserID] = struct{}{}
		}
		n := float64(len(checkins))
		summary.AvgMood = scoring.Round1(sumMood / n)
		summary.AvgEnergy = scoring.Round1(sumEnergy / n)
		summary.ActiveMembers = len(contributors)
	}

	// Store returns newest-first, so the feed is the head of the slice.
	for i := 0; i < len(checkins) && i < recentActivityCount; i++ {
		c := checkins[i]
		summary.RecentActivity = append(summary.RecentActivity, TeamActivity{
			UserID:    anonymizeUser(c.User),
			Timestamp: c.CreatedAt,
			Mood:      scoring.MoodBucket(c.MoodScore),
		})
	}

	return summary, nil
}

// GetTeamAnalytics computes the full member breakdown for a team. Every
// member appears, including those with no samples in the window.
func (s *TeamService) GetTeamAnalytics(team *models.Team) (*TeamAnalytics, error) {
	since := time.Now().AddDate(0, 0, -teamWindowDays)

	members, err := s.store.TeamMembers(team.ID)
	if err != nil {
		return nil, err
	}

	checkins, err := s.store.TeamCheckIns(team.ID, since)
	if err != nil {
		return nil, err
	}

	byUser := make(map[uint][]models.CheckIn)
	for _, c := range checkins {
		byUser[c.UserID] = append(byUser[c.UserID], c)
	}

	analytics := &TeamAnalytics{
		MemberStats: make([]MemberStat, 0, len(members)),
	}

	active := 0
	for _, member := range members {
		stat := memberStat(member, byUser[member.ID])
		if stat.CheckInCount > 0 {
			active++
		}

		if stat.AvgMood != nil {
			switch {
			case *stat.AvgMood >= 8:
				analytics.MoodDistribution.Energized++
			case *stat.AvgMood >= 6:
				analytics.MoodDistribution.Happy++
			case *stat.AvgMood >= 4:
				analytics.MoodDistribution.Neutral++
			default:
				analytics.MoodDistribution.Drained++
			}
		}

		analytics.MemberStats = append(analytics.MemberStats, stat)
	}

	analytics.Organization = OrganizationSummary{
		Name:          team.Name,
		MemberCount:   len(members),
		ActiveMembers: active,
	}

	return analytics, nil
}

// memberStat reduces one member's in-window samples to a breakdown row.
// The samples arrive newest-first.
func memberStat(member models.User, checkins []models.CheckIn) MemberStat {
	stat := MemberStat{
		ID:           member.ID,
		Name:         member.Name,
		Role:         member.Role,
		CheckInCount: len(checkins),
	}

	var avgStress float64
	var avgEnergy *float64
	if len(checkins) > 0 {
		var sumMood, sumEnergy, sumStress float64
		for _, c := range checkins {
			sumMood += c.MoodScore
			sumEnergy += c.EnergyScore
			sumStress += c.StressScore
		}
		n := float64(len(checkins))

		mood := scoring.Round1(sumMood / n)
		stat.AvgMood = &mood
		energy := sumEnergy / n
		avgEnergy = &energy
		avgStress = sumStress / n

		last := checkins[0].CreatedAt
		stat.LastCheckIn = &last
	}

	risk := scoring.MemberRiskScore(avgStress, avgEnergy)
	stat.RiskScore = int(risk + 0.5)
	stat.Status = scoring.StatusForRisk(risk)

	return stat
}

// GetTeamHeatmap computes per-day flow score averages over the last 7 days
// and hands the team average to the alert evaluator. Alerting is a
// best-effort side effect; its failures never fail the heatmap request.
func (s *TeamService) GetTeamHeatmap(teamID uint) (*TeamHeatmap, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -heatmapWindowDays)

	metrics, err := s.store.TeamFlowMetrics(teamID, from, to)
	if err != nil {
		return nil, err
	}

	heatmap := &TeamHeatmap{
		TeamID:        teamID,
		TotalSamples:  len(metrics),
		DailyAverages: []HeatmapDay{},
	}

	daily := make(map[string]*HeatmapDay)
	var order []string
	var total float64
	for _, m := range metrics {
		total += m.FlowScore

		key := m.Date.Format("2006-01-02")
		day, ok := daily[key]
		if !ok {
			day = &HeatmapDay{Date: key}
			daily[key] = day
			order = append(order, key)
		}
		day.AverageFlowScore += m.FlowScore
		day.SampleCount++
	}

	for _, key := range order {
		day := daily[key]
		day.AverageFlowScore /= float64(day.SampleCount)
		heatmap.DailyAverages = append(heatmap.DailyAverages, *day)
	}

	if len(metrics) > 0 {
		heatmap.TeamAverageFlowScore = total / float64(len(metrics))
	}

	if s.alerts != nil {
		s.alerts.EvaluateTeamAverage(teamID, heatmap.TeamAverageFlowScore, len(metrics))
	}

	return heatmap, nil
}

// GetPeriodMetrics returns the precomputed rollup for a period when one has
// been materialized, falling back to an on-the-fly computation from raw
// samples otherwise.
func (s *TeamService) GetPeriodMetrics(teamID uint, period string) (*PeriodMetrics, error) {
	precomputed, err := s.store.TeamMetricsForPeriod(teamID, period)
	if err != nil {
		return nil, err
	}

	if precomputed != nil {
		return &PeriodMetrics{
			Period:          precomputed.Period,
			AvgMood:         precomputed.AvgMood,
			BurnoutIndex:    precomputed.BurnoutIndex,
			EngagementIndex: precomputed.EngagementIndex,
			Precomputed:     true,
		}, nil
	}

	since, err := time.ParseInLocation("2006-01", period, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid period %q: expected YYYY-MM", period)
	}

	checkins, err := s.store.TeamCheckIns(teamID, since)
	if err != nil {
		return nil, err
	}

	result := &PeriodMetrics{Period: period}
	if len(checkins) == 0 {
		return result, nil
	}

	var sumMood, sumEnergy, sumStress float64
	for _, c := range checkins {
		sumMood += c.MoodScore
		sumEnergy += c.EnergyScore
		sumStress += c.StressScore
	}
	n := float64(len(checkins))
	avgMood := sumMood / n
	avgEnergy := sumEnergy / n
	avgStress := sumStress / n

	// Burnout: high stress plus low energy, each contributing half, on the
	// documented 0-10 scales. Engagement derives from burnout with a mood
	// bonus, capped at 100.
	burnoutIndex := (avgStress/10)*50 + ((10-avgEnergy)/10)*50
	engagementIndex := 100 - burnoutIndex*0.5 + (avgMood/10)*25
	if engagementIndex > 100 {
		engagementIndex = 100
	}

	result.AvgMood = scoring.Round1(avgMood)
	result.BurnoutIndex = scoring.Round1(burnoutIndex)
	result.EngagementIndex = scoring.Round1(engagementIndex)

	return result, nil
}

// anonymizeUser truncates a member's public ID for the activity feed.
func anonymizeUser(user *models.User) string {
	if user == nil || user.PublicID == "" {
		return "anonymous"
	}
	if len(user.PublicID) <= anonPrefixLen {
		return user.PublicID
	}
	return user.PublicID[:anonPrefixLen]
}
