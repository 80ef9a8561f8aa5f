// scoring/scoring.go - Burnout and flow score formulas
//
// Everything in this package is pure: no I/O, no clock, no database. The
// aggregation services feed it in-memory samples and persist whatever comes
// out.
package scoring

import (
	"math"

	"teampulse/models"
)

// Weights of the personal burnout composite. Fixed design constants.
const (
	stressWeight     = 0.5
	exhaustionWeight = 0.3
	volatilityWeight = 0.2
)

const (
	// burnoutNormalizer assumes each weighted term tops out at 10.
	burnoutNormalizer = 10.0
	// memberRiskNormalizer is deliberately 8, not 10. The member formula
	// drops the volatility term and the two ceilings drifted apart in the
	// product; both are kept as observed. Do not unify.
	memberRiskNormalizer = 8.0
)

// BurnoutRisk computes the personal burnout percentage [0,100] from a set of
// check-ins:
//
//	risk = avgStress*0.5 + (10-avgEnergy)*0.3 + stddev(mood)*0.2
//	pct  = min(100, risk/10*100)
//
// Volatility is the population standard deviation (divide by n). An empty
// set yields 0, never NaN.
func BurnoutRisk(checkins []models.CheckIn) float64 {
	if len(checkins) == 0 {
		return 0
	}

	var sumMood, sumEnergy, sumStress float64
	for _, c := range checkins {
		sumMood += c.MoodScore
		sumEnergy += c.EnergyScore
		sumStress += c.StressScore
	}

	n := float64(len(checkins))
	_ = sumMood / n
	avgEnergy := sumEnergy / n
	avgStress := sumStress / n

	exhaustion := 10 - avgEnergy

	moods := make([]float64, len(checkins))
	for i, c := range checkins {
		moods[i] = c.MoodScore
	}
	volatility := Volatility(moods)

	raw := avgStress*stressWeight + exhaustion*exhaustionWeight + volatility*volatilityWeight
	return math.Min(100, (raw/burnoutNormalizer)*100)
}

// Volatility returns the population standard deviation of the given mood
// scores (sum of squared deviations over n, not n-1). Empty input yields 0.
func Volatility(moods []float64) float64 {
	if len(moods) == 0 {
		return 0
	}

	var sum float64
	for _, m := range moods {
		sum += m
	}
	mean := sum / float64(len(moods))

	var sqDev float64
	for _, m := range moods {
		d := m - mean
		sqDev += d * d
	}

	return math.Sqrt(sqDev / float64(len(moods)))
}

// FlowScore converts the analyzer's fatigue/stress pair (both in [0,1]) into
// a 0-100 wellness score: 100 - (fatigue*50 + stress*50), clamped.
//
// This is the biometric pipeline's formula. It is not interchangeable with
// BurnoutRisk, which serves the self-report pipeline on different scales.
func FlowScore(fatigue, stress float64) float64 {
	return math.Max(0, math.Min(100, 100-(fatigue*50+stress*50)))
}

// MemberRiskScore is the lighter per-member variant used in team breakdowns.
// No volatility term, normalizer 8. avgEnergy is nil when the member has no
// samples in the window, in which case exhaustion counts as 0.
func MemberRiskScore(avgStress float64, avgEnergy *float64) float64 {
	exhaustion := 0.0
	if avgEnergy != nil {
		exhaustion = 10 - *avgEnergy
	}
	risk := avgStress*stressWeight + exhaustion*exhaustionWeight
	return math.Min(100, (risk/memberRiskNormalizer)*100)
}

// StatusForRisk buckets a member risk score into the three-level status
// shown on the team breakdown.
func StatusForRisk(riskScore float64) string {
	switch {
	case riskScore > 75:
		return "critical"
	case riskScore > 50:
		return "warning"
	default:
		return "stable"
	}
}

// ScoresForMood maps a categorical mood label to its fixed score triple.
// Unknown labels fall back to the neutral triple.
func ScoresForMood(label models.MoodLabel) (mood, energy, stress float64) {
	switch label {
	case models.MoodEnergized:
		return 8, 9, 3
	case models.MoodHappy:
		return 9, 7, 2
	case models.MoodDrained:
		return 3, 2, 8
	default:
		return 5, 5, 5
	}
}

// MoodBucket coarsens a mood score for the anonymized team activity feed.
func MoodBucket(score float64) string {
	switch {
	case score > 7:
		return "happy"
	case score < 4:
		return "drained"
	default:
		return "neutral"
	}
}

// CoachMessage returns the guidance line shown after a biometric sync.
func CoachMessage(flowScore float64) string {
	switch {
	case flowScore < 30:
		return "High stress and fatigue detected. Consider taking a break and blocking your calendar."
	case flowScore < 50:
		return "Elevated stress levels detected. Try some deep breathing exercises or a short walk."
	case flowScore < 70:
		return "You're doing well. Consider scheduling focused work blocks to maintain productivity."
	default:
		return "Great flow state! Keep up the momentum."
	}
}

// Round1 rounds to one decimal place. Dashboard averages are reported at
// this precision.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
