// scoring/insights.go - Personal insight rules
package scoring

// Insight is one guidance entry on the personal dashboard.
type Insight struct {
	Type string `json:"type"` // critical, warning, positive, neutral
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// GenerateInsights evaluates the insight rules in fixed order against the
// computed personal metrics. Several rules may fire together; if none fire,
// a single default "stable" entry is returned so the list is never empty.
//
// Rule order matters: the elevated-stress rule only fires when the
// high-burnout rule did not.
func GenerateInsights(avgStress, avgEnergy, burnoutPercentage float64, sampleCount int) []Insight {
	insights := []Insight{}

	if burnoutPercentage > 60 {
		insights = append(insights, Insight{
			Type: "critical",
			Text: "Your burnout risk is elevated. Consider taking time off or talking to someone you trust.",
			Icon: "alert-triangle",
		})
	} else if avgStress > 7 {
		insights = append(insights, Insight{
			Type: "warning",
			Text: "Your stress levels have been high lately. Short breaks and breathing exercises can help.",
			Icon: "activity",
		})
	}

	if avgEnergy > 7 {
		insights = append(insights, Insight{
			Type: "positive",
			Text: "Your energy levels are in a great range. Whatever you're doing, it's working.",
			Icon: "zap",
		})
	}

	if sampleCount < 3 {
		insights = append(insights, Insight{
			Type: "neutral",
			Text: "Check in a few more times this week for more accurate trends.",
			Icon: "calendar",
		})
	}

	if len(insights) == 0 {
		insights = append(insights, Insight{
			Type: "neutral",
			Text: "Your wellness indicators look stable. Keep checking in daily.",
			Icon: "check-circle",
		})
	}

	return insights
}
