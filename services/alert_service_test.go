package services

import (
	"errors"
	"fmt"
	"testing"

	"teampulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAlertSink mimics the store's unique-constraint behavior: the first
// insert for a (team, date) pair wins, later ones are no-ops.
type fakeAlertSink struct {
	created []*models.BurnoutAlert
	seen    map[string]bool
	err     error
}

func (f *fakeAlertSink) CreateAlertOnce(alert *models.BurnoutAlert) (bool, error) {
	if f.err != nil {
		return false, f.err
	}

	if f.seen == nil {
		f.seen = make(map[string]bool)
	}

	key := fmt.Sprintf("%d|%s", alert.TeamID, alert.AlertDate.Format("2006-01-02"))
	if f.seen[key] {
		return false, nil
	}

	f.seen[key] = true
	f.created = append(f.created, alert)
	return true, nil
}

func TestAlertCreatedBelowThreshold(t *testing.T) {
	sink := &fakeAlertSink{}
	svc := NewAlertService(sink)

	svc.EvaluateTeamAverage(7, 25, 12)

	require.Len(t, sink.created, 1)
	alert := sink.created[0]
	assert.Equal(t, uint(7), alert.TeamID)
	assert.Equal(t, models.AlertSeverityHigh, alert.Severity)
	assert.Contains(t, alert.Reason, "25.0")
	assert.Contains(t, alert.Reason, "50")
}

func TestAlertOncePerDayNoEscalation(t *testing.T) {
	sink := &fakeAlertSink{}
	svc := NewAlertService(sink)

	// First breach of the day wins; a worse average later the same day
	// does not create a second alert or upgrade the first.
	svc.EvaluateTeamAverage(7, 45, 10)
	svc.EvaluateTeamAverage(7, 15, 10)

	require.Len(t, sink.created, 1)
	assert.Equal(t, models.AlertSeverityLow, sink.created[0].Severity)
}

func TestAlertSeverityBands(t *testing.T) {
	tests := []struct {
		average  float64
		severity models.AlertSeverity
	}{
		{29.9, models.AlertSeverityHigh},
		{30, models.AlertSeverityMed},
		{39.9, models.AlertSeverityMed},
		{40, models.AlertSeverityLow},
		{49.9, models.AlertSeverityLow},
	}

	for i, tt := range tests {
		sink := &fakeAlertSink{}
		NewAlertService(sink).EvaluateTeamAverage(uint(i+1), tt.average, 5)

		require.Len(t, sink.created, 1, "average %v", tt.average)
		assert.Equal(t, tt.severity, sink.created[0].Severity, "average %v", tt.average)
	}
}

func TestAlertSkippedAtOrAboveThreshold(t *testing.T) {
	sink := &fakeAlertSink{}
	svc := NewAlertService(sink)

	svc.EvaluateTeamAverage(7, 50, 10)
	svc.EvaluateTeamAverage(7, 85, 10)

	assert.Empty(t, sink.created)
}

func TestAlertSkippedWithoutSamples(t *testing.T) {
	sink := &fakeAlertSink{}
	svc := NewAlertService(sink)

	svc.EvaluateTeamAverage(7, 0, 0)

	assert.Empty(t, sink.created)
}

func TestAlertPersistenceFailureIsSwallowed(t *testing.T) {
	sink := &fakeAlertSink{err: errors.New("connection reset")}
	svc := NewAlertService(sink)

	// Must not panic or propagate; alerting is best-effort.
	svc.EvaluateTeamAverage(7, 25, 10)

	assert.Empty(t, sink.created)
}
