// services/retention.go - Background check-in retention sweep
package services

import (
	"log"
	"os"
	"strconv"
	"time"
)

const defaultRetentionDays = 365

// RetentionStore is the slice of the store the sweep needs.
type RetentionStore interface {
	DeleteCheckInsBefore(cutoff time.Time) (int64, error)
}

// RetentionService periodically deletes check-ins older than the configured
// retention horizon.
type RetentionService struct {
	store RetentionStore
	days  int
	stop  chan struct{}
}

var retentionService *RetentionService

// InitRetentionService initializes the singleton retention service.
func InitRetentionService(store RetentionStore) {
	days := defaultRetentionDays
	if raw := os.Getenv("RETENTION_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	retentionService = &RetentionService{
		store: store,
		days:  days,
		stop:  make(chan struct{}),
	}
}

// GetRetentionService returns the initialized retention service.
func GetRetentionService() *RetentionService {
	return retentionService
}

// Start launches the daily sweep worker.
func (s *RetentionService) Start() {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		// One pass at startup, then daily.
		s.sweep()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop stops the sweep worker.
func (s *RetentionService) Stop() {
	close(s.stop)
}

func (s *RetentionService) sweep() {
	cutoff := time.Now().AddDate(0, 0, -s.days)

	deleted, err := s.store.DeleteCheckInsBefore(cutoff)
	if err != nil {
		log.Printf("Retention sweep failed: %v", err)
		return
	}

	if deleted > 0 {
		log.Printf("🧹 Retention sweep removed %d check-ins older than %d days", deleted, s.days)
	}
}
