// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"teampulse/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.CheckIn{},
		&models.DailyMetric{},
		&models.BurnoutAlert{},
		&models.TeamMetrics{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes AutoMigrate doesn't cover
func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_check_ins_created ON check_ins(created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_daily_metrics_date ON daily_metrics(date DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_burnout_alerts_created ON burnout_alerts(created_at DESC)")
}
