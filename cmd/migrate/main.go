package main

import (
	"log"

	"fx-backoffice-be/internal/config"
	"fx-backoffice-be/internal/model"
	"fx-backoffice-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// Extensions GORM AutoMigrate doesn't handle.
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	models := []interface{}{
		&model.Admin{},
		&model.AdminActionLog{},
		&model.AdminSettings{},
		&model.AdminWallet{},
		&model.AdminFundRequest{},
		&model.AdminWalletTransaction{},
		&model.User{},
		&model.UserWallet{},
		&model.TradingAccount{},
		&model.KYCDocument{},
		&model.Notification{},
		&model.Banner{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// The ledger is queried by tenant and by time, both directions.
	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_wallet_tx_from_admin ON admin_wallet_transactions (from_admin_id, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_wallet_tx_to_admin ON admin_wallet_transactions (to_admin_id, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_users_assigned_admin ON users (assigned_admin);`,
		`CREATE INDEX IF NOT EXISTS idx_kyc_documents_user ON kyc_documents (user_id, submitted_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications (recipient_id, created_at DESC);`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
