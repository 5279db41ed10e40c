package main

import (
	"context"
	"errors"
	"log"
	"os"

	"fx-backoffice-be/internal/config"
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/repository/unitofwork"
	"fx-backoffice-be/internal/service"
	"fx-backoffice-be/pkg/database"
)

// Seeds the first super admin so a fresh deployment is usable without
// calling the init endpoint by hand. Safe to run repeatedly.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	email := os.Getenv("SUPER_ADMIN_EMAIL")
	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("Error: SUPER_ADMIN_EMAIL and SUPER_ADMIN_PASSWORD must be set")
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	authService := service.NewAuthService(uowFactory, cfg.JWT)

	profile, err := authService.InitSuperAdmin(context.Background(), &dto.InitSuperAdminRequest{
		Email:     email,
		Password:  password,
		FirstName: getEnv("SUPER_ADMIN_FIRST_NAME", "Super"),
		LastName:  getEnv("SUPER_ADMIN_LAST_NAME", "Admin"),
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Kind == apperr.KindConflict {
			log.Println("Super admin already exists, nothing to do.")
			return
		}
		log.Fatalf("Error: Failed to seed super admin: %v", err)
	}

	log.Printf("✅ Super admin created: %s (%s)", profile.Email, profile.Id)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
