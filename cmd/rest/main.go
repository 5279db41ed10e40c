package main

import (
	"context"
	"log"

	"fx-backoffice-be/internal/bootstrap"
	"fx-backoffice-be/internal/config"
	"fx-backoffice-be/internal/server"
	"fx-backoffice-be/internal/tracer"
	"fx-backoffice-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.App.OtlpEndpoint)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	if container.PriceRelay.Available() {
		container.PriceRelay.Start()
		go container.WebSocketHub.StreamPrices(container.PriceRelay)
	} else {
		log.Println("Price relay disabled: MetaAPI credentials not configured")
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
