package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"vlog-hub/internal/repo/persistent"
	"vlog-hub/internal/usecase"
	"vlog-hub/pkg/config"
	"vlog-hub/pkg/database"
	"vlog-hub/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	var skipAdmin bool
	flag.BoolVar(&skipAdmin, "skip-admin", false, "Only seed the therapist directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer database.Close(db)

	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate database: %v", err)
			panic(err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedDatabase(ctx, db, cfg, log, skipAdmin); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, db *gorm.DB, cfg *config.Config, log *logger.Logger, skipAdmin bool) error {
	therapistUseCase := usecase.NewTherapistUseCase(persistent.NewTherapistRepository(db), log)
	if err := therapistUseCase.SeedTherapists(ctx, usecase.DefaultTherapists()); err != nil {
		return fmt.Errorf("failed to seed therapists: %w", err)
	}

	if skipAdmin {
		return nil
	}
	if cfg.SeedAdminPassword == "" {
		log.Warn("SEED_ADMIN_PASSWORD not set, skipping admin account")
		return nil
	}

	user, created, err := usecase.SeedAdmin(ctx, persistent.NewUserRepository(db), cfg.SeedAdminName, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if created {
		log.Info("Created admin: %s (%s)", user.Name, user.Email)
	} else {
		log.Info("Admin %s already exists, skipping", user.Email)
	}
	return nil
}
