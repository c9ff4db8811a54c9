package main

import (
	"context"
	"fmt"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/db"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/seed"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with initial data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		roleRepo := store.NewRoleRepository(pool)
		announcementRepo := store.NewAnnouncementRepository(pool)

		logrus.Info("Seeding roles...")
		if err := seed.SeedRoles(ctx, roleRepo); err != nil {
			return fmt.Errorf("failed to seed roles: %w", err)
		}

		logrus.Info("Seeding announcement...")
		if err := seed.SeedAnnouncement(ctx, announcementRepo); err != nil {
			return fmt.Errorf("failed to seed announcement: %w", err)
		}

		logrus.Info("Seed complete")

		return nil
	},
}
