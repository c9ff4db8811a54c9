package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/content"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/db"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/importer"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/ledger"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/payments"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/server"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/storage"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	awsConfig, err := loadAWSConfig(ctx)
	if err != nil {
		return err
	}

	s3Client := s3.NewFromConfig(awsConfig)
	snapshots := storage.NewSnapshotStore(s3Client, config.SnapshotBucket)

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	questRepo := store.NewQuestRepository(pool)
	eventRepo := store.NewEventRepository(pool)
	roleRepo := store.NewRoleRepository(pool)
	dreamerRepo := store.NewDreamerRepository(pool)
	sponsorRepo := store.NewSponsorRepository(pool)
	announcementRepo := store.NewAnnouncementRepository(pool)
	donationRepo := store.NewDonationRepository(pool)
	academyRepo := store.NewAcademyRepository(pool)

	contentStore := content.NewStore(logger, content.Repositories{
		Quests:        questRepo,
		Events:        eventRepo,
		Roles:         roleRepo,
		Dreamers:      dreamerRepo,
		Sponsors:      sponsorRepo,
		Announcements: announcementRepo,
		Donations:     donationRepo,
		Academy:       academyRepo,
	})

	if err := contentStore.Refresh(ctx); err != nil {
		logger.WithError(err).Warn("initial content refresh incomplete")
	}

	donationLedger := ledger.New(logger, donationRepo, questRepo, eventRepo, contentStore)

	reconciler := ledger.NewReconciler(donationLedger)
	if err := reconciler.Start(ctx, config.ReconcileSchedule); err != nil {
		return err
	}
	defer reconciler.Stop()

	paymentsAdapter := payments.NewAdapter(logger, donationLedger, config.StripeAPIKey)

	bulkImporter := importer.New(
		logger,
		questRepo,
		roleRepo,
		dreamerRepo,
		eventRepo,
		announcementRepo,
		snapshots,
		contentStore,
	)

	srv, err := server.New(
		config,
		logger,
		contentStore,
		donationLedger,
		paymentsAdapter,
		bulkImporter,
		snapshots,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
