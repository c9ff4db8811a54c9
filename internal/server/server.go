package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/content"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/importer"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/ledger"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/payments"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/storage"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger *logrus.Logger
	config *types.Config

	content   *content.Store
	ledger    *ledger.Ledger
	payments  *payments.Adapter
	importer  *importer.Importer
	snapshots *storage.SnapshotStore

	cookie *securecookie.SecureCookie

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	contentStore *content.Store,
	donationLedger *ledger.Ledger,
	paymentsAdapter *payments.Adapter,
	bulkImporter *importer.Importer,
	snapshots *storage.SnapshotStore,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	s := &Service{
		logger: logger,
		config: config,
		cookie: securecookie.New(hashKey, blockKey),

		content:   contentStore,
		ledger:    donationLedger,
		payments:  paymentsAdapter,
		importer:  bulkImporter,
		snapshots: snapshots,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/api/content", s.handleContent, http.MethodGet)
	r.HandleFunc("/api/sponsorships", s.handleSponsorships, http.MethodGet)
	r.HandleFunc("/api/snapshot", s.handlePublishedSnapshot, http.MethodGet)

	r.HandleFunc("/api/donations/confirm", s.handleConfirmDonation, http.MethodPost)

	r.HandleFunc("/admin/login", s.handleLogin, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAdmin)

		r.HandleFunc("/admin/refresh", s.handleRefresh, http.MethodPost)
		r.HandleFunc("/admin/sync", s.handleSync, http.MethodPost)

		r.HandleFunc("/admin/quests", s.handleAddQuest, http.MethodPost)
		r.HandleFunc("/admin/quests/:id", s.handleUpdateQuest, http.MethodPut)
		r.HandleFunc("/admin/quests/:id", s.handleDeleteQuest, http.MethodDelete)

		r.HandleFunc("/admin/events", s.handleAddEvent, http.MethodPost)
		r.HandleFunc("/admin/events/:id", s.handleUpdateEvent, http.MethodPut)
		r.HandleFunc("/admin/events/:id", s.handleDeleteEvent, http.MethodDelete)

		r.HandleFunc("/admin/roles", s.handleAddRole, http.MethodPost)
		r.HandleFunc("/admin/roles/:id", s.handleUpdateRole, http.MethodPut)
		r.HandleFunc("/admin/roles/:id", s.handleDeleteRole, http.MethodDelete)

		r.HandleFunc("/admin/dreamers", s.handleAddDreamer, http.MethodPost)
		r.HandleFunc("/admin/dreamers/:id", s.handleUpdateDreamer, http.MethodPut)
		r.HandleFunc("/admin/dreamers/:id", s.handleDeleteDreamer, http.MethodDelete)

		r.HandleFunc("/admin/sponsors", s.handleAddSponsor, http.MethodPost)
		r.HandleFunc("/admin/sponsors/:id", s.handleUpdateSponsor, http.MethodPut)
		r.HandleFunc("/admin/sponsors/:id", s.handleDeleteSponsor, http.MethodDelete)

		r.HandleFunc("/admin/announcement", s.handleUpdateAnnouncement, http.MethodPut)

		r.HandleFunc("/admin/donations/:id", s.handleDeleteDonation, http.MethodDelete)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
