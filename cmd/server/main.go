package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"remotesync/internal/clients/blobstore"
	"remotesync/internal/clients/identity"
	"remotesync/internal/clients/inference"
	"remotesync/internal/clients/mailbox"
	"remotesync/internal/clients/mailer"
	"remotesync/internal/http/handlers"
	dashboardh "remotesync/internal/http/handlers/dashboard"
	entryh "remotesync/internal/http/handlers/entry"
	inviteh "remotesync/internal/http/handlers/invite"
	teamh "remotesync/internal/http/handlers/team"
	mw "remotesync/internal/http/middleware"
	"remotesync/internal/lib/config"
	"remotesync/internal/lib/sl"
	repo "remotesync/internal/repository"
	"remotesync/internal/service/entry"
	"remotesync/internal/service/sweep"
	"remotesync/internal/service/team"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting RemoteSync standup service", slog.String("env", cfg.Env))

	if err := runMigrations(cfg.Database); err != nil {
		log.Error("failed to run migrations", sl.Err(err))
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	memberRepo := repo.NewMemberRepo(db, trmsqlx.DefaultCtxGetter)
	inviteRepo := repo.NewInviteRepo(db, trmsqlx.DefaultCtxGetter)
	entryRepo := repo.NewEntryRepo(db, trmsqlx.DefaultCtxGetter)

	identityClient := identity.New(cfg.Identity.BaseURL, cfg.Identity.SecretKey, cfg.Identity.JWTSecret)
	blobClient := blobstore.New(cfg.Blobstore.URL, cfg.Blobstore.ServiceKey, cfg.Blobstore.Bucket)
	inferenceClient := inference.New(cfg.Inference.WhisperURL, cfg.Inference.LLMURL, cfg.Inference.Token)
	mailClient := mailer.New(cfg.Mailer.Domain, cfg.Mailer.APIKey, cfg.Mailer.Sender,
		cfg.Mailer.ReplyDomain, cfg.Mailer.JoinBaseURL)

	teamService := team.NewTeamService(trManager, teamRepo, memberRepo, inviteRepo, identityClient, mailClient)
	entryService := entry.NewEntryService(entryRepo, teamRepo, memberRepo, blobClient, inferenceClient, inferenceClient)

	var inbox sweep.InboxDrainer
	if cfg.Mailbox.Enabled {
		inbox = mailbox.New(cfg.Mailbox.Addr, cfg.Mailbox.Username, cfg.Mailbox.Password)
	}
	sweepService := sweep.NewSweepService(log, teamRepo, memberRepo, entryRepo,
		identityClient, mailClient, inbox, entryService)

	teamHandler := teamh.NewTeamHandler(log, teamService)
	inviteHandler := inviteh.NewInviteHandler(log, teamService)
	entryHandler := entryh.NewEntryHandler(log, entryService)
	dashboardHandler := dashboardh.NewDashboardHandler(log, entryService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORS.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           int(12 * time.Hour / time.Second),
	}))

	// public methods
	router.Get("/health", handlers.Healthcheck())

	// authenticated methods
	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(identityClient))

		r.Post("/api/entry", entryHandler.Submit)
		r.Get("/api/dashboard", dashboardHandler.Get)

		r.Post("/api/teams", teamHandler.Create)
		r.Post("/api/teams/{team_id}/invite", teamHandler.Invite)
		r.Put("/api/teams/{team_id}/settings", teamHandler.UpdateSettings)
		r.Get("/api/teams/{team_id}/members", teamHandler.Members)
		r.Delete("/api/teams/{team_id}/members/{member_id}", teamHandler.RemoveMember)

		r.Post("/api/invites/accept", inviteHandler.Accept)
	})

	go runSweep(sweepService, cfg.Sweep.Interval)

	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func runSweep(s *sweep.SweepService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.Run(context.Background(), time.Now().UTC())
	}
}

func runMigrations(cfg config.Database) error {
	m, err := migrate.New("file://"+cfg.MigrationsDir, cfg.URL)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return log
}
