// Package main wires the HTTP server for the checklist board service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	handlers_fiber "github.com/anies1212/pr-checklist-to-sheets/internal/transport/http/server/handlers-fiber"
	"github.com/anies1212/pr-checklist-to-sheets/internal/usecase"
	"github.com/anies1212/pr-checklist-to-sheets/internal/usecase/domain"

	"github.com/anies1212/pr-checklist-to-sheets/config"
	"github.com/anies1212/pr-checklist-to-sheets/internal/checklist"
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"
	"github.com/anies1212/pr-checklist-to-sheets/internal/gateway"
	"github.com/anies1212/pr-checklist-to-sheets/internal/repository"
	"github.com/anies1212/pr-checklist-to-sheets/internal/roster"
	"github.com/anies1212/pr-checklist-to-sheets/internal/transport/http/middleware"
	"github.com/anies1212/pr-checklist-to-sheets/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	var participants []entities.Participant
	if cfg.Checklist.RosterPath != "" {
		participants, err = roster.Load(cfg.Checklist.RosterPath)
		if err != nil {
			log.Errorw("roster load error", "error", err, "path", cfg.Checklist.RosterPath)
			return
		}
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	history, err := gateway.NewHistory("github", log, cfg)
	if err != nil {
		log.Errorw("history gateway initialization error", "error", err)
		return
	}
	destination, err := gateway.NewDestination("sheets", log, cfg)
	if err != nil {
		log.Errorw("destination gateway initialization error", "error", err)
		return
	}

	uc := usecase.New(log, ctx, domain.Deps{
		Repo:        repo,
		History:     history,
		Destination: destination,
		Roster:      participants,
		Scheme:      entities.MarkupScheme(cfg.Checklist.Scheme),
		Markers: checklist.MarkerPair{
			Start: cfg.Checklist.StartMarker,
			End:   cfg.Checklist.EndMarker,
		},
		FencePrefix: cfg.Checklist.FencePrefix,
		FetchWindow: cfg.Sync.FetchWindow,
		LinkEnabled: cfg.Sync.LinkEnabled,
		LinkLabel:   cfg.Sync.LinkLabel,
		StartCell:   cfg.Sync.StartCell,
		Timeout:     cfg.HTTP.RequestTimeout,
	})

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
