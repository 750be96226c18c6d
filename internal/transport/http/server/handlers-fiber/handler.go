// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/anies1212/pr-checklist-to-sheets/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the HTTP API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register mounts all API routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/sync", h.PostSync)
	app.Get("/runs", h.GetRuns)
	app.Get("/runs/:id", h.GetRun)
	app.Get("/stats", h.GetStats)
}
