package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/anies1212/pr-checklist-to-sheets/internal/api"
	"github.com/anies1212/pr-checklist-to-sheets/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetRuns returns recent run history.
func (h *Handler) GetRuns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	runs, err := h.uc.Runs(c.Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Runs []api.Run `json:"runs"`
	}{Runs: mapper.ToAPIRuns(runs)})
}

// GetRun returns one run with per-participant counters.
func (h *Handler) GetRun(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid run id"))
	}

	run, err := h.uc.Run(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Run api.Run `json:"run"`
	}{Run: mapper.ToAPIRun(*run)})
}

// GetStats returns totals across all recorded runs.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.RunStats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIStats(stats))
}
