package handlers_fiber

import (
	"net/http"

	"github.com/anies1212/pr-checklist-to-sheets/internal/api"
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"
	"github.com/anies1212/pr-checklist-to-sheets/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostSync runs the checklist sync pipeline for one pull request.
func (h *Handler) PostSync(c *fiber.Ctx) error {
	var body api.SyncRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	res, err := h.uc.Sync(c.Context(), entities.SyncRequest{
		PRNumber: body.PullRequestNumber,
		SinceRef: body.SinceRef,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISyncResponse(*res))
}
