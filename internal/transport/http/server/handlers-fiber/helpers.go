package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/anies1212/pr-checklist-to-sheets/internal/api"
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrRunNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "run not found"
	case errors.Is(err, entities.ErrRosterEmpty), errors.Is(err, entities.ErrRosterInvalid):
		status = http.StatusUnprocessableEntity
		code = api.ROSTERINVALID
		msg = err.Error()
	case errors.Is(err, entities.ErrSourceHost):
		status = http.StatusBadGateway
		code = api.SOURCEHOST
		msg = err.Error()
	case errors.Is(err, entities.ErrDestination):
		status = http.StatusBadGateway
		code = api.DESTINATION
		msg = err.Error()
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}
