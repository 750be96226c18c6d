package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anies1212/pr-checklist-to-sheets/internal/api"
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorRunNotFound(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrRunNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.NOTFOUND, body.Error.Code)
	require.Equal(t, "run not found", body.Error.Message)
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   api.ErrorResponseErrorCode
	}{
		{
			name:   "invalid_argument",
			err:    fmt.Errorf("%w: pull_request_number is required", entities.ErrInvalidArgument),
			status: http.StatusBadRequest,
			code:   api.INVALIDARGUMENT,
		},
		{
			name:   "roster_empty",
			err:    entities.ErrRosterEmpty,
			status: http.StatusUnprocessableEntity,
			code:   api.ROSTERINVALID,
		},
		{
			name:   "roster_invalid",
			err:    fmt.Errorf("%w: duplicate participant id", entities.ErrRosterInvalid),
			status: http.StatusUnprocessableEntity,
			code:   api.ROSTERINVALID,
		},
		{
			name:   "source_host",
			err:    fmt.Errorf("%w: status 502", entities.ErrSourceHost),
			status: http.StatusBadGateway,
			code:   api.SOURCEHOST,
		},
		{
			name:   "destination",
			err:    fmt.Errorf("%w: tab create failed", entities.ErrDestination),
			status: http.StatusBadGateway,
			code:   api.DESTINATION,
		},
		{
			name:   "unknown",
			err:    fmt.Errorf("boom"),
			status: http.StatusInternalServerError,
			code:   api.INTERNAL,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
		})
	}
}
