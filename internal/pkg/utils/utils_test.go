package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-weather-service/internal/pkg/errors"
	"github.com/route-weather-service/internal/pkg/i18n"
)

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(59.91, 10.75))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(0, -180.1))
}

func TestCoordinateKey(t *testing.T) {
	assert.Equal(t, "59.9139:10.7522", CoordinateKey(59.91394, 10.75224))
	assert.Equal(t, "-33.8688:151.2093", CoordinateKey(-33.86882, 151.20929))
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "karl johans gate 1, oslo", NormalizeAddress("  Karl  Johans gate 1,\tOslo "))
}

func decodeError(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var resp map[string]map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp["error"]
}

func TestSendError(t *testing.T) {
	app := fiber.New()
	app.Get("/app", func(c *fiber.Ctx) error {
		return SendError(c, errors.ErrRoutingFailed)
	})
	app.Get("/unknown", func(c *fiber.Ctx) error {
		return SendError(c, fmt.Errorf("boom"))
	})
	app.Get("/localized", func(c *fiber.Ctx) error {
		c.Locals(LocaleKey, i18n.Norwegian)
		return SendError(c, errors.ErrRoutingFailed)
	})

	t.Run("app error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/app", nil))
		require.NoError(t, err)
		assert.Equal(t, 502, resp.StatusCode)

		body := decodeError(t, resp.Body)
		assert.Equal(t, "ROUTING_FAILED", body["code"])
		assert.Equal(t, "Routing service failed", body["message"])
	})

	t.Run("unknown error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/unknown", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", decodeError(t, resp.Body)["code"])
	})

	t.Run("localized message keeps code", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/localized", nil))
		require.NoError(t, err)

		body := decodeError(t, resp.Body)
		assert.Equal(t, "ROUTING_FAILED", body["code"])
		assert.Equal(t, "Rutetjenesten feilet", body["message"])
		assert.Equal(t, "Routing service failed", errors.ErrRoutingFailed.Message)
	})
}
