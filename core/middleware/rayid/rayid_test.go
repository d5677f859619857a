package rayid

import (
	"io"
	"net/http/httptest"
	"testing"

	"record-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		rid, _ := c.Locals(logger.RayIDKey).(string)
		return c.SendString(rid)
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		rid := resp.Header.Get(HeaderName)
		_, parseErr := uuid.Parse(rid)
		assert.NoError(t, parseErr)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, rid, string(body), "ray id stored in locals for loggers")
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderName, "upstream-ray")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-ray", resp.Header.Get(HeaderName))
	})
}
