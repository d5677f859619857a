package reconciliation

import (
	"net/http/httptest"
	"testing"

	"record-reconciler/core/reconcile"
	"record-reconciler/core/source"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(source.NewLoader(nil, "", nil, ","), reconcile.Config{}, source.Config{}, zap.NewNop())

	assert.Equal(t, "reconciliation", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/reconcile", nil))
	require.NoError(t, err)
	assert.NotEqual(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLoader_DisabledWithoutReader(t *testing.T) {
	feature := NewFeature(nil, reconcile.Config{}, source.Config{}, nil)
	assert.False(t, feature.IsEnabled())
}
