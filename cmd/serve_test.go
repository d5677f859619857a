package cmd

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"record-reconciler/core/config"
	"record-reconciler/core/middleware/auth"
	"record-reconciler/core/middleware/rayid"
	"record-reconciler/core/reconcile"
	"record-reconciler/core/server"
	"record-reconciler/core/source"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestNewApp tests the assembled middleware chain and reconciliation routes.
func TestNewApp(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.csv")
	newPath := filepath.Join(dir, "new.csv")
	require.NoError(t, os.WriteFile(oldPath, []byte("K1,a\n"), 0o644))
	require.NoError(t, os.WriteFile(newPath, []byte("K1,a\nK2,b\n"), 0o644))

	cfg := &config.Config{
		Source:    source.Config{Old: oldPath, New: newPath},
		Reconcile: reconcile.Config{Delimiter: ","},
		Server:    server.Config{ApiKey: "secret"},
	}

	app, err := newApp(cfg, zap.NewNop())
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/reconcile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))

	req := httptest.NewRequest("GET", "/reconcile", nil)
	req.Header.Set(auth.HeaderName, "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/reconcile?old=/etc/passwd&new=/etc/hostname", nil)
	req.Header.Set(auth.HeaderName, "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
