package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

// TestManager_LoadAll tests that only enabled features are loaded.
func TestManager_LoadAll(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mgr := NewManager(zap.New(core))

	on := &fakeFeature{name: "on", enabled: true}
	off := &fakeFeature{name: "off"}
	mgr.Register(on)
	mgr.Register(off)

	require.NoError(t, mgr.LoadAll(fiber.New()))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Len(t, mgr.Features(), 2)

	assert.Equal(t, 1, logs.FilterMessage("Feature loaded").Len())
	assert.Equal(t, 1, logs.FilterMessage("Feature disabled").Len())
}

// TestManager_LoadAllError tests that a failing feature stops loading.
func TestManager_LoadAllError(t *testing.T) {
	mgr := NewManager(nil)

	broken := &fakeFeature{name: "broken", enabled: true, err: errors.New("boom")}
	after := &fakeFeature{name: "after", enabled: true}
	mgr.Register(broken)
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature broken: boom")
	assert.False(t, after.loaded)
}
