package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/botflow/internal/hcl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
module "prompt" {
  flow = ["discord"]
  options {
    default = "hello there"
  }
}

module "respond" {
  flow = "all"
  options {
    greeting = "bot says:"
  }
}

module "stash" {
  flow = ["discord"]
}

module "audit" {
  flow = "all"
}

working {
  channel = "general"
  user    = "tester"
}
`

func newTestApp(t *testing.T, out *bytes.Buffer) *App {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "botflow.hcl"), []byte(testConfig), 0o644))

	cfg, err := NewConfig(Config{
		ConfigPath: dir,
		Flow:       "discord",
		LogLevel:   "error",
		LogFormat:  "text",
	})
	require.NoError(t, err)
	return NewApp(out, cfg, hcl.NewLoader())
}

func TestAppRunsFlowEndToEnd(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(t, &out)

	require.NoError(t, a.Run(context.Background()))

	// The stash module persisted the composed response into the store.
	keys := a.Store().Keys("obj:")
	require.Len(t, keys, 1)
	stashed, ok := a.Store().Get(keys[0])
	require.True(t, ok)
	assert.Equal(t, "bot says: hello there", stashed)

	// The audit module ran in the jump phase and recorded the run.
	assert.Len(t, a.Store().Keys("audit:"), 1)
}

func TestAppNewRunCoreUsesTemplate(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(t, &out)

	core := a.Engine().NewRunCore()
	assert.Equal(t, "general", core.Working.Channel)
	assert.Equal(t, "tester", core.Working.User)
}

func TestNewAppPanicsWithoutValidConfig(t *testing.T) {
	cfg, err := NewConfig(Config{ConfigPath: filepath.Join(os.TempDir(), "definitely-absent"), Flow: "discord", LogLevel: "error"})
	require.NoError(t, err)

	assert.Panics(t, func() {
		NewApp(&bytes.Buffer{}, cfg, hcl.NewLoader())
	})
}

func TestNewConfigValidation(t *testing.T) {
	_, err := NewConfig(Config{Flow: "discord"})
	assert.Error(t, err)

	_, err = NewConfig(Config{ConfigPath: "config"})
	assert.Error(t, err)
}
