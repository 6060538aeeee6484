package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/viteprovider/internal/adapters/config"
	"github.com/3-lines-studio/viteprovider/internal/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "viteprovider.yaml", `
defaultScript: src/main.tsx
defaultStyle: ""
distPath: public/build/
manifestPath: public/build/.vite/manifest.json
packageManager: pnpm
devServer:
  port: 3000
env:
  hotReload: USE_VITE
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "src/main.tsx", cfg.DefaultScript)
	assert.Equal(t, "", cfg.DefaultStyle)
	assert.Equal(t, "public/build/", cfg.DistPath)
	assert.Equal(t, "public/build/.vite/manifest.json", cfg.ManifestPath)
	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.Equal(t, 3000, cfg.DevPorts.Plain)
	assert.Equal(t, 5174, cfg.DevPorts.Secure)
	assert.Equal(t, "USE_VITE", cfg.Env.HotReload)
	assert.Equal(t, "BUILD_VERSION", cfg.Env.BuildVersion)
	assert.Equal(t, "/_resources/", cfg.ResourcesPath)
}

func TestLoad_JSONC(t *testing.T) {
	path := writeFile(t, "viteprovider.jsonc", `{
		// the entry rendered on every page
		"defaultScript": "src/main.tsx",
		"resourcesPath": "/static/", /* served by the asset handler */
		"devServer": {"securePort": 3443},
	}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "src/main.tsx", cfg.DefaultScript)
	assert.Equal(t, "app/client/src/index.css", cfg.DefaultStyle)
	assert.Equal(t, "/static/", cfg.ResourcesPath)
	assert.Equal(t, 3443, cfg.DevPorts.Secure)
	assert.Equal(t, 5173, cfg.DevPorts.Plain)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "defaultScript: [unterminated")
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "config.toml", "defaultScript = 'x'")
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config format")
	})
}

func TestLoadOptional(t *testing.T) {
	cfg, err := config.LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, core.DefaultConfig(), cfg)

	cfg, err = config.LoadOptional("")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultConfig(), cfg)
}

func TestOverrides(t *testing.T) {
	var o config.Overrides
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.Register(flags)

	require.NoError(t, flags.Parse([]string{"--manifest", "dist/m.json", "--package-manager", "bun"}))

	cfg := o.Apply(core.DefaultConfig())
	assert.Equal(t, "dist/m.json", cfg.ManifestPath)
	assert.Equal(t, "bun", cfg.PackageManager)
	assert.Equal(t, "app/client/dist/", cfg.DistPath)
}
