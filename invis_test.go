package invis_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DT021/invis"
	"github.com/DT021/invis/pkg/config"
	"github.com/DT021/invis/pkg/contract"
	"github.com/DT021/invis/pkg/logger"
	"github.com/DT021/invis/pkg/validator"
)

const seed = `
requirements:
  - name: slug
    base: string
    rules:
      - non_empty
      - pattern: '^[a-z0-9-]+$'
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := invis.LoadConfig(config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, invis.Config{
			SeedFile:  "invis.yaml",
			LogLevel:  "info",
			LogFormat: "text",
		}, cfg)
	})

	t.Run("environment", func(t *testing.T) {
		cfg, err := invis.LoadConfig(config.WithEnvironment(map[string]string{
			"INVIS_SEED_FILE":     "project.yaml",
			"INVIS_SEED_REQUIRED": "true",
			"INVIS_LOG_LEVEL":     "debug",
			"INVIS_LOG_FORMAT":    "json",
		}))
		require.NoError(t, err)
		assert.Equal(t, "project.yaml", cfg.SeedFile)
		assert.True(t, cfg.SeedRequired)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})
}

func TestConfig_NewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := invis.Config{LogLevel: "debug", LogFormat: "json"}.NewLogger(buf)
	require.NoError(t, err)
	log.Debug("hello")
	assert.Contains(t, buf.String(), `"component":"invis"`)

	_, err = invis.Config{LogLevel: "loud"}.NewLogger(buf)
	assert.Error(t, err)
	_, err = invis.Config{LogFormat: "xml"}.NewLogger(buf)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	quiet := invis.WithLogger(logger.Discard())

	t.Run("applies the seed file and seals", func(t *testing.T) {
		reg, err := invis.New(quiet, invis.WithConfig(invis.Config{SeedFile: writeSeed(t, seed)}))
		require.NoError(t, err)
		assert.True(t, reg.Sealed())
		assert.NoError(t, reg.Check("s", "slug", "hello-world"))
		assert.ErrorIs(t, reg.Check("s", "slug", "Hello World"), contract.ErrTypeMismatch)

		_, err = reg.Define("late", "int")
		assert.ErrorIs(t, err, contract.ErrRegistrySealed)
	})

	t.Run("missing optional seed", func(t *testing.T) {
		cfg := invis.Config{SeedFile: filepath.Join(t.TempDir(), "absent.yaml")}
		reg, err := invis.New(quiet, invis.WithConfig(cfg))
		require.NoError(t, err)
		_, ok := reg.Lookup("natural")
		assert.True(t, ok)
	})

	t.Run("missing required seed", func(t *testing.T) {
		cfg := invis.Config{SeedFile: filepath.Join(t.TempDir(), "absent.yaml"), SeedRequired: true}
		_, err := invis.New(quiet, invis.WithConfig(cfg))
		assert.ErrorIs(t, err, invis.ErrSeedNotFound)

		_, err = invis.New(quiet, invis.WithConfig(invis.Config{SeedRequired: true}))
		assert.ErrorIs(t, err, invis.ErrSeedNotFound)
	})

	t.Run("invalid seed", func(t *testing.T) {
		path := writeSeed(t, "requirements:\n  - name: x\n    base: nope\n")
		_, err := invis.New(quiet, invis.WithConfig(invis.Config{SeedFile: path}))
		assert.ErrorIs(t, err, contract.ErrInvalidSeed)
	})

	t.Run("modules run before the seed", func(t *testing.T) {
		module := contract.ModuleFunc(func(r *contract.Registry) error {
			_, err := r.Define("short", "string", validator.MaxLen(8))
			return err
		})
		path := writeSeed(t, "requirements:\n  - name: short_slug\n    base: short\n    rules: [non_empty]\n")

		reg, err := invis.New(quiet, invis.WithModules(module), invis.WithConfig(invis.Config{SeedFile: path}))
		require.NoError(t, err)
		assert.Equal(t, []string{"string", "short", "short_slug"}, mustResolve(t, reg, "short_slug").Chain())
	})

	t.Run("unsealed", func(t *testing.T) {
		reg, err := invis.New(quiet, invis.WithoutSeal(), invis.WithConfig(invis.Config{}))
		require.NoError(t, err)
		assert.False(t, reg.Sealed())
	})

	t.Run("invalid log config", func(t *testing.T) {
		_, err := invis.New(invis.WithConfig(invis.Config{LogLevel: "loud"}))
		assert.ErrorIs(t, err, invis.ErrInvalidConfig)
	})

	t.Run("observer", func(t *testing.T) {
		obs := &countingObserver{}
		reg, err := invis.New(quiet, invis.WithObserver(obs), invis.WithConfig(invis.Config{}))
		require.NoError(t, err)
		_ = reg.Check("n", "int", 1)
		_ = reg.Check("n", "int", "1")
		assert.Equal(t, 2, obs.n)
	})
}

func TestDefault(t *testing.T) {
	t.Setenv("INVIS_SEED_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("INVIS_LOG_LEVEL", "error")

	reg := invis.Default()
	require.NotNil(t, reg)
	assert.Same(t, reg, invis.Default())
	assert.True(t, reg.Sealed())
}

type countingObserver struct{ n int }

func (o *countingObserver) ObserveCheck(string, error) { o.n++ }

func mustResolve(t *testing.T, reg *contract.Registry, name string) *contract.Requirement {
	t.Helper()
	req, err := reg.Resolve(name)
	require.NoError(t, err)
	return req
}
