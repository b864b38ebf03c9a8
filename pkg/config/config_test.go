package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-client/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "storefront", cfg.App.Name)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Cart.ResyncStockOnFailure)
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Addr())
	assert.True(t, cfg.Backend.Seed)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_BASE_URL", "http://catalogo.local:9000/")
	t.Setenv("API_TIMEOUT_SECONDS", "3")
	t.Setenv("CART_RESYNC_STOCK_ON_FAILURE", "false")
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://catalogo.local:9000", cfg.API.BaseURL, "se recorta la barra final")
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.Cart.ResyncStockOnFailure)
	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_TimeoutInvalido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_TIMEOUT_SECONDS", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_BooleanoInvalidoUsaDefecto(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BACKEND_SEED", "quizás")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Backend.Seed)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
