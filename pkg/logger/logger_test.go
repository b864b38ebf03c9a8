package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-client/pkg/logger"
)

func TestNew_ProduccionEscribeJSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Out: &buf})

	log.Named("catalog").Debug().Int64("product_id", 3).Msg("snapshot reemplazado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog", entry["component"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 3, entry["product_id"])
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verbose", Out: &buf})

	log.Debug().Msg("oculto")
	assert.Empty(t, buf.String())

	log.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewNop_NoEscribe(t *testing.T) {
	log := logger.NewNop()
	assert.NotPanics(t, func() { log.Error().Msg("nada") })
}

func TestNew_DevelopmentEscribeConsolaEnOut(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "development", Level: "info", Out: &buf})

	log.Named("cli").Info().Msg("cliente listo")

	assert.Contains(t, buf.String(), "cliente listo")
	assert.Contains(t, buf.String(), "component")
}
