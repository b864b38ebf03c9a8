package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-client/internal/application/bootstrap"
	"github.com/jhoicas/Inventario-client/internal/application/ports/portstest"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/internal/interfaces/cli"
	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

// runScript ejecuta los comandos de script contra un backend falso y devuelve la salida.
func runScript(t *testing.T, gw *portstest.FakeGateway, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	term := cli.NewTerminal(strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	view := cli.NewView(&out)
	cfg := &config.Config{
		App:  config.AppConfig{Name: "storefront"},
		API:  config.APIConfig{BaseURL: "http://localhost:0", Timeout: time.Second},
		Cart: config.CartConfig{ResyncStockOnFailure: true},
	}
	c := bootstrap.NewWithGateway(gw, cfg, cli.Dialogs(term, view), logger.NewNop())
	require.NoError(t, c.Load(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, cli.NewApp(term, view, c, logger.NewNop()).Run(ctx))
	return out.String()
}

func widget() entity.Product {
	return entity.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 3}
}

func TestRun_CrearProducto(t *testing.T) {
	gw := portstest.NewFakeGateway(widget())

	out := runScript(t, gw,
		"new",
		"Lámpara", "12.5", "", "2",
		"list",
		"quit",
	)

	assert.Contains(t, out, "Guardado: #2 Lámpara")
	assert.Contains(t, out, "$12.50")
	require.Len(t, gw.ServerProducts(), 2)
	assert.Equal(t, 1, gw.Calls("CreateProduct"))
}

func TestRun_FormularioInvalidoVuelveAPreguntar(t *testing.T) {
	gw := portstest.NewFakeGateway()

	out := runScript(t, gw,
		"new",
		"Caja", "abc", "3", "", "-1",
		"Caja", "3", "", "1",
		"quit",
	)

	assert.Contains(t, out, "no es un número válido")
	assert.Contains(t, out, "stock debe ser >= 0")
	assert.Equal(t, 1, gw.Calls("CreateProduct"))
	assert.Equal(t, 1, gw.ServerProducts()[0].Stock)
}

func TestRun_PrecioNoFinitoVuelveAPreguntar(t *testing.T) {
	gw := portstest.NewFakeGateway()

	out := runScript(t, gw,
		"new",
		"Caja", "inf", "NaN", "4", "", "1",
		"quit",
	)

	assert.Equal(t, 2, strings.Count(out, "no es un número válido"))
	assert.Equal(t, 1, gw.Calls("CreateProduct"))
	require.Len(t, gw.ServerProducts(), 1)
	assert.Equal(t, "4", gw.ServerProducts()[0].Price.String())
}

func TestRun_CancelarNoMuta(t *testing.T) {
	gw := portstest.NewFakeGateway(widget())

	out := runScript(t, gw,
		"new", "cancel",
		"edit 1", "Otro", "cancel",
		"delete 1", "n",
		"quit",
	)

	assert.Equal(t, 3, strings.Count(out, "Cancelado."))
	assert.Zero(t, gw.MutationCalls())
}

func TestRun_EditarConservaValoresVacios(t *testing.T) {
	gw := portstest.NewFakeGateway(widget())

	runScript(t, gw,
		"edit 1", "", "", "nuevo", "7",
		"quit",
	)

	p := gw.ServerProducts()[0]
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "9.99", p.Price.String())
	assert.Equal(t, "nuevo", p.Description)
	assert.Equal(t, 7, p.Stock)
}

func TestRun_CompraCarritoYEliminacion(t *testing.T) {
	gw := portstest.NewFakeGateway(widget())

	out := runScript(t, gw,
		"buy 1",
		"cart",
		"qty 1 0",
		"cart",
		"delete 1", "s",
		"list",
		"quit",
	)

	assert.Contains(t, out, "Agregado: Widget (línea 1)")
	assert.Contains(t, out, "Total: $9.99")
	assert.Contains(t, out, "El carrito está vacío.")
	assert.Contains(t, out, "Listo.")
	assert.Contains(t, out, "El catálogo está vacío.")
	assert.Equal(t, 1, gw.Calls("RemoveFromCart"))
	assert.Zero(t, gw.Calls("UpdateCartItem"))
}

func TestRun_ErroresSeMuestranYElBucleSigue(t *testing.T) {
	gw := portstest.NewFakeGateway(widget())

	out := runScript(t, gw,
		"view 99",
		"frobnicate",
		"qty x 1",
		"search widget",
		"help",
	)

	assert.Contains(t, out, "no encontrado")
	assert.Contains(t, out, `comando desconocido "frobnicate"`)
	assert.Contains(t, out, `id "x"`)
	assert.Contains(t, out, "export <archivo.pdf>")
}
