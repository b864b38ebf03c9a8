// Package bootstrap arma el grafo de dependencias del cliente a partir de la configuración.
package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-client/internal/application/cart"
	"github.com/jhoicas/Inventario-client/internal/application/catalog"
	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/application/workflow"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/rest"
	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

// Container una instancia de cada componente por proceso.
type Container struct {
	Gateway     ports.CatalogGateway
	Catalog     *catalog.Store
	Cart        *cart.Store
	Coordinator *workflow.Coordinator
	Exporter    ports.CartExporter
}

// New construye Gateway → Catalog → Cart → Coordinator sobre el backend configurado.
func New(cfg *config.Config, dialogs workflow.Dialogs, log *logger.Logger) *Container {
	gw := rest.NewCatalogGateway(cfg.API.BaseURL, cfg.API.Timeout)
	return NewWithGateway(gw, cfg, dialogs, log)
}

// NewWithGateway igual que New con un gateway ya construido.
func NewWithGateway(gw ports.CatalogGateway, cfg *config.Config, dialogs workflow.Dialogs, log *logger.Logger) *Container {
	catalogStore := catalog.NewStore(gw, log)
	cartStore := cart.NewStore(gw, catalogStore, cart.Options{
		ResyncStockOnFailure: cfg.Cart.ResyncStockOnFailure,
	}, log)
	return &Container{
		Gateway:     gw,
		Catalog:     catalogStore,
		Cart:        cartStore,
		Coordinator: workflow.NewCoordinator(catalogStore, dialogs, log),
		Exporter:    pdf.NewCartPDFGenerator(cfg.App.Name + " - carrito"),
	}
}

// Load carga catálogo y carrito en paralelo. Los stores se refrescan de forma independiente.
func (c *Container) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := c.Catalog.Refresh(gctx); err != nil {
			return fmt.Errorf("carga inicial del catálogo: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := c.Cart.Refresh(gctx); err != nil {
			return fmt.Errorf("carga inicial del carrito: %w", err)
		}
		return nil
	})
	return g.Wait()
}
