package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Inventario-client/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	CartUC    *usecase.CartUseCase
}

// Router registra las rutas del backend de catálogo y carrito.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Storefront demo backend"})
	})

	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	cart := app.Group("/cart/items")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.List)
	cart.Post("/", cartHandler.Add)
	cart.Put("/:id", cartHandler.UpdateQuantity)
	cart.Delete("/:id", cartHandler.Remove)
}

// NewApp construye la app Fiber completa (recover + rutas) sobre deps.
func NewApp(name string, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{AppName: name})
	app.Use(recover.New())
	Router(app, deps)
	return app
}
