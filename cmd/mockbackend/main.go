package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Inventario-client/internal/application/usecase"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/Inventario-client/internal/interfaces/http"
	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.HTTP.Addr()).
		Msg("iniciando backend de demostración")

	db := memory.NewDB()
	productRepo := memory.NewProductRepository(db)
	cartRepo := memory.NewCartRepository(db)
	productUC := usecase.NewProductUseCase(productRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, productRepo)

	if cfg.Backend.Seed {
		if err := productUC.Seed(usecase.DemoProducts); err != nil {
			log.Fatal().Err(err).Msg("carga de productos de ejemplo")
		}
		log.Info().Int("products", len(usecase.DemoProducts)).Msg("catálogo de ejemplo cargado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-backend",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC: productUC,
		CartUC:    cartUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("backend detenido")
}
