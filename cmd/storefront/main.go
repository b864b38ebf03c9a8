package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Inventario-client/internal/application/bootstrap"
	"github.com/jhoicas/Inventario-client/internal/interfaces/cli"
	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// stdout es la terminal del usuario; los logs van a stderr
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   os.Stderr,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Bool("resync_stock_on_failure", cfg.Cart.ResyncStockOnFailure).
		Msg("iniciando cliente")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := cli.NewTerminal(os.Stdin, os.Stdout)
	view := cli.NewView(os.Stdout)
	container := bootstrap.New(cfg, cli.Dialogs(term, view), log)

	if err := container.Load(ctx); err != nil {
		// el cliente sigue disponible; refresh reintenta la carga
		log.Error().Err(err).Msg("carga inicial")
		view.Errorf("%v", err)
	}
	view.Printf("Escribe help para ver los comandos.\n")

	if err := cli.NewApp(term, view, container, log).Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("cliente finalizado con error")
		os.Exit(1)
	}
	log.Info().Msg("cliente detenido")
}
