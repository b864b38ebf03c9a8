package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jhoicas/Inventario-client/internal/application/bootstrap"
	"github.com/jhoicas/Inventario-client/internal/application/workflow"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

const helpText = `Comandos:
  list                 catálogo
  view <id>            detalle de un producto
  new                  crear producto
  edit <id>            editar producto
  delete <id>          eliminar producto
  buy <id>             agregar una unidad al carrito
  cart                 ver el carrito
  qty <línea> <cant>   cambiar cantidad (0 elimina la línea)
  rm <línea>           quitar línea del carrito
  refresh              recargar catálogo y carrito
  search <texto>       buscar (sin efecto)
  export <archivo.pdf> exportar el carrito a PDF
  help                 esta ayuda
  quit                 salir
`

// errQuit termina el bucle de comandos.
var errQuit = errors.New("quit")

// App bucle de comandos sobre el contenedor del cliente.
type App struct {
	term      *Terminal
	view      *View
	c         *bootstrap.Container
	log       *logger.Logger
	writeFile func(name string, data []byte) error
}

// NewApp construye la aplicación de terminal.
func NewApp(term *Terminal, view *View, c *bootstrap.Container, log *logger.Logger) *App {
	return &App{
		term: term,
		view: view,
		c:    c,
		log:  log.Named("cli"),
		writeFile: func(name string, data []byte) error {
			return os.WriteFile(name, data, 0o644)
		},
	}
}

// Run lee comandos hasta quit, EOF o cancelación de ctx.
func (a *App) Run(ctx context.Context) error {
	stop := a.watch()
	defer stop()
	for {
		a.view.Printf("> ")
		line, ok := a.term.ReadLine(ctx)
		if !ok {
			return ctx.Err()
		}
		if line == "" {
			continue
		}
		err := a.Exec(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			a.view.Errorf("%v", err)
		}
	}
}

// Exec ejecuta un comando.
func (a *App) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "list", "ls":
		a.view.Products(a.c.Catalog.Products())
		return nil
	case "view":
		return a.withProduct(ctx, args, func(p entity.Product) error {
			_, err := a.c.Coordinator.ViewProduct(ctx, p)
			return err
		})
	case "new":
		out, err := a.c.Coordinator.CreateProduct(ctx)
		a.report(out, err)
		return err
	case "edit":
		return a.withProduct(ctx, args, func(p entity.Product) error {
			out, err := a.c.Coordinator.EditProduct(ctx, p)
			a.report(out, err)
			return err
		})
	case "delete", "del":
		return a.withProduct(ctx, args, func(p entity.Product) error {
			out, err := a.c.Coordinator.DeleteProduct(ctx, p)
			a.report(out, err)
			return err
		})
	case "buy", "add":
		return a.withProduct(ctx, args, func(p entity.Product) error {
			item, err := a.c.Cart.AddWithStockReservation(ctx, p)
			if err != nil {
				return err
			}
			a.view.Printf("Agregado: %s (línea %d)\n", item.Product.Name, item.ID)
			return nil
		})
	case "cart":
		a.view.Cart(a.c.Cart.Items(), a.c.Cart.Total())
		return nil
	case "qty":
		if len(args) != 2 {
			return fmt.Errorf("%w: uso: qty <línea> <cantidad>", domain.ErrInvalidInput)
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		q, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: cantidad %q", domain.ErrInvalidInput, args[1])
		}
		_, err = a.c.Cart.SetQuantity(ctx, id, q)
		return err
	case "rm":
		id, err := singleID(args)
		if err != nil {
			return err
		}
		return a.c.Cart.Remove(ctx, id)
	case "refresh":
		return a.c.Load(ctx)
	case "search":
		a.search(strings.Join(args, " "))
		return nil
	case "export":
		return a.export(ctx, args)
	case "help", "?":
		a.view.Printf("%s", helpText)
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("comando desconocido %q (help para ver la lista)", cmd)
	}
}

// watch sigue los snapshots de los stores mientras corre el bucle.
func (a *App) watch() func() {
	products, stopProducts := a.c.Catalog.Subscribe()
	totals, stopTotals := a.c.Cart.SubscribeTotal()
	go func() {
		for {
			select {
			case list, ok := <-products:
				if !ok {
					return
				}
				a.log.Debug().Int("products", len(list)).Msg("catálogo actualizado")
			case total, ok := <-totals:
				if !ok {
					return
				}
				a.log.Debug().Str("total", total.StringFixed(2)).Msg("total del carrito actualizado")
			}
		}
	}()
	return func() {
		stopProducts()
		stopTotals()
	}
}

// withProduct resuelve el producto del argumento: primero el snapshot, luego el servidor.
func (a *App) withProduct(ctx context.Context, args []string, fn func(entity.Product) error) error {
	id, err := singleID(args)
	if err != nil {
		return err
	}
	p, ok := a.c.Catalog.Product(id)
	if !ok {
		fetched, err := a.c.Catalog.Fetch(ctx, id)
		if err != nil {
			return err
		}
		p = *fetched
	}
	return fn(p)
}

// search hook de búsqueda; el backend no filtra.
func (a *App) search(q string) {
	a.log.Debug().Str("query", q).Msg("búsqueda ignorada")
}

func (a *App) export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: uso: export <archivo.pdf>", domain.ErrInvalidInput)
	}
	doc, err := a.c.Exporter.GenerateCartPDF(ctx, a.c.Cart.Items(), a.c.Cart.Total())
	if err != nil {
		return err
	}
	if err := a.writeFile(args[0], doc); err != nil {
		return fmt.Errorf("guardar %s: %w", args[0], err)
	}
	a.view.Printf("Carrito exportado a %s\n", args[0])
	return nil
}

func (a *App) report(out *workflow.Outcome, err error) {
	if err != nil || out == nil {
		return
	}
	switch {
	case out.Cancelled:
		a.view.Printf("Cancelado.\n")
	case out.Product != nil:
		a.view.Printf("Guardado: #%d %s\n", out.Product.ID, out.Product.Name)
	case out.State == workflow.Settled:
		a.view.Printf("Listo.\n")
	}
}

func singleID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: se espera un id", domain.ErrInvalidInput)
	}
	return parseID(args[0])
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", domain.ErrInvalidInput, s)
	}
	return id, nil
}
