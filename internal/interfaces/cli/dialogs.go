package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/workflow"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// Dialogs diálogos de terminal para el coordinador.
func Dialogs(t *Terminal, v *View) workflow.Dialogs {
	return workflow.Dialogs{
		NewProduct:         workflow.DialogFunc[struct{}, dto.CreateProductDTO](t.newProductDialog(v)),
		EditProduct:        workflow.DialogFunc[entity.Product, dto.UpdateProductDTO](t.editProductDialog(v)),
		DeleteConfirmation: workflow.DialogFunc[entity.Product, bool](t.deleteDialog()),
		ProductDetail:      workflow.DialogFunc[entity.Product, struct{}](t.detailDialog(v)),
	}
}

// open corre form en una goroutine; entrega su resultado si ok y cierra el canal.
func open[Out any](form func() (Out, bool)) <-chan Out {
	ch := make(chan Out, 1)
	go func() {
		defer close(ch)
		if out, ok := form(); ok {
			ch <- out
		}
	}()
	return ch
}

func (t *Terminal) newProductDialog(v *View) func(context.Context, struct{}) <-chan dto.CreateProductDTO {
	return func(ctx context.Context, _ struct{}) <-chan dto.CreateProductDTO {
		return open(func() (dto.CreateProductDTO, bool) {
			fmt.Fprintln(t.out, "Nuevo producto (escribe \"cancel\" para salir)")
			return t.productForm(ctx, v, dto.CreateProductDTO{})
		})
	}
}

func (t *Terminal) editProductDialog(v *View) func(context.Context, entity.Product) <-chan dto.UpdateProductDTO {
	return func(ctx context.Context, p entity.Product) <-chan dto.UpdateProductDTO {
		return open(func() (dto.UpdateProductDTO, bool) {
			fmt.Fprintf(t.out, "Editar #%d (Enter conserva el valor actual)\n", p.ID)
			current := dto.EditFrom(p)
			in, ok := t.productForm(ctx, v, current.CreateProductDTO)
			if !ok {
				return dto.UpdateProductDTO{}, false
			}
			return dto.UpdateProductDTO{ID: p.ID, CreateProductDTO: in}, true
		})
	}
}

func (t *Terminal) deleteDialog() func(context.Context, entity.Product) <-chan bool {
	return func(ctx context.Context, p entity.Product) <-chan bool {
		return open(func() (bool, bool) {
			for {
				answer, ok := t.ask(ctx, fmt.Sprintf("¿Eliminar %q? (s/n)", p.Name), "")
				if !ok {
					return false, false
				}
				switch strings.ToLower(answer) {
				case "s", "si", "sí", "y", "yes":
					return true, true
				case "n", "no":
					return false, true
				}
			}
		})
	}
}

func (t *Terminal) detailDialog(v *View) func(context.Context, entity.Product) <-chan struct{} {
	return func(ctx context.Context, p entity.Product) <-chan struct{} {
		return open(func() (struct{}, bool) {
			v.Product(p)
			fmt.Fprint(t.out, "Enter para cerrar ")
			_, ok := t.ReadLine(ctx)
			return struct{}{}, ok
		})
	}
}

// productForm pide cada campo partiendo de def. Un valor que no parsea vuelve a
// preguntarse; el formulario completo se repite si no pasa dto.Validate.
func (t *Terminal) productForm(ctx context.Context, v *View, def dto.CreateProductDTO) (dto.CreateProductDTO, bool) {
	for {
		in := def
		var ok bool
		if in.Name, ok = t.ask(ctx, "Nombre", def.Name); !ok {
			return in, false
		}
		in.Name = strings.TrimSpace(in.Name)
		if in.Price, ok = askNumber(ctx, t, v, "Precio", def.Price, parsePrice); !ok {
			return in, false
		}
		if in.Description, ok = t.ask(ctx, "Descripción", def.Description); !ok {
			return in, false
		}
		if in.Stock, ok = askNumber(ctx, t, v, "Stock", def.Stock, strconv.Atoi); !ok {
			return in, false
		}
		if err := dto.Validate(in); err != nil {
			v.Errorf("%v", err)
			continue
		}
		return in, true
	}
}

func askNumber[N int | float64](ctx context.Context, t *Terminal, v *View, label string, def N, parse func(string) (N, error)) (N, bool) {
	for {
		raw, ok := t.ask(ctx, label, fmt.Sprint(def))
		if !ok {
			return def, false
		}
		n, err := parse(raw)
		if err != nil {
			v.Errorf("%s: %q no es un número válido", label, raw)
			continue
		}
		return n, true
	}
}

func parsePrice(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("precio no finito: %q", s)
	}
	return f, nil
}
