package workflow

import (
	"context"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// Dialog diálogo modal: recibe un dato de entrada y entrega como máximo un resultado.
// El canal se cierra al cerrarse el diálogo; cerrarlo sin enviar valor es la cancelación.
type Dialog[In, Out any] interface {
	Open(ctx context.Context, data In) <-chan Out
}

// DialogFunc adapta una función a Dialog.
type DialogFunc[In, Out any] func(ctx context.Context, data In) <-chan Out

// Open implementa Dialog.
func (f DialogFunc[In, Out]) Open(ctx context.Context, data In) <-chan Out { return f(ctx, data) }

// Dialogs las cuatro variantes de diálogo que usa el catálogo.
type Dialogs struct {
	NewProduct         Dialog[struct{}, dto.CreateProductDTO]
	EditProduct        Dialog[entity.Product, dto.UpdateProductDTO]
	DeleteConfirmation Dialog[entity.Product, bool]
	ProductDetail      Dialog[entity.Product, struct{}]
}

// await espera el cierre del diálogo. ok=false indica cancelación.
func await[Out any](ctx context.Context, ch <-chan Out) (Out, bool, error) {
	var zero Out
	select {
	case v, ok := <-ch:
		if !ok {
			return zero, false, nil
		}
		return v, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}
