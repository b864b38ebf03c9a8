// Package workflow orquesta el ciclo abrir diálogo → esperar resultado → mutar → refrescar
// para los gestos de crear, ver, editar y eliminar productos.
package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

// CatalogMutator operaciones del catálogo que disparan los workflows.
type CatalogMutator interface {
	Create(ctx context.Context, in dto.CreateProductDTO) (*entity.Product, error)
	Update(ctx context.Context, id int64, in dto.UpdateProductDTO) (*entity.Product, error)
	Remove(ctx context.Context, id int64) error
}

// Outcome resultado de una instancia de workflow.
type Outcome struct {
	ID        uuid.UUID
	Kind      Kind
	State     State
	Cancelled bool
	Product   *entity.Product // producto creado o actualizado, si aplica
}

// Coordinator crea una instancia independiente por gesto; no comparte estado mutable entre ellas.
type Coordinator struct {
	catalog CatalogMutator
	dialogs Dialogs
	log     *logger.Logger
}

// NewCoordinator construye el coordinador.
func NewCoordinator(catalog CatalogMutator, dialogs Dialogs, log *logger.Logger) *Coordinator {
	return &Coordinator{catalog: catalog, dialogs: dialogs, log: log.Named("workflow")}
}

// instance estado de una ejecución.
type instance struct {
	out *Outcome
	log *logger.Logger
}

func (c *Coordinator) begin(kind Kind) *instance {
	id := uuid.New()
	sub := c.log.With().Str("workflow_id", id.String()).Str("kind", string(kind)).Logger()
	inst := &instance{
		out: &Outcome{ID: id, Kind: kind, State: Idle},
		log: logger.FromZerolog(sub),
	}
	return inst
}

func (w *instance) to(s State) {
	if !canTransition(w.out.State, s) {
		panic(fmt.Sprintf("workflow: transición inválida %s → %s", w.out.State, s))
	}
	w.log.Debug().Str("from", w.out.State.String()).Str("to", s.String()).Msg("transición")
	w.out.State = s
}

// cancel cierra el workflow sin mutación.
func (w *instance) cancel() *Outcome {
	w.out.Cancelled = true
	w.to(Idle)
	w.log.Info().Msg("diálogo cancelado")
	return w.out
}

// settle registra el resultado de la mutación.
func (w *instance) settle(err error) (*Outcome, error) {
	w.to(Settled)
	if err != nil {
		w.log.Warn().Err(err).Msg("mutación fallida")
		return w.out, err
	}
	w.log.Info().Msg("mutación completada")
	return w.out, nil
}

// reject descarta un resultado que no pasa la validación de formulario.
func (w *instance) reject(err error) (*Outcome, error) {
	w.to(Idle)
	w.log.Warn().Err(err).Msg("resultado inválido, no se envía al backend")
	return w.out, err
}

// CreateProduct abre el diálogo de producto nuevo y, si se confirma, crea el producto.
func (c *Coordinator) CreateProduct(ctx context.Context) (*Outcome, error) {
	w := c.begin(KindCreate)
	w.to(DialogOpen)
	in, ok, err := await(ctx, c.dialogs.NewProduct.Open(ctx, struct{}{}))
	if err != nil {
		w.cancel()
		return w.out, err
	}
	if !ok {
		return w.cancel(), nil
	}
	w.to(Confirmed)
	if err := dto.Validate(in); err != nil {
		return w.reject(err)
	}
	w.to(Mutating)
	created, err := c.catalog.Create(ctx, in)
	w.out.Product = created
	return w.settle(err)
}

// ViewProduct muestra el detalle del producto; no hay mutación.
func (c *Coordinator) ViewProduct(ctx context.Context, p entity.Product) (*Outcome, error) {
	w := c.begin(KindView)
	w.to(DialogOpen)
	_, _, err := await(ctx, c.dialogs.ProductDetail.Open(ctx, p))
	w.to(Idle)
	w.out.Product = &p
	return w.out, err
}

// EditProduct abre el diálogo de edición con p y, si se confirma, sobrescribe el producto.
func (c *Coordinator) EditProduct(ctx context.Context, p entity.Product) (*Outcome, error) {
	w := c.begin(KindEdit)
	w.to(DialogOpen)
	in, ok, err := await(ctx, c.dialogs.EditProduct.Open(ctx, p))
	if err != nil {
		w.cancel()
		return w.out, err
	}
	if !ok {
		return w.cancel(), nil
	}
	w.to(Confirmed)
	// el id siempre es el del producto editado
	in.ID = p.ID
	if err := dto.Validate(in); err != nil {
		return w.reject(err)
	}
	w.to(Mutating)
	updated, err := c.catalog.Update(ctx, in.ID, in)
	w.out.Product = updated
	return w.settle(err)
}

// DeleteProduct pide confirmación y, si se confirma, elimina el producto.
// Una respuesta false equivale a cancelar.
func (c *Coordinator) DeleteProduct(ctx context.Context, p entity.Product) (*Outcome, error) {
	w := c.begin(KindDelete)
	w.to(DialogOpen)
	confirmed, ok, err := await(ctx, c.dialogs.DeleteConfirmation.Open(ctx, p))
	if err != nil {
		w.cancel()
		return w.out, err
	}
	if !ok || !confirmed {
		return w.cancel(), nil
	}
	w.to(Confirmed)
	w.to(Mutating)
	return w.settle(c.catalog.Remove(ctx, p.ID))
}
