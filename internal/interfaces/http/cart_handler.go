package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/usecase"
)

const cartItemNotFound = "Cart item not found"

// CartHandler maneja las peticiones HTTP del carrito.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// List godoc
// @Summary      Listar líneas del carrito
// @Tags         cart
// @Produce      json
// @Success      200  {array}  dto.CartItemResponse
// @Router       /cart/items [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return failFromErr(c, err, cartItemNotFound)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartDTO  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartDTO
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusUnprocessableEntity, "cuerpo inválido")
	}
	out, err := h.uc.Add(in)
	if err != nil {
		return failFromErr(c, err, productNotFound)
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad de una línea
// @Tags         cart
// @Produce      json
// @Param        id        path   int  true  "ID de la línea"
// @Param        quantity  query  int  true  "Nueva cantidad"
// @Success      200  {object}  dto.CartItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		return fail(c, fiber.StatusUnprocessableEntity, "quantity es requerido y debe ser entero")
	}
	if quantity <= 0 {
		return fail(c, fiber.StatusBadRequest, "quantity debe ser > 0")
	}
	out, err := h.uc.UpdateQuantity(id, quantity)
	if err != nil {
		return failFromErr(c, err, cartItemNotFound)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar línea del carrito
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Remove(id); err != nil {
		return failFromErr(c, err, cartItemNotFound)
	}
	return c.JSON(dto.MessageResponse{Message: "Item removed from cart"})
}
