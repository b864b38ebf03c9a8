package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain"
)

// fail responde con el cuerpo de error {"detail": ...} que espera el cliente.
func fail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Detail: detail})
}

// failFromErr traduce errores de dominio a códigos HTTP.
func failFromErr(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusBadRequest, "Product with this name already registered")
	default:
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
}

// idParam lee el parámetro :id como entero positivo.
func idParam(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fail(c, fiber.StatusUnprocessableEntity, "id debe ser un entero positivo")
	}
	return int64(id), nil
}
