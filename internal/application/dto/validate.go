package dto

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Inventario-client/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// finite: rechaza ±Inf y NaN, que json no puede serializar
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}
	return v
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		x := f.Float()
		return !math.IsInf(x, 0) && !math.IsNaN(x)
	default:
		return true
	}
}

// Validate aplica las restricciones de formulario de un DTO antes de cualquier llamada de red.
// Los errores envuelven domain.ErrInvalidInput.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldRule(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
}

func fieldRule(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " es requerido"
	case "gte":
		return name + " debe ser >= " + fe.Param()
	case "gt":
		return name + " debe ser > " + fe.Param()
	case "finite":
		return name + " debe ser un número finito"
	default:
		return name + " inválido (" + fe.Tag() + ")"
	}
}
