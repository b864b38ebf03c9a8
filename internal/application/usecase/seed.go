package usecase

import "github.com/jhoicas/Inventario-client/internal/application/dto"

// DemoProducts catálogo de ejemplo para el backend de demostración.
var DemoProducts = []dto.CreateProductDTO{
	{Name: "Widget", Price: 9.99, Description: "Widget de acero", Stock: 3},
	{Name: "Gadget", Price: 24.50, Description: "Gadget multiuso", Stock: 10},
	{Name: "Gizmo", Price: 5, Stock: 0},
}
