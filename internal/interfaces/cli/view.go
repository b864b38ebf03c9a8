// Package cli implementa la interfaz de terminal del cliente: render del catálogo y del
// carrito, diálogos interactivos y el bucle de comandos.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// View render de solo lectura; no modifica stores.
type View struct {
	out     io.Writer
	printer *message.Printer
}

// NewView construye la vista sobre out.
func NewView(out io.Writer) *View {
	return &View{out: out, printer: message.NewPrinter(language.English)}
}

// Money formatea un importe con dos decimales y separador de miles.
func (v *View) Money(d decimal.Decimal) string {
	return v.printer.Sprintf("$%v", number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

// Products tabla del catálogo.
func (v *View) Products(products []entity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(v.out, "El catálogo está vacío.")
		return
	}
	tw := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOMBRE\tPRECIO\tSTOCK")
	for _, p := range products {
		stock := fmt.Sprint(p.Stock)
		if !p.InStock() {
			stock = "agotado"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, v.Money(p.Price), stock)
	}
	tw.Flush()
}

// Product detalle de un producto.
func (v *View) Product(p entity.Product) {
	fmt.Fprintf(v.out, "#%d %s\n", p.ID, p.Name)
	fmt.Fprintf(v.out, "  Precio: %s\n", v.Money(p.Price))
	fmt.Fprintf(v.out, "  Stock:  %d\n", p.Stock)
	if desc := strings.TrimSpace(p.Description); desc != "" {
		fmt.Fprintf(v.out, "  %s\n", desc)
	}
}

// Cart líneas del carrito y total.
func (v *View) Cart(items []entity.CartItem, total decimal.Decimal) {
	if len(items) == 0 {
		fmt.Fprintln(v.out, "El carrito está vacío.")
		return
	}
	tw := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LÍNEA\tPRODUCTO\tCANT.\tSUBTOTAL")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", it.ID, it.Product.Name, it.Quantity, v.Money(it.Subtotal()))
	}
	tw.Flush()
	fmt.Fprintf(v.out, "Total: %s\n", v.Money(total))
}

// Errorf mensaje de error para el usuario.
func (v *View) Errorf(format string, args ...any) {
	fmt.Fprintf(v.out, "error: "+format+"\n", args...)
}

// Printf mensaje informativo.
func (v *View) Printf(format string, args ...any) {
	fmt.Fprintf(v.out, format, args...)
}
