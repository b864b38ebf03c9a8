package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// cancelWord respuesta que cierra cualquier diálogo sin resultado.
const cancelWord = "cancel"

// Terminal fuente de líneas compartida por el bucle de comandos y los diálogos.
// Un solo lector a la vez: el bucle espera a que el workflow termine antes de leer.
type Terminal struct {
	lines <-chan string
	out   io.Writer
}

// NewTerminal arranca la lectura de in; el canal de líneas se cierra en EOF.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()
	return &Terminal{lines: lines, out: out}
}

// ReadLine ok=false en EOF o al cancelarse ctx.
func (t *Terminal) ReadLine(ctx context.Context) (string, bool) {
	select {
	case line, ok := <-t.lines:
		return strings.TrimSpace(line), ok
	case <-ctx.Done():
		return "", false
	}
}

// ask muestra label (con el valor actual entre corchetes si hay) y lee la respuesta.
// Vacío devuelve def. ok=false si el usuario cancela.
func (t *Terminal) ask(ctx context.Context, label, def string) (string, bool) {
	if def != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(t.out, "%s: ", label)
	}
	line, ok := t.ReadLine(ctx)
	if !ok || strings.EqualFold(line, cancelWord) {
		return "", false
	}
	if line == "" {
		return def, true
	}
	return line, true
}
