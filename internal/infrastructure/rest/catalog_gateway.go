// Package rest implementa el gateway hacia el backend de catálogo y carrito sobre net/http.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// Verificar en tiempo de compilación que CatalogGateway implementa el puerto.
var _ ports.CatalogGateway = (*CatalogGateway)(nil)

// maxBodyBytes límite de lectura de cada respuesta.
const maxBodyBytes = 1 << 20

// CatalogGateway adaptador REST: una petición por llamada, sin reintentos ni validación.
type CatalogGateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogGateway construye el adaptador. baseURL sin barra final, p. ej. "http://localhost:8000".
func NewCatalogGateway(baseURL string, timeout time.Duration) *CatalogGateway {
	return &CatalogGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewCatalogGatewayWithClient permite inyectar el *http.Client (tests, transportes propios).
func NewCatalogGatewayWithClient(baseURL string, client *http.Client) *CatalogGateway {
	return &CatalogGateway{baseURL: strings.TrimRight(baseURL, "/"), httpClient: client}
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (g *CatalogGateway) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []dto.ProductResponse
	if err := g.do(ctx, http.MethodGet, "/products", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	products := make([]entity.Product, 0, len(out))
	for _, p := range out {
		products = append(products, dto.ToProduct(p))
	}
	return products, nil
}

func (g *CatalogGateway) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var out dto.ProductResponse
	if err := g.do(ctx, http.MethodGet, productPath(id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("obtener producto %d: %w", id, err)
	}
	p := dto.ToProduct(out)
	return &p, nil
}

func (g *CatalogGateway) CreateProduct(ctx context.Context, in dto.CreateProductDTO) (*entity.Product, error) {
	var out dto.ProductResponse
	if err := g.do(ctx, http.MethodPost, "/products", nil, in, &out); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	p := dto.ToProduct(out)
	return &p, nil
}

func (g *CatalogGateway) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductDTO) (*entity.Product, error) {
	var out dto.ProductResponse
	if err := g.do(ctx, http.MethodPut, productPath(id), nil, in, &out); err != nil {
		return nil, fmt.Errorf("actualizar producto %d: %w", id, err)
	}
	p := dto.ToProduct(out)
	return &p, nil
}

func (g *CatalogGateway) DeleteProduct(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := g.do(ctx, http.MethodDelete, productPath(id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("eliminar producto %d: %w", id, err)
	}
	return &out, nil
}

// ── Carrito ───────────────────────────────────────────────────────────────────

func (g *CatalogGateway) ListCartItems(ctx context.Context) ([]entity.CartItem, error) {
	var out []dto.CartItemResponse
	if err := g.do(ctx, http.MethodGet, "/cart/items", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("listar carrito: %w", err)
	}
	items := make([]entity.CartItem, 0, len(out))
	for _, it := range out {
		items = append(items, dto.ToCartItem(it))
	}
	return items, nil
}

func (g *CatalogGateway) AddToCart(ctx context.Context, in dto.AddToCartDTO) (*entity.CartItem, error) {
	var out dto.CartItemResponse
	if err := g.do(ctx, http.MethodPost, "/cart/items", nil, in, &out); err != nil {
		return nil, fmt.Errorf("agregar al carrito: %w", err)
	}
	item := dto.ToCartItem(out)
	return &item, nil
}

func (g *CatalogGateway) RemoveFromCart(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := g.do(ctx, http.MethodDelete, cartItemPath(id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("quitar línea %d: %w", id, err)
	}
	return &out, nil
}

// UpdateCartItem la cantidad viaja como query parameter (?quantity=), sin cuerpo.
func (g *CatalogGateway) UpdateCartItem(ctx context.Context, id int64, quantity int) (*entity.CartItem, error) {
	q := url.Values{"quantity": []string{strconv.Itoa(quantity)}}
	var out dto.CartItemResponse
	if err := g.do(ctx, http.MethodPut, cartItemPath(id), q, nil, &out); err != nil {
		return nil, fmt.Errorf("actualizar línea %d: %w", id, err)
	}
	item := dto.ToCartItem(out)
	return &item, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func productPath(id int64) string  { return "/products/" + strconv.FormatInt(id, 10) }
func cartItemPath(id int64) string { return "/cart/items/" + strconv.FormatInt(id, 10) }

// do ejecuta una petición JSON y decodifica la respuesta en out.
// Los errores se traducen a los sentinels de domain.
func (g *CatalogGateway) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: serializar request: %v", domain.ErrInvalidInput, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %s %s: %w", domain.ErrNetwork, method, path, ctxErr)
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: deserializar respuesta: %v", domain.ErrRemote, err)
	}
	return nil
}

// statusError traduce un código HTTP no exitoso al error de dominio, con el detail del backend.
func statusError(code int, raw []byte) error {
	detail := strings.TrimSpace(string(raw))
	var errResp dto.ErrorResponse
	if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Detail != "" {
		detail = errResp.Detail
	}

	var kind error
	switch {
	case code == http.StatusNotFound:
		kind = domain.ErrNotFound
	case code >= 400 && code < 500:
		kind = domain.ErrRejected
	default:
		kind = domain.ErrRemote
	}
	return &StatusError{Code: code, Detail: detail, kind: kind}
}

// StatusError respuesta HTTP no exitosa del backend.
type StatusError struct {
	Code   int
	Detail string
	kind   error
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (HTTP %d)", e.kind, e.Code)
	}
	return fmt.Sprintf("%v (HTTP %d): %s", e.kind, e.Code, e.Detail)
}

// Unwrap permite errors.Is(err, domain.ErrNotFound) y similares.
func (e *StatusError) Unwrap() error { return e.kind }

// AsStatusError extrae el StatusError de una cadena de errores.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	ok := errors.As(err, &se)
	return se, ok
}
