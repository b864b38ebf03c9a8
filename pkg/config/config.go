package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Cart    CartConfig
	HTTP    HTTPConfig
	Backend BackendConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig ubicación del backend de catálogo y carrito.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CartConfig política del carrito ante fallos tras una reserva optimista de stock.
type CartConfig struct {
	// ResyncStockOnFailure vuelve a leer el catálogo del servidor cuando falla un
	// "agregar al carrito" que ya descontó stock localmente.
	ResyncStockOnFailure bool
}

// HTTPConfig configuración del servidor HTTP del backend de demostración.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig opciones del backend de demostración.
type BackendConfig struct {
	Seed bool // carga productos de ejemplo al arrancar
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	baseURL := strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:8000"), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vacío")
	}
	timeout := getInt(v, "API_TIMEOUT_SECONDS", 10)
	if timeout <= 0 {
		return nil, fmt.Errorf("config: API_TIMEOUT_SECONDS debe ser > 0 (recibido %d)", timeout)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "storefront"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL: baseURL,
			Timeout: time.Duration(timeout) * time.Second,
		},
		Cart: CartConfig{
			ResyncStockOnFailure: getBool(v, "CART_RESYNC_STOCK_ON_FAILURE", true),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		Backend: BackendConfig{
			Seed: getBool(v, "BACKEND_SEED", true),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
