package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config agrupa toda la configuración de la aplicación.
// Se pasa explícita a los constructores (loader, resolver, router):
// nada de estado global mutable.
type Config struct {
	// Port es el puerto HTTP del servidor.
	Port int

	// SourceURL es la URL del Excel remoto con el padrón de individuos.
	SourceURL string

	// FallbackPath es el snapshot local usado cuando falla la descarga.
	FallbackPath string

	// HeaderRows es la cantidad de filas de título/cabecera a saltar.
	HeaderRows int

	// AssetBaseURL es la raíz del bucket público con las fotos
	// (ej: https://storage.googleapis.com/<bucket>).
	AssetBaseURL string

	// ProbeTimeout es el timeout por sondeo HEAD de existencia.
	ProbeTimeout time.Duration

	// FetchTimeout es el timeout de descarga del Excel.
	FetchTimeout time.Duration

	// UploadDir es el directorio local para imágenes del diario.
	UploadDir string

	// DatabaseDSN es el DSN de Postgres. Vacío => repo in-memory.
	DatabaseDSN string
}

const (
	defaultSourceURL = "https://ckan.odp.jig.jp/dataset/d62824ca-8b19-4d8f-b81d-7f7cc114f25d/resource/ccc95c6d-e3d0-4dd6-99fb-163704f5ab33/download/-.xlsx"
	defaultAssetBase = "https://storage.googleapis.com/redpandaapp-202509-assets"
)

// Default arma la configuración con los defaults de dev, sin mirar el
// entorno.
func Default() *Config {
	return &Config{
		Port:         8080,
		SourceURL:    defaultSourceURL,
		FallbackPath: "data/redpandas_backup.xlsx",
		HeaderRows:   2,
		AssetBaseURL: defaultAssetBase,
		ProbeTimeout: 2 * time.Second,
		FetchTimeout: 10 * time.Second,
		UploadDir:    "uploads",
	}
}

// Load lee la configuración desde variables de entorno con defaults
// razonables para dev.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         8080,
		SourceURL:    envOr("CATALOG_SOURCE_URL", defaultSourceURL),
		FallbackPath: envOr("CATALOG_FALLBACK_PATH", "data/redpandas_backup.xlsx"),
		HeaderRows:   2,
		AssetBaseURL: envOr("ASSET_BASE_URL", defaultAssetBase),
		ProbeTimeout: 2 * time.Second,
		FetchTimeout: 10 * time.Second,
		UploadDir:    envOr("UPLOAD_DIR", "uploads"),
		DatabaseDSN:  os.Getenv("DB_DSN"),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("CATALOG_HEADER_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid CATALOG_HEADER_ROWS: %q", v)
		}
		cfg.HeaderRows = n
	}
	if v := os.Getenv("ASSET_PROBE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ASSET_PROBE_TIMEOUT: %w", err)
		}
		cfg.ProbeTimeout = d
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
