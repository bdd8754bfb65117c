package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server and engine configuration.
type Server struct {
	Addr        string
	Environment string
	LogLevel    string

	// DefaultLang is used when neither ?lang= nor Accept-Language selects one.
	DefaultLang string

	// Reference location for distance-based logistics projections.
	ReferenceLat float64
	ReferenceLon float64

	MaxRadiusKm       float64
	CombinationSample int

	// FarmerRegistryPath overrides the embedded farmer verification seed.
	FarmerRegistryPath   string
	// ProcessorCatalogPath overrides the embedded processor catalog.
	ProcessorCatalogPath string

	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// Defaults match the retailer dashboard: Bhubaneswar as reference, a 300 km
// sourcing radius and the first ten combinations shown.
const (
	DefaultAddr              = ":8080"
	DefaultReferenceLat      = 20.2961
	DefaultReferenceLon      = 85.8245
	DefaultMaxRadiusKm       = 300
	DefaultCombinationSample = 10
	DefaultRequestTimeout    = 30 * time.Second
	DefaultMaxBodyBytes      = 64 * 1024
)

// FromEnv builds a Server config from environment variables so main stays lean.
// Malformed numeric values are reported rather than silently replaced.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:                 getenv("KISAN_ADDR", DefaultAddr),
		Environment:          getenv("KISAN_ENV", "development"),
		LogLevel:             getenv("LOG_LEVEL", "info"),
		DefaultLang:          getenv("KISAN_DEFAULT_LANG", "en"),
		FarmerRegistryPath:   os.Getenv("KISAN_FARMER_REGISTRY"),
		ProcessorCatalogPath: os.Getenv("KISAN_PROCESSOR_CATALOG"),
		ReferenceLat:         DefaultReferenceLat,
		ReferenceLon:         DefaultReferenceLon,
		MaxRadiusKm:          DefaultMaxRadiusKm,
		CombinationSample:    DefaultCombinationSample,
		RequestTimeout:       DefaultRequestTimeout,
		MaxBodyBytes:         DefaultMaxBodyBytes,
	}

	var errs []error
	parseFloat := func(key string, dst *float64) {
		if v := os.Getenv(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	parseFloat("KISAN_REF_LAT", &cfg.ReferenceLat)
	parseFloat("KISAN_REF_LON", &cfg.ReferenceLon)
	parseFloat("KISAN_MAX_RADIUS_KM", &cfg.MaxRadiusKm)

	if v := os.Getenv("KISAN_COMBINATION_SAMPLE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("KISAN_COMBINATION_SAMPLE: %w", err))
		} else {
			cfg.CombinationSample = n
		}
	}
	if v := os.Getenv("KISAN_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("KISAN_REQUEST_TIMEOUT: %w", err))
		} else {
			cfg.RequestTimeout = d
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Server{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges that FromEnv cannot express through parsing alone.
func (s Server) Validate() error {
	switch {
	case s.ReferenceLat < -90 || s.ReferenceLat > 90:
		return fmt.Errorf("reference latitude %v out of range", s.ReferenceLat)
	case s.ReferenceLon < -180 || s.ReferenceLon > 180:
		return fmt.Errorf("reference longitude %v out of range", s.ReferenceLon)
	case s.MaxRadiusKm <= 0:
		return errors.New("max radius must be positive")
	case s.CombinationSample <= 0:
		return errors.New("combination sample must be positive")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
