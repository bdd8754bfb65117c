package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"kisan/internal/logistics"
	logisticshandler "kisan/internal/logistics/handler"
	logisticsmetrics "kisan/internal/logistics/metrics"
	logisticsmodels "kisan/internal/logistics/models"
	logisticsservice "kisan/internal/logistics/service"
	logisticsstore "kisan/internal/logistics/store"
	"kisan/internal/platform/config"
	"kisan/internal/platform/i18n"
	"kisan/internal/platform/tracer"
	"kisan/internal/schemes/adapters"
	"kisan/internal/schemes/catalog"
	schemeshandler "kisan/internal/schemes/handler"
	schemesmetrics "kisan/internal/schemes/metrics"
	schemesservice "kisan/internal/schemes/service"
	httptransport "kisan/internal/transport/http"
	"kisan/internal/verification"
	verificationhandler "kisan/internal/verification/handler"
	verificationstore "kisan/internal/verification/store"
)

type modules struct {
	handlers      []httptransport.Registrar
	registryCheck func(ctx context.Context) error
}

// buildModules loads the catalogs and registries and wires each module's
// service and handler.
func buildModules(ctx context.Context, cfg config.Server, defaultLang i18n.Lang, log *slog.Logger, reg prometheus.Registerer) (*modules, error) {
	tr := tracer.NewOTel(tracer.WithVersion(version))

	catalogs, err := catalog.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	farmers, err := loadFarmers(cfg.FarmerRegistryPath)
	if err != nil {
		return nil, err
	}
	log.Info("farmer registry loaded", "entries", farmers.Count(ctx), "path", cfg.FarmerRegistryPath)

	processors, err := loadProcessors(cfg.ProcessorCatalogPath)
	if err != nil {
		return nil, err
	}
	log.Info("processor catalog loaded", "entries", processors.Count(ctx), "path", cfg.ProcessorCatalogPath)

	verifier := verification.New(farmers,
		verification.WithLogger(log),
		verification.WithTracer(tr),
	)

	schemes := schemesservice.New(catalogs,
		schemesservice.WithVerifier(adapters.NewResilientVerifier(
			adapters.NewVerificationAdapter(verifier),
			adapters.WithResilientLogger(log),
		)),
		schemesservice.WithMetrics(schemesmetrics.New(reg)),
		schemesservice.WithTracer(tr),
		schemesservice.WithLogger(log),
		schemesservice.WithSampleSize(cfg.CombinationSample),
	)

	projections := logisticsservice.New(processors,
		logisticsservice.WithCalculator(logistics.NewCalculator(logistics.WithRadius(cfg.MaxRadiusKm))),
		logisticsservice.WithReference(logisticsmodels.Coordinate{Lat: cfg.ReferenceLat, Lon: cfg.ReferenceLon}),
		logisticsservice.WithMetrics(logisticsmetrics.New(reg)),
		logisticsservice.WithTracer(tr),
		logisticsservice.WithLogger(log),
	)

	return &modules{
		handlers: []httptransport.Registrar{
			schemeshandler.New(schemes, log, defaultLang),
			logisticshandler.New(projections, log),
			verificationhandler.New(verifier, log),
		},
		registryCheck: func(ctx context.Context) error {
			if verifier.Total(ctx) == 0 {
				return errors.New("farmer registry is empty")
			}
			return nil
		},
	}, nil
}

func loadFarmers(path string) (*verificationstore.InMemoryStore, error) {
	if path != "" {
		return verificationstore.NewFromFile(path)
	}
	return verificationstore.NewDefault()
}

func loadProcessors(path string) (*logisticsstore.InMemoryStore, error) {
	if path != "" {
		return logisticsstore.NewFromFile(path)
	}
	return logisticsstore.NewDefault()
}
