package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kisan/internal/platform/i18n"
	"kisan/internal/schemes/models"
	"kisan/internal/schemes/service"
	"kisan/pkg/platform/httputil"
	"kisan/pkg/requestcontext"
)

// Service defines the scheme operations the handler exposes.
type Service interface {
	Catalog(ctx context.Context, lang i18n.Lang) ([]models.Scheme, error)
	Explore(ctx context.Context, req service.ExploreRequest) (*service.ExploreResult, error)
	Combinations(ctx context.Context, lang i18n.Lang, ids []models.SchemeID) ([]models.Combination, error)
}

// Handler serves the scheme explorer endpoints.
type Handler struct {
	service  Service
	logger   *slog.Logger
	fallback i18n.Lang
}

// New creates a Handler. fallback is used when no language was negotiated.
func New(svc Service, logger *slog.Logger, fallback i18n.Lang) *Handler {
	return &Handler{service: svc, logger: logger, fallback: fallback}
}

// Register registers the scheme routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/schemes", h.HandleCatalog)
	r.Post("/schemes/eligibility", h.HandleEligibility)
	r.Post("/schemes/combinations", h.HandleCombinations)
}

// HandleCatalog lists every scheme with localized content and benefit tags.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := i18n.FromContext(r, h.fallback)

	list, err := h.service.Catalog(ctx, lang)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load scheme catalog",
			"request_id", requestcontext.RequestID(ctx),
			"lang", lang,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCatalogResponse(lang, list))
}

// HandleEligibility evaluates a declared profile against the catalog.
func (h *Handler) HandleEligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	lang := i18n.FromContext(r, h.fallback)

	req, ok := httputil.DecodeAndPrepare[EligibilityRequest](w, r, h.logger)
	if !ok {
		return
	}
	update, err := req.ToUpdate()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	res, err := h.service.Explore(ctx, service.ExploreRequest{
		Lang:   lang,
		Base:   models.NewProfile(),
		Update: update,
		Mobile: req.Mobile,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to evaluate eligibility",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "eligibility evaluated",
		"request_id", requestID,
		"lang", lang,
		"eligible", len(res.Eligible),
		"combinations", res.CombinationTotal,
		"land_size_corrected", res.Warning != nil,
	)
	httputil.WriteJSON(w, http.StatusOK, toEligibilityResponse(res))
}

// HandleCombinations enumerates every combination of the requested schemes.
func (h *Handler) HandleCombinations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := i18n.FromContext(r, h.fallback)

	req, ok := httputil.DecodeAndPrepare[CombinationsRequest](w, r, h.logger)
	if !ok {
		return
	}

	combos, err := h.service.Combinations(ctx, lang, req.SchemeIDs())
	if err != nil {
		h.logger.WarnContext(ctx, "failed to build combinations",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CombinationsResponse{
		Lang:         string(lang),
		Total:        len(combos),
		Combinations: nonNil(combos),
	})
}
