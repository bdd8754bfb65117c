package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kisan/internal/logistics/models"
	"kisan/internal/logistics/service"
	"kisan/pkg/platform/httputil"
	"kisan/pkg/platform/middleware/requesttime"
	"kisan/pkg/requestcontext"
)

// Service defines the logistics operations the handler exposes.
type Service interface {
	Processors(ctx context.Context, crop string, reference *models.Coordinate) []service.ProcessorDistance
	ProjectByID(ctx context.Context, req service.ProjectRequest) (*models.Projection, error)
	Rank(ctx context.Context, req service.RankRequest) ([]models.Projection, error)
}

// Handler serves the retailer logistics endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register registers the logistics routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/logistics/processors", h.HandleListProcessors)
	r.Post("/logistics/projections", h.HandleProject)
	r.Post("/logistics/rankings", h.HandleRank)
}

// HandleListProcessors lists processors nearest first, optionally filtered
// by ?crop= and measured from ?lat=&lon=.
func (h *Handler) HandleListProcessors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q, err := parseProcessorsQuery(r.URL.Query())
	if err != nil {
		h.logger.WarnContext(ctx, "invalid processors query",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	list := h.service.Processors(ctx, q.Crop, q.Reference)
	httputil.WriteJSON(w, http.StatusOK, toProcessorsResponse(list))
}

// HandleProject projects sourcing a crop from one processor.
func (h *Handler) HandleProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ProjectionRequest](w, r, h.logger)
	if !ok {
		return
	}

	proj, err := h.service.ProjectByID(ctx, req.ToService())
	if err != nil {
		h.logger.WarnContext(ctx, "failed to project processor",
			"request_id", requestID,
			"processor_id", req.ProcessorID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "projection computed",
		"request_id", requestID,
		"processor_id", proj.ProcessorID,
		"profit", proj.Profit,
	)
	httputil.WriteJSON(w, http.StatusOK, toProjectionResponse(*proj, requesttime.Now(ctx)))
}

// HandleRank ranks processors in range by projected profit.
func (h *Handler) HandleRank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RankingRequest](w, r, h.logger)
	if !ok {
		return
	}

	ranked, err := h.service.Rank(ctx, req.ToService())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to rank processors",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "processors ranked",
		"request_id", requestID,
		"crop", req.Crop,
		"candidates", len(ranked),
	)
	httputil.WriteJSON(w, http.StatusOK, toRankingResponse(req.Crop, req.Quantity, ranked, requesttime.Now(ctx)))
}
