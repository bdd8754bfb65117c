package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kisan/internal/verification/models"
	"kisan/pkg/platform/httputil"
	"kisan/pkg/platform/middleware/requesttime"
	"kisan/pkg/requestcontext"
)

// Service is the verification surface the handler needs.
type Service interface {
	VerifyMobile(ctx context.Context, mobile, did string) (*models.VerifyResult, error)
	FarmerByDID(ctx context.Context, did string) (*models.FarmerEntry, error)
	VerifyPair(ctx context.Context, mobile, did string) (bool, error)
	Register(ctx context.Context, f models.FarmerEntry) (*models.FarmerEntry, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the verification routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/verification/mobile", h.HandleVerifyMobile)
	r.Post("/verification/pair", h.HandleVerifyPair)
	r.Post("/verification/farmers", h.HandleRegisterFarmer)
	r.Get("/verification/farmers/{did}", h.HandleGetFarmer)
}

// HandleVerifyMobile checks a mobile number, optionally paired with a DID,
// against the farmer registry.
func (h *Handler) HandleVerifyMobile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VerifyMobileRequest](w, r, h.logger)
	if !ok {
		return
	}

	res, err := h.service.VerifyMobile(ctx, req.Mobile, req.FarmerDID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to verify mobile",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "mobile verification completed",
		"request_id", requestID,
		"verified", res.Verified,
	)
	httputil.WriteJSON(w, http.StatusOK, res)
}

// HandleVerifyPair reports whether a mobile number is registered under a DID.
func (h *Handler) HandleVerifyPair(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[VerifyPairRequest](w, r, h.logger)
	if !ok {
		return
	}

	match, err := h.service.VerifyPair(ctx, req.Mobile, req.FarmerDID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to verify farmer pair",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PairResponse{FarmerDID: req.FarmerDID, Match: match})
}

// HandleRegisterFarmer adds a farmer to the registry. New entries start
// unverified and are dated by the request time.
func (h *Handler) HandleRegisterFarmer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[RegisterFarmerRequest](w, r, h.logger)
	if !ok {
		return
	}

	entry, err := h.service.Register(ctx, req.ToEntry(requesttime.Now(ctx)))
	if err != nil {
		h.logger.WarnContext(ctx, "farmer registration rejected",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toFarmerResponse(entry))
}

func (h *Handler) HandleGetFarmer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	did := chi.URLParam(r, "did")

	entry, err := h.service.FarmerByDID(ctx, did)
	if err != nil {
		h.logger.WarnContext(ctx, "farmer lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toFarmerResponse(entry))
}
