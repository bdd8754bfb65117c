package handler

import (
	"math"
	"time"

	"kisan/internal/logistics/models"
	"kisan/internal/logistics/service"
)

type ProcessorResponse struct {
	models.Processor
	DistanceKm float64 `json:"distance_km"`
	InRange    bool    `json:"in_range"`
}

type ProcessorsResponse struct {
	Total      int                 `json:"total"`
	Processors []ProcessorResponse `json:"processors"`
}

// ProjectionResponse adds the calendar delivery date, counted from the
// request time.
type ProjectionResponse struct {
	models.Projection
	DeliverBy string `json:"deliver_by"`
}

type RankingResponse struct {
	Crop        string               `json:"crop"`
	Quantity    float64              `json:"quantity"`
	Total       int                  `json:"total"`
	Projections []ProjectionResponse `json:"projections"`
}

func toProjectionResponse(p models.Projection, now time.Time) ProjectionResponse {
	return ProjectionResponse{
		Projection: p,
		DeliverBy:  now.AddDate(0, 0, p.EstimatedDeliveryDays).Format(time.DateOnly),
	}
}

func toRankingResponse(crop string, qty float64, ranked []models.Projection, now time.Time) RankingResponse {
	out := make([]ProjectionResponse, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, toProjectionResponse(p, now))
	}
	return RankingResponse{Crop: crop, Quantity: qty, Total: len(out), Projections: out}
}

func toProcessorsResponse(list []service.ProcessorDistance) ProcessorsResponse {
	out := make([]ProcessorResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ProcessorResponse{
			Processor:  p.Processor,
			DistanceKm: math.Round(p.DistanceKm*10) / 10,
			InRange:    p.InRange,
		})
	}
	return ProcessorsResponse{Total: len(out), Processors: out}
}
