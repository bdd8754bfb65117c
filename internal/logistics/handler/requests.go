package handler

import (
	"net/url"
	"strconv"
	"strings"

	"kisan/internal/logistics/models"
	"kisan/internal/logistics/service"
	dErrors "kisan/pkg/domain-errors"
	limits "kisan/pkg/platform/validation"
	"kisan/pkg/validation"
)

// ReferenceRequest is an optional location override.
type ReferenceRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

func (r *ReferenceRequest) coordinate() *models.Coordinate {
	if r == nil {
		return nil
	}
	return &models.Coordinate{Lat: r.Lat, Lon: r.Lon}
}

// ProjectionRequest is the body of POST /logistics/projections.
type ProjectionRequest struct {
	ProcessorID string            `json:"processor_id" validate:"required,max=40"`
	Crop        string            `json:"crop" validate:"required,max=50"`
	Quantity    float64           `json:"quantity" validate:"gte=0,lte=100000"`
	Vehicle     string            `json:"vehicle" validate:"omitempty,oneof=truck small"`
	Reference   *ReferenceRequest `json:"reference,omitempty"`
}

func (r *ProjectionRequest) Normalize() {
	if r == nil {
		return
	}
	r.ProcessorID = strings.TrimSpace(r.ProcessorID)
	r.Crop = strings.ToLower(strings.TrimSpace(r.Crop))
	r.Vehicle = strings.ToLower(strings.TrimSpace(r.Vehicle))
}

func (r *ProjectionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

func (r *ProjectionRequest) ToService() service.ProjectRequest {
	return service.ProjectRequest{
		ProcessorID: r.ProcessorID,
		Crop:        r.Crop,
		Quantity:    r.Quantity,
		Vehicle:     vehicle(r.Vehicle),
		Reference:   r.Reference.coordinate(),
	}
}

// RankingRequest is the body of POST /logistics/rankings.
type RankingRequest struct {
	Crop      string            `json:"crop" validate:"required,max=50"`
	Quantity  float64           `json:"quantity" validate:"gte=0,lte=100000"`
	Vehicle   string            `json:"vehicle" validate:"omitempty,oneof=truck small"`
	Reference *ReferenceRequest `json:"reference,omitempty"`
}

func (r *RankingRequest) Normalize() {
	if r == nil {
		return
	}
	r.Crop = strings.ToLower(strings.TrimSpace(r.Crop))
	r.Vehicle = strings.ToLower(strings.TrimSpace(r.Vehicle))
}

func (r *RankingRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

func (r *RankingRequest) ToService() service.RankRequest {
	return service.RankRequest{
		Crop:      r.Crop,
		Quantity:  r.Quantity,
		Vehicle:   vehicle(r.Vehicle),
		Reference: r.Reference.coordinate(),
	}
}

// vehicle maps an already validated value.
func vehicle(s string) models.Vehicle {
	v, err := models.ParseVehicle(s)
	if err != nil {
		return models.VehicleTruck
	}
	return v
}

type processorsQuery struct {
	Crop      string
	Reference *models.Coordinate
}

// parseProcessorsQuery reads ?crop=&lat=&lon=. lat and lon must be given
// together.
func parseProcessorsQuery(q url.Values) (processorsQuery, error) {
	out := processorsQuery{Crop: strings.ToLower(strings.TrimSpace(q.Get("crop")))}
	if err := limits.CheckStringLength("crop", out.Crop, limits.MaxCropLength); err != nil {
		return processorsQuery{}, err
	}

	lat, lon := q.Get("lat"), q.Get("lon")
	if lat == "" && lon == "" {
		return out, nil
	}
	if lat == "" || lon == "" {
		return processorsQuery{}, dErrors.New(dErrors.CodeValidation, "lat and lon must be provided together")
	}
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return processorsQuery{}, dErrors.New(dErrors.CodeValidation, "lat must be a number")
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return processorsQuery{}, dErrors.New(dErrors.CodeValidation, "lon must be a number")
	}
	ref := models.Coordinate{Lat: la, Lon: lo}
	if !ref.Valid() {
		return processorsQuery{}, dErrors.New(dErrors.CodeValidation, "lat or lon is out of range")
	}
	out.Reference = &ref
	return out, nil
}
