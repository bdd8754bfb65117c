package handler

import (
	"kisan/internal/platform/privacy"
	"kisan/internal/verification/models"
)

// FarmerResponse exposes a registry entry with the mobile number masked.
type FarmerResponse struct {
	FarmerDID        string  `json:"farmer_did"`
	Mobile           string  `json:"mobile"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	DistrictCode     string  `json:"district_code"`
	LandAcres        float64 `json:"land_acres"`
	Crop             string  `json:"crop"`
	Verified         bool    `json:"verified"`
	RegistrationDate string  `json:"registration_date"`
}

func toFarmerResponse(e *models.FarmerEntry) FarmerResponse {
	return FarmerResponse{
		FarmerDID:        e.FarmerDID,
		Mobile:           privacy.MaskMobile(e.Mobile),
		Name:             e.Name,
		Location:         e.Location,
		DistrictCode:     e.DistrictCode,
		LandAcres:        e.LandAcres,
		Crop:             e.Crop,
		Verified:         e.Verified,
		RegistrationDate: e.RegistrationDate,
	}
}

type PairResponse struct {
	FarmerDID string `json:"farmer_did"`
	Match     bool   `json:"match"`
}
