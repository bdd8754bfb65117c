package handler

import (
	"strings"
	"time"

	"kisan/internal/verification/models"
	"kisan/pkg/validation"
)

// VerifyMobileRequest is the body of POST /verification/mobile.
type VerifyMobileRequest struct {
	Mobile    string `json:"mobile" validate:"required,mobile"`
	FarmerDID string `json:"farmer_did,omitempty" validate:"omitempty,startswith=0x,max=66"`
}

func (r *VerifyMobileRequest) Normalize() {
	if r == nil {
		return
	}
	r.Mobile = models.NormalizeMobile(r.Mobile)
	r.FarmerDID = strings.ToLower(strings.TrimSpace(r.FarmerDID))
}

func (r *VerifyMobileRequest) Validate() error {
	return validation.Validate(r)
}

// VerifyPairRequest is the body of POST /verification/pair.
type VerifyPairRequest struct {
	Mobile    string `json:"mobile" validate:"required,mobile"`
	FarmerDID string `json:"farmer_did" validate:"required,startswith=0x,max=66"`
}

func (r *VerifyPairRequest) Normalize() {
	if r == nil {
		return
	}
	r.Mobile = models.NormalizeMobile(r.Mobile)
	r.FarmerDID = strings.ToLower(strings.TrimSpace(r.FarmerDID))
}

func (r *VerifyPairRequest) Validate() error {
	return validation.Validate(r)
}

// RegisterFarmerRequest is the body of POST /verification/farmers. The DID
// is derived from the mobile number.
type RegisterFarmerRequest struct {
	Mobile       string  `json:"mobile" validate:"required,mobile"`
	Name         string  `json:"name" validate:"required,notblank,max=100"`
	Location     string  `json:"location" validate:"max=100"`
	StateCode    string  `json:"state_code" validate:"max=8"`
	DistrictCode string  `json:"district_code" validate:"max=8"`
	LandAcres    float64 `json:"land_acres" validate:"gte=0,lte=1000"`
	Crop         string  `json:"crop" validate:"max=50"`
}

func (r *RegisterFarmerRequest) Normalize() {
	if r == nil {
		return
	}
	r.Mobile = models.NormalizeMobile(r.Mobile)
	r.Name = strings.Join(strings.Fields(r.Name), " ")
	r.Location = strings.TrimSpace(r.Location)
	r.StateCode = strings.ToUpper(strings.TrimSpace(r.StateCode))
	r.DistrictCode = strings.ToUpper(strings.TrimSpace(r.DistrictCode))
	r.Crop = strings.ToLower(strings.TrimSpace(r.Crop))
}

func (r *RegisterFarmerRequest) Validate() error {
	return validation.Validate(r)
}

// ToEntry builds an unverified registry entry dated at now.
func (r *RegisterFarmerRequest) ToEntry(now time.Time) models.FarmerEntry {
	return models.FarmerEntry{
		Mobile:           r.Mobile,
		Name:             r.Name,
		Location:         r.Location,
		StateCode:        r.StateCode,
		DistrictCode:     r.DistrictCode,
		LandAcres:        r.LandAcres,
		Crop:             r.Crop,
		RegistrationDate: now.Format(time.DateOnly),
	}
}
