package handler

import (
	"strings"

	"kisan/internal/schemes/models"
	verification "kisan/internal/verification/models"
	dErrors "kisan/pkg/domain-errors"
	strutil "kisan/pkg/platform/strings"
	limits "kisan/pkg/platform/validation"
	"kisan/pkg/validation"
)

// EligibilityRequest is a declared profile. Absent fields keep their defaults.
type EligibilityRequest struct {
	FarmerType    string   `json:"farmer_type" validate:"omitempty,oneof=marginal small large sharecropper landless"`
	LandSize      *float64 `json:"land_size"`
	IsFPOMember   *bool    `json:"is_fpo_member"`
	IsInCluster   *bool    `json:"is_in_cluster"`
	HasRiceFallow *bool    `json:"has_rice_fallow"`
	IsRegistered  *bool    `json:"is_registered"`
	HasBankLoan   *bool    `json:"has_bank_loan"`
	Category      string   `json:"category" validate:"omitempty,oneof=general sc st"`
	Gender        string   `json:"gender" validate:"omitempty,oneof=male female"`
	District      string   `json:"district"`
	// Mobile is optional; a verified number marks the farmer registered.
	Mobile string `json:"mobile,omitempty" validate:"omitempty,mobile"`
}

func (r *EligibilityRequest) Normalize() {
	if r == nil {
		return
	}
	r.FarmerType = strings.ToLower(strings.TrimSpace(r.FarmerType))
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.Gender = strings.ToLower(strings.TrimSpace(r.Gender))
	r.District = strings.Join(strings.Fields(r.District), " ")
	if r.Mobile != "" {
		r.Mobile = verification.NormalizeMobile(r.Mobile)
	}
}

func (r *EligibilityRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := limits.CheckStringLength("district", r.District, limits.MaxDistrictLength); err != nil {
		return err
	}
	return validation.Validate(r)
}

// ToUpdate converts the validated request into a profile update.
func (r *EligibilityRequest) ToUpdate() (models.ProfileUpdate, error) {
	u := models.ProfileUpdate{
		LandSize:      r.LandSize,
		IsFPOMember:   r.IsFPOMember,
		IsInCluster:   r.IsInCluster,
		HasRiceFallow: r.HasRiceFallow,
		IsRegistered:  r.IsRegistered,
		HasBankLoan:   r.HasBankLoan,
	}
	if r.FarmerType != "" {
		ft, err := models.ParseFarmerType(r.FarmerType)
		if err != nil {
			return models.ProfileUpdate{}, err
		}
		u.FarmerType = &ft
	}
	if r.Category != "" {
		c, err := models.ParseCategory(r.Category)
		if err != nil {
			return models.ProfileUpdate{}, err
		}
		u.Category = &c
	}
	if r.Gender != "" {
		g, err := models.ParseGender(r.Gender)
		if err != nil {
			return models.ProfileUpdate{}, err
		}
		u.Gender = &g
	}
	if r.District != "" {
		u.District = &r.District
	}
	return u, nil
}

// CombinationsRequest names the schemes to combine.
type CombinationsRequest struct {
	Schemes []string `json:"schemes"`
}

func (r *CombinationsRequest) Normalize() {
	if r == nil {
		return
	}
	r.Schemes = strutil.DedupeAndTrimLower(r.Schemes)
}

func (r *CombinationsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if len(r.Schemes) < 2 {
		return dErrors.New(dErrors.CodeValidation, "schemes must name at least 2 distinct schemes")
	}
	if err := limits.CheckSliceCount("schemes", len(r.Schemes), limits.MaxSchemeIDs); err != nil {
		return err
	}
	if err := limits.CheckEachStringLength("schemes", r.Schemes, limits.MaxSchemeIDLength); err != nil {
		return err
	}
	for _, s := range r.Schemes {
		if _, err := models.ParseSchemeID(s); err != nil {
			return err
		}
	}
	return nil
}

// SchemeIDs returns the validated identifiers.
func (r *CombinationsRequest) SchemeIDs() []models.SchemeID {
	ids := make([]models.SchemeID, 0, len(r.Schemes))
	for _, s := range r.Schemes {
		ids = append(ids, models.SchemeID(s))
	}
	return ids
}
