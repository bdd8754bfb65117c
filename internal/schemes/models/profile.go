package models

import (
	"fmt"

	dErrors "kisan/pkg/domain-errors"
)

// FarmerType classifies a farmer by landholding. The zero value is unset.
type FarmerType string

const (
	FarmerTypeUnset        FarmerType = ""
	FarmerTypeMarginal     FarmerType = "marginal"
	FarmerTypeSmall        FarmerType = "small"
	FarmerTypeLarge        FarmerType = "large"
	FarmerTypeSharecropper FarmerType = "sharecropper"
	FarmerTypeLandless     FarmerType = "landless"
)

// FarmerTypes lists every selectable type in display order.
var FarmerTypes = []FarmerType{
	FarmerTypeMarginal,
	FarmerTypeSmall,
	FarmerTypeLarge,
	FarmerTypeSharecropper,
	FarmerTypeLandless,
}

// ParseFarmerType validates external input. The empty string maps to unset.
func ParseFarmerType(s string) (FarmerType, error) {
	t := FarmerType(s)
	if t == FarmerTypeUnset || t.IsValid() {
		return t, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown farmer type %q", s))
}

func (t FarmerType) IsValid() bool {
	switch t {
	case FarmerTypeMarginal, FarmerTypeSmall, FarmerTypeLarge, FarmerTypeSharecropper, FarmerTypeLandless:
		return true
	}
	return false
}

// Category is the social category declared by the farmer.
type Category string

const (
	CategoryGeneral Category = "general"
	CategorySC      Category = "sc"
	CategoryST      Category = "st"
)

func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case "":
		return CategoryGeneral, nil
	case CategoryGeneral, CategorySC, CategoryST:
		return c, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown category %q", s))
}

// Gender is optional; the zero value is unset.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(s string) (Gender, error) {
	switch g := Gender(s); g {
	case GenderUnset, GenderMale, GenderFemale:
		return g, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown gender %q", s))
}

// FarmerProfile holds the attributes a farmer declares. It is a value type:
// every With* method returns a modified copy and leaves the receiver intact.
type FarmerProfile struct {
	FarmerType    FarmerType `json:"farmer_type" yaml:"farmer_type"`
	LandSize      float64    `json:"land_size" yaml:"land_size"`
	IsFPOMember   bool       `json:"is_fpo_member" yaml:"is_fpo_member"`
	IsInCluster   bool       `json:"is_in_cluster" yaml:"is_in_cluster"`
	HasRiceFallow bool       `json:"has_rice_fallow" yaml:"has_rice_fallow"`
	IsRegistered  bool       `json:"is_registered" yaml:"is_registered"`
	HasBankLoan   bool       `json:"has_bank_loan" yaml:"has_bank_loan"`
	Category      Category   `json:"category" yaml:"category"`
	Gender        Gender     `json:"gender" yaml:"gender"`
	// District is collected but no eligibility rule reads it yet.
	District string `json:"district" yaml:"district"`
}

// NewProfile returns the blank profile a new session starts from.
func NewProfile() FarmerProfile {
	return FarmerProfile{Category: CategoryGeneral}
}

func (p FarmerProfile) WithFarmerType(t FarmerType) FarmerProfile {
	p.FarmerType = t
	return p
}

func (p FarmerProfile) WithLandSize(acres float64) FarmerProfile {
	p.LandSize = acres
	return p
}

func (p FarmerProfile) WithFPOMember(v bool) FarmerProfile {
	p.IsFPOMember = v
	return p
}

func (p FarmerProfile) WithCluster(v bool) FarmerProfile {
	p.IsInCluster = v
	return p
}

func (p FarmerProfile) WithRiceFallow(v bool) FarmerProfile {
	p.HasRiceFallow = v
	return p
}

func (p FarmerProfile) WithRegistered(v bool) FarmerProfile {
	p.IsRegistered = v
	return p
}

func (p FarmerProfile) WithBankLoan(v bool) FarmerProfile {
	p.HasBankLoan = v
	return p
}

func (p FarmerProfile) WithCategory(c Category) FarmerProfile {
	p.Category = c
	return p
}

func (p FarmerProfile) WithGender(g Gender) FarmerProfile {
	p.Gender = g
	return p
}

func (p FarmerProfile) WithDistrict(d string) FarmerProfile {
	p.District = d
	return p
}

// ProfileUpdate is a partial edit; nil fields are left unchanged.
type ProfileUpdate struct {
	FarmerType    *FarmerType `json:"farmer_type,omitempty" yaml:"farmer_type,omitempty"`
	LandSize      *float64    `json:"land_size,omitempty" yaml:"land_size,omitempty"`
	IsFPOMember   *bool       `json:"is_fpo_member,omitempty" yaml:"is_fpo_member,omitempty"`
	IsInCluster   *bool       `json:"is_in_cluster,omitempty" yaml:"is_in_cluster,omitempty"`
	HasRiceFallow *bool       `json:"has_rice_fallow,omitempty" yaml:"has_rice_fallow,omitempty"`
	IsRegistered  *bool       `json:"is_registered,omitempty" yaml:"is_registered,omitempty"`
	HasBankLoan   *bool       `json:"has_bank_loan,omitempty" yaml:"has_bank_loan,omitempty"`
	Category      *Category   `json:"category,omitempty" yaml:"category,omitempty"`
	Gender        *Gender     `json:"gender,omitempty" yaml:"gender,omitempty"`
	District      *string     `json:"district,omitempty" yaml:"district,omitempty"`
}

// Apply merges u into p and then normalizes land size against the resulting
// farmer type. The returned warning is nil when no correction was needed.
func Apply(p FarmerProfile, u ProfileUpdate) (FarmerProfile, *LandSizeWarning) {
	if u.FarmerType != nil {
		p = p.WithFarmerType(*u.FarmerType)
	}
	if u.LandSize != nil {
		p = p.WithLandSize(*u.LandSize)
	}
	if u.IsFPOMember != nil {
		p = p.WithFPOMember(*u.IsFPOMember)
	}
	if u.IsInCluster != nil {
		p = p.WithCluster(*u.IsInCluster)
	}
	if u.HasRiceFallow != nil {
		p = p.WithRiceFallow(*u.HasRiceFallow)
	}
	if u.IsRegistered != nil {
		p = p.WithRegistered(*u.IsRegistered)
	}
	if u.HasBankLoan != nil {
		p = p.WithBankLoan(*u.HasBankLoan)
	}
	if u.Category != nil {
		p = p.WithCategory(*u.Category)
	}
	if u.Gender != nil {
		p = p.WithGender(*u.Gender)
	}
	if u.District != nil {
		p = p.WithDistrict(*u.District)
	}
	return NormalizeLandSize(p)
}
