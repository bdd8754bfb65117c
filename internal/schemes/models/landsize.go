package models

// Land-size bounds in acres.
const (
	MaxLandSize         = 1000.0
	MarginalMaxLandSize = 1.0
	SmallMaxLandSize    = 2.5
	LargeMinLandSize    = 2.5
)

// WarningCode identifies a land-size correction.
type WarningCode string

const (
	// WarnNegative: a negative size was raised to zero.
	WarnNegative WarningCode = "land_size_negative"
	// WarnAboveMax: size exceeded the type's ceiling and was lowered to it.
	WarnAboveMax WarningCode = "land_size_above_max"
	// WarnBelowMin: size is below the type's floor. The value is kept.
	WarnBelowMin WarningCode = "land_size_below_min"
	// WarnLandless: landless farmers always hold zero acres.
	WarnLandless WarningCode = "land_size_landless"
)

// LandSizeWarning describes the single correction applied by NormalizeLandSize.
type LandSizeWarning struct {
	Code       WarningCode `json:"code"`
	FarmerType FarmerType  `json:"farmer_type"`
	Requested  float64     `json:"requested"`
	Limit      float64     `json:"limit"`
	// Clamped reports whether LandSize was changed.
	Clamped bool `json:"clamped"`
}

// LandBounds returns the inclusive acreage range allowed for a farmer type.
// Unset types are bounded only by the generic input range.
func LandBounds(t FarmerType) (lo, hi float64) {
	switch t {
	case FarmerTypeMarginal:
		return 0, MarginalMaxLandSize
	case FarmerTypeSmall:
		return 0, SmallMaxLandSize
	case FarmerTypeLarge:
		return LargeMinLandSize, MaxLandSize
	case FarmerTypeLandless:
		return 0, 0
	default:
		return 0, MaxLandSize
	}
}

// NormalizeLandSize enforces the farmer-type bounds on LandSize. Values above
// the ceiling are clamped down; a large farmer below 2.5 acres only gets a
// warning and keeps the declared value. At most one warning is returned and
// the last applicable check wins.
func NormalizeLandSize(p FarmerProfile) (FarmerProfile, *LandSizeWarning) {
	var warning *LandSizeWarning
	requested := p.LandSize

	if p.LandSize < 0 {
		p.LandSize = 0
		warning = &LandSizeWarning{Code: WarnNegative, FarmerType: p.FarmerType, Requested: requested, Limit: 0, Clamped: true}
	}

	lo, hi := LandBounds(p.FarmerType)
	switch {
	case p.FarmerType == FarmerTypeLandless:
		if p.LandSize != 0 {
			p.LandSize = 0
			warning = &LandSizeWarning{Code: WarnLandless, FarmerType: p.FarmerType, Requested: requested, Limit: 0, Clamped: true}
		}
	case p.LandSize > hi:
		p.LandSize = hi
		warning = &LandSizeWarning{Code: WarnAboveMax, FarmerType: p.FarmerType, Requested: requested, Limit: hi, Clamped: true}
	case p.LandSize < lo:
		warning = &LandSizeWarning{Code: WarnBelowMin, FarmerType: p.FarmerType, Requested: requested, Limit: lo, Clamped: p.LandSize != requested}
	}

	return p, warning
}
