package models

import (
	"fmt"

	dErrors "kisan/pkg/domain-errors"
)

// SchemeID is the stable, language-independent key of a catalog entry.
type SchemeID string

const (
	SchemePMKisan           SchemeID = "pm_kisan"
	SchemeKALIA             SchemeID = "kalia"
	SchemePMFBY             SchemeID = "pmfby"
	SchemeSoilHealthCard    SchemeID = "soil_health_card"
	SchemeNMEOOilseeds      SchemeID = "nmeo_oilseeds"
	SchemeMKUY              SchemeID = "mkuy"
	SchemeAIF               SchemeID = "aif"
	SchemeTRFA              SchemeID = "trfa"
	SchemeFarmMechanization SchemeID = "farm_mechanization"
)

// ParseSchemeID validates an identifier supplied by a caller.
func ParseSchemeID(s string) (SchemeID, error) {
	switch id := SchemeID(s); id {
	case SchemePMKisan, SchemeKALIA, SchemePMFBY, SchemeSoilHealthCard, SchemeNMEOOilseeds,
		SchemeMKUY, SchemeAIF, SchemeTRFA, SchemeFarmMechanization:
		return id, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown scheme %q", s))
}

// Tag is a benefit category carried by a scheme.
type Tag string

const (
	TagCash      Tag = "cash"
	TagInsurance Tag = "insurance"
	TagLoan      Tag = "loan"
	TagSubsidy   Tag = "subsidy"
	TagTraining  Tag = "training"
)

// AllTags is the canonical label order used in summaries.
var AllTags = []Tag{TagCash, TagInsurance, TagLoan, TagSubsidy, TagTraining}

// TagSet is a small bitset over Tag.
type TagSet uint8

func NewTagSet(tags ...Tag) TagSet {
	var s TagSet
	for _, t := range tags {
		s = s.With(t)
	}
	return s
}

func (s TagSet) With(t Tag) TagSet {
	for i, known := range AllTags {
		if known == t {
			return s | 1<<i
		}
	}
	return s
}

func (s TagSet) Has(t Tag) bool {
	for i, known := range AllTags {
		if known == t {
			return s&(1<<i) != 0
		}
	}
	return false
}

func (s TagSet) Union(o TagSet) TagSet { return s | o }

// Tags lists the members in canonical order.
func (s TagSet) Tags() []Tag {
	out := make([]Tag, 0, len(AllTags))
	for i, t := range AllTags {
		if s&(1<<i) != 0 {
			out = append(out, t)
		}
	}
	return out
}

// Content is the localized descriptive text of a scheme. It never influences
// eligibility or combination logic.
type Content struct {
	Name            string   `json:"name" yaml:"name"`
	BasicDetails    string   `json:"basic_details" yaml:"basic_details"`
	Benefits        []string `json:"benefits" yaml:"benefits"`
	UseCase         string   `json:"use_case" yaml:"use_case"`
	EligibilityText string   `json:"eligibility" yaml:"eligibility"`
}

// ReasonCode identifies the first failing condition of a predicate.
type ReasonCode string

const (
	ReasonNoCultivableLand ReasonCode = "no_cultivable_land"
	ReasonNotRegistered    ReasonCode = "not_registered"
	ReasonLargeFarmer      ReasonCode = "large_farmer"
	ReasonNotInCluster     ReasonCode = "not_in_cluster"
	ReasonNotFPOMember     ReasonCode = "not_fpo_member"
	ReasonNoBankLoan       ReasonCode = "no_bank_loan"
	ReasonNoRiceFallow     ReasonCode = "no_rice_fallow"
)

// EligibilityResult is the outcome of one scheme predicate. Reason and Message
// are empty when Eligible is true.
type EligibilityResult struct {
	SchemeID SchemeID   `json:"scheme_id"`
	Eligible bool       `json:"eligible"`
	Reason   ReasonCode `json:"reason,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// Predicate is a pure eligibility check.
type Predicate func(FarmerProfile) EligibilityResult

// Scheme is an immutable catalog entry.
type Scheme struct {
	ID      SchemeID `json:"id"`
	Content Content  `json:"content"`
	Tags    TagSet   `json:"-"`
	// AnnualCash is the fixed yearly cash transfer in rupees, 0 for non-cash schemes.
	AnnualCash int `json:"annual_cash"`
	// Subsumes lists schemes whose cash this scheme already includes.
	Subsumes []SchemeID `json:"subsumes,omitempty"`
	Check    Predicate  `json:"-"`
}
