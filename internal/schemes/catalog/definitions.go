package catalog

import "kisan/internal/schemes/models"

// rule is one condition of an eligibility predicate.
type rule struct {
	reason models.ReasonCode
	holds  func(models.FarmerProfile) bool
}

// definition is the language-independent part of a scheme.
type definition struct {
	id         models.SchemeID
	tags       models.TagSet
	annualCash int
	subsumes   []models.SchemeID
	// rules are checked in order; the first that does not hold is reported.
	rules []rule
}

func ownsLand(p models.FarmerProfile) bool { return p.FarmerType != models.FarmerTypeLandless }
func notLarge(p models.FarmerProfile) bool { return p.FarmerType != models.FarmerTypeLarge }
func registered(p models.FarmerProfile) bool { return p.IsRegistered }
func inCluster(p models.FarmerProfile) bool { return p.IsInCluster }
func fpoMember(p models.FarmerProfile) bool { return p.IsFPOMember }
func bankLoan(p models.FarmerProfile) bool { return p.HasBankLoan }
func riceFallow(p models.FarmerProfile) bool { return p.HasRiceFallow }

// definitions is the scheme catalog in display order.
var definitions = []definition{
	{
		id:         models.SchemePMKisan,
		tags:       models.NewTagSet(models.TagCash),
		annualCash: 6000,
		rules: []rule{
			{models.ReasonNoCultivableLand, ownsLand},
			{models.ReasonNotRegistered, registered},
		},
	},
	{
		id:         models.SchemeKALIA,
		tags:       models.NewTagSet(models.TagCash, models.TagInsurance, models.TagLoan),
		annualCash: 10000,
		subsumes:   []models.SchemeID{models.SchemePMKisan},
		rules: []rule{
			{models.ReasonLargeFarmer, notLarge},
			{models.ReasonNotRegistered, registered},
		},
	},
	{
		id:   models.SchemePMFBY,
		tags: models.NewTagSet(models.TagInsurance),
	},
	{
		id: models.SchemeSoilHealthCard,
	},
	{
		id:   models.SchemeNMEOOilseeds,
		tags: models.NewTagSet(models.TagTraining),
		rules: []rule{
			{models.ReasonNotInCluster, inCluster},
			{models.ReasonNotFPOMember, fpoMember},
		},
	},
	{
		id:   models.SchemeMKUY,
		tags: models.NewTagSet(models.TagSubsidy),
		rules: []rule{
			{models.ReasonNotRegistered, registered},
			{models.ReasonNoBankLoan, bankLoan},
		},
	},
	{
		// AIF and farm mechanization contribute no benefit category.
		id: models.SchemeAIF,
		rules: []rule{
			{models.ReasonNotFPOMember, fpoMember},
			{models.ReasonNoBankLoan, bankLoan},
		},
	},
	{
		id:   models.SchemeTRFA,
		tags: models.NewTagSet(models.TagTraining),
		rules: []rule{
			{models.ReasonNoRiceFallow, riceFallow},
			{models.ReasonNotRegistered, registered},
		},
	},
	{
		id: models.SchemeFarmMechanization,
		rules: []rule{
			{models.ReasonNoCultivableLand, ownsLand},
			{models.ReasonNotRegistered, registered},
		},
	},
}

// firstFailure returns the reason of the first rule p does not satisfy, or ""
// when every rule holds.
func (d definition) firstFailure(p models.FarmerProfile) models.ReasonCode {
	for _, r := range d.rules {
		if !r.holds(p) {
			return r.reason
		}
	}
	return ""
}
