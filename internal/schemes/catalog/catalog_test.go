package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"kisan/internal/platform/i18n"
	"kisan/internal/schemes/models"
	dErrors "kisan/pkg/domain-errors"
)

type CatalogSuite struct {
	suite.Suite
	en *Catalog
	or *Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) SetupSuite() {
	reg, err := LoadAll(context.Background())
	s.Require().NoError(err)
	s.en, err = reg.Get(i18n.English)
	s.Require().NoError(err)
	s.or, err = reg.Get(i18n.Odia)
	s.Require().NoError(err)
}

func (s *CatalogSuite) profile() models.FarmerProfile {
	return models.NewProfile()
}

func (s *CatalogSuite) check(id models.SchemeID, p models.FarmerProfile) models.EligibilityResult {
	sc, ok := s.en.Scheme(id)
	s.Require().True(ok, "scheme %s missing", id)
	return sc.Check(p)
}

func (s *CatalogSuite) TestBundlesAreParallel() {
	enSchemes, orSchemes := s.en.Schemes(), s.or.Schemes()
	s.Require().Len(enSchemes, 9)
	s.Require().Len(orSchemes, len(enSchemes))
	for i := range enSchemes {
		s.Equal(enSchemes[i].ID, orSchemes[i].ID)
		s.Equal(enSchemes[i].Tags, orSchemes[i].Tags)
		s.NotEqual(enSchemes[i].Content.Name, orSchemes[i].Content.Name, "%s has no translation", enSchemes[i].ID)
		s.NotEmpty(enSchemes[i].Content.Benefits)
	}
}

func (s *CatalogSuite) TestOpenEnrollmentSchemes() {
	for _, id := range []models.SchemeID{models.SchemePMFBY, models.SchemeSoilHealthCard} {
		for _, ft := range append([]models.FarmerType{models.FarmerTypeUnset}, models.FarmerTypes...) {
			res := s.check(id, s.profile().WithFarmerType(ft))
			s.True(res.Eligible, "%s should accept %q", id, ft)
			s.Empty(res.Reason)
		}
	}
}

func (s *CatalogSuite) TestFirstFailingRuleIsReported() {
	cases := []struct {
		name    string
		id      models.SchemeID
		profile models.FarmerProfile
		reason  models.ReasonCode
	}{
		{"pm-kisan landless before registration", models.SchemePMKisan, s.profile().WithFarmerType(models.FarmerTypeLandless), models.ReasonNoCultivableLand},
		{"pm-kisan unregistered", models.SchemePMKisan, s.profile().WithFarmerType(models.FarmerTypeSmall), models.ReasonNotRegistered},
		{"kalia large before registration", models.SchemeKALIA, s.profile().WithFarmerType(models.FarmerTypeLarge), models.ReasonLargeFarmer},
		{"kalia unregistered", models.SchemeKALIA, s.profile().WithFarmerType(models.FarmerTypeLandless), models.ReasonNotRegistered},
		{"nmeo cluster before fpo", models.SchemeNMEOOilseeds, s.profile(), models.ReasonNotInCluster},
		{"nmeo fpo", models.SchemeNMEOOilseeds, s.profile().WithCluster(true), models.ReasonNotFPOMember},
		{"mkuy registration before loan", models.SchemeMKUY, s.profile(), models.ReasonNotRegistered},
		{"mkuy loan", models.SchemeMKUY, s.profile().WithRegistered(true), models.ReasonNoBankLoan},
		{"aif fpo before loan", models.SchemeAIF, s.profile(), models.ReasonNotFPOMember},
		{"aif loan", models.SchemeAIF, s.profile().WithFPOMember(true), models.ReasonNoBankLoan},
		{"trfa fallow before registration", models.SchemeTRFA, s.profile(), models.ReasonNoRiceFallow},
		{"trfa registration", models.SchemeTRFA, s.profile().WithRiceFallow(true), models.ReasonNotRegistered},
		{"mechanization landless", models.SchemeFarmMechanization, s.profile().WithFarmerType(models.FarmerTypeLandless), models.ReasonNoCultivableLand},
		{"mechanization unregistered", models.SchemeFarmMechanization, s.profile(), models.ReasonNotRegistered},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			res := s.check(tc.id, tc.profile)
			s.False(res.Eligible)
			s.Equal(tc.reason, res.Reason)
			s.NotEmpty(res.Message)
			s.Equal(tc.id, res.SchemeID)
		})
	}
}

func (s *CatalogSuite) TestFlippingTheUnmetFlagGrantsEligibility() {
	cases := []struct {
		id     models.SchemeID
		before models.FarmerProfile
		after  models.FarmerProfile
	}{
		{models.SchemePMKisan, s.profile(), s.profile().WithRegistered(true)},
		{models.SchemeKALIA, s.profile().WithFarmerType(models.FarmerTypeSmall), s.profile().WithFarmerType(models.FarmerTypeSmall).WithRegistered(true)},
		{models.SchemeNMEOOilseeds, s.profile().WithFPOMember(true), s.profile().WithFPOMember(true).WithCluster(true)},
		{models.SchemeNMEOOilseeds, s.profile().WithCluster(true), s.profile().WithCluster(true).WithFPOMember(true)},
		{models.SchemeMKUY, s.profile().WithBankLoan(true), s.profile().WithBankLoan(true).WithRegistered(true)},
		{models.SchemeMKUY, s.profile().WithRegistered(true), s.profile().WithRegistered(true).WithBankLoan(true)},
		{models.SchemeAIF, s.profile().WithBankLoan(true), s.profile().WithBankLoan(true).WithFPOMember(true)},
		{models.SchemeAIF, s.profile().WithFPOMember(true), s.profile().WithFPOMember(true).WithBankLoan(true)},
		{models.SchemeTRFA, s.profile().WithRegistered(true), s.profile().WithRegistered(true).WithRiceFallow(true)},
		{models.SchemeTRFA, s.profile().WithRiceFallow(true), s.profile().WithRiceFallow(true).WithRegistered(true)},
		{models.SchemeFarmMechanization, s.profile(), s.profile().WithRegistered(true)},
	}
	for _, tc := range cases {
		s.False(s.check(tc.id, tc.before).Eligible, "%s before flip", tc.id)
		s.True(s.check(tc.id, tc.after).Eligible, "%s after flip", tc.id)
	}
}

func (s *CatalogSuite) TestRiceFallowMessageIsLocalized() {
	en, _ := s.en.Scheme(models.SchemeTRFA)
	or, _ := s.or.Scheme(models.SchemeTRFA)

	s.Equal("must have rice-fallow land after Kharif harvest", en.Check(s.profile()).Message)
	orRes := or.Check(s.profile())
	s.Equal(models.ReasonNoRiceFallow, orRes.Reason)
	s.NotEqual(en.Check(s.profile()).Message, orRes.Message)
}

func (s *CatalogSuite) TestRulesIgnoreDemographics() {
	base := s.profile().WithFarmerType(models.FarmerTypeSmall).WithRegistered(true)
	variant := base.WithCategory(models.CategoryST).WithGender(models.GenderFemale).WithDistrict("Koraput")
	for _, sc := range s.en.Schemes() {
		s.Equal(sc.Check(base), sc.Check(variant), "%s must not read district, gender or category", sc.ID)
	}
}

func (s *CatalogSuite) TestCategoryTags() {
	want := map[models.SchemeID][]models.Tag{
		models.SchemePMKisan:           {models.TagCash},
		models.SchemeKALIA:             {models.TagCash, models.TagInsurance, models.TagLoan},
		models.SchemePMFBY:             {models.TagInsurance},
		models.SchemeSoilHealthCard:    nil,
		models.SchemeNMEOOilseeds:      {models.TagTraining},
		models.SchemeMKUY:              {models.TagSubsidy},
		models.SchemeAIF:               nil,
		models.SchemeTRFA:              {models.TagTraining},
		models.SchemeFarmMechanization: nil,
	}
	for _, sc := range s.en.Schemes() {
		s.ElementsMatch(want[sc.ID], sc.Tags.Tags(), "tags of %s", sc.ID)
	}
}

func (s *CatalogSuite) TestCashAndSubsumption() {
	pmKisan, _ := s.en.Scheme(models.SchemePMKisan)
	kalia, _ := s.en.Scheme(models.SchemeKALIA)
	s.Equal(6000, pmKisan.AnnualCash)
	s.Equal(10000, kalia.AnnualCash)
	s.Equal([]models.SchemeID{models.SchemePMKisan}, kalia.Subsumes)
}

func (s *CatalogSuite) TestLookup() {
	s.Run("returns catalog order without duplicates", func() {
		got, err := s.en.Lookup([]models.SchemeID{models.SchemeTRFA, models.SchemePMKisan, models.SchemeTRFA})
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal(models.SchemePMKisan, got[0].ID)
		s.Equal(models.SchemeTRFA, got[1].ID)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.en.Lookup([]models.SchemeID{"pm_awas"})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *CatalogSuite) TestWarningMessage() {
	s.Empty(s.en.WarningMessage(nil))

	msg := s.en.WarningMessage(&models.LandSizeWarning{
		Code:       models.WarnAboveMax,
		FarmerType: models.FarmerTypeSmall,
		Requested:  4,
		Limit:      2.5,
		Clamped:    true,
	})
	s.Equal("Small farmers can hold at most 2.5 acres. Land size has been set to 2.5 acres.", msg)

	msg = s.or.WarningMessage(&models.LandSizeWarning{Code: models.WarnBelowMin, FarmerType: models.FarmerTypeLarge, Requested: 1.5, Limit: 2.5})
	s.Contains(msg, "ବଡ଼")
	s.Contains(msg, "1.5")
}

func (s *CatalogSuite) TestParseRejectsIncompleteBundles() {
	s.Run("invalid yaml", func() {
		_, err := Parse(i18n.English, []byte("schemes: [unterminated"))
		s.True(dErrors.HasCode(err, dErrors.CodeCatalogUnavailable))
	})

	s.Run("missing content", func() {
		_, err := Parse(i18n.English, []byte("lang: en\nschemes:\n  pm_kisan:\n    name: PM-KISAN\n"))
		s.True(dErrors.HasCode(err, dErrors.CodeCatalogUnavailable))
		s.Contains(err.Error(), "schemes.kalia")
	})

	s.Run("language mismatch", func() {
		_, err := Parse(i18n.Odia, []byte("lang: en\n"))
		s.True(dErrors.HasCode(err, dErrors.CodeCatalogUnavailable))
	})
}

func (s *CatalogSuite) TestRegistry() {
	reg := NewRegistry(s.en)
	s.Equal([]i18n.Lang{i18n.English}, reg.Languages())

	_, err := reg.Get(i18n.Odia)
	s.True(dErrors.HasCode(err, dErrors.CodeUnsupportedLang))
}
