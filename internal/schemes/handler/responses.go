package handler

import (
	"kisan/internal/platform/i18n"
	"kisan/internal/schemes/models"
	"kisan/internal/schemes/service"
)

type SchemeResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	BasicDetails string   `json:"basic_details"`
	Benefits     []string `json:"benefits"`
	UseCase      string   `json:"use_case"`
	Eligibility  string   `json:"eligibility"`
	Tags         []string `json:"tags"`
	AnnualCash   int      `json:"annual_cash"`
}

type CatalogResponse struct {
	Lang    string           `json:"lang"`
	Schemes []SchemeResponse `json:"schemes"`
}

// WarningResponse reports a land size the server corrected.
type WarningResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Limit   float64 `json:"limit"`
	Clamped bool    `json:"clamped"`
}

type ResultResponse struct {
	SchemeID string `json:"scheme_id"`
	Name     string `json:"name"`
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
	Message  string `json:"message,omitempty"`
}

type EligibilityResponse struct {
	Lang             string               `json:"lang"`
	Profile          models.FarmerProfile `json:"profile"`
	Warning          *WarningResponse     `json:"warning,omitempty"`
	Verified         bool                 `json:"verified"`
	Results          []ResultResponse     `json:"results"`
	Eligible         []string             `json:"eligible"`
	CombinationTotal int                  `json:"combination_total"`
	Combinations     []models.Combination `json:"combinations"`
}

type CombinationsResponse struct {
	Lang         string               `json:"lang"`
	Total        int                  `json:"total"`
	Combinations []models.Combination `json:"combinations"`
}

func toSchemeResponse(sc models.Scheme) SchemeResponse {
	tags := make([]string, 0, len(models.AllTags))
	for _, t := range sc.Tags.Tags() {
		tags = append(tags, string(t))
	}
	benefits := sc.Content.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return SchemeResponse{
		ID:           string(sc.ID),
		Name:         sc.Content.Name,
		BasicDetails: sc.Content.BasicDetails,
		Benefits:     benefits,
		UseCase:      sc.Content.UseCase,
		Eligibility:  sc.Content.EligibilityText,
		Tags:         tags,
		AnnualCash:   sc.AnnualCash,
	}
}

func toCatalogResponse(lang i18n.Lang, list []models.Scheme) CatalogResponse {
	out := make([]SchemeResponse, 0, len(list))
	for _, sc := range list {
		out = append(out, toSchemeResponse(sc))
	}
	return CatalogResponse{Lang: string(lang), Schemes: out}
}

func toEligibilityResponse(res *service.ExploreResult) EligibilityResponse {
	names := make(map[models.SchemeID]string, len(res.Schemes))
	for _, sc := range res.Schemes {
		names[sc.ID] = sc.Content.Name
	}
	eligible := make([]string, 0, len(res.Eligible))
	for _, sc := range res.Eligible {
		eligible = append(eligible, string(sc.ID))
	}

	results := make([]ResultResponse, 0, len(res.Results))
	for _, r := range res.Results {
		results = append(results, ResultResponse{
			SchemeID: string(r.SchemeID),
			Name:     names[r.SchemeID],
			Eligible: r.Eligible,
			Reason:   string(r.Reason),
			Message:  r.Message,
		})
	}

	resp := EligibilityResponse{
		Lang:             string(res.Lang),
		Profile:          res.Profile,
		Verified:         res.Verified,
		Results:          results,
		Eligible:         eligible,
		CombinationTotal: res.CombinationTotal,
		Combinations:     nonNil(res.Combinations),
	}
	if w := res.Warning; w != nil {
		resp.Warning = &WarningResponse{
			Code:    string(w.Code),
			Message: res.WarningMessage,
			Limit:   w.Limit,
			Clamped: w.Clamped,
		}
	}
	return resp
}

func nonNil(combos []models.Combination) []models.Combination {
	if combos == nil {
		return []models.Combination{}
	}
	return combos
}
