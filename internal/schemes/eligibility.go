// Package schemes holds the pure eligibility and combination engine. Nothing in
// this package performs I/O or keeps state between calls.
package schemes

import "kisan/internal/schemes/models"

// Evaluate runs a single scheme predicate. A scheme without a predicate is
// open to every profile.
func Evaluate(scheme models.Scheme, profile models.FarmerProfile) models.EligibilityResult {
	if scheme.Check == nil {
		return models.EligibilityResult{SchemeID: scheme.ID, Eligible: true}
	}
	res := scheme.Check(profile)
	res.SchemeID = scheme.ID
	return res
}

// EvaluateAll evaluates every scheme in the given order.
func EvaluateAll(catalog []models.Scheme, profile models.FarmerProfile) []models.EligibilityResult {
	out := make([]models.EligibilityResult, 0, len(catalog))
	for _, sc := range catalog {
		out = append(out, Evaluate(sc, profile))
	}
	return out
}

// Eligible returns the schemes profile qualifies for, preserving catalog order.
func Eligible(catalog []models.Scheme, profile models.FarmerProfile) []models.Scheme {
	out := make([]models.Scheme, 0, len(catalog))
	for _, sc := range catalog {
		if Evaluate(sc, profile).Eligible {
			out = append(out, sc)
		}
	}
	return out
}
