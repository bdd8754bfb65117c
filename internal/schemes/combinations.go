package schemes

import (
	"slices"

	"kisan/internal/schemes/models"
)

const (
	MinCombinationSize = 2
	MaxCombinationSize = 4

	// DefaultSampleSize is how many combinations a caller shows by default.
	DefaultSampleSize = 10
)

// GenerateCombinations enumerates every subset of eligible with 2, 3 and 4
// members. Subsets are grouped by size and, within a size, emitted in
// lexicographic index order. The result is not ranked.
func GenerateCombinations(eligible []models.Scheme, text models.SummaryText) []models.Combination {
	out := make([]models.Combination, 0, CombinationCount(len(eligible)))
	for size := MinCombinationSize; size <= MaxCombinationSize; size++ {
		if size > len(eligible) {
			break
		}
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		for {
			members := make([]models.Scheme, size)
			for i, j := range idx {
				members[i] = eligible[j]
			}
			out = append(out, Aggregate(members, text))
			if !nextIndexSet(idx, len(eligible)) {
				break
			}
		}
	}
	return out
}

// nextIndexSet advances idx to the next ascending k-subset of [0,n), the same
// order produced by k nested ascending loops. It reports false when idx was
// the last subset.
func nextIndexSet(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}

// Aggregate computes the benefit summary for one set of schemes. Cash from a
// scheme subsumed by another member is counted once, under the subsuming scheme.
func Aggregate(members []models.Scheme, text models.SummaryText) models.Combination {
	c := models.Combination{
		Schemes: make([]models.SchemeID, 0, len(members)),
		Names:   make([]string, 0, len(members)),
	}
	present := make(map[models.SchemeID]bool, len(members))
	for _, m := range members {
		present[m.ID] = true
	}

	subsumed := make(map[models.SchemeID]bool)
	for _, m := range members {
		for _, id := range m.Subsumes {
			if present[id] {
				subsumed[id] = true
			}
		}
	}

	var tags models.TagSet
	for _, m := range members {
		c.Schemes = append(c.Schemes, m.ID)
		c.Names = append(c.Names, m.Content.Name)
		c.TotalCash += m.AnnualCash
		if subsumed[m.ID] {
			c.TotalCash -= m.AnnualCash
		}
		tags = tags.Union(m.Tags)
	}

	c.HasInsurance = tags.Has(models.TagInsurance)
	c.HasLoan = tags.Has(models.TagLoan)
	c.HasSubsidy = tags.Has(models.TagSubsidy)
	c.HasTraining = tags.Has(models.TagTraining)
	c.Labels, c.Summary = text.Render(tags)
	return c
}

// CombinationCount returns C(n,2)+C(n,3)+C(n,4).
func CombinationCount(n int) int {
	total := 0
	for k := MinCombinationSize; k <= MaxCombinationSize; k++ {
		total += binomial(n, k)
	}
	return total
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}
	return r
}

// Sample returns the first n combinations in generation order. It is a
// display prefix, not the n most valuable combinations. n <= 0 selects
// DefaultSampleSize.
func Sample(combos []models.Combination, n int) []models.Combination {
	if n <= 0 {
		n = DefaultSampleSize
	}
	if n > len(combos) {
		n = len(combos)
	}
	return slices.Clone(combos[:n])
}
