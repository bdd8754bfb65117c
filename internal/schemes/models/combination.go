package models

import "strings"

// Combination is a derived set of 2 to 4 eligible schemes that can be
// claimed together, with aggregated benefits.
type Combination struct {
	Schemes      []SchemeID `json:"schemes"`
	Names        []string   `json:"names"`
	TotalCash    int        `json:"total_cash"`
	HasInsurance bool       `json:"has_insurance"`
	HasLoan      bool       `json:"has_loan"`
	HasSubsidy   bool       `json:"has_subsidy"`
	HasTraining  bool       `json:"has_training"`
	Labels       []string   `json:"labels"`
	Summary      string     `json:"summary"`
}

// Size returns the number of schemes in the combination.
func (c Combination) Size() int { return len(c.Schemes) }

// SummaryText holds the localized strings used to describe a combination.
// Template contains a "{labels}" placeholder.
type SummaryText struct {
	Labels    map[Tag]string `yaml:"labels"`
	Separator string         `yaml:"separator"`
	Template  string         `yaml:"template"`
	Empty     string         `yaml:"empty"`
}

// Render returns the labels for tags in canonical order and the summary sentence.
func (t SummaryText) Render(tags TagSet) ([]string, string) {
	labels := make([]string, 0, len(AllTags))
	for _, tag := range tags.Tags() {
		if l, ok := t.Labels[tag]; ok && l != "" {
			labels = append(labels, l)
		}
	}
	if len(labels) == 0 {
		return labels, t.Empty
	}
	return labels, strings.ReplaceAll(t.Template, "{labels}", strings.Join(labels, t.Separator))
}
