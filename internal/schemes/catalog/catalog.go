// Package catalog builds the localized scheme catalog. Eligibility rules are
// compiled into the binary; descriptive text, reason messages and summary
// labels come from one embedded YAML bundle per language.
package catalog

import (
	"context"
	"embed"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"kisan/internal/platform/i18n"
	"kisan/internal/schemes/models"
	dErrors "kisan/pkg/domain-errors"
)

//go:embed content/*.yaml
var content embed.FS

// bundle is the on-disk shape of a language file.
type bundle struct {
	Lang        string                             `yaml:"lang"`
	Schemes     map[models.SchemeID]models.Content `yaml:"schemes"`
	Reasons     map[models.ReasonCode]string       `yaml:"reasons"`
	FarmerTypes map[models.FarmerType]string       `yaml:"farmer_types"`
	Warnings    map[models.WarningCode]string      `yaml:"warnings"`
	Combination models.SummaryText                 `yaml:"combination"`
}

// Catalog is the immutable scheme list for one language.
type Catalog struct {
	lang        i18n.Lang
	schemes     []models.Scheme
	index       map[models.SchemeID]int
	farmerTypes map[models.FarmerType]string
	warnings    map[models.WarningCode]string
	summary     models.SummaryText
}

// Load builds the catalog for lang from the embedded content.
func Load(lang i18n.Lang) (*Catalog, error) {
	data, err := content.ReadFile("content/" + string(lang) + ".yaml")
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnsupportedLang, fmt.Sprintf("no scheme content for language %q", lang))
	}
	return Parse(lang, data)
}

// Parse builds a catalog from a YAML bundle. Every scheme, reason, warning and
// label the rules can produce must be present.
func Parse(lang i18n.Lang, data []byte) (*Catalog, error) {
	var b bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeCatalogUnavailable, fmt.Sprintf("scheme content for %q is not valid YAML", lang))
	}
	if b.Lang != "" && b.Lang != string(lang) {
		return nil, dErrors.New(dErrors.CodeCatalogUnavailable, fmt.Sprintf("bundle declares language %q, expected %q", b.Lang, lang))
	}
	if err := b.check(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeCatalogUnavailable, fmt.Sprintf("scheme content for %q is incomplete: %v", lang, err))
	}

	c := &Catalog{
		lang:        lang,
		schemes:     make([]models.Scheme, 0, len(definitions)),
		index:       make(map[models.SchemeID]int, len(definitions)),
		farmerTypes: b.FarmerTypes,
		warnings:    b.Warnings,
		summary:     b.Combination,
	}
	for i, d := range definitions {
		c.schemes = append(c.schemes, models.Scheme{
			ID:         d.id,
			Content:    b.Schemes[d.id],
			Tags:       d.tags,
			AnnualCash: d.annualCash,
			Subsumes:   slices.Clone(d.subsumes),
			Check:      predicate(d, b.Reasons),
		})
		c.index[d.id] = i
	}
	return c, nil
}

func predicate(d definition, messages map[models.ReasonCode]string) models.Predicate {
	return func(p models.FarmerProfile) models.EligibilityResult {
		reason := d.firstFailure(p)
		if reason == "" {
			return models.EligibilityResult{SchemeID: d.id, Eligible: true}
		}
		return models.EligibilityResult{SchemeID: d.id, Reason: reason, Message: messages[reason]}
	}
}

func (b bundle) check() error {
	var missing []string
	for _, d := range definitions {
		if strings.TrimSpace(b.Schemes[d.id].Name) == "" {
			missing = append(missing, "schemes."+string(d.id))
		}
		for _, r := range d.rules {
			if b.Reasons[r.reason] == "" {
				missing = append(missing, "reasons."+string(r.reason))
			}
		}
	}
	for _, code := range []models.WarningCode{models.WarnNegative, models.WarnAboveMax, models.WarnBelowMin, models.WarnLandless} {
		if b.Warnings[code] == "" {
			missing = append(missing, "warnings."+string(code))
		}
	}
	for _, tag := range models.AllTags {
		if b.Combination.Labels[tag] == "" {
			missing = append(missing, "combination.labels."+string(tag))
		}
	}
	if !strings.Contains(b.Combination.Template, "{labels}") {
		missing = append(missing, "combination.template")
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		missing = slices.Compact(missing)
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *Catalog) Lang() i18n.Lang { return c.lang }

// Schemes returns the catalog in display order.
func (c *Catalog) Schemes() []models.Scheme {
	return slices.Clone(c.schemes)
}

func (c *Catalog) Scheme(id models.SchemeID) (models.Scheme, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Scheme{}, false
	}
	return c.schemes[i], true
}

// Lookup resolves ids to schemes in catalog order, dropping duplicates.
// Unknown ids fail with CodeNotFound.
func (c *Catalog) Lookup(ids []models.SchemeID) ([]models.Scheme, error) {
	positions := make([]int, 0, len(ids))
	for _, id := range ids {
		i, ok := c.index[id]
		if !ok {
			return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("scheme %q not found", id))
		}
		positions = append(positions, i)
	}
	slices.Sort(positions)
	positions = slices.Compact(positions)

	out := make([]models.Scheme, 0, len(positions))
	for _, i := range positions {
		out = append(out, c.schemes[i])
	}
	return out, nil
}

// Summary returns the combination summary strings.
func (c *Catalog) Summary() models.SummaryText { return c.summary }

func (c *Catalog) FarmerTypeLabel(t models.FarmerType) string {
	if l, ok := c.farmerTypes[t]; ok {
		return l
	}
	return string(t)
}

// WarningMessage renders a land-size warning. A nil warning renders as "".
func (c *Catalog) WarningMessage(w *models.LandSizeWarning) string {
	if w == nil {
		return ""
	}
	r := strings.NewReplacer(
		"{type}", c.FarmerTypeLabel(w.FarmerType),
		"{limit}", formatAcres(w.Limit),
		"{requested}", formatAcres(w.Requested),
	)
	return r.Replace(c.warnings[w.Code])
}

func formatAcres(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Registry holds one catalog per supported language.
type Registry struct {
	catalogs map[i18n.Lang]*Catalog
}

// LoadAll builds every supported language concurrently and fails if any
// bundle is missing or incomplete.
func LoadAll(ctx context.Context) (*Registry, error) {
	loaded := make([]*Catalog, len(i18n.Supported))
	g, _ := errgroup.WithContext(ctx)
	for i, lang := range i18n.Supported {
		g.Go(func() error {
			c, err := Load(lang)
			if err != nil {
				return err
			}
			loaded[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Registry{catalogs: make(map[i18n.Lang]*Catalog, len(loaded))}
	for _, c := range loaded {
		r.catalogs[c.lang] = c
	}
	return r, nil
}

// NewRegistry wraps already built catalogs.
func NewRegistry(catalogs ...*Catalog) *Registry {
	r := &Registry{catalogs: make(map[i18n.Lang]*Catalog, len(catalogs))}
	for _, c := range catalogs {
		r.catalogs[c.lang] = c
	}
	return r
}

// Get returns the catalog for lang or a CodeUnsupportedLang error.
func (r *Registry) Get(lang i18n.Lang) (*Catalog, error) {
	c, ok := r.catalogs[lang]
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnsupportedLang, fmt.Sprintf("no scheme catalog for language %q", lang))
	}
	return c, nil
}

// Languages lists the loaded languages in supported order.
func (r *Registry) Languages() []i18n.Lang {
	out := make([]i18n.Lang, 0, len(r.catalogs))
	for _, l := range i18n.Supported {
		if _, ok := r.catalogs[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
