package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"kisan/internal/platform/i18n"
	"kisan/internal/schemes/catalog"
	"kisan/internal/schemes/models"
	"kisan/internal/schemes/service"
)

// profileFile is the YAML shape accepted by --profile. Absent keys keep
// their defaults.
type profileFile struct {
	FarmerType    string   `yaml:"farmer_type"`
	LandSize      *float64 `yaml:"land_size"`
	IsFPOMember   *bool    `yaml:"is_fpo_member"`
	IsInCluster   *bool    `yaml:"is_in_cluster"`
	HasRiceFallow *bool    `yaml:"has_rice_fallow"`
	IsRegistered  *bool    `yaml:"is_registered"`
	HasBankLoan   *bool    `yaml:"has_bank_loan"`
	Category      string   `yaml:"category"`
	Gender        string   `yaml:"gender"`
	District      string   `yaml:"district"`
}

func (f profileFile) update() (models.ProfileUpdate, error) {
	u := models.ProfileUpdate{
		LandSize:      f.LandSize,
		IsFPOMember:   f.IsFPOMember,
		IsInCluster:   f.IsInCluster,
		HasRiceFallow: f.HasRiceFallow,
		IsRegistered:  f.IsRegistered,
		HasBankLoan:   f.HasBankLoan,
	}
	if f.FarmerType != "" {
		t, err := models.ParseFarmerType(f.FarmerType)
		if err != nil {
			return u, err
		}
		u.FarmerType = &t
	}
	if f.Category != "" {
		c, err := models.ParseCategory(f.Category)
		if err != nil {
			return u, err
		}
		u.Category = &c
	}
	if f.Gender != "" {
		g, err := models.ParseGender(f.Gender)
		if err != nil {
			return u, err
		}
		u.Gender = &g
	}
	if d := strings.TrimSpace(f.District); d != "" {
		u.District = &d
	}
	return u, nil
}

func readProfile(path string) (models.ProfileUpdate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ProfileUpdate{}, fmt.Errorf("read profile: %w", err)
	}
	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return models.ProfileUpdate{}, fmt.Errorf("decode profile %s: %w", path, err)
	}
	return f.update()
}

func newSchemesCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "Scheme catalog and eligibility",
	}
	cmd.AddCommand(newSchemesListCmd(root))
	cmd.AddCommand(newSchemesEligibilityCmd(root))
	return cmd
}

func newSchemesListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every scheme with its benefit tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, lang, err := schemesService(cmd, root, 0)
			if err != nil {
				return err
			}
			list, err := svc.Catalog(cmd.Context(), lang)
			if err != nil {
				return err
			}
			if root.asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTAGS\tANNUAL CASH")
			for _, sc := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", sc.ID, sc.Content.Name, joinTags(sc.Tags), sc.AnnualCash)
			}
			return tw.Flush()
		},
	}
}

func newSchemesEligibilityCmd(root *rootOptions) *cobra.Command {
	var (
		profilePath string
		sample      int
	)
	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Evaluate a farmer profile against every scheme",
		Example: `  kisanctl schemes eligibility --profile farmer.yaml
  kisanctl schemes eligibility --profile farmer.yaml --lang or --sample 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update, err := readProfile(profilePath)
			if err != nil {
				return err
			}
			svc, lang, err := schemesService(cmd, root, sample)
			if err != nil {
				return err
			}
			res, err := svc.Explore(cmd.Context(), service.ExploreRequest{
				Lang:   lang,
				Base:   models.NewProfile(),
				Update: update,
			})
			if err != nil {
				return err
			}
			if root.asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return printExplore(cmd, res)
		},
	}
	cmd.Flags().StringVar(&profilePath, "profile", "", "Path to a YAML farmer profile")
	cmd.Flags().IntVar(&sample, "sample", 0, "Combinations to print (default 10)")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func schemesService(cmd *cobra.Command, root *rootOptions, sample int) (*service.Service, i18n.Lang, error) {
	lang, err := i18n.Parse(root.lang)
	if err != nil {
		return nil, "", err
	}
	c, err := catalog.Load(lang)
	if err != nil {
		return nil, "", err
	}
	svc := service.New(catalog.NewRegistry(c),
		service.WithLogger(root.logger(cmd)),
		service.WithSampleSize(sample),
	)
	return svc, lang, nil
}

func printExplore(cmd *cobra.Command, res *service.ExploreResult) error {
	out := cmd.OutOrStdout()
	if res.WarningMessage != "" {
		fmt.Fprintf(out, "warning: %s\n\n", res.WarningMessage)
	}

	names := make(map[models.SchemeID]string, len(res.Schemes))
	for _, sc := range res.Schemes {
		names[sc.ID] = sc.Content.Name
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCHEME\tELIGIBLE\tREASON")
	for _, r := range res.Results {
		fmt.Fprintf(tw, "%s\t%t\t%s\n", names[r.SchemeID], r.Eligible, r.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d combinations; showing %d\n", res.CombinationTotal, len(res.Combinations))
	for i, c := range res.Combinations {
		fmt.Fprintf(out, "%2d. %s (Rs %d/yr) %s\n", i+1, strings.Join(c.Names, " + "), c.TotalCash, c.Summary)
	}
	return nil
}

func joinTags(s models.TagSet) string {
	tags := s.Tags()
	if len(tags) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ",")
}
