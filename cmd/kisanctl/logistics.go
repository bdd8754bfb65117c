package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"kisan/internal/logistics"
	"kisan/internal/logistics/models"
	"kisan/internal/logistics/service"
	"kisan/internal/logistics/store"
)

type logisticsOptions struct {
	catalogPath string
	lat, lon    float64
	radiusKm    float64
}

func newLogisticsCmd(root *rootOptions) *cobra.Command {
	opts := &logisticsOptions{}
	cmd := &cobra.Command{
		Use:   "logistics",
		Short: "Processor catalog and profit projections",
	}
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML processor catalog (default: embedded Odisha catalog)")
	cmd.PersistentFlags().Float64Var(&opts.lat, "lat", service.DefaultReference.Lat, "Reference latitude")
	cmd.PersistentFlags().Float64Var(&opts.lon, "lon", service.DefaultReference.Lon, "Reference longitude")
	cmd.PersistentFlags().Float64Var(&opts.radiusKm, "radius", logistics.DefaultRadiusKm, "Sourcing radius in km")

	cmd.AddCommand(newLogisticsRankCmd(root, opts))
	cmd.AddCommand(newLogisticsProjectCmd(root, opts))
	return cmd
}

func (o *logisticsOptions) reference() (*models.Coordinate, error) {
	ref := models.Coordinate{Lat: o.lat, Lon: o.lon}
	if !ref.Valid() {
		return nil, fmt.Errorf("reference %v is out of range", ref)
	}
	return &ref, nil
}

func (o *logisticsOptions) service(cmd *cobra.Command, root *rootOptions) (*service.Service, error) {
	var (
		st  *store.InMemoryStore
		err error
	)
	if o.catalogPath != "" {
		st, err = store.NewFromFile(o.catalogPath)
	} else {
		st, err = store.NewDefault()
	}
	if err != nil {
		return nil, err
	}
	return service.New(st,
		service.WithCalculator(logistics.NewCalculator(logistics.WithRadius(o.radiusKm))),
		service.WithLogger(root.logger(cmd)),
	), nil
}

func newLogisticsRankCmd(root *rootOptions, opts *logisticsOptions) *cobra.Command {
	var (
		crop     string
		quantity float64
		vehicle  string
	)
	cmd := &cobra.Command{
		Use:     "rank",
		Short:   "Rank processors in range by projected profit",
		Example: `  kisanctl logistics rank --crop groundnut --quantity 100 --vehicle small`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := models.ParseVehicle(vehicle)
			if err != nil {
				return err
			}
			ref, err := opts.reference()
			if err != nil {
				return err
			}
			svc, err := opts.service(cmd, root)
			if err != nil {
				return err
			}
			ranked, err := svc.Rank(cmd.Context(), service.RankRequest{
				Crop:      crop,
				Quantity:  quantity,
				Vehicle:   v,
				Reference: ref,
			})
			if err != nil {
				return err
			}
			if root.asJSON {
				return writeJSON(cmd.OutOrStdout(), ranked)
			}
			if len(ranked) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no processors handle %s within %.0f km\n", crop, opts.radiusKm)
				return nil
			}
			return printProjections(cmd, ranked)
		},
	}
	cmd.Flags().StringVar(&crop, "crop", "", "Crop to source")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "Quantity in quintals")
	cmd.Flags().StringVar(&vehicle, "vehicle", "truck", "Vehicle: truck or small")
	_ = cmd.MarkFlagRequired("crop")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}

func newLogisticsProjectCmd(root *rootOptions, opts *logisticsOptions) *cobra.Command {
	var (
		processorID string
		crop        string
		quantity    float64
		vehicle     string
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project sourcing a crop from one processor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := models.ParseVehicle(vehicle)
			if err != nil {
				return err
			}
			ref, err := opts.reference()
			if err != nil {
				return err
			}
			svc, err := opts.service(cmd, root)
			if err != nil {
				return err
			}
			proj, err := svc.ProjectByID(cmd.Context(), service.ProjectRequest{
				ProcessorID: processorID,
				Crop:        crop,
				Quantity:    quantity,
				Vehicle:     v,
				Reference:   ref,
			})
			if err != nil {
				return err
			}
			if root.asJSON {
				return writeJSON(cmd.OutOrStdout(), proj)
			}
			return printProjections(cmd, []models.Projection{*proj})
		},
	}
	cmd.Flags().StringVar(&processorID, "processor", "", "Processor id")
	cmd.Flags().StringVar(&crop, "crop", "", "Crop to source")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "Quantity in quintals")
	cmd.Flags().StringVar(&vehicle, "vehicle", "truck", "Vehicle: truck or small")
	_ = cmd.MarkFlagRequired("processor")
	_ = cmd.MarkFlagRequired("crop")
	return cmd
}

func printProjections(cmd *cobra.Command, projections []models.Projection) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PROCESSOR\tKM\tBUY\tSELL\tLOGISTICS\tREVENUE\tPROFIT\tMARGIN %\tDAYS\t")
	for _, p := range projections {
		profit := fmt.Sprintf("%d", p.Profit)
		if p.Unprofitable {
			profit += "*"
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%d\t%d\t%d\t%d\t%s\t%.2f\t%d\t\n",
			p.ProcessorID, p.DistanceKm, p.PurchasePrice, p.SellingPrice,
			p.LogisticsCost, p.Revenue, profit, p.ProfitMargin, p.EstimatedDeliveryDays)
	}
	return tw.Flush()
}
