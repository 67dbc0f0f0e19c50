package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/dealer-appraisal/internal/api/client"
	"github.com/donaldgifford/dealer-appraisal/internal/api/handlers"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

func vehiclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "Browse and import dealership inventory",
	}

	cmd.AddCommand(vehiclesListCmd())
	cmd.AddCommand(vehicleLookupCmd("get", "Get a vehicle by ID", (*apiclient.Client).GetVehicle))
	cmd.AddCommand(vehicleLookupCmd("vin", "Get a vehicle by VIN", (*apiclient.Client).GetVehicleByVIN))
	cmd.AddCommand(vehicleLookupCmd("stock", "Get a vehicle by stock number", (*apiclient.Client).GetVehicleByStockNumber))
	cmd.AddCommand(vehiclesImportCmd())
	cmd.AddCommand(vehiclesDeleteCmd())

	return cmd
}

func vehiclesListCmd() *cobra.Command {
	var f apiclient.VehicleFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory vehicles",
		Example: `  # Available Camrys from 2019 on
  dap vehicles list --make Toyota --model Camry --min-year 2019 --status available

  # Cheapest first across one dealership
  dap vehicles list --dealership 6f1c... --order-by price`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := newClient().ListVehicles(cmd.Context(), &f)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), page)
			}
			if err := printVehicleTable(cmd.OutOrStdout(), page.Vehicles); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d (offset %d)\n",
				len(page.Vehicles), page.Total, page.Offset)
			return err
		},
	}

	cmd.Flags().StringVar(&f.DealershipID, "dealership", "", "filter by dealership ID")
	cmd.Flags().StringVar(&f.Make, "make", "", "filter by make")
	cmd.Flags().StringVar(&f.Model, "model", "", "filter by model")
	cmd.Flags().StringVar(&f.Status, "status", "", "filter by status (available, pending, sold)")
	cmd.Flags().IntVar(&f.MinYear, "min-year", 0, "minimum model year")
	cmd.Flags().IntVar(&f.MaxYear, "max-year", 0, "maximum model year")
	cmd.Flags().StringVarP(&f.Search, "query", "q", "", "free-text search over make, model, trim and VIN")
	cmd.Flags().IntVar(&f.Limit, "limit", 50, "page size")
	cmd.Flags().IntVar(&f.Offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&f.OrderBy, "order-by", "", "sort order (price, year, kilometers, created_at)")

	return cmd
}

type vehicleLookup func(c *apiclient.Client, ctx context.Context, key string) (*domain.Vehicle, error)

func vehicleLookupCmd(use, short string, lookup vehicleLookup) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <" + use + ">",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := lookup(newClient(), cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), v)
			}
			return printVehicleDetail(cmd.OutOrStdout(), v)
		},
	}
}

func vehiclesImportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk import vehicles from a JSON array",
		Long: "Import vehicles from a JSON array of vehicle bodies. Each row is\n" +
			"validated and inserted on its own; failed rows are reported by index.",
		Example: `  dap vehicles import -f inventory.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file) //nolint:gosec // path supplied by the operator
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}

			var rows []handlers.VehicleBody
			if err := json.Unmarshal(data, &rows); err != nil {
				return fmt.Errorf("decoding import file: %w", err)
			}

			res, err := newClient().ImportVehicles(cmd.Context(), rows)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printImportResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file containing an array of vehicles")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func vehiclesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteVehicle(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Vehicle %s deleted.\n", args[0])
			return err
		},
	}
}
