package cmd

import (
	"github.com/spf13/cobra"
)

func dealershipsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dealerships",
		Short: "List and inspect dealerships",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all dealerships",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := newClient().ListDealerships(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), ds)
			}
			return printDealershipTable(cmd.OutOrStdout(), ds)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a dealership by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newClient().GetDealership(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			return printDealershipDetail(cmd.OutOrStdout(), d)
		},
	})

	return cmd
}
