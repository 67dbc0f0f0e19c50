package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/dealer-appraisal/api/openapi"
	"github.com/donaldgifford/dealer-appraisal/pkg/logger"
)

func openapiCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		Long:  "Print the OpenAPI 3.1 document for every registered route without\nconnecting to the database.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, api := newRouter(&routerDeps{log: logger.Discard()})
			return openapi.Write(cmd.OutOrStdout(), api, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (json, yaml)")
	return cmd
}
