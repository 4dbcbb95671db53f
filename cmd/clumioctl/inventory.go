package main

import (
	"github.com/MKhiriev/clumio-bot/models"
	"github.com/spf13/cobra"
)

func newInventoryCmd(current func() *app) *cobra.Command {
	var req models.RequestParams

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List protected assets",
		Long: `Fetch the Clumio inventory for the given asset type and print it as JSON.
For s3 the output is the same Slack message the bot answers with.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := current().services.InventoryService.GetInventory(cmd.Context(), req.InventoryRequest())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&req.Type, "type", "", "asset type (s3 or ec2)")
	cmd.Flags().StringVar(&req.AccountNativeID, "account-native-id", "", "AWS account to filter the s3 inventory by")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
