package main

import (
	"github.com/MKhiriev/clumio-bot/models"
	"github.com/spf13/cobra"
)

func newRestoreCmd(current func() *app) *cobra.Command {
	var req models.RestoreRequest
	var inventoryType string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Trigger a restore",
		Long:  `Forward a restore request to Clumio and print the upstream response.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Type = models.InventoryType(inventoryType)
			req.HasBucketID = cmd.Flags().Changed("bucket-id")

			result, err := current().services.RestoreService.Restore(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&inventoryType, "type", "", "asset type (s3 or ec2)")
	cmd.Flags().StringVar(&req.BucketName, "bucket-name", "", "bucket to restore")
	cmd.Flags().StringVar(&req.BucketID, "bucket-id", "", "numeric Clumio bucket id")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
