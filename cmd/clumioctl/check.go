package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check Clumio credentials and the audit store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health := current().services.HealthService
			out := cmd.OutOrStdout()

			if err := health.CheckUpstream(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, "clumio api: ok")

			if err := health.CheckStorage(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, "restore storage: ok")
			return nil
		},
	}
}
