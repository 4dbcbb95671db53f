package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd(current func() *app) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent restore requests",
		Long:  `Display the restore requests recorded in the audit store, newest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := current().services.RestoreService.ListRestores(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, records)
			}

			if len(records) == 0 {
				fmt.Fprintln(out, "No restore requests recorded.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.TabIndent)
			fmt.Fprintln(w, "ID\tCreated\tType\tBucket\tBucket ID\tStatus\tError")
			fmt.Fprintln(w, "--\t-------\t----\t------\t---------\t------\t-----")
			for _, rec := range records {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					rec.ID,
					rec.CreatedAt.UTC().Format(time.DateTime),
					rec.Type,
					rec.BucketName,
					rec.BucketID,
					rec.Status,
					rec.Error,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records (default 50)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")

	return cmd
}
