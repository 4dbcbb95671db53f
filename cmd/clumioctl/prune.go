package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var errInvalidOlderThan = errors.New("--older-than must be positive")

func newPruneCmd(current func() *app) *cobra.Command {
	var (
		olderThan time.Duration
		confirm   bool
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune old restore records",
		Long: `Remove restore requests older than --older-than from the audit store.
The server does this periodically; this command runs it once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return errInvalidOlderThan
			}
			out := cmd.OutOrStdout()

			if !confirm {
				fmt.Fprintf(out, "This will permanently delete restore records older than %s.\n"+
					"Are you sure you want to continue? (y/N): ", olderThan)

				response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				response = strings.TrimSpace(response)
				if response != "y" && response != "Y" {
					fmt.Fprintln(out, "Pruning cancelled.")
					return nil
				}
			}

			deleted, err := current().services.RestoreService.PruneRestores(cmd.Context(), time.Now().Add(-olderThan))
			if err != nil {
				return fmt.Errorf("error pruning restore records: %w", err)
			}

			if deleted == 0 {
				fmt.Fprintln(out, "No restore records to prune.")
			} else {
				fmt.Fprintf(out, "Successfully pruned %d restore records.\n", deleted)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 720*time.Hour, "delete records older than this")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "confirm pruning without prompting")

	return cmd
}
