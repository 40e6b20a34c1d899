package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/capreserve/cmd/capreserve/handlers"
)

// Cancel returns the command for cancelling an existing capacity reservation.
//
// Cancellation is always an explicit operation; create never cancels
// anything on its own.
func Cancel() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "cancel <reservation-id>",
		Short: "Cancel a capacity reservation by its identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Cancel(cmd.Context(), args[0], region)
		},
	}

	cmd.Flags().StringVar(&region, "region", "us-west-2", "AWS region")

	return cmd
}
