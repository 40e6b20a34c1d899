// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the capreserve CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capreserve",
		Short: "Reserve EC2 capacity with retry on transient shortages",
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Create())
	cmd.AddCommand(Cancel())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
