package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/capreserve/cmd/capreserve/handlers"
	"github.com/imamik/capreserve/internal/config"
)

// Init returns the command that runs the configuration wizard.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a reservation config file",
		Long: `Walk through every reservation parameter interactively and write the
answers to a YAML file that 'capreserve create -c' consumes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultFileName, "Output file path")

	return cmd
}
