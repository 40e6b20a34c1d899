package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/capreserve/cmd/capreserve/handlers"
	"github.com/imamik/capreserve/internal/config"
)

// Create returns the command for creating a capacity reservation.
//
// Configuration is resolved in order: an explicit --config file, command-line
// flags, a capreserve.yaml in the current directory, or the interactive
// wizard when running in a terminal.
//
// Examples:
//
//	# Interactive (prompts for every parameter)
//	capreserve create
//
//	# Non-interactive with flags, simulated provider
//	capreserve create --instance-type t3.micro --zone us-west-2a --simulate
//
//	# From a config file written by 'capreserve init'
//	capreserve create -c reservation.yaml
func Create() *cobra.Command {
	var (
		configPath string
		flagCfg    config.Config
		tagPairs   []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a capacity reservation, retrying on capacity shortages",
		Long: `Create an EC2 capacity reservation.

The request is retried at a fixed interval while the provider reports
insufficient capacity, up to the retry preset's attempt ceiling and overall
wait budget. Any other provider error aborts immediately.

With --simulate the provider is replaced by a deterministic stub that
replays --sim-failures capacity shortages followed by one success, so the
full retry workflow can be exercised without an AWS account.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tags, err := config.ParseTags(tagPairs)
			if err != nil {
				return err
			}
			flagCfg.Tags = tags

			return handlers.Create(cmd.Context(), handlers.CreateOptions{
				ConfigPath:   configPath,
				Flags:        &flagCfg,
				FlagsChanged: reservationFlagsChanged(cmd),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: capreserve.yaml)")

	cmd.Flags().StringVar(&flagCfg.InstanceType, "instance-type", "t2.micro", "EC2 instance type")
	cmd.Flags().Int32Var(&flagCfg.InstanceCount, "instance-count", 1, "Number of instances to reserve")
	cmd.Flags().StringVar(&flagCfg.Platform, "platform", "Linux/UNIX", "Operating system platform")
	cmd.Flags().StringVar(&flagCfg.Region, "region", "us-west-2", "AWS region")
	cmd.Flags().StringVar(&flagCfg.AvailabilityZone, "availability-zone", "", "Availability zone (default: first zone in region)")
	cmd.Flags().BoolVar(&flagCfg.EbsOptimized, "ebs-optimized", false, "Enable EBS optimization")
	cmd.Flags().StringVar(&flagCfg.Tenancy, "tenancy", "default", "Instance tenancy (default|dedicated)")
	cmd.Flags().StringVar(&flagCfg.EndDateType, "end-date-type", "unlimited", "Reservation end date type (unlimited|limited)")
	cmd.Flags().StringVar(&flagCfg.EndDate, "end-date", "", "End date for limited reservations (ISO 8601)")
	cmd.Flags().StringArrayVar(&tagPairs, "tag", nil, "Tag as key=value (repeatable)")

	cmd.Flags().StringVar(&flagCfg.Retry.Preset, "retry-config", "fast", "Retry preset (fast|slow|extensive)")
	cmd.Flags().IntVar(&flagCfg.Retry.MaxAttempts, "max-retries", 0, "Override max attempts (0 to use preset value)")
	cmd.Flags().IntVar(&flagCfg.Retry.DelaySeconds, "retry-delay", 0, "Override retry delay in seconds (0 to use preset value)")
	cmd.Flags().IntVar(&flagCfg.Retry.MaxWaitSeconds, "max-wait-time", 3600, "Maximum total wait time in seconds")

	cmd.Flags().BoolVar(&flagCfg.Simulate, "simulate", false, "Run against a scripted simulation of the provider")
	cmd.Flags().IntVar(&flagCfg.SimFailures, "sim-failures", 2, "Simulated capacity shortages before the scripted success")

	return cmd
}

// reservationFlagsChanged reports whether any reservation parameter was set
// explicitly, which switches create into non-interactive mode.
func reservationFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{
		"instance-type", "instance-count", "platform", "region",
		"availability-zone", "ebs-optimized", "tenancy", "end-date-type",
		"end-date", "tag", "retry-config", "max-retries", "retry-delay",
		"max-wait-time", "simulate", "sim-failures",
	} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
