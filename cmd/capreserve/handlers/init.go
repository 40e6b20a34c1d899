package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/capreserve/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// writeConfigFile writes the config to a file.
	writeConfigFile = config.WriteYAML
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := writeConfigFile(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("capreserve - EC2 capacity reservations")
	fmt.Println("======================================")
	fmt.Println()
	fmt.Println("This wizard walks through every reservation parameter and writes")
	fmt.Println("a config file for 'capreserve create'.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Reservation Summary")
	fmt.Println("-------------------")
	fmt.Printf("  Instances:  %d x %s (%s)\n", cfg.InstanceCount, cfg.InstanceType, cfg.Platform)
	fmt.Printf("  Zone:       %s\n", cfg.AvailabilityZone)
	fmt.Printf("  Tenancy:    %s\n", cfg.Tenancy)
	fmt.Printf("  End Date:   %s", cfg.EndDateType)
	if cfg.EndDate != "" {
		fmt.Printf(" (%s)", cfg.EndDate)
	}
	fmt.Println()
	fmt.Printf("  Retry:      %s preset", cfg.Retry.Preset)
	if cfg.Retry.MaxAttempts > 0 || cfg.Retry.DelaySeconds > 0 {
		fmt.Print(" (with overrides)")
	}
	fmt.Println()
	if cfg.Simulate {
		fmt.Printf("  Simulation: on, %d scripted shortages\n", cfg.SimFailures)
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  capreserve create -c %s\n", outputPath)
	fmt.Println()
}
