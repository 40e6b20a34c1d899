// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/capreserve/internal/config"
	"github.com/imamik/capreserve/internal/config/wizard"
	"github.com/imamik/capreserve/internal/platform/ec2"
	"github.com/imamik/capreserve/internal/reservation"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newProviderClient creates the live provider client for a config.
	newProviderClient = func(ctx context.Context, cfg *config.Config) (ec2.Client, error) {
		if cfg.Credentials.AccessKeyID != "" {
			return ec2.NewRealClientWithStaticCredentials(ctx, cfg.Region, cfg.Credentials.AccessKeyID, cfg.Credentials.SecretAccessKey)
		}
		return ec2.NewRealClient(ctx, cfg.Region)
	}

	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// findConfigFile locates the default config file.
	findConfigFile = config.FindConfigFile

	// runWizard runs the interactive wizard.
	runWizard = wizard.Run

	// stdinIsTerminal reports whether stdin is attached to a terminal.
	stdinIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

// CreateOptions carries the command-line input for create.
type CreateOptions struct {
	ConfigPath   string
	Flags        *config.Config
	FlagsChanged bool
}

// Create resolves the configuration, runs the reservation driver until a
// terminal outcome, and reports the result.
//
// Configuration resolution order: explicit --config file, explicit flags, a
// capreserve.yaml in the current directory, then the interactive wizard when
// stdin is a terminal.
func Create(ctx context.Context, opts CreateOptions) error {
	cfg, err := resolveConfig(ctx, opts)
	if err != nil {
		return err
	}

	req, err := cfg.ToRequest()
	if err != nil {
		return fmt.Errorf("invalid reservation request: %w", err)
	}
	policy, err := cfg.ToPolicy()
	if err != nil {
		return fmt.Errorf("invalid retry configuration: %w", err)
	}

	client, err := buildClient(ctx, cfg, req)
	if err != nil {
		return err
	}

	driver := reservation.NewDriver(client, policy)
	record, err := driver.Reserve(ctx, req)
	if err != nil {
		return describeFailure(err)
	}

	fmt.Print(renderRecord(record, cfg.Simulate))
	return nil
}

func resolveConfig(ctx context.Context, opts CreateOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return loadConfigFile(opts.ConfigPath)
	}

	if opts.FlagsChanged {
		cfg := opts.Flags
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
		return cfg, nil
	}

	if path, err := findConfigFile(); err == nil {
		return loadConfigFile(path)
	}

	if !stdinIsTerminal() {
		return nil, fmt.Errorf("no configuration provided: pass flags, a --config file, or run interactively (see 'capreserve init')")
	}

	result, err := runWizard(ctx)
	if err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}
	cfg := result.ToConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// buildClient picks the live client or, in simulation mode, a stub scripted
// with the configured number of capacity shortages followed by one success.
func buildClient(ctx context.Context, cfg *config.Config, req reservation.Request) (ec2.Client, error) {
	if !cfg.Simulate {
		return newProviderClient(ctx, cfg)
	}

	stub := ec2.NewStub()
	stub.Expect(req)
	for i := 0; i < cfg.SimFailures; i++ {
		stub.ScheduleCapacityError()
	}
	stub.ScheduleSuccess()
	return stub, nil
}

// describeFailure spells out which terminal outcome ended the sequence so the
// exit message distinguishes exhaustion, deadline, harness bugs, and outright
// provider rejection.
func describeFailure(err error) error {
	var exhausted *reservation.ExhaustedError
	if errors.As(err, &exhausted) {
		return fmt.Errorf("gave up after %d attempts, capacity never became available: %w", exhausted.Attempts, exhausted.LastErr)
	}
	var deadline *reservation.DeadlineError
	if errors.As(err, &deadline) {
		return fmt.Errorf("gave up on time budget: %w", deadline)
	}
	var contract *ec2.ContractError
	if errors.As(err, &contract) {
		return fmt.Errorf("simulation script mismatch (this is a bug, not a capacity condition): %w", contract)
	}
	return err
}
