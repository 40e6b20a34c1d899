package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/capreserve/internal/config"
	"github.com/imamik/capreserve/internal/config/wizard"
	"github.com/imamik/capreserve/internal/platform/ec2"
)

// saveFactories snapshots all injectable factory variables and restores them
// when the test finishes.
func saveFactories(t *testing.T) {
	t.Helper()
	origProvider := newProviderClient
	origLoad := loadConfigFile
	origFind := findConfigFile
	origWizard := runWizard
	origTTY := stdinIsTerminal
	origCancel := newCancelClient
	origExists := fileExists
	origWrite := writeConfigFile
	t.Cleanup(func() {
		newProviderClient = origProvider
		loadConfigFile = origLoad
		findConfigFile = origFind
		runWizard = origWizard
		stdinIsTerminal = origTTY
		newCancelClient = origCancel
		fileExists = origExists
		writeConfigFile = origWrite
	})
}

func flagConfig() *config.Config {
	return &config.Config{
		Region:           "us-west-2",
		InstanceType:     "t3.micro",
		InstanceCount:    1,
		Platform:         "Linux/UNIX",
		AvailabilityZone: "us-west-2a",
		Tenancy:          "default",
		EndDateType:      "unlimited",
		Retry:            config.RetryConfig{Preset: "fast"},
		Simulate:         true,
		SimFailures:      0,
	}
}

func TestCreate_SimulatedSuccess(t *testing.T) {
	saveFactories(t)

	cfg := flagConfig()
	err := Create(context.Background(), CreateOptions{Flags: cfg, FlagsChanged: true})
	require.NoError(t, err)
}

func TestCreate_SimulatedExhaustion(t *testing.T) {
	saveFactories(t)

	// One scripted shortage against a single-attempt ceiling: exhaustion
	// without any inter-attempt sleep.
	cfg := flagConfig()
	cfg.SimFailures = 1
	cfg.Retry = config.RetryConfig{Preset: "fast", MaxAttempts: 1}

	err := Create(context.Background(), CreateOptions{Flags: cfg, FlagsChanged: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gave up after 1 attempts")
}

func TestCreate_FatalProviderError(t *testing.T) {
	saveFactories(t)

	newProviderClient = func(ctx context.Context, cfg *config.Config) (ec2.Client, error) {
		stub := ec2.NewStub()
		req, err := cfg.ToRequest()
		if err != nil {
			return nil, err
		}
		stub.Expect(req)
		stub.ScheduleError("UnauthorizedOperation", "denied")
		return stub, nil
	}

	cfg := flagConfig()
	cfg.Simulate = false

	err := Create(context.Background(), CreateOptions{Flags: cfg, FlagsChanged: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UnauthorizedOperation")
	assert.NotContains(t, err.Error(), "gave up")
}

func TestCreate_ProviderClientError(t *testing.T) {
	saveFactories(t)

	newProviderClient = func(ctx context.Context, cfg *config.Config) (ec2.Client, error) {
		return nil, fmt.Errorf("no credentials available")
	}

	cfg := flagConfig()
	cfg.Simulate = false

	err := Create(context.Background(), CreateOptions{Flags: cfg, FlagsChanged: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no credentials")
}

func TestCreate_InvalidFlags(t *testing.T) {
	saveFactories(t)

	cfg := flagConfig()
	cfg.Region = "mars-central-1"

	err := Create(context.Background(), CreateOptions{Flags: cfg, FlagsChanged: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid region")
}

func TestCreate_ExplicitConfigFile(t *testing.T) {
	saveFactories(t)

	loaded := false
	loadConfigFile = func(path string) (*config.Config, error) {
		loaded = true
		assert.Equal(t, "my.yaml", path)
		return flagConfig(), nil
	}

	err := Create(context.Background(), CreateOptions{ConfigPath: "my.yaml"})
	require.NoError(t, err)
	assert.True(t, loaded)
}

func TestCreate_DefaultConfigFile(t *testing.T) {
	saveFactories(t)

	findConfigFile = func() (string, error) { return "capreserve.yaml", nil }
	loadConfigFile = func(path string) (*config.Config, error) {
		assert.Equal(t, "capreserve.yaml", path)
		return flagConfig(), nil
	}

	err := Create(context.Background(), CreateOptions{})
	require.NoError(t, err)
}

func TestCreate_NoConfigNoTerminal(t *testing.T) {
	saveFactories(t)

	findConfigFile = func() (string, error) { return "", fmt.Errorf("not found") }
	stdinIsTerminal = func() bool { return false }

	err := Create(context.Background(), CreateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no configuration provided")
}

func TestCreate_FallsBackToWizard(t *testing.T) {
	saveFactories(t)

	findConfigFile = func() (string, error) { return "", fmt.Errorf("not found") }
	stdinIsTerminal = func() bool { return true }
	runWizard = func(ctx context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			InstanceType: "t3.micro",
			Simulate:     true,
			SimFailures:  0,
			RetryPreset:  "fast",
		}, nil
	}

	err := Create(context.Background(), CreateOptions{})
	require.NoError(t, err)
}

func TestCreate_WizardCanceled(t *testing.T) {
	saveFactories(t)

	findConfigFile = func() (string, error) { return "", fmt.Errorf("not found") }
	stdinIsTerminal = func() bool { return true }
	runWizard = func(ctx context.Context) (*wizard.Result, error) {
		return nil, fmt.Errorf("user aborted")
	}

	err := Create(context.Background(), CreateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}
