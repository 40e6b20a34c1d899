package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/capreserve/internal/config"
	"github.com/imamik/capreserve/internal/config/wizard"
)

func TestInit(t *testing.T) {
	saveFactories(t)

	fileExists = func(path string) bool { return false }
	runWizard = func(ctx context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			InstanceType: "c5.large",
			RetryPreset:  "slow",
			Simulate:     true,
		}, nil
	}

	var written *config.Config
	var writtenPath string
	writeConfigFile = func(cfg *config.Config, path string) error {
		written = cfg
		writtenPath = path
		return nil
	}

	require.NoError(t, Init(context.Background(), "capreserve.yaml"))

	assert.Equal(t, "capreserve.yaml", writtenPath)
	require.NotNil(t, written)
	assert.Equal(t, "c5.large", written.InstanceType)
	assert.Equal(t, "slow", written.Retry.Preset)
	// Wizard gaps are filled before writing.
	assert.Equal(t, "us-west-2", written.Region)
	assert.Equal(t, 2, written.SimFailures)
}

func TestInit_WizardCanceled(t *testing.T) {
	saveFactories(t)

	fileExists = func(path string) bool { return false }
	runWizard = func(ctx context.Context) (*wizard.Result, error) {
		return nil, fmt.Errorf("user aborted")
	}

	err := Init(context.Background(), "capreserve.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_WriteFailure(t *testing.T) {
	saveFactories(t)

	fileExists = func(path string) bool { return true }
	runWizard = func(ctx context.Context) (*wizard.Result, error) {
		return &wizard.Result{InstanceType: "t3.micro", RetryPreset: "fast"}, nil
	}
	writeConfigFile = func(cfg *config.Config, path string) error {
		return fmt.Errorf("disk full")
	}

	err := Init(context.Background(), "capreserve.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}
