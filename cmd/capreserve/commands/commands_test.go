package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootSubcommands(t *testing.T) {
	root := Root()

	want := []string{"init", "create", "cancel", "version", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, "subcommand %s", name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestCreateFlags(t *testing.T) {
	cmd := Create()

	for _, name := range []string{
		"config", "instance-type", "instance-count", "platform", "region",
		"availability-zone", "ebs-optimized", "tenancy", "end-date-type",
		"end-date", "tag", "retry-config", "max-retries", "retry-delay",
		"max-wait-time", "simulate", "sim-failures",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s missing", name)
	}

	assert.Equal(t, "t2.micro", cmd.Flags().Lookup("instance-type").DefValue)
	assert.Equal(t, "fast", cmd.Flags().Lookup("retry-config").DefValue)
	assert.Equal(t, "3600", cmd.Flags().Lookup("max-wait-time").DefValue)
	assert.Equal(t, "2", cmd.Flags().Lookup("sim-failures").DefValue)
}

func TestReservationFlagsChanged(t *testing.T) {
	cmd := Create()
	assert.False(t, reservationFlagsChanged(cmd))

	require.NoError(t, cmd.Flags().Set("instance-type", "m5.large"))
	assert.True(t, reservationFlagsChanged(cmd))
}

func TestReservationFlagsChanged_ConfigFlagDoesNotCount(t *testing.T) {
	cmd := Create()
	require.NoError(t, cmd.Flags().Set("config", "my.yaml"))
	assert.False(t, reservationFlagsChanged(cmd))
}

func TestCancelArgs(t *testing.T) {
	cmd := Cancel()

	require.Error(t, cmd.Args(cmd, nil))
	require.Error(t, cmd.Args(cmd, []string{"a", "b"}))
	require.NoError(t, cmd.Args(cmd, []string{"cr-123"}))
}
