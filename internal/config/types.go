package config

import (
	"fmt"
	"time"

	"github.com/imamik/capreserve/internal/reservation"
)

// DefaultFileName is the config file looked for when none is given.
const DefaultFileName = "capreserve.yaml"

// Config is the full CLI configuration: the reservation parameters, the retry
// behavior, and the execution mode. It is the dynamic boundary of the
// program; once converted with ToRequest/ToPolicy nothing downstream touches
// raw config values again.
type Config struct {
	Region           string            `mapstructure:"region" yaml:"region"`
	InstanceType     string            `mapstructure:"instance_type" yaml:"instance_type"`
	InstanceCount    int32             `mapstructure:"instance_count" yaml:"instance_count"`
	Platform         string            `mapstructure:"platform" yaml:"platform"`
	AvailabilityZone string            `mapstructure:"availability_zone" yaml:"availability_zone"`
	EbsOptimized     bool              `mapstructure:"ebs_optimized" yaml:"ebs_optimized"`
	Tenancy          string            `mapstructure:"tenancy" yaml:"tenancy"`
	EndDateType      string            `mapstructure:"end_date_type" yaml:"end_date_type"`
	EndDate          string            `mapstructure:"end_date" yaml:"end_date,omitempty"`
	Tags             map[string]string `mapstructure:"tags" yaml:"tags,omitempty"`

	Retry       RetryConfig       `mapstructure:"retry" yaml:"retry"`
	Credentials CredentialsConfig `mapstructure:"credentials" yaml:"credentials,omitempty"`

	Simulate    bool `mapstructure:"simulate" yaml:"simulate"`
	SimFailures int  `mapstructure:"sim_failures" yaml:"sim_failures,omitempty"`
}

// RetryConfig selects a named preset and optional per-field overrides.
// Zero-valued overrides mean "use the preset value".
type RetryConfig struct {
	Preset         string `mapstructure:"preset" yaml:"preset"`
	MaxAttempts    int    `mapstructure:"max_attempts" yaml:"max_attempts,omitempty"`
	DelaySeconds   int    `mapstructure:"delay_seconds" yaml:"delay_seconds,omitempty"`
	MaxWaitSeconds int    `mapstructure:"max_wait_seconds" yaml:"max_wait_seconds,omitempty"`
}

// CredentialsConfig optionally pins static AWS credentials. When empty the
// default provider chain applies.
type CredentialsConfig struct {
	AccessKeyID     string `mapstructure:"access_key_id" yaml:"access_key_id,omitempty"`
	SecretAccessKey string `mapstructure:"secret_access_key" yaml:"secret_access_key,omitempty"`
}

// endDateLayouts are the accepted end date formats: RFC 3339, or a local
// timestamp without zone which is taken as UTC.
var endDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseEndDate parses an end date string in one of the accepted layouts.
func ParseEndDate(value string) (time.Time, error) {
	for _, layout := range endDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid end date %q: use ISO 8601, e.g. 2026-12-31T23:59:59Z", value)
}

// ToRequest converts the configuration into the validated reservation request
// handed to the driver.
func (c *Config) ToRequest() (reservation.Request, error) {
	var endDate *time.Time
	if c.EndDate != "" {
		t, err := ParseEndDate(c.EndDate)
		if err != nil {
			return reservation.Request{}, err
		}
		endDate = &t
	}
	return reservation.NewRequest(
		c.InstanceType,
		c.Platform,
		c.AvailabilityZone,
		c.InstanceCount,
		c.EbsOptimized,
		c.Tenancy,
		c.EndDateType,
		endDate,
		c.Tags,
	)
}

// ToPolicy resolves the retry preset and applies the overrides.
func (c *Config) ToPolicy() (reservation.Policy, error) {
	base, ok := reservation.PresetByName(c.Retry.Preset)
	if !ok {
		return reservation.Policy{}, fmt.Errorf("unknown retry preset %q: must be one of %v", c.Retry.Preset, reservation.PresetNames())
	}

	var opts []reservation.Option
	if c.Retry.MaxAttempts > 0 {
		opts = append(opts, reservation.WithMaxAttempts(c.Retry.MaxAttempts))
	}
	if c.Retry.DelaySeconds > 0 {
		opts = append(opts, reservation.WithDelay(time.Duration(c.Retry.DelaySeconds)*time.Second))
	}
	if c.Retry.MaxWaitSeconds > 0 {
		opts = append(opts, reservation.WithMaxWait(time.Duration(c.Retry.MaxWaitSeconds)*time.Second))
	}
	return reservation.NewPolicy(base, opts...)
}
