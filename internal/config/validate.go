package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/imamik/capreserve/internal/reservation"
)

// ValidRegions contains the AWS regions the CLI offers.
var ValidRegions = map[string]bool{
	"us-east-1":      true,
	"us-east-2":      true,
	"us-west-1":      true,
	"us-west-2":      true,
	"eu-west-1":      true,
	"eu-central-1":   true,
	"ap-southeast-1": true,
	"ap-northeast-1": true,
}

// ValidTenancies contains the tenancy modes the provider accepts.
var ValidTenancies = map[string]bool{
	reservation.TenancyDefault:   true,
	reservation.TenancyDedicated: true,
}

// ValidEndDateTypes contains the end-date policies the provider accepts.
var ValidEndDateTypes = map[string]bool{
	reservation.EndDateUnlimited: true,
	reservation.EndDateLimited:   true,
}

// Validate checks the configuration for common errors and returns a detailed
// error if validation fails.
func (c *Config) Validate() error {
	if c.InstanceType == "" {
		return fmt.Errorf("instance_type is required")
	}
	if c.InstanceCount < 1 {
		return fmt.Errorf("instance_count must be positive, got %d", c.InstanceCount)
	}
	if !ValidRegions[c.Region] {
		return fmt.Errorf("invalid region %q: must be one of %v", c.Region, getMapKeys(ValidRegions))
	}
	if !strings.HasPrefix(c.AvailabilityZone, c.Region) {
		return fmt.Errorf("availability zone %q is not in region %q", c.AvailabilityZone, c.Region)
	}
	if !reservation.ValidPlatforms[c.Platform] {
		return fmt.Errorf("invalid platform %q: must be one of %v", c.Platform, getMapKeys(reservation.ValidPlatforms))
	}
	if !ValidTenancies[c.Tenancy] {
		return fmt.Errorf("invalid tenancy %q: must be one of %v", c.Tenancy, getMapKeys(ValidTenancies))
	}

	if err := c.validateEndDate(); err != nil {
		return err
	}
	if err := c.validateRetry(); err != nil {
		return err
	}

	if c.SimFailures < 0 {
		return fmt.Errorf("sim_failures must not be negative, got %d", c.SimFailures)
	}
	if (c.Credentials.AccessKeyID == "") != (c.Credentials.SecretAccessKey == "") {
		return fmt.Errorf("credentials require both access_key_id and secret_access_key")
	}

	return nil
}

func (c *Config) validateEndDate() error {
	if !ValidEndDateTypes[c.EndDateType] {
		return fmt.Errorf("invalid end_date_type %q: must be one of %v", c.EndDateType, getMapKeys(ValidEndDateTypes))
	}
	switch c.EndDateType {
	case reservation.EndDateLimited:
		if c.EndDate == "" {
			return fmt.Errorf("end_date is required when end_date_type is %q", reservation.EndDateLimited)
		}
		if _, err := ParseEndDate(c.EndDate); err != nil {
			return err
		}
	case reservation.EndDateUnlimited:
		if c.EndDate != "" {
			return fmt.Errorf("end_date must not be set when end_date_type is %q", reservation.EndDateUnlimited)
		}
	}
	return nil
}

func (c *Config) validateRetry() error {
	if _, ok := reservation.PresetByName(c.Retry.Preset); !ok {
		return fmt.Errorf("invalid retry preset %q: must be one of %v", c.Retry.Preset, reservation.PresetNames())
	}
	if c.Retry.MaxAttempts < 0 {
		return fmt.Errorf("retry max_attempts must not be negative, got %d", c.Retry.MaxAttempts)
	}
	if c.Retry.DelaySeconds < 0 {
		return fmt.Errorf("retry delay_seconds must not be negative, got %d", c.Retry.DelaySeconds)
	}
	if c.Retry.MaxWaitSeconds < 0 {
		return fmt.Errorf("retry max_wait_seconds must not be negative, got %d", c.Retry.MaxWaitSeconds)
	}
	return nil
}

// getMapKeys returns the sorted keys of a validation table for error messages.
func getMapKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
