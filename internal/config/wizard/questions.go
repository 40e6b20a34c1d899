package wizard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/imamik/capreserve/internal/config"
	"github.com/imamik/capreserve/internal/reservation"
)

// runInstanceGroup prompts for the instance type (two-step: category first,
// then the specific type), count, and platform.
func runInstanceGroup(ctx context.Context, result *Result) error {
	result.InstanceCategory = "general_purpose"

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Instance Category").
				Description("Narrows down the instance type list").
				Options(CategoryOptions()...).
				Value(&result.InstanceCategory),
		).Title("Instance"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.InstanceType = DefaultInstanceType(result.InstanceCategory)
	var countInput = "1"
	result.Platform = "Linux/UNIX"

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Instance Type").
				Options(InstanceTypeOptions(result.InstanceCategory)...).
				Value(&result.InstanceType),
			huh.NewInput().
				Title("Instance Count").
				Description("Number of instances to reserve").
				Value(&countInput).
				Validate(validateCount),
			huh.NewSelect[string]().
				Title("Platform").
				Description("Operating system platform").
				Options(PlatformOptions()...).
				Value(&result.Platform),
		).Title("Instance"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	count, err := strconv.ParseInt(countInput, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid instance count %q", countInput)
	}
	result.InstanceCount = int32(count)
	return nil
}

// runLocationGroup prompts for the region and availability zone.
func runLocationGroup(ctx context.Context, result *Result) error {
	result.Region = "us-west-2"

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Region").
				Options(RegionOptions()...).
				Value(&result.Region),
		).Title("Location"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Availability Zone (Optional)").
				Description(fmt.Sprintf("Leave empty for the first zone (%sa)", result.Region)).
				Placeholder(result.Region+"a").
				Value(&result.AvailabilityZone),
		).Title("Location"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if result.AvailabilityZone == "" {
		result.AvailabilityZone = result.Region + "a"
	}
	return nil
}

// runReservationGroup prompts for EBS optimization, tenancy, and the end-date
// policy. The end date itself is asked only for limited reservations.
func runReservationGroup(ctx context.Context, result *Result) error {
	result.Tenancy = reservation.TenancyDefault
	result.EndDateType = reservation.EndDateUnlimited

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable EBS Optimization?").
				Value(&result.EbsOptimized),
			huh.NewSelect[string]().
				Title("Tenancy").
				Options(TenancyOptions()...).
				Value(&result.Tenancy),
			huh.NewSelect[string]().
				Title("End Date Type").
				Options(EndDateTypeOptions()...).
				Value(&result.EndDateType),
		).Title("Reservation"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if result.EndDateType != reservation.EndDateLimited {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("End Date").
				Description("ISO 8601 format, e.g. 2026-12-31T23:59:59Z").
				Value(&result.EndDate).
				Validate(validateEndDate),
		).Title("Reservation"),
	).RunWithContext(ctx)
}

// runTagsGroup optionally collects key/value tags in a loop.
func runTagsGroup(ctx context.Context, result *Result) error {
	var addTags bool

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add Tags?").
				Description("Key/value tags attached to the reservation").
				Value(&addTags),
		).Title("Tags"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if !addTags {
		return nil
	}

	result.Tags = make(map[string]string)
	for {
		var key, value string
		var addAnother bool

		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Tag Key").
					Value(&key).
					Validate(validateNonEmpty),
				huh.NewInput().
					Title("Tag Value").
					Value(&value).
					Validate(validateNonEmpty),
				huh.NewConfirm().
					Title("Add Another Tag?").
					Value(&addAnother),
			).Title("Tags"),
		).RunWithContext(ctx)
		if err != nil {
			return err
		}

		result.Tags[key] = value
		if !addAnother {
			return nil
		}
	}
}

// runRetryGroup prompts for the retry preset and optional overrides.
func runRetryGroup(ctx context.Context, result *Result) error {
	result.RetryPreset = "fast"
	maxAttemptsInput := "0"
	delayInput := "0"
	maxWaitInput := "3600"

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Retry Preset").
				Options(RetryPresetOptions()...).
				Value(&result.RetryPreset),
			huh.NewInput().
				Title("Custom Max Attempts").
				Description("0 to use the preset value").
				Value(&maxAttemptsInput).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Custom Retry Delay (seconds)").
				Description("0 to use the preset value").
				Value(&delayInput).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Maximum Total Wait Time (seconds)").
				Value(&maxWaitInput).
				Validate(validatePositiveInt),
		).Title("Retry Behavior"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.MaxAttempts, _ = strconv.Atoi(maxAttemptsInput)
	result.DelaySeconds, _ = strconv.Atoi(delayInput)
	result.MaxWaitSeconds, _ = strconv.Atoi(maxWaitInput)
	return nil
}

// runExecutionGroup prompts for simulation mode.
func runExecutionGroup(ctx context.Context, result *Result) error {
	result.Simulate = true
	failuresInput := "2"

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Run in Simulation Mode?").
				Description("Replays scripted responses instead of calling AWS").
				Value(&result.Simulate),
		).Title("Execution"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if !result.Simulate {
		return nil
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Simulated Capacity Shortages").
				Description("Scripted failures before the scripted success").
				Value(&failuresInput).
				Validate(validateNonNegativeInt),
		).Title("Execution"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.SimFailures, _ = strconv.Atoi(failuresInput)
	return nil
}

func validateCount(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("enter a positive integer")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative integer")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("enter a positive integer")
	}
	return nil
}

func validateNonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

func validateEndDate(s string) error {
	_, err := config.ParseEndDate(s)
	return err
}
