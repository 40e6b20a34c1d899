package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Instance configuration
	InstanceCategory string
	InstanceType     string
	InstanceCount    int32
	Platform         string

	// Location
	Region           string
	AvailabilityZone string

	// Reservation options
	EbsOptimized bool
	Tenancy      string
	EndDateType  string
	EndDate      string
	Tags         map[string]string

	// Retry behavior
	RetryPreset    string
	MaxAttempts    int
	DelaySeconds   int
	MaxWaitSeconds int

	// Execution
	Simulate    bool
	SimFailures int
}

// Run walks through all reservation parameters interactively. The context is
// used for cancellation support (e.g., Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runInstanceGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}

	if err := runLocationGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}

	if err := runReservationGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("reservation: %w", err)
	}

	if err := runTagsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}

	if err := runRetryGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("retry: %w", err)
	}

	if err := runExecutionGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("execution: %w", err)
	}

	return result, nil
}
