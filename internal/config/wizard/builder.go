package wizard

import "github.com/imamik/capreserve/internal/config"

// ToConfig converts the wizard answers into the CLI configuration.
func (r *Result) ToConfig() *config.Config {
	cfg := &config.Config{
		Region:           r.Region,
		InstanceType:     r.InstanceType,
		InstanceCount:    r.InstanceCount,
		Platform:         r.Platform,
		AvailabilityZone: r.AvailabilityZone,
		EbsOptimized:     r.EbsOptimized,
		Tenancy:          r.Tenancy,
		EndDateType:      r.EndDateType,
		EndDate:          r.EndDate,
		Tags:             r.Tags,
		Retry: config.RetryConfig{
			Preset:         r.RetryPreset,
			MaxAttempts:    r.MaxAttempts,
			DelaySeconds:   r.DelaySeconds,
			MaxWaitSeconds: r.MaxWaitSeconds,
		},
		Simulate:    r.Simulate,
		SimFailures: r.SimFailures,
	}
	cfg.ApplyDefaults()
	return cfg
}
