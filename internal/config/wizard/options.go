package wizard

import (
	"github.com/charmbracelet/huh"

	"github.com/imamik/capreserve/internal/reservation"
)

// Instance type categories and their common members, used for the two-step
// instance type selection.
var instanceTypeCategories = []struct {
	Name  string
	Label string
	Types []string
}{
	{Name: "general_purpose", Label: "General purpose", Types: []string{"t2.micro", "t3.micro", "t3.small", "m5.large"}},
	{Name: "compute_optimized", Label: "Compute optimized", Types: []string{"c5.large", "c5.xlarge", "c5.2xlarge"}},
	{Name: "memory_optimized", Label: "Memory optimized", Types: []string{"r5.large", "r5.xlarge", "r5.2xlarge"}},
	{Name: "storage_optimized", Label: "Storage optimized", Types: []string{"i3.large", "i3.xlarge"}},
	{Name: "gpu", Label: "GPU", Types: []string{"g4dn.xlarge", "p3.2xlarge"}},
}

// CategoryOptions returns the instance category choices.
func CategoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(instanceTypeCategories))
	for _, cat := range instanceTypeCategories {
		opts = append(opts, huh.NewOption(cat.Label, cat.Name))
	}
	return opts
}

// InstanceTypeOptions returns the instance types for a category.
func InstanceTypeOptions(category string) []huh.Option[string] {
	for _, cat := range instanceTypeCategories {
		if cat.Name == category {
			opts := make([]huh.Option[string], 0, len(cat.Types))
			for _, t := range cat.Types {
				opts = append(opts, huh.NewOption(t, t))
			}
			return opts
		}
	}
	return nil
}

// DefaultInstanceType returns the first instance type of a category.
func DefaultInstanceType(category string) string {
	for _, cat := range instanceTypeCategories {
		if cat.Name == category && len(cat.Types) > 0 {
			return cat.Types[0]
		}
	}
	return ""
}

// PlatformOptions returns the platform choices.
func PlatformOptions() []huh.Option[string] {
	platforms := []string{
		"Linux/UNIX",
		"Red Hat Enterprise Linux",
		"SUSE Linux",
		"Windows",
		"Windows with SQL Server",
		"Windows with SQL Server Enterprise",
		"Windows with SQL Server Standard",
		"Windows with SQL Server Web",
	}
	opts := make([]huh.Option[string], 0, len(platforms))
	for _, p := range platforms {
		opts = append(opts, huh.NewOption(p, p))
	}
	return opts
}

// RegionOptions returns the region choices.
func RegionOptions() []huh.Option[string] {
	regions := []string{
		"us-east-1", "us-east-2", "us-west-1", "us-west-2",
		"eu-west-1", "eu-central-1", "ap-southeast-1", "ap-northeast-1",
	}
	opts := make([]huh.Option[string], 0, len(regions))
	for _, r := range regions {
		opts = append(opts, huh.NewOption(r, r))
	}
	return opts
}

// TenancyOptions returns the tenancy choices.
func TenancyOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("default (shared hardware)", reservation.TenancyDefault),
		huh.NewOption("dedicated (single-tenant hardware)", reservation.TenancyDedicated),
	}
}

// EndDateTypeOptions returns the end-date policy choices.
func EndDateTypeOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("unlimited (until cancelled)", reservation.EndDateUnlimited),
		huh.NewOption("limited (expires at a set time)", reservation.EndDateLimited),
	}
}

// RetryPresetOptions returns the retry preset choices with their
// descriptions.
func RetryPresetOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("fast (quick retries with short delays)", "fast"),
		huh.NewOption("slow (fewer retries with longer delays)", "slow"),
		huh.NewOption("extensive (many retries with longer delays)", "extensive"),
	}
}
