package reservation

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// End date types accepted by the provider.
const (
	EndDateUnlimited = "unlimited"
	EndDateLimited   = "limited"
)

// Tenancy modes accepted by the provider.
const (
	TenancyDefault   = "default"
	TenancyDedicated = "dedicated"
)

// ValidPlatforms contains the instance platforms the provider accepts.
var ValidPlatforms = map[string]bool{
	"Linux/UNIX":                         true,
	"Red Hat Enterprise Linux":           true,
	"SUSE Linux":                         true,
	"Windows":                            true,
	"Windows with SQL Server":            true,
	"Windows with SQL Server Enterprise": true,
	"Windows with SQL Server Standard":   true,
	"Windows with SQL Server Web":        true,
}

// Request describes one capacity reservation to be created. It is a plain
// value: construct it with NewRequest, which validates once, and treat it as
// immutable afterwards. The driver never inspects raw provider input maps;
// everything dynamic stops at the config boundary.
type Request struct {
	InstanceType     string
	Platform         string
	AvailabilityZone string
	InstanceCount    int32
	EbsOptimized     bool
	Tenancy          string
	EndDateType      string
	EndDate          *time.Time
	Tags             map[string]string
}

// NewRequest validates the reservation parameters and returns an immutable
// request value. The tag map is copied so later mutation by the caller cannot
// leak into an in-flight reservation sequence.
func NewRequest(instanceType, platform, availabilityZone string, count int32, ebsOptimized bool, tenancy, endDateType string, endDate *time.Time, tags map[string]string) (Request, error) {
	req := Request{
		InstanceType:     instanceType,
		Platform:         platform,
		AvailabilityZone: availabilityZone,
		InstanceCount:    count,
		EbsOptimized:     ebsOptimized,
		Tenancy:          tenancy,
		EndDateType:      endDateType,
		EndDate:          endDate,
		Tags:             copyTags(tags),
	}
	if err := req.validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

func (r Request) validate() error {
	if r.InstanceType == "" {
		return fmt.Errorf("instance type is required")
	}
	if !ValidPlatforms[r.Platform] {
		return fmt.Errorf("invalid platform %q", r.Platform)
	}
	if r.AvailabilityZone == "" {
		return fmt.Errorf("availability zone is required")
	}
	if r.InstanceCount < 1 {
		return fmt.Errorf("instance count must be positive, got %d", r.InstanceCount)
	}
	if r.Tenancy != TenancyDefault && r.Tenancy != TenancyDedicated {
		return fmt.Errorf("invalid tenancy %q: must be %q or %q", r.Tenancy, TenancyDefault, TenancyDedicated)
	}
	switch r.EndDateType {
	case EndDateUnlimited:
		if r.EndDate != nil {
			return fmt.Errorf("end date must not be set for an unlimited reservation")
		}
	case EndDateLimited:
		if r.EndDate == nil {
			return fmt.Errorf("end date is required for a limited reservation")
		}
	default:
		return fmt.Errorf("invalid end date type %q: must be %q or %q", r.EndDateType, EndDateUnlimited, EndDateLimited)
	}
	return nil
}

// Equal reports whether two requests describe the same reservation, field by
// field including the full tag set. The simulation harness uses this for its
// expected-parameter check, so the comparison is explicit rather than
// reflective.
func (r Request) Equal(other Request) bool {
	if r.InstanceType != other.InstanceType ||
		r.Platform != other.Platform ||
		r.AvailabilityZone != other.AvailabilityZone ||
		r.InstanceCount != other.InstanceCount ||
		r.EbsOptimized != other.EbsOptimized ||
		r.Tenancy != other.Tenancy ||
		r.EndDateType != other.EndDateType {
		return false
	}
	if (r.EndDate == nil) != (other.EndDate == nil) {
		return false
	}
	if r.EndDate != nil && !r.EndDate.Equal(*other.EndDate) {
		return false
	}
	if len(r.Tags) != len(other.Tags) {
		return false
	}
	for k, v := range r.Tags {
		if ov, ok := other.Tags[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// String renders a compact single-line description for attempt logging.
func (r Request) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx %s (%s) in %s tenancy=%s end=%s", r.InstanceCount, r.InstanceType, r.Platform, r.AvailabilityZone, r.Tenancy, r.EndDateType)
	if r.EndDate != nil {
		fmt.Fprintf(&b, "@%s", r.EndDate.Format(time.RFC3339))
	}
	if len(r.Tags) > 0 {
		keys := make([]string, 0, len(r.Tags))
		for k := range r.Tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+"="+r.Tags[k])
		}
		fmt.Fprintf(&b, " tags[%s]", strings.Join(pairs, ","))
	}
	return b.String()
}

func copyTags(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}
