package reservation

import "time"

// Lifecycle states a reservation record can carry.
const (
	StateActive    = "active"
	StateCancelled = "cancelled"
)

// Record is the provider's answer to a successful creation call: the opaque
// reservation identifier plus the echoed configuration. It is created only by
// a successful attempt and never modified afterwards; the caller owns it.
type Record struct {
	ID                     string
	OwnerID                string
	ARN                    string
	InstanceType           string
	Platform               string
	AvailabilityZone       string
	Tenancy                string
	TotalInstanceCount     int32
	AvailableInstanceCount int32
	EbsOptimized           bool
	State                  string
	StartDate              time.Time
	CreateDate             time.Time
	EndDateType            string
	EndDate                *time.Time
	Tags                   map[string]string
}
