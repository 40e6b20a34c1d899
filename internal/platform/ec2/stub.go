package ec2

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/smithy-go"

	"github.com/imamik/capreserve/internal/reservation"
)

// Synthetic identity the stub fabricates for successful reservations.
const (
	StubReservationID = "cr-mock-12345"
	stubOwnerID       = "123456789012"
)

// CapacityErrorMessage is the provider's wording for a capacity shortage.
const CapacityErrorMessage = "There is not enough capacity available for your request."

// ContractError reports a violation of the simulation contract: a creation
// call whose parameters do not match the declared expectation, or more calls
// than scripted responses. It indicates a bug in the caller or the script,
// not a simulated provider condition, and is never retryable.
type ContractError struct {
	Reason string
}

func (e *ContractError) Error() string {
	return "simulation contract violated: " + e.Reason
}

type scriptedResponse struct {
	err error // nil means a scripted success
}

// Stub is a substitute provider endpoint that replays a scripted sequence of
// responses, strictly in the order scheduled. Every creation call must match
// the pre-declared expected request exactly. The stub is driven by a single
// reservation sequence at a time and keeps no locking.
type Stub struct {
	expected *reservation.Request
	script   []scriptedResponse
	calls    int
	created  map[string]*reservation.Record
}

// NewStub creates an empty stub. Declare the expected request with Expect and
// queue responses with the Schedule methods before use.
func NewStub() *Stub {
	return &Stub{created: make(map[string]*reservation.Record)}
}

// Expect declares the exact request shape every creation call must carry.
func (s *Stub) Expect(req reservation.Request) {
	s.expected = &req
}

// ScheduleCapacityError queues one simulated capacity-shortage rejection.
func (s *Stub) ScheduleCapacityError() {
	s.ScheduleError("InsufficientInstanceCapacity", CapacityErrorMessage)
}

// ScheduleError queues one simulated provider error with the given code. The
// error is fabricated as a generic API error so classification runs the same
// code path as against the live API.
func (s *Stub) ScheduleError(code, message string) {
	s.script = append(s.script, scriptedResponse{
		err: &smithy.GenericAPIError{Code: code, Message: message, Fault: smithy.FaultServer},
	})
}

// ScheduleSuccess queues one successful response. The stub fabricates the
// full record from the expected request at call time.
func (s *Stub) ScheduleSuccess() {
	s.script = append(s.script, scriptedResponse{})
}

// Remaining returns how many scripted responses have not been consumed yet.
func (s *Stub) Remaining() int {
	return len(s.script)
}

// Calls returns how many creation calls the stub has received.
func (s *Stub) Calls() int {
	return s.calls
}

// CreateCapacityReservation consumes the next scripted response, after
// checking the call against the declared expectation.
func (s *Stub) CreateCapacityReservation(_ context.Context, req reservation.Request) (*reservation.Record, error) {
	s.calls++

	if s.expected == nil {
		return nil, &ContractError{Reason: "no expected request declared"}
	}
	if !s.expected.Equal(req) {
		return nil, &ContractError{Reason: fmt.Sprintf("request does not match expectation:\n  got:  %s\n  want: %s", req, *s.expected)}
	}
	if len(s.script) == 0 {
		return nil, &ContractError{Reason: fmt.Sprintf("no scripted response left for call %d", s.calls)}
	}

	next := s.script[0]
	s.script = s.script[1:]

	if next.err != nil {
		return nil, next.err
	}

	rec := s.fabricateRecord(req)
	s.created[rec.ID] = rec
	return rec, nil
}

// CancelCapacityReservation cancels a previously fabricated reservation.
func (s *Stub) CancelCapacityReservation(_ context.Context, reservationID string) error {
	rec, ok := s.created[reservationID]
	if !ok {
		return &smithy.GenericAPIError{
			Code:    "InvalidCapacityReservationId.NotFound",
			Message: fmt.Sprintf("The capacity reservation %s does not exist", reservationID),
			Fault:   smithy.FaultClient,
		}
	}
	rec.State = reservation.StateCancelled
	return nil
}

// fabricateRecord builds a full success payload: synthetic identity, current
// timestamps, and the echoed request fields. The end date is echoed exactly
// for limited reservations and left unset otherwise.
func (s *Stub) fabricateRecord(req reservation.Request) *reservation.Record {
	now := time.Now().UTC()

	rec := &reservation.Record{
		ID:                     StubReservationID,
		OwnerID:                stubOwnerID,
		ARN:                    fmt.Sprintf("arn:aws:ec2:region:%s:capacity-reservation/%s", stubOwnerID, StubReservationID),
		InstanceType:           req.InstanceType,
		Platform:               req.Platform,
		AvailabilityZone:       req.AvailabilityZone,
		Tenancy:                req.Tenancy,
		TotalInstanceCount:     req.InstanceCount,
		AvailableInstanceCount: req.InstanceCount,
		EbsOptimized:           req.EbsOptimized,
		State:                  reservation.StateActive,
		StartDate:              now,
		CreateDate:             now,
		EndDateType:            req.EndDateType,
	}
	if req.EndDateType == reservation.EndDateLimited && req.EndDate != nil {
		end := *req.EndDate
		rec.EndDate = &end
	}
	if len(req.Tags) > 0 {
		rec.Tags = make(map[string]string, len(req.Tags))
		for k, v := range req.Tags {
			rec.Tags[k] = v
		}
	}
	return rec
}
