package ec2

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/smithy-go"

	"github.com/imamik/capreserve/internal/reservation"
)

var _ Client = (*Stub)(nil)
var _ Client = (*RealClient)(nil)

func stubRequest(t *testing.T) reservation.Request {
	t.Helper()
	req, err := reservation.NewRequest("t3.large", "Linux/UNIX", "us-east-1a", 2, true,
		reservation.TenancyDefault, reservation.EndDateUnlimited, nil,
		map[string]string{"team": "platform"})
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	return req
}

func TestStub_NoExpectationDeclared(t *testing.T) {
	stub := NewStub()
	stub.ScheduleSuccess()

	_, err := stub.CreateCapacityReservation(context.Background(), stubRequest(t))

	var contract *ContractError
	if !errors.As(err, &contract) {
		t.Fatalf("expected ContractError, got %v", err)
	}
}

func TestStub_RequestMismatch(t *testing.T) {
	req := stubRequest(t)
	stub := NewStub()
	stub.Expect(req)
	stub.ScheduleSuccess()

	other := req
	other.InstanceCount = 5

	_, err := stub.CreateCapacityReservation(context.Background(), other)

	var contract *ContractError
	if !errors.As(err, &contract) {
		t.Fatalf("expected ContractError, got %v", err)
	}
	if stub.Remaining() != 1 {
		t.Errorf("a mismatch must not consume the script, %d left", stub.Remaining())
	}
}

func TestStub_ScriptDrained(t *testing.T) {
	req := stubRequest(t)
	stub := NewStub()
	stub.Expect(req)
	stub.ScheduleSuccess()

	if _, err := stub.CreateCapacityReservation(context.Background(), req); err != nil {
		t.Fatalf("first call: %v", err)
	}

	_, err := stub.CreateCapacityReservation(context.Background(), req)
	var contract *ContractError
	if !errors.As(err, &contract) {
		t.Fatalf("expected ContractError once drained, got %v", err)
	}
	if stub.Calls() != 2 {
		t.Errorf("expected 2 calls, got %d", stub.Calls())
	}
}

func TestStub_CapacityErrorShape(t *testing.T) {
	req := stubRequest(t)
	stub := NewStub()
	stub.Expect(req)
	stub.ScheduleCapacityError()

	_, err := stub.CreateCapacityReservation(context.Background(), req)

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an API error, got %v", err)
	}
	if apiErr.ErrorCode() != "InsufficientInstanceCapacity" {
		t.Errorf("expected InsufficientInstanceCapacity, got %s", apiErr.ErrorCode())
	}
	if apiErr.ErrorMessage() != CapacityErrorMessage {
		t.Errorf("unexpected message: %s", apiErr.ErrorMessage())
	}

	if out := reservation.Classify(nil, err); out.Kind() != reservation.OutcomeRetryable {
		t.Errorf("scripted capacity error must classify retryable, got %s", out.Kind())
	}
}

func TestStub_ScheduledErrorsReplayInOrder(t *testing.T) {
	req := stubRequest(t)
	stub := NewStub()
	stub.Expect(req)
	stub.ScheduleError("InsufficientCapacity", "shortage")
	stub.ScheduleError("UnauthorizedOperation", "denied")

	for _, want := range []string{"InsufficientCapacity", "UnauthorizedOperation"} {
		_, err := stub.CreateCapacityReservation(context.Background(), req)
		var apiErr smithy.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected an API error, got %v", err)
		}
		if apiErr.ErrorCode() != want {
			t.Errorf("expected %s, got %s", want, apiErr.ErrorCode())
		}
	}
}

func TestStub_FabricatedRecord(t *testing.T) {
	req := stubRequest(t)
	stub := NewStub()
	stub.Expect(req)
	stub.ScheduleSuccess()

	before := time.Now().UTC()
	rec, err := stub.CreateCapacityReservation(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.ID != StubReservationID {
		t.Errorf("expected %s, got %s", StubReservationID, rec.ID)
	}
	if rec.OwnerID != stubOwnerID {
		t.Errorf("expected owner %s, got %s", stubOwnerID, rec.OwnerID)
	}
	wantARN := "arn:aws:ec2:region:123456789012:capacity-reservation/cr-mock-12345"
	if rec.ARN != wantARN {
		t.Errorf("expected ARN %s, got %s", wantARN, rec.ARN)
	}
	if rec.InstanceType != req.InstanceType || rec.Platform != req.Platform || rec.AvailabilityZone != req.AvailabilityZone {
		t.Errorf("request fields not echoed: %+v", rec)
	}
	if rec.TotalInstanceCount != 2 || rec.AvailableInstanceCount != 2 {
		t.Errorf("expected counts 2/2, got %d/%d", rec.TotalInstanceCount, rec.AvailableInstanceCount)
	}
	if !rec.EbsOptimized {
		t.Error("expected the EBS flag to be echoed")
	}
	if rec.State != reservation.StateActive {
		t.Errorf("expected active, got %s", rec.State)
	}
	if rec.StartDate.Before(before) || rec.CreateDate.Before(before) {
		t.Errorf("timestamps not current: start %v create %v", rec.StartDate, rec.CreateDate)
	}
	if rec.EndDate != nil {
		t.Errorf("unlimited reservation must carry no end date, got %v", rec.EndDate)
	}
	if rec.Tags["team"] != "platform" {
		t.Errorf("tags not echoed: %v", rec.Tags)
	}
}

func TestStub_FabricatedRecordLimitedEndDate(t *testing.T) {
	end := time.Date(2027, 1, 15, 12, 0, 0, 0, time.UTC)
	req, err := reservation.NewRequest("t3.micro", "Windows", "eu-west-1b", 1, false,
		reservation.TenancyDedicated, reservation.EndDateLimited, &end, nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}

	stub := NewStub()
	stub.Expect(req)
	stub.ScheduleSuccess()

	rec, err := stub.CreateCapacityReservation(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.EndDate == nil || !rec.EndDate.Equal(end) {
		t.Errorf("expected end date %v echoed, got %v", end, rec.EndDate)
	}
	if rec.Tenancy != reservation.TenancyDedicated {
		t.Errorf("expected dedicated tenancy, got %s", rec.Tenancy)
	}
}

func TestStub_CancelKnownReservation(t *testing.T) {
	req := stubRequest(t)
	stub := NewStub()
	stub.Expect(req)
	stub.ScheduleSuccess()

	rec, err := stub.CreateCapacityReservation(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := stub.CancelCapacityReservation(context.Background(), rec.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if rec.State != reservation.StateCancelled {
		t.Errorf("expected cancelled, got %s", rec.State)
	}
}

func TestStub_CancelUnknownReservation(t *testing.T) {
	stub := NewStub()

	err := stub.CancelCapacityReservation(context.Background(), "cr-does-not-exist")

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an API error, got %v", err)
	}
	if apiErr.ErrorCode() != "InvalidCapacityReservationId.NotFound" {
		t.Errorf("expected NotFound, got %s", apiErr.ErrorCode())
	}
}
