package reservation

import (
	"context"
	"fmt"
	"time"
)

// CapacityReserver issues one reservation creation call against the provider
// or its simulation substitute.
type CapacityReserver interface {
	CreateCapacityReservation(ctx context.Context, req Request) (*Record, error)
}

// ExhaustedError is the terminal outcome when every permitted attempt ended
// in a capacity shortage. It carries the detail of the last failure.
type ExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no capacity after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastErr
}

// DeadlineError is the terminal outcome when the wall-clock budget was
// consumed before the reservation could be created. It is distinct from
// ExhaustedError so callers can tell "gave up due to time" from "gave up due
// to attempt count".
type DeadlineError struct {
	Attempts int
	Elapsed  time.Duration
	MaxWait  time.Duration
}

func (e *DeadlineError) Error() string {
	return fmt.Sprintf("wait budget of %s exceeded after %d attempts (elapsed %s)", e.MaxWait, e.Attempts, e.Elapsed.Round(time.Millisecond))
}

// Driver runs the reservation control loop: one creation call per attempt,
// classify, then sleep or abort according to the policy. A Driver is safe to
// reuse for sequential reservations but is not reentrant; callers needing
// parallel reservations must run independent drivers, each with its own
// attempt counter and clock.
type Driver struct {
	client   CapacityReserver
	policy   Policy
	observer Observer
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithObserver replaces the default console observer.
func WithObserver(o Observer) DriverOption {
	return func(d *Driver) {
		d.observer = o
	}
}

// NewDriver creates a driver for the given provider client and retry policy.
func NewDriver(client CapacityReserver, policy Policy, opts ...DriverOption) *Driver {
	d := &Driver{
		client:   client,
		policy:   policy,
		observer: NewConsoleObserver(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Reserve runs the attempt sequence until a terminal outcome is reached.
//
// Retryable capacity shortages are absorbed and logged until the attempt
// ceiling or the wall-clock budget runs out; fatal provider errors propagate
// immediately with no further attempts. On the final permitted attempt a
// shortage is reported as exhaustion even if time budget remains, and no
// sleep happens after that attempt. Before every attempt, including the
// first, elapsed time is checked against the budget; once at or over it the
// provider is not called again.
//
// Context cancellation is honored between attempts and during the
// inter-attempt sleep; an in-flight provider call is not interrupted beyond
// what the provider client itself does with the context.
func (d *Driver) Reserve(ctx context.Context, req Request) (*Record, error) {
	if err := d.policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid retry policy: %w", err)
	}

	start := time.Now()
	attempts := 0
	var lastErr error

	for {
		if elapsed := time.Since(start); elapsed >= d.policy.MaxWait {
			d.observer.Event(Event{
				Type:    EventReserveDeadline,
				Attempt: attempts,
				Message: fmt.Sprintf("wait budget %s consumed, giving up", d.policy.MaxWait),
				Fields:  map[string]string{"elapsed": elapsed.Round(time.Millisecond).String()},
			})
			return nil, &DeadlineError{Attempts: attempts, Elapsed: elapsed, MaxWait: d.policy.MaxWait}
		}

		attempts++
		d.observer.Event(Event{
			Type:        EventAttemptStarted,
			Attempt:     attempts,
			MaxAttempts: d.policy.MaxAttempts,
			Message:     fmt.Sprintf("requesting %s", req),
		})

		rec, err := d.client.CreateCapacityReservation(ctx, req)
		outcome := Classify(rec, err)

		switch outcome.Kind() {
		case OutcomeSucceeded:
			record := outcome.Record()
			d.observer.Event(Event{
				Type:        EventAttemptSucceeded,
				Attempt:     attempts,
				MaxAttempts: d.policy.MaxAttempts,
				Reservation: record.ID,
				Message:     fmt.Sprintf("reservation created, state %s", record.State),
			})
			return record, nil

		case OutcomeFatal:
			d.observer.Event(Event{
				Type:        EventAttemptFatal,
				Attempt:     attempts,
				MaxAttempts: d.policy.MaxAttempts,
				Message:     fmt.Sprintf("provider rejected request: %v", outcome.Err()),
			})
			return nil, fmt.Errorf("create capacity reservation: %w", outcome.Err())
		}

		// Retryable capacity shortage.
		lastErr = outcome.Err()
		d.observer.Event(Event{
			Type:        EventAttemptRetryable,
			Attempt:     attempts,
			MaxAttempts: d.policy.MaxAttempts,
			Message:     fmt.Sprintf("insufficient capacity: %v", lastErr),
		})

		// Attempt ceiling wins over the timeout check on the final attempt,
		// and there is no sleep after it.
		delay, ok := d.policy.NextDelay(attempts)
		if !ok {
			d.observer.Event(Event{
				Type:    EventReserveExhausted,
				Attempt: attempts,
				Message: fmt.Sprintf("attempt ceiling of %d reached, giving up", d.policy.MaxAttempts),
			})
			return nil, &ExhaustedError{Attempts: attempts, LastErr: lastErr}
		}

		if elapsed := time.Since(start); elapsed >= d.policy.MaxWait {
			d.observer.Event(Event{
				Type:    EventReserveDeadline,
				Attempt: attempts,
				Message: fmt.Sprintf("wait budget %s consumed, giving up without sleeping", d.policy.MaxWait),
				Fields:  map[string]string{"elapsed": elapsed.Round(time.Millisecond).String()},
			})
			return nil, &DeadlineError{Attempts: attempts, Elapsed: elapsed, MaxWait: d.policy.MaxWait}
		}

		d.observer.Event(Event{
			Type:        EventRetryWaiting,
			Attempt:     attempts,
			MaxAttempts: d.policy.MaxAttempts,
			Message:     fmt.Sprintf("retrying in %s", delay),
		})

		select {
		case <-ctx.Done():
			d.observer.Event(Event{
				Type:    EventReserveAborted,
				Attempt: attempts,
				Message: fmt.Sprintf("cancelled while waiting to retry: %v", ctx.Err()),
			})
			return nil, fmt.Errorf("reservation aborted after %d attempts: %w", attempts, ctx.Err())
		case <-time.After(delay):
		}
	}
}
