package reservation

import (
	"fmt"
	"time"
)

// Policy holds the retry configuration for one reservation sequence: how many
// attempts may be made, the fixed delay between attempts, and a hard
// wall-clock budget that is enforced independently of the attempt counter.
//
// The delay is deliberately constant rather than exponential: capacity
// shortages clear on the provider's schedule, not ours, so the presets poll
// at a steady interval.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	MaxWait     time.Duration
}

// DefaultMaxWait is the wall-clock budget presets carry unless overridden.
const DefaultMaxWait = time.Hour

// Named presets.
var (
	// Fast makes a few quick attempts with short delays.
	Fast = Policy{MaxAttempts: 3, Delay: 1 * time.Second, MaxWait: DefaultMaxWait}
	// Slow makes fewer attempts with longer delays.
	Slow = Policy{MaxAttempts: 2, Delay: 2 * time.Second, MaxWait: DefaultMaxWait}
	// Extensive makes many attempts with longer delays.
	Extensive = Policy{MaxAttempts: 20, Delay: 3 * time.Second, MaxWait: DefaultMaxWait}
)

// PresetByName resolves a preset name to its policy.
func PresetByName(name string) (Policy, bool) {
	switch name {
	case "fast":
		return Fast, true
	case "slow":
		return Slow, true
	case "extensive":
		return Extensive, true
	}
	return Policy{}, false
}

// PresetNames lists the recognized preset names.
func PresetNames() []string {
	return []string{"fast", "slow", "extensive"}
}

// Option is a functional option overriding a single policy field.
type Option func(*Policy)

// WithMaxAttempts overrides the attempt ceiling.
func WithMaxAttempts(n int) Option {
	return func(p *Policy) {
		p.MaxAttempts = n
	}
}

// WithDelay overrides the fixed inter-attempt delay.
func WithDelay(d time.Duration) Option {
	return func(p *Policy) {
		p.Delay = d
	}
}

// WithMaxWait overrides the wall-clock budget.
func WithMaxWait(d time.Duration) Option {
	return func(p *Policy) {
		p.MaxWait = d
	}
}

// NewPolicy applies the options to a base policy (usually a preset) and
// validates the result.
func NewPolicy(base Policy, opts ...Option) (Policy, error) {
	p := base
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// Validate checks the policy invariants.
func (p Policy) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", p.MaxAttempts)
	}
	if p.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", p.Delay)
	}
	if p.MaxWait <= 0 {
		return fmt.Errorf("max wait must be positive, got %s", p.MaxWait)
	}
	return nil
}

// NextDelay returns the delay to sleep after the given completed attempt
// (1-based) before the next one. ok is false once the attempt ceiling is
// reached, meaning stop, do not retry. The wall-clock budget is enforced
// separately by the driver.
func (p Policy) NextDelay(attempt int) (delay time.Duration, ok bool) {
	if attempt >= p.MaxAttempts {
		return 0, false
	}
	return p.Delay, true
}
