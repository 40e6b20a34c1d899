package reservation

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal logging interface the driver needs.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during a
// reservation sequence. The driver receives it explicitly; there is no
// package-level mutable logging state.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured reservation event.
type Event struct {
	Type        EventType         // Type of event
	Attempt     int               // Attempt ordinal (1-based), 0 if not attempt-scoped
	MaxAttempts int               // Attempt ceiling for context, 0 if not attempt-scoped
	Message     string            // Human-readable message
	Reservation string            // Reservation identifier if known
	Timestamp   time.Time         // When the event occurred
	Fields      map[string]string // Additional contextual fields
}

// EventType represents the type of reservation event.
type EventType string

const (
	// EventAttemptStarted indicates a creation attempt is being issued.
	EventAttemptStarted EventType = "attempt.started"
	// EventAttemptRetryable indicates an attempt failed with a capacity shortage.
	EventAttemptRetryable EventType = "attempt.retryable"
	// EventAttemptFatal indicates an attempt failed with a non-retryable error.
	EventAttemptFatal EventType = "attempt.fatal"
	// EventAttemptSucceeded indicates an attempt created the reservation.
	EventAttemptSucceeded EventType = "attempt.succeeded"

	// EventRetryWaiting indicates the driver is sleeping before the next attempt.
	EventRetryWaiting EventType = "retry.waiting"

	// EventReserveExhausted indicates the attempt ceiling was consumed.
	EventReserveExhausted EventType = "reserve.exhausted"
	// EventReserveDeadline indicates the wall-clock budget was consumed.
	EventReserveDeadline EventType = "reserve.deadline"
	// EventReserveAborted indicates the caller cancelled between attempts.
	EventReserveAborted EventType = "reserve.aborted"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		contextFields: make(map[string]string),
	}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements the Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	// Merge context fields
	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	log.Print(o.formatEvent(event))
}

// WithFields implements the Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string)
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &ConsoleObserver{
		contextFields: newFields,
	}
}

// formatEvent formats an event for console output.
func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))

	if event.Attempt > 0 {
		if event.MaxAttempts > 0 {
			parts = append(parts, fmt.Sprintf("[attempt %d/%d]", event.Attempt, event.MaxAttempts))
		} else {
			parts = append(parts, fmt.Sprintf("[attempt %d]", event.Attempt))
		}
	}

	if event.Reservation != "" {
		parts = append(parts, fmt.Sprintf("reservation=%s", event.Reservation))
	}

	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}
