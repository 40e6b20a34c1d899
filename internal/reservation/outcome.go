package reservation

// OutcomeKind identifies which variant an Outcome carries.
type OutcomeKind int

const (
	// OutcomeSucceeded means the provider created the reservation.
	OutcomeSucceeded OutcomeKind = iota
	// OutcomeRetryable means the provider signalled a transient capacity
	// shortage; the attempt may be repeated.
	OutcomeRetryable
	// OutcomeFatal means the provider rejected the request for a reason
	// retrying cannot fix (authorization, validation, quota, unknown code).
	OutcomeFatal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeRetryable:
		return "retryable"
	case OutcomeFatal:
		return "fatal"
	}
	return "unknown"
}

// Outcome is the classified result of one creation attempt. It is a tagged
// variant returned by value; no attempt result travels via panic or other
// stack-unwinding control flow.
type Outcome struct {
	kind   OutcomeKind
	record *Record
	err    error
}

// Succeeded wraps a reservation record in a success outcome.
func Succeeded(rec *Record) Outcome {
	return Outcome{kind: OutcomeSucceeded, record: rec}
}

// Retryable wraps a transient capacity-shortage error.
func Retryable(err error) Outcome {
	return Outcome{kind: OutcomeRetryable, err: err}
}

// Fatal wraps a non-retryable provider error.
func Fatal(err error) Outcome {
	return Outcome{kind: OutcomeFatal, err: err}
}

// Kind returns the variant tag.
func (o Outcome) Kind() OutcomeKind { return o.kind }

// Record returns the reservation record for a succeeded outcome, nil otherwise.
func (o Outcome) Record() *Record { return o.record }

// Err returns the failure detail for retryable and fatal outcomes, nil otherwise.
func (o Outcome) Err() error { return o.err }
