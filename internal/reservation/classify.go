package reservation

import (
	"errors"

	"github.com/aws/smithy-go"
)

// retryableCodes lists the error codes the provider uses to signal a
// transient capacity shortage. The API has emitted several spellings over
// time; all are treated identically.
var retryableCodes = map[string]bool{
	"InsufficientInstanceCapacity": true,
	"InsufficientCapacity":         true,
	"InsufficientCapacityError":    true,
}

// Classify maps the raw result of a creation call to exactly one outcome
// variant. It is a pure function of the error code: a nil error yields
// Succeeded, a capacity-shortage code yields Retryable, and everything else,
// including errors that are not provider API errors at all, yields Fatal.
func Classify(rec *Record, err error) Outcome {
	if err == nil {
		return Succeeded(rec)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && retryableCodes[apiErr.ErrorCode()] {
		return Retryable(err)
	}
	return Fatal(err)
}
