// Package reservation implements the capacity reservation retry workflow:
// the typed request and record values, the outcome classifier, the fixed
// delay retry policy with its named presets, and the driver that issues one
// creation call per attempt until it succeeds, exhausts its attempt ceiling,
// runs out of wall-clock budget, or hits a non-retryable provider error.
package reservation
