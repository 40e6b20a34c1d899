// Package wizard implements the interactive prompt sequence that walks
// through every reservation parameter and produces a CLI configuration.
package wizard
