// Package config loads, validates, and writes the CLI configuration and
// converts it into the typed request and policy values the reservation
// driver consumes.
package config
