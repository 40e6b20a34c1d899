// Package ec2 provides the provider boundary for capacity reservations: a
// real client backed by the AWS EC2 API and a deterministic stub that replays
// scripted responses for simulation runs and tests.
package ec2
