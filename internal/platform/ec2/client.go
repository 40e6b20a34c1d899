package ec2

import (
	"context"

	"github.com/imamik/capreserve/internal/reservation"
)

// Client defines the provider operations the CLI needs. RealClient talks to
// the live EC2 API; Stub replays scripted responses.
type Client interface {
	// CreateCapacityReservation issues one creation call for the request.
	CreateCapacityReservation(ctx context.Context, req reservation.Request) (*reservation.Record, error)

	// CancelCapacityReservation cancels an existing reservation by its
	// identifier. It is invoked only on explicit caller request, never
	// automatically by the retry driver.
	CancelCapacityReservation(ctx context.Context, reservationID string) error
}
