package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/capreserve/internal/platform/ec2"
)

// newCancelClient creates the provider client for cancel - replaceable in tests.
var newCancelClient = func(ctx context.Context, region string) (ec2.Client, error) {
	return ec2.NewRealClient(ctx, region)
}

// Cancel cancels an existing capacity reservation by identifier. This is the
// explicit cleanup operation; the create workflow never triggers it.
func Cancel(ctx context.Context, reservationID, region string) error {
	if reservationID == "" {
		return fmt.Errorf("reservation id is required")
	}

	client, err := newCancelClient(ctx, region)
	if err != nil {
		return err
	}

	if err := client.CancelCapacityReservation(ctx, reservationID); err != nil {
		return err
	}

	fmt.Printf("Cancelled capacity reservation %s\n", reservationID)
	return nil
}
