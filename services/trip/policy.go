package trip

import (
	"context"

	"github.com/rizaldy/angkut/internal/pkg/models"
)

// ClosingCancelPolicy closes canceled trips. The trip does not re-enter
// matching; the assigned driver, if any, goes back to idle.
type ClosingCancelPolicy struct {
	registry DriverRegistry
}

// NewClosingCancelPolicy creates the default cancellation policy
func NewClosingCancelPolicy(registry DriverRegistry) *ClosingCancelPolicy {
	return &ClosingCancelPolicy{registry: registry}
}

// OnCancel releases the trip's driver back to idle
func (p *ClosingCancelPolicy) OnCancel(ctx context.Context, trip *models.Trip) error {
	if trip.DriverID == nil {
		return nil
	}
	return p.registry.SetAvailability(ctx, trip.DriverID.String(), models.DriverIdle)
}

// BalanceSettlePolicy adds the finishing payment to whatever the rider
// already paid and reports the outstanding balance against the agreed cost.
// Payment collection itself lives outside this core.
type BalanceSettlePolicy struct {
	registry DriverRegistry
}

// NewBalanceSettlePolicy creates the default settlement policy
func NewBalanceSettlePolicy(registry DriverRegistry) *BalanceSettlePolicy {
	return &BalanceSettlePolicy{registry: registry}
}

// OnFinish releases the driver and computes the outstanding balance from
// the total paid so far, prior payments included
func (p *BalanceSettlePolicy) OnFinish(ctx context.Context, trip *models.Trip, paidAmount int64) (SettleOutcome, error) {
	if trip.DriverID != nil {
		if err := p.registry.SetAvailability(ctx, trip.DriverID.String(), models.DriverIdle); err != nil {
			return SettleOutcome{}, err
		}
	}

	totalPaid := trip.PaidAmount + paidAmount
	outstanding := trip.Cost - totalPaid
	if outstanding < 0 {
		outstanding = 0
	}
	return SettleOutcome{PaidAmount: totalPaid, Outstanding: outstanding}, nil
}
