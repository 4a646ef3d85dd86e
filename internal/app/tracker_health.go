package app

import (
	"context"
	"errors"
)

// StoreCheckName identifies the tracker's stores in readiness reports.
const StoreCheckName = "tracker-store"

// CheckStores reports an error for every store that cannot accept inserts.
// It is registered as the StoreCheckName readiness check.
func (s *TrackerService) CheckStores(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var errs []error
	if !s.startups.Ready() {
		errs = append(errs, errors.New("startup store not initialized"))
	}
	if !s.phases.Ready() {
		errs = append(errs, errors.New("phase store not initialized"))
	}
	if !s.tasks.Ready() {
		errs = append(errs, errors.New("task store not initialized"))
	}
	return errors.Join(errs...)
}
