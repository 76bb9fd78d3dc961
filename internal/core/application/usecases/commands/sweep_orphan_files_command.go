package commands

import (
	"errors"
	"time"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrSweepOrphanFilesCommandIsNotConstructed = errors.New(
	"SweepOrphanFilesCommand must be created via NewSweepOrphanFilesCommand constructor",
)

// SweepOrphanFilesCommand triggers one garbage-collection pass over storage
// objects that no order references. The grace period keeps the sweep away
// from files belonging to an order creation still in flight, where files
// legitimately precede their database record.
type SweepOrphanFilesCommand struct {
	grace time.Duration

	guard guard.ConstructorGuard
}

// NewSweepOrphanFilesCommand builds the command with a positive grace period.
func NewSweepOrphanFilesCommand(grace time.Duration) (SweepOrphanFilesCommand, error) {
	if grace <= 0 {
		return SweepOrphanFilesCommand{}, errs.NewValueIsInvalidError("grace period")
	}

	return SweepOrphanFilesCommand{
		grace: grace,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepOrphanFilesCommand) Validate() error {
	return c.guard.Validate(ErrSweepOrphanFilesCommandIsNotConstructed)
}

// Grace returns the minimum age a file must reach before it is eligible.
func (c SweepOrphanFilesCommand) Grace() time.Duration {
	return c.grace
}
