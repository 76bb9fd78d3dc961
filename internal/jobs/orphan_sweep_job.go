package jobs

import (
	"context"
	"log/slog"
	"time"

	"printshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrphanSweepJob periodically reconciles the upload directory against the
// order records, deleting files no order references once they outlive the
// grace period.
type OrphanSweepJob struct {
	handler commands.SweepOrphanFilesCommandHandler
	grace   time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrphanSweepJob creates a job that sweeps orphaned files every hour.
// The grace period keeps files of in-flight order creations off limits.
func NewOrphanSweepJob(
	handler commands.SweepOrphanFilesCommandHandler,
	grace time.Duration,
	logger *slog.Logger,
) *OrphanSweepJob {
	return &OrphanSweepJob{
		handler: handler,
		grace:   grace,
		cron:    cron.New(),
		logger:  logger.With("component", "orphan_sweep_job"),
	}
}

// Start schedules the hourly sweep.
func (j *OrphanSweepJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, err := commands.NewSweepOrphanFilesCommand(j.grace)
		if err != nil {
			j.logger.ErrorContext(ctx, "Orphan sweep misconfigured", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Orphan sweep failed", "error", err)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Orphan sweep finished", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphan sweep job started (running hourly)")
	return nil
}

// Stop stops the orphan sweep job.
func (j *OrphanSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Orphan sweep job stopped")
}
