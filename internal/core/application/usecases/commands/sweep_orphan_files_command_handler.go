package commands

import (
	"context"
	"log/slog"

	"printshop/internal/core/ports"
)

// SweepOrphanFilesCommandHandler reconciles the file store against the order
// records: storage objects older than the grace period that no order owns
// are deleted. This is the maintenance counterpart to the best-effort
// cleanup in the create and delete paths.
type SweepOrphanFilesCommandHandler struct {
	repo   ports.OrderRepository
	store  ports.FileStore
	logger *slog.Logger
}

// NewSweepOrphanFilesCommandHandler creates a handler for the orphan sweep.
func NewSweepOrphanFilesCommandHandler(
	repo ports.OrderRepository,
	store ports.FileStore,
	logger *slog.Logger,
) SweepOrphanFilesCommandHandler {
	return SweepOrphanFilesCommandHandler{
		repo:   repo,
		store:  store,
		logger: logger.With("component", "sweep_orphan_files_handler"),
	}
}

// Handle runs one sweep pass and returns how many orphans were removed.
// Individual failures are logged and skipped; the pass keeps going.
func (h *SweepOrphanFilesCommandHandler) Handle(
	ctx context.Context, cmd SweepOrphanFilesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	names, err := h.store.ListOlderThan(cmd.Grace())
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, name := range names {
		referenced, err := h.repo.IsFileReferenced(ctx, name)
		if err != nil {
			h.logger.ErrorContext(ctx, "Orphan check failed", "file", name, "error", err)
			continue
		}
		if referenced {
			continue
		}

		if err := h.store.Delete(name); err != nil {
			h.logger.ErrorContext(ctx, "Orphan deletion failed", "file", name, "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		h.logger.InfoContext(ctx, "Orphaned files removed", "count", removed)
	}
	return removed, nil
}
