package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSweepOrphanFilesCommand(t *testing.T) {
	_, err := commands.NewSweepOrphanFilesCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewSweepOrphanFilesCommand(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cmd.Grace())
}

func TestSweepOrphanFilesCommandHandler_Handle(t *testing.T) {
	cmd, err := commands.NewSweepOrphanFilesCommand(time.Hour)
	require.NoError(t, err)

	t.Run("removes only unreferenced files", func(t *testing.T) {
		store := newFakeFileStore()
		store.stale = []string{"1-a.pdf", "2-b.pdf", "3-c.pdf"}

		repo := new(MockOrderRepository)
		repo.On("IsFileReferenced", mock.Anything, "1-a.pdf").Return(true, nil).Once()
		repo.On("IsFileReferenced", mock.Anything, "2-b.pdf").Return(false, nil).Once()
		repo.On("IsFileReferenced", mock.Anything, "3-c.pdf").Return(false, nil).Once()

		h := commands.NewSweepOrphanFilesCommandHandler(repo, store, slog.Default())
		removed, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, removed)
		assert.ElementsMatch(t, []string{"2-b.pdf", "3-c.pdf"}, store.deletedNames())
		repo.AssertExpectations(t)
	})

	t.Run("reference check failure skips the file", func(t *testing.T) {
		store := newFakeFileStore()
		store.stale = []string{"1-a.pdf", "2-b.pdf"}

		repo := new(MockOrderRepository)
		repo.On("IsFileReferenced", mock.Anything, "1-a.pdf").
			Return(false, errors.New("db hiccup")).Once()
		repo.On("IsFileReferenced", mock.Anything, "2-b.pdf").Return(false, nil).Once()

		h := commands.NewSweepOrphanFilesCommandHandler(repo, store, slog.Default())
		removed, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		assert.Equal(t, []string{"2-b.pdf"}, store.deletedNames())
	})

	t.Run("deletion failure keeps the pass going", func(t *testing.T) {
		store := newFakeFileStore()
		store.stale = []string{"1-a.pdf"}
		store.deleteErr = errors.New("busy")

		repo := new(MockOrderRepository)
		repo.On("IsFileReferenced", mock.Anything, "1-a.pdf").Return(false, nil).Once()

		h := commands.NewSweepOrphanFilesCommandHandler(repo, store, slog.Default())
		removed, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Zero(t, removed)
	})

	t.Run("unconstructed command", func(t *testing.T) {
		h := commands.NewSweepOrphanFilesCommandHandler(
			new(MockOrderRepository), newFakeFileStore(), slog.Default(),
		)
		_, err := h.Handle(t.Context(), commands.SweepOrphanFilesCommand{})
		require.ErrorIs(t, err, commands.ErrSweepOrphanFilesCommandIsNotConstructed)
	})
}
