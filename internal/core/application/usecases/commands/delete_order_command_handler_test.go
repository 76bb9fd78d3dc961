package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewDeleteOrderCommand("ORD-1-ff")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1-ff", cmd.OrderID())
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("removes files then record", func(t *testing.T) {
		aggregate := storedOrder(t, order.StatusCompleted)

		store := newFakeFileStore()
		repo := new(MockOrderRepository)
		repo.On("GetByOrderID", mock.Anything, aggregate.OrderID()).Return(aggregate, nil).Once()
		repo.On("Delete", mock.Anything, aggregate.OrderID()).Return(nil).Once()

		cmd, err := commands.NewDeleteOrderCommand(aggregate.OrderID())
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(repo, store, slog.Default())
		require.NoError(t, h.Handle(t.Context(), cmd))

		repo.AssertExpectations(t)
		assert.Equal(t, []string{"123-abc.pdf"}, store.deletedNames())
	})

	t.Run("file deletion failure does not block the record", func(t *testing.T) {
		aggregate := storedOrder(t, order.StatusCancelled)

		store := newFakeFileStore()
		store.deleteErr = errors.New("read-only filesystem")

		repo := new(MockOrderRepository)
		repo.On("GetByOrderID", mock.Anything, aggregate.OrderID()).Return(aggregate, nil).Once()
		repo.On("Delete", mock.Anything, aggregate.OrderID()).Return(nil).Once()

		cmd, err := commands.NewDeleteOrderCommand(aggregate.OrderID())
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(repo, store, slog.Default())
		require.NoError(t, h.Handle(t.Context(), cmd))
		repo.AssertExpectations(t)
	})

	t.Run("repeated delete surfaces not found", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("GetByOrderID", mock.Anything, "ORD-0-00").
			Return(nil, errs.NewObjectNotFoundError("orderId", "ORD-0-00")).Once()

		cmd, err := commands.NewDeleteOrderCommand("ORD-0-00")
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(repo, newFakeFileStore(), slog.Default())
		err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unconstructed command", func(t *testing.T) {
		h := commands.NewDeleteOrderCommandHandler(
			new(MockOrderRepository), newFakeFileStore(), slog.Default(),
		)
		err := h.Handle(t.Context(), commands.DeleteOrderCommand{})
		require.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
	})
}
