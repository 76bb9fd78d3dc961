package commands_test

import (
	"errors"
	"testing"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	now := time.Now()
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		order.NewOrderID(),
		testDetails(),
		[]order.StoredFile{{
			Name:         "123-abc.pdf",
			OriginalName: "thesis.pdf",
			Size:         42,
			MIMEType:     "application/pdf",
			Path:         "uploads/123-abc.pdf",
			UploadDate:   now,
		}},
		status,
		160,
		now,
		now,
	)
	require.NoError(t, err)
	return o
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("requires order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("", "processing")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("ORD-1-ff", "shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("parses valid status", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1-ff", "completed")
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, cmd.Status())
		assert.Equal(t, "ORD-1-ff", cmd.OrderID())
	})
}

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("applies allowed transition", func(t *testing.T) {
		current := storedOrder(t, order.StatusPending)
		updated := storedOrder(t, order.StatusProcessing)

		repo := new(MockOrderRepository)
		repo.On("GetByOrderID", mock.Anything, current.OrderID()).Return(current, nil).Once()
		repo.On("UpdateStatus", mock.Anything, current.OrderID(), order.StatusProcessing).
			Return(updated, nil).Once()

		cmd, err := commands.NewUpdateOrderStatusCommand(current.OrderID(), "processing")
		require.NoError(t, err)

		h := commands.NewUpdateOrderStatusCommandHandler(repo)
		got, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, order.StatusProcessing, got.Status())
		repo.AssertExpectations(t)
	})

	t.Run("unknown order", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("GetByOrderID", mock.Anything, "ORD-0-00").
			Return(nil, errs.NewObjectNotFoundError("orderId", "ORD-0-00")).Once()

		cmd, err := commands.NewUpdateOrderStatusCommand("ORD-0-00", "completed")
		require.NoError(t, err)

		h := commands.NewUpdateOrderStatusCommandHandler(repo)
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unconstructed command", func(t *testing.T) {
		h := commands.NewUpdateOrderStatusCommandHandler(new(MockOrderRepository))
		_, err := h.Handle(t.Context(), commands.UpdateOrderStatusCommand{})
		require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})

	t.Run("repository failure on update", func(t *testing.T) {
		current := storedOrder(t, order.StatusPending)
		dbErr := errors.New("connection reset")

		repo := new(MockOrderRepository)
		repo.On("GetByOrderID", mock.Anything, current.OrderID()).Return(current, nil).Once()
		repo.On("UpdateStatus", mock.Anything, current.OrderID(), order.StatusCancelled).
			Return(nil, dbErr).Once()

		cmd, err := commands.NewUpdateOrderStatusCommand(current.OrderID(), "cancelled")
		require.NoError(t, err)

		h := commands.NewUpdateOrderStatusCommandHandler(repo)
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, dbErr)
	})
}
