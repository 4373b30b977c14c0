package commands_test

import (
	"testing"

	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(42, " InTransit ")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(42), cmd.OrderID())
	assert.Equal(t, order.InTransit, cmd.Status())
}

func TestNewChangeOrderStatusCommand_AcceptsUnknownStatus(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(1, "Lost")
	require.NoError(t, err)
	assert.Equal(t, order.Status("Lost"), cmd.Status())
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	for _, id := range []int64{0, -5} {
		_, err := commands.NewChangeOrderStatusCommand(id, "Delivered")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewChangeOrderStatusCommand_BlankStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(1, "  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrStatusIsRequired)
}

func TestChangeOrderStatusCommand_ZeroValueIsNotValid(t *testing.T) {
	err := commands.ChangeOrderStatusCommand{}.Validate()
	assert.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
