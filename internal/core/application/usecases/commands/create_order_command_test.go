package commands_test

import (
	"math"
	"testing"

	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("  Asha ", "Metro City", 8)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Asha", cmd.CustomerName())
	assert.Equal(t, "Metro City", cmd.Destination())
	assert.InDelta(t, 8.0, cmd.Weight().Value(), 0)
}

func TestNewCreateOrderCommand_EmptyCustomerName(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("   ", "Metro City", 8)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_EmptyDestination(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("Asha", "", 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDestinationIsRequired)
}

func TestNewCreateOrderCommand_InvalidWeight(t *testing.T) {
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := commands.NewCreateOrderCommand("Asha", "Metro City", w)
		require.Error(t, err, "weight %v", w)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewCreateOrderCommand_CollectsAllErrors(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", "", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrDestinationIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_ZeroValueIsNotValid(t *testing.T) {
	err := commands.CreateOrderCommand{}.Validate()
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
