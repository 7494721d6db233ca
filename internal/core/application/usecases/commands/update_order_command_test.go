package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_AllFieldsOptional(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, userID,
		nil, nil, nil, nil, nil, nil, nil, nil,
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Nil(t, cmd.CustomerName())
	assert.Nil(t, cmd.DeliveryFee())
	assert.Nil(t, cmd.Status())
	assert.Nil(t, cmd.AddedByID())
}

func TestNewUpdateOrderCommand_WithFields(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	name := "John"
	fee := cmdMoney(t, "80.00")
	status := order.Completed
	notes := "leave at the door"

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, userID,
		&name, nil, nil, &fee, nil, &status, &ownerID, &notes,
	)

	require.NoError(t, err)
	require.NotNil(t, cmd.CustomerName())
	assert.Equal(t, "John", *cmd.CustomerName())
	require.NotNil(t, cmd.DeliveryFee())
	assert.True(t, cmd.DeliveryFee().IsEqual(fee))
	require.NotNil(t, cmd.Status())
	assert.Equal(t, order.Completed, *cmd.Status())
	require.NotNil(t, cmd.AddedByID())
	assert.True(t, cmd.AddedByID().IsEqual(ownerID))
	require.NotNil(t, cmd.Notes())
	assert.Equal(t, "leave at the door", *cmd.Notes())
}

func TestNewUpdateOrderCommand_InvalidOptionalValues(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()

	badStatus := order.Status(42)
	_, err := commands.NewUpdateOrderCommand(
		orderID, userID,
		nil, nil, nil, nil, nil, &badStatus, nil, nil,
	)
	require.Error(t, err)

	badOwner := kernel.UUID{}
	_, err = commands.NewUpdateOrderCommand(
		orderID, userID,
		nil, nil, nil, nil, nil, nil, &badOwner, nil,
	)
	require.Error(t, err)
}

func TestUpdateOrderCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.UpdateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
}
