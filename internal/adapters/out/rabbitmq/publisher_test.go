package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"backoffice/internal/adapters/out/rabbitmq"
	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	declaredExchange string
	declaredKind     string
	publishedBody    []byte
	publishErr       error
	closed           bool
}

func (c *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp.Table) error {
	c.declaredExchange = name
	c.declaredKind = kind
	return nil
}

func (c *fakeChannel) Publish(_, _ string, _, _ bool, msg amqp.Publishing) error {
	if c.publishErr != nil {
		return c.publishErr
	}
	c.publishedBody = msg.Body
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

type fakeConnection struct {
	channel    *fakeChannel
	channelErr error
}

func (c *fakeConnection) Channel() (rabbitmq.Channel, error) {
	if c.channelErr != nil {
		return nil, c.channelErr
	}
	return c.channel, nil
}

func (c *fakeConnection) Close() error { return nil }

func (c *fakeConnection) IsClosed() bool { return false }

func testOrder(t *testing.T, shopID, driverID kernel.UUID) *order.Order {
	t.Helper()

	fee, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("75.00")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Jane Customer", "0123456789", "12 Side Street",
		fee, total, shopID, "",
	)
	require.NoError(t, err)

	rate, err := kernel.PercentageFromString("5")
	require.NoError(t, err)
	driver, err := account.NewAccount(
		driverID, "Test Driver", "0987654321",
		account.RoleDriver, rate,
		true, true, true,
	)
	require.NoError(t, err)

	require.NoError(t, o.Accept(driver))
	return o
}

func TestEventPublisher_Publish(t *testing.T) {
	shopID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	o := testOrder(t, shopID, driverID)

	channel := &fakeChannel{}
	publisher := rabbitmq.NewEventPublisher(&fakeConnection{channel: channel})

	err := publisher.Publish(context.Background(), order.NewOrderAcceptedEvent(o))

	require.NoError(t, err)
	assert.Equal(t, "notifications_fanout", channel.declaredExchange)
	assert.Equal(t, "fanout", channel.declaredKind)
	assert.True(t, channel.closed)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(channel.publishedBody, &msg))

	assert.Equal(t, "order_accepted", msg["name"])
	assert.Equal(t, shopID.String(), msg["target_user_id"])

	payload, ok := msg["order"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, o.ID().String(), payload["order_id"])
	assert.Equal(t, "Jane Customer", payload["customer_name"])
	assert.Equal(t, driverID.String(), payload["delivery_by_id"])
	assert.Equal(t, float64(order.Accepted), payload["status"])

	notifiable, ok := msg["notifiable"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, o.ID().String(), notifiable["id"])
}

func TestEventPublisher_Publish_ChannelError(t *testing.T) {
	publisher := rabbitmq.NewEventPublisher(&fakeConnection{
		channelErr: errors.New("connection refused"),
	})

	o := testOrder(t, kernel.NewUUID(), kernel.NewUUID())
	err := publisher.Publish(context.Background(), order.NewOrderAcceptedEvent(o))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open channel")
}

func TestEventPublisher_Publish_PublishError(t *testing.T) {
	channel := &fakeChannel{publishErr: errors.New("broker gone")}
	publisher := rabbitmq.NewEventPublisher(&fakeConnection{channel: channel})

	o := testOrder(t, kernel.NewUUID(), kernel.NewUUID())
	err := publisher.Publish(context.Background(), order.NewOrderAcceptedEvent(o))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
	assert.True(t, channel.closed)
}
