package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/moura95/passmeter/internal/domain/strength"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	acked    int
	rejected int
	requeued bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked++
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.rejected++
	f.requeued = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.rejected++
	f.requeued = requeue
	return nil
}

type publishedMessage struct {
	queue   string
	message amqp.Publishing
}

func newTestConsumer(handler strength.MessageHandler) (*Consumer, *[]publishedMessage) {
	published := &[]publishedMessage{}
	consumer := NewConsumer(nil, "strength_evaluations")
	consumer.handler = handler
	consumer.publish = func(queue string, message amqp.Publishing) error {
		*published = append(*published, publishedMessage{queue: queue, message: message})
		return nil
	}
	return consumer, published
}

func newTestDelivery(t *testing.T, ack *fakeAcknowledger, headers amqp.Table) amqp.Delivery {
	t.Helper()

	evaluation, err := strength.NewEvaluation(strength.Evaluate("Tr0ub4dor", "", ""), 9, false)
	require.NoError(t, err)

	body, err := json.Marshal(strength.QueueMessage{
		EvaluationID: evaluation.ID,
		Type:         strength.MessageTypeEvaluated,
		Data:         *evaluation,
	})
	require.NoError(t, err)

	return amqp.Delivery{
		Acknowledger: ack,
		Headers:      headers,
		MessageId:    "msg-1",
		ContentType:  "application/json",
		Body:         body,
	}
}

func TestConsumer_HandleMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("should ack processed messages", func(t *testing.T) {
		var received strength.QueueMessage
		consumer, published := newTestConsumer(func(ctx context.Context, message strength.QueueMessage) error {
			received = message
			return nil
		})
		ack := &fakeAcknowledger{}

		consumer.handleMessage(ctx, newTestDelivery(t, ack, nil))

		assert.Equal(t, 1, ack.acked)
		assert.Equal(t, 0, ack.rejected)
		assert.Empty(t, *published)
		assert.Equal(t, strength.LabelStrong, received.Data.Label)
	})

	t.Run("should drop malformed messages", func(t *testing.T) {
		consumer, _ := newTestConsumer(func(ctx context.Context, message strength.QueueMessage) error {
			t.Fatal("handler must not run")
			return nil
		})
		ack := &fakeAcknowledger{}

		consumer.handleMessage(ctx, amqp.Delivery{Acknowledger: ack, Body: []byte("{not json")})

		assert.Equal(t, 1, ack.rejected)
		assert.False(t, ack.requeued)
	})

	t.Run("should drop invalid messages", func(t *testing.T) {
		consumer, _ := newTestConsumer(func(ctx context.Context, message strength.QueueMessage) error {
			t.Fatal("handler must not run")
			return nil
		})
		ack := &fakeAcknowledger{}

		consumer.handleMessage(ctx, amqp.Delivery{Acknowledger: ack, Body: []byte(`{"type":"strength.evaluated"}`)})

		assert.Equal(t, 1, ack.rejected)
		assert.False(t, ack.requeued)
	})

	t.Run("should republish failed messages with a retry counter", func(t *testing.T) {
		consumer, published := newTestConsumer(func(ctx context.Context, message strength.QueueMessage) error {
			return errors.New("database is down")
		})
		ack := &fakeAcknowledger{}

		consumer.handleMessage(ctx, newTestDelivery(t, ack, amqp.Table{retryCountHeader: int32(1)}))

		require.Len(t, *published, 1)
		retry := (*published)[0]
		assert.Equal(t, "strength_evaluations", retry.queue)
		assert.Equal(t, int32(2), retry.message.Headers[retryCountHeader])
		assert.Equal(t, "msg-1", retry.message.MessageId)
		assert.Equal(t, 1, ack.acked)
		assert.Equal(t, 0, ack.rejected)
	})

	t.Run("should drop messages past max retries", func(t *testing.T) {
		consumer, published := newTestConsumer(func(ctx context.Context, message strength.QueueMessage) error {
			return errors.New("database is down")
		})
		ack := &fakeAcknowledger{}

		consumer.handleMessage(ctx, newTestDelivery(t, ack, amqp.Table{retryCountHeader: int32(defaultMaxRetries)}))

		assert.Empty(t, *published)
		assert.Equal(t, 1, ack.rejected)
		assert.False(t, ack.requeued)
	})

	t.Run("should requeue when republishing fails", func(t *testing.T) {
		consumer, _ := newTestConsumer(func(ctx context.Context, message strength.QueueMessage) error {
			return errors.New("database is down")
		})
		consumer.publish = func(queue string, message amqp.Publishing) error {
			return errors.New("channel closed")
		}
		ack := &fakeAcknowledger{}

		consumer.handleMessage(ctx, newTestDelivery(t, ack, nil))

		assert.Equal(t, 1, ack.rejected)
		assert.True(t, ack.requeued)
	})
}

func TestGetRetryCount(t *testing.T) {
	assert.Equal(t, 0, getRetryCount(nil))
	assert.Equal(t, 0, getRetryCount(amqp.Table{"other": 1}))
	assert.Equal(t, 2, getRetryCount(amqp.Table{retryCountHeader: 2}))
	assert.Equal(t, 3, getRetryCount(amqp.Table{retryCountHeader: int32(3)}))
	assert.Equal(t, 4, getRetryCount(amqp.Table{retryCountHeader: int64(4)}))
	assert.Equal(t, 0, getRetryCount(amqp.Table{retryCountHeader: "5"}))
}

func TestConsumer_StartConsumingWithoutConnection(t *testing.T) {
	consumer := NewConsumer(nil, "strength_evaluations")

	err := consumer.StartConsuming(context.Background(), func(ctx context.Context, message strength.QueueMessage) error {
		return nil
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection is not available")
}
