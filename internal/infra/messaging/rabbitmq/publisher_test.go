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

func TestPublisher_PublishEvaluation(t *testing.T) {
	evaluation, err := strength.NewEvaluation(strength.Evaluate("Ab3$Ab3$", "", ""), 8, false)
	require.NoError(t, err)

	t.Run("should publish a persistent JSON message", func(t *testing.T) {
		var gotQueue string
		var got amqp.Publishing
		publisher := NewPublisher(nil, "strength_evaluations")
		publisher.publish = func(queue string, message amqp.Publishing) error {
			gotQueue, got = queue, message
			return nil
		}

		err := publisher.PublishEvaluation(context.Background(), evaluation)

		require.NoError(t, err)
		assert.Equal(t, "strength_evaluations", gotQueue)
		assert.Equal(t, amqp.Persistent, got.DeliveryMode)
		assert.Equal(t, "application/json", got.ContentType)
		assert.Equal(t, string(strength.MessageTypeEvaluated), got.Type)
		assert.NotEmpty(t, got.MessageId)

		var message strength.QueueMessage
		require.NoError(t, json.Unmarshal(got.Body, &message))
		assert.Equal(t, evaluation.ID, message.EvaluationID)
		assert.Equal(t, strength.LabelVeryStrong, message.Data.Label)
		assert.NotContains(t, string(got.Body), "Ab3$Ab3$")
	})

	t.Run("should fail without a connection", func(t *testing.T) {
		publisher := NewPublisher(nil, "strength_evaluations")

		err := publisher.PublishEvaluation(context.Background(), evaluation)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection not available")
	})

	t.Run("should wrap broker errors", func(t *testing.T) {
		publisher := NewPublisher(nil, "strength_evaluations")
		publisher.publish = func(queue string, message amqp.Publishing) error {
			return errors.New("channel closed")
		}

		err := publisher.PublishEvaluation(context.Background(), evaluation)

		assert.EqualError(t, err, "rabbitmq: failed to publish to strength_evaluations: channel closed")
	})

	t.Run("should not publish after cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		publisher := NewPublisher(nil, "strength_evaluations")
		publisher.publish = func(queue string, message amqp.Publishing) error {
			t.Fatal("publish must not run")
			return nil
		}

		err := publisher.PublishEvaluation(ctx, evaluation)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("should reject nil evaluations", func(t *testing.T) {
		err := NewPublisher(nil, "strength_evaluations").PublishEvaluation(context.Background(), nil)

		assert.Error(t, err)
	})
}
