package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moura95/passmeter/internal/domain/strength"
	"github.com/streadway/amqp"
)

type Publisher struct {
	connection *Connection
	queueName  string
	publish    func(queueName string, message amqp.Publishing) error
}

func NewPublisher(connection *Connection, queueName string) *Publisher {
	return &Publisher{
		connection: connection,
		queueName:  queueName,
		publish:    connection.publish,
	}
}

func (p *Publisher) PublishEvaluation(ctx context.Context, evaluation *strength.Evaluation) error {
	if evaluation == nil {
		return fmt.Errorf("rabbitmq: evaluation is required")
	}

	message := strength.QueueMessage{
		EvaluationID: evaluation.ID,
		Type:         strength.MessageTypeEvaluated,
		Data:         *evaluation,
	}

	amqpMessage, err := newPublishing(message, string(message.Type))
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("rabbitmq: publish cancelled: %w", err)
	}

	err = p.publish(p.queueName, amqpMessage)
	if err != nil {
		return fmt.Errorf("rabbitmq: failed to publish to %s: %w", p.queueName, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	// Publisher doesn't own the connection
	return nil
}

func newPublishing(message interface{}, messageType string) (amqp.Publishing, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("rabbitmq: failed to marshal message: %w", err)
	}

	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		ContentType:  "application/json",
		Type:         messageType,
		Body:         body,
		MessageId:    uuid.New().String(),
	}, nil
}
