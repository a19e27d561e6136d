package queues

import (
	"context"
	"fmt"

	"github.com/moura95/passmeter/internal/domain/strength"
	"github.com/moura95/passmeter/internal/infra/messaging/rabbitmq"
)

// EvaluationQueue pairs the publisher and consumer of one evaluations queue.
type EvaluationQueue struct {
	publisher *rabbitmq.Publisher
	consumer  *rabbitmq.Consumer
}

func NewEvaluationQueue(connection *rabbitmq.Connection, queueName string) *EvaluationQueue {
	return &EvaluationQueue{
		publisher: rabbitmq.NewPublisher(connection, queueName),
		consumer:  rabbitmq.NewConsumer(connection, queueName),
	}
}

func (eq *EvaluationQueue) PublishEvaluation(ctx context.Context, evaluation *strength.Evaluation) error {
	err := eq.publisher.PublishEvaluation(ctx, evaluation)
	if err != nil {
		return fmt.Errorf("evaluation queue: failed to publish evaluation: %w", err)
	}

	return nil
}

func (eq *EvaluationQueue) StartConsuming(ctx context.Context, handler strength.MessageHandler) error {
	err := eq.consumer.StartConsuming(ctx, handler)
	if err != nil {
		return fmt.Errorf("evaluation queue: failed to start consuming: %w", err)
	}

	return nil
}

func (eq *EvaluationQueue) Close() error {
	var publisherErr, consumerErr error

	if eq.publisher != nil {
		publisherErr = eq.publisher.Close()
	}

	if eq.consumer != nil {
		consumerErr = eq.consumer.Close()
	}

	if publisherErr != nil {
		return fmt.Errorf("failed to close publisher: %w", publisherErr)
	}

	if consumerErr != nil {
		return fmt.Errorf("failed to close consumer: %w", consumerErr)
	}

	return nil
}

var (
	_ strength.Publisher = (*EvaluationQueue)(nil)
	_ strength.Consumer  = (*EvaluationQueue)(nil)
)
