package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/moura95/passmeter/internal/domain/strength"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const (
	retryCountHeader  = "retry_count"
	defaultMaxRetries = 3
	processTimeout    = 30 * time.Second
)

type Consumer struct {
	connection *Connection
	queueName  string
	maxRetries int
	handler    strength.MessageHandler
	validator  *strength.EvaluationValidator
	logger     *zap.SugaredLogger
	publish    func(queueName string, message amqp.Publishing) error
}

func NewConsumer(connection *Connection, queueName string) *Consumer {
	logger := zap.NewNop().Sugar()
	if connection != nil && connection.logger != nil {
		logger = connection.logger
	}

	return &Consumer{
		connection: connection,
		queueName:  queueName,
		maxRetries: defaultMaxRetries,
		validator:  strength.NewEvaluationValidator(),
		logger:     logger,
		publish:    connection.publish,
	}
}

func (c *Consumer) StartConsuming(ctx context.Context, handler strength.MessageHandler) error {
	if !c.connection.IsConnected() {
		return fmt.Errorf("consumer: RabbitMQ connection is not available")
	}

	c.handler = handler

	// Process one message at a time
	err := c.connection.Channel().Qos(
		1,     // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		return fmt.Errorf("consumer: failed to set QoS: %w", err)
	}

	messages, err := c.connection.Channel().Consume(
		c.queueName, // queue
		"",          // consumer tag (empty = auto-generated)
		false,       // auto-ack (we'll ack manually)
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("consumer: failed to register consumer: %w", err)
	}

	c.logger.Infof("Consumer started for queue: %s", c.queueName)

	go c.processMessages(ctx, messages)

	return nil
}

func (c *Consumer) processMessages(ctx context.Context, messages <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Consumer context cancelled, stopping message processing")
			return
		case msg, ok := <-messages:
			if !ok {
				c.logger.Info("Message channel closed, stopping consumer")
				return
			}
			c.handleMessage(ctx, msg)
		}
	}
}

func (c *Consumer) handleMessage(ctx context.Context, delivery amqp.Delivery) {
	startTime := time.Now()
	messageID := delivery.MessageId

	var queueMessage strength.QueueMessage
	if err := json.Unmarshal(delivery.Body, &queueMessage); err != nil {
		c.logger.Warnf("Failed to unmarshal message ID %s: %v", messageID, err)
		c.rejectMessage(delivery, false) // Don't requeue malformed messages
		return
	}

	if err := c.validator.ValidateQueueMessage(queueMessage); err != nil {
		c.logger.Warnf("Invalid message ID %s: %v", messageID, err)
		c.rejectMessage(delivery, false)
		return
	}

	processCtx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()

	if err := c.handler(processCtx, queueMessage); err != nil {
		c.logger.Warnf("Failed to process message ID %s: %v", messageID, err)
		c.handleProcessingError(delivery)
		return
	}

	if err := delivery.Ack(false); err != nil {
		c.logger.Errorf("Failed to ack message ID %s: %v", messageID, err)
		return
	}

	c.logger.Debugf("Processed message ID %s in %v", messageID, time.Since(startTime))
}

// handleProcessingError republishes the delivery with an incremented retry
// counter and acks the current delivery; past maxRetries the message is dropped.
func (c *Consumer) handleProcessingError(delivery amqp.Delivery) {
	retryCount := getRetryCount(delivery.Headers)

	if retryCount >= c.maxRetries {
		c.logger.Errorf("Message ID %s exceeded max retries (%d), dropping", delivery.MessageId, c.maxRetries)
		c.rejectMessage(delivery, false)
		return
	}

	headers := amqp.Table{}
	for k, v := range delivery.Headers {
		headers[k] = v
	}
	headers[retryCountHeader] = int32(retryCount + 1)

	retry := amqp.Publishing{
		Headers:      headers,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		ContentType:  delivery.ContentType,
		Type:         delivery.Type,
		MessageId:    delivery.MessageId,
		Body:         delivery.Body,
	}

	if err := c.publish(c.queueName, retry); err != nil {
		c.logger.Errorf("Failed to republish message ID %s: %v", delivery.MessageId, err)
		c.rejectMessage(delivery, true)
		return
	}

	c.logger.Infof("Requeued message ID %s (retry %d/%d)", delivery.MessageId, retryCount+1, c.maxRetries)
	if err := delivery.Ack(false); err != nil {
		c.logger.Errorf("Failed to ack message ID %s: %v", delivery.MessageId, err)
	}
}

func getRetryCount(headers amqp.Table) int {
	if headers == nil {
		return 0
	}

	switch count := headers[retryCountHeader].(type) {
	case int:
		return count
	case int32:
		return int(count)
	case int64:
		return int(count)
	default:
		return 0
	}
}

func (c *Consumer) rejectMessage(delivery amqp.Delivery, requeue bool) {
	if err := delivery.Reject(requeue); err != nil {
		c.logger.Errorf("Failed to reject message ID %s: %v", delivery.MessageId, err)
	}
}

func (c *Consumer) Close() error {
	// Consumer doesn't own the connection
	return nil
}

func (c *Consumer) GetQueueName() string {
	return c.queueName
}
