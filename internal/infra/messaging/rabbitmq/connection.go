package rabbitmq

import (
	"fmt"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

type Connection struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	url     string
	logger  *zap.SugaredLogger
}

type ConnectionConfig struct {
	URL        string
	Queues     []string
	MaxRetries int
	Logger     *zap.SugaredLogger
}

func NewConnection(config ConnectionConfig) (*Connection, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: url is required")
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = 5
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop().Sugar()
	}

	conn := &Connection{
		url:    config.URL,
		logger: config.Logger,
	}

	err := conn.connect(config.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	for _, queueName := range config.Queues {
		if err := conn.setupQueue(queueName); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to setup queue %s: %w", queueName, err)
		}
	}

	return conn, nil
}

func (c *Connection) connect(maxRetries int) error {
	var err error

	// Retry connection with backoff
	for i := 0; i < maxRetries; i++ {
		c.conn, err = amqp.Dial(c.url)
		if err == nil {
			break
		}

		c.logger.Warnf("Failed to connect to RabbitMQ (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(time.Duration(i+1) * time.Second)
	}

	if err != nil {
		return fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, err)
	}

	c.channel, err = c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}

	c.logger.Info("Successfully connected to RabbitMQ")
	return nil
}

func (c *Connection) setupQueue(queueName string) error {
	_, err := c.channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		amqp.Table{
			"x-message-ttl": int32(3600000), // 1 hour TTL
		},
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	c.logger.Infof("Queue %s declared", queueName)
	return nil
}

func (c *Connection) Channel() *amqp.Channel {
	return c.channel
}

func (c *Connection) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Connection) IsConnected() bool {
	return c != nil && c.conn != nil && !c.conn.IsClosed()
}

func (c *Connection) publish(queueName string, message amqp.Publishing) error {
	if !c.IsConnected() {
		return fmt.Errorf("rabbitmq: connection not available")
	}

	return c.channel.Publish(
		"",        // exchange (empty for direct queue)
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		message,
	)
}
