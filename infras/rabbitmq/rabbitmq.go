package rabbitmq

import (
	"context"
	"fmt"
	"lessons/config"
	"lessons/shared/constant"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const exchangeKind = "topic"

// Connection owns one AMQP connection and channel bound to a durable topic exchange.
type Connection struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	queue    string
}

func New(cfg *config.Config) (*Connection, error) {
	conn, err := amqp.Dial(cfg.Broker.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("open channel: %w", err)
	}

	exchange := cfg.Broker.RabbitMQ.Exchange
	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info().Str("exchange", exchange).Msg("Connected to RabbitMQ")

	return &Connection{conn: conn, ch: ch, exchange: exchange, queue: cfg.Broker.RabbitMQ.Queue}, nil
}

// Publish sends a persistent message routed by key.
func (c *Connection) Publish(ctx context.Context, routingKey, messageID string, body []byte) error {
	err := c.ch.PublishWithContext(ctx, c.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	return nil
}

// Deliveries declares the configured durable queue, binds it to the routing keys and starts consuming with manual acks.
func (c *Connection) Deliveries(ctx context.Context, keys ...string) (<-chan amqp.Delivery, error) {
	q, err := c.ch.QueueDeclare(c.queue, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	for _, key := range keys {
		if err := c.ch.QueueBind(q.Name, key, c.exchange, false, nil); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	deliveries, err := c.ch.ConsumeWithContext(ctx, q.Name, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume %s: %w", q.Name, err)
	}

	return deliveries, nil
}

func (c *Connection) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}

	return nil
}
