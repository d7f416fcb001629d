package broker

//go:generate go run go.uber.org/mock/mockgen -source=./broker.go -destination=./mocks/broker_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"lessons/config"
	"lessons/infras/kafka"
	"lessons/infras/otel"
	"lessons/infras/rabbitmq"
	"lessons/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Message is a delivered event, independent of the transport it came from.
type Message struct {
	Topic string
	Key   string
	Body  []byte
}

// Handler processes one message. Returning an error leaves it for redelivery.
type Handler func(ctx context.Context, msg Message) error

type Publisher interface {
	Publish(ctx context.Context, topic, key string, value any) error
	Close() error
}

type Consumer interface {
	Consume(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// NewPublisher picks the transport named by BROKER_DRIVER.
func NewPublisher(cfg *config.Config, otl otel.Otel) (Publisher, error) {
	switch cfg.Broker.Driver {
	case constant.BrokerDriverKafka:
		return &kafkaBroker{client: kafka.New(cfg), otel: otl}, nil
	case constant.BrokerDriverRabbitMQ:
		conn, err := rabbitmq.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect rabbitmq publisher: %w", err)
		}

		return &rabbitBroker{conn: conn, otel: otl}, nil
	case constant.BrokerDriverNone, constant.Empty:
		return noopBroker{}, nil
	default:
		return nil, fmt.Errorf("unknown broker driver %q", cfg.Broker.Driver)
	}
}

func NewConsumer(cfg *config.Config, otl otel.Otel) (Consumer, error) {
	switch cfg.Broker.Driver {
	case constant.BrokerDriverKafka:
		return &kafkaBroker{client: kafka.New(cfg), otel: otl}, nil
	case constant.BrokerDriverRabbitMQ:
		conn, err := rabbitmq.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect rabbitmq consumer: %w", err)
		}

		return &rabbitBroker{conn: conn, otel: otl}, nil
	default:
		return nil, fmt.Errorf("broker driver %q cannot consume", cfg.Broker.Driver)
	}
}

type kafkaBroker struct {
	client kafka.Client
	otel   otel.Otel
}

func (b *kafkaBroker) Publish(ctx context.Context, topic, key string, value any) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBrokerScopeName, constant.OtelBrokerScopeName+".kafka.Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("topic", topic)

	return b.client.SendMessages(ctx, topic, kafka.Message{Key: key, Value: value}) //nolint:wrapcheck
}

func (b *kafkaBroker) Consume(ctx context.Context, topic string, handler Handler) error {
	return b.client.Consume(ctx, "", topic, func(ctx context.Context, msg kafkaGo.Message) error { //nolint:wrapcheck
		return handler(ctx, Message{Topic: msg.Topic, Key: string(msg.Key), Body: msg.Value})
	})
}

func (b *kafkaBroker) Close() error {
	return b.client.Close() //nolint:wrapcheck
}

type rabbitBroker struct {
	conn *rabbitmq.Connection
	otel otel.Otel
}

func (b *rabbitBroker) Publish(ctx context.Context, topic, key string, value any) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBrokerScopeName, constant.OtelBrokerScopeName+".rabbitmq.Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("topic", topic)

	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", topic, err)
	}

	return b.conn.Publish(ctx, topic, key, body) //nolint:wrapcheck
}

// Consume acks handled messages and requeues failed ones. It blocks until ctx is done
// or the channel closes.
func (b *rabbitBroker) Consume(ctx context.Context, topic string, handler Handler) error {
	deliveries, err := b.conn.Deliveries(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to start consuming %s: %w", topic, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			if err := handler(ctx, Message{Topic: d.RoutingKey, Key: d.MessageId, Body: d.Body}); err != nil {
				log.Error().Err(err).Str("topic", d.RoutingKey).Msg("handler failed, requeueing message")

				_ = d.Nack(false, !d.Redelivered)

				continue
			}

			_ = d.Ack(false)
		}
	}
}

func (b *rabbitBroker) Close() error {
	return b.conn.Close() //nolint:wrapcheck
}

type noopBroker struct{}

func (noopBroker) Publish(_ context.Context, topic, key string, _ any) error {
	log.Debug().Str("topic", topic).Str("key", key).Msg("broker disabled, dropping event")

	return nil
}

func (noopBroker) Close() error {
	return nil
}
