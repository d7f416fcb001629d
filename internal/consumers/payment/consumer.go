package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"lessons/config"
	"lessons/infras/broker"
	"lessons/infras/otel"
	"lessons/internal/domains/payment/model/dto"
	"lessons/internal/domains/payment/service"
	"lessons/shared/constant"
	"lessons/shared/failure"
	"lessons/shared/validator"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Consumer applies payment.paid events to the ledger through the same verification path
// as the HTTP confirm endpoint.
type Consumer struct {
	consumer broker.Consumer
	service  service.Payment
	cfg      *config.Config
	otel     otel.Otel
}

func New(consumer broker.Consumer, service service.Payment, cfg *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		consumer: consumer,
		service:  service,
		cfg:      cfg,
		otel:     otel,
	}
}

// Run blocks until ctx is cancelled or the broker fails.
func (c *Consumer) Run(ctx context.Context) error {
	topic := c.cfg.Broker.Topics.PaymentPaid

	log.Info().Str("topic", topic).Msg("consuming payment events")

	if err := c.consumer.Consume(ctx, topic, c.Handle); err != nil {
		return fmt.Errorf("failed to consume %s: %w", topic, err)
	}

	return nil
}

// Handle returns an error only for failures worth redelivering. Malformed events and
// rejected payments are logged and dropped.
func (c *Consumer) Handle(ctx context.Context, msg broker.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".payment.Handle")
	defer scope.End()
	defer scope.TraceIfError(err)

	var event dto.PaymentPaidEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Error().Err(err).Str("key", msg.Key).Msg("dropping malformed payment event")

		return nil
	}

	if err := validator.ValidateStruct(&event); err != nil {
		log.Error().Err(err).Str("key", msg.Key).Msg("dropping invalid payment event")

		return nil
	}

	scope.SetAttributes(map[string]any{"booking.id": event.BookingID, "payment.provider": event.Provider})

	booking, err := c.service.Confirm(ctx, event.Provider, event.ToConfirmRequest())
	if err != nil {
		if failure.GetCode(err) < http.StatusInternalServerError {
			log.Warn().Err(err).Str("bookingId", event.BookingID).Msg("payment event rejected")

			return nil
		}

		log.Error().Err(err).Str("bookingId", event.BookingID).Msg("failed to apply payment event")

		return err
	}

	log.Info().Str("bookingId", booking.ID).Str("provider", event.Provider).Msg("booking confirmed from payment event")

	return nil
}
