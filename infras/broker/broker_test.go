package broker_test

import (
	"context"
	"lessons/config"
	"lessons/infras/broker"
	"lessons/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPublisher(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr bool
	}{
		{name: "unset driver drops events", driver: ""},
		{name: "none drops events", driver: "none"},
		{name: "unknown driver", driver: "carrier-pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Broker.Driver = tt.driver

			publisher, err := broker.NewPublisher(cfg, mocks.NewOtel())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NoError(t, publisher.Publish(context.Background(), "booking", "key", map[string]string{"type": "booking.created"}))
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestNewConsumer_RequiresTransport(t *testing.T) {
	cfg := &config.Config{}
	cfg.Broker.Driver = "none"

	_, err := broker.NewConsumer(cfg, mocks.NewOtel())
	assert.Error(t, err)
}
