package config

import (
	"log/slog"

	"github.com/elmcrest/compass-service/internal/events"
)

// EventConfig holds configuration for event publishing
type EventConfig struct {
	Enabled   bool   `env:"EVENTS_ENABLED" envDefault:"true"`
	Publisher string `env:"EVENTS_PUBLISHER" envDefault:"channel"` // channel or mock
	TopicName string `env:"EVENTS_TOPIC" envDefault:"submissions"`
}

// CreateEventPublisher creates an event publisher based on configuration
func (c *EventConfig) CreateEventPublisher(logger *slog.Logger) (events.EventPublisher, error) {
	if !c.Enabled {
		logger.Info("Event publishing disabled, using mock publisher")
		return events.NewMockEventPublisher(logger), nil
	}

	switch c.Publisher {
	case "channel":
		logger.Info("Creating in-process event publisher", "topic", c.TopicName)
		return events.NewChannelEventPublisher(events.PublisherConfig{
			TopicName: c.TopicName,
			Logger:    logger,
		})
	case "mock":
		logger.Info("Using mock event publisher")
		return events.NewMockEventPublisher(logger), nil
	default:
		logger.Warn("Unknown event publisher type, falling back to mock", "publisher", c.Publisher)
		return events.NewMockEventPublisher(logger), nil
	}
}
