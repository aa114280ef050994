package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventPublisher defines the interface for publishing submission events
type EventPublisher interface {
	PublishSubmissionEvent(ctx context.Context, event *SubmissionEvent) error
	Close() error
}

// ChannelEventPublisher implements EventPublisher using Watermill's
// in-process GoChannel pub/sub
type ChannelEventPublisher struct {
	pubSub    *gochannel.GoChannel
	logger    *slog.Logger
	topicName string
}

// PublisherConfig holds configuration for the event publisher
type PublisherConfig struct {
	TopicName string
	Logger    *slog.Logger
}

// NewChannelEventPublisher creates a new in-process event publisher using Watermill
func NewChannelEventPublisher(config PublisherConfig) (*ChannelEventPublisher, error) {
	logger := watermill.NewSlogLogger(config.Logger)

	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, logger)

	return &ChannelEventPublisher{
		pubSub:    pubSub,
		logger:    config.Logger,
		topicName: config.TopicName,
	}, nil
}

// Subscribe returns a channel of messages published to the configured topic.
// Subscribers must be registered before events are published.
func (p *ChannelEventPublisher) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return p.pubSub.Subscribe(ctx, p.topicName)
}

// PublishSubmissionEvent publishes a submission event to the in-process topic
func (p *ChannelEventPublisher) PublishSubmissionEvent(ctx context.Context, event *SubmissionEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal submission event: %w", err)
	}

	msg := message.NewMessage(event.ID, eventBytes)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.Metadata.Set("source", event.Source)
	msg.Metadata.Set("version", event.Version)
	msg.Metadata.Set("timestamp", event.Timestamp.Format("2006-01-02T15:04:05Z07:00"))

	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		p.logger.Error("Failed to publish submission event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
		return fmt.Errorf("failed to publish submission event: %w", err)
	}

	p.logger.Info("Published submission event",
		"event_id", event.ID,
		"event_type", event.Type,
		"topic", p.topicName)

	return nil
}

// Close closes the publisher and releases resources
func (p *ChannelEventPublisher) Close() error {
	return p.pubSub.Close()
}

// MockEventPublisher is a mock implementation for testing
type MockEventPublisher struct {
	Events []SubmissionEvent
	Logger *slog.Logger
}

// NewMockEventPublisher creates a new mock event publisher
func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{
		Events: make([]SubmissionEvent, 0),
		Logger: logger,
	}
}

// PublishSubmissionEvent stores the event in memory (for testing)
func (m *MockEventPublisher) PublishSubmissionEvent(ctx context.Context, event *SubmissionEvent) error {
	m.Events = append(m.Events, *event)
	m.Logger.Info("Mock: Published submission event",
		"event_id", event.ID,
		"event_type", event.Type)
	return nil
}

// Close is a no-op for the mock publisher
func (m *MockEventPublisher) Close() error {
	return nil
}

// GetPublishedEvents returns all published events (for testing)
func (m *MockEventPublisher) GetPublishedEvents() []SubmissionEvent {
	return m.Events
}

// ClearEvents clears all published events (for testing)
func (m *MockEventPublisher) ClearEvents() {
	m.Events = make([]SubmissionEvent, 0)
}
