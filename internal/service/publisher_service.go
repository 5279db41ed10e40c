package service

import (
	"context"
	"encoding/json"
	"time"

	"fx-backoffice-be/internal/pkg/logger"
	"fx-backoffice-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// DomainEventsTopic carries every in-process domain event. The consumer
// fans them out to email and the notification inbox.
const DomainEventsTopic = "domain-events"

type eventEnvelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurredAt"`
}

type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type eventPublisher struct {
	pubSub *gochannel.GoChannel
	topic  string
	log    logger.ILogger
}

func NewEventPublisher(pubSub *gochannel.GoChannel, log logger.ILogger) IEventPublisher {
	return &eventPublisher{
		pubSub: pubSub,
		topic:  DomainEventsTopic,
		log:    log,
	}
}

func (p *eventPublisher) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(eventEnvelope{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := p.pubSub.Publish(p.topic, msg); err != nil {
		p.log.Warn("events", "failed to publish domain event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return err
	}
	return nil
}
