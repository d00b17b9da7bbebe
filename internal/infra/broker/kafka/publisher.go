package kafka

import (
	"context"
	"encoding/json"

	"staybook/internal/domain/shared/events"
)

// EventPublisher adapts the producer to the booking service's publisher
// contract: one topic per event name, keyed by aggregate id, JSON payloads.
type EventPublisher struct {
	Producer    *Producer
	TopicPrefix string
}

func (p EventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Producer.Publish(ctx, p.TopicPrefix+event.EventName(), event.AggregateID(), payload)
}
