package service

import (
	"context"
	"encoding/json"
	"log"

	"decktrack-be/internal/pkg/logger"
	"decktrack-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the engagement event topic into the isolated
// engagement log. Fire-and-forget from the write path's perspective.
type consumerService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	engagementLog logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	engagementLog logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:        pubSub,
		topicName:     topicName,
		engagementLog: engagementLog,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal engagement event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	details := map[string]interface{}{
		"occurred_at": payload.OccurredAt,
	}
	for k, v := range payload.Data {
		details[k] = v
	}

	cs.engagementLog.Info("engagement.events", payload.Type, details)
	msg.Ack()
}
