package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

const (
	channelPrefix = "documents:"
)

type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // Map of landlord ID to subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func ChannelName(userID string) string {
	return channelPrefix + userID
}

// Publish publishes a document event to its landlord's channel
func (ps *RedisPubSub) Publish(ctx context.Context, event *domain.DocumentEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal document event: %w", err)
	}

	channel := ChannelName(event.UserID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe delivers the document events of userID to callback until ctx is done
// or Unsubscribe is called
func (ps *RedisPubSub) Subscribe(ctx context.Context, userID string, callback func(*domain.DocumentEvent)) error {
	channel := ChannelName(userID)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[userID]; exists {
		ps.subscriberMu.Unlock()
		ps.logger.Infof("Already subscribed to channel: %s", channel)
		return nil
	}
	sub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[userID] = sub
	ps.subscriberMu.Unlock()

	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for channel: %s", channel)
			sub.Close()
			ps.subscriberMu.Lock()
			if ps.subscribers[userID] == sub {
				delete(ps.subscribers, userID)
			}
			ps.subscriberMu.Unlock()
		}()

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event domain.DocumentEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					ps.logger.Errorf("Failed to unmarshal document event from channel %s: %v", channel, err)
					continue
				}
				callback(&event)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to channel: %s", channel)
	return nil
}

// Unsubscribe removes the subscription of a landlord
func (ps *RedisPubSub) Unsubscribe(userID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if sub, exists := ps.subscribers[userID]; exists {
		sub.Close()
		delete(ps.subscribers, userID)
		ps.logger.Infof("Unsubscribed from channel: %s", ChannelName(userID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for userID, sub := range ps.subscribers {
		sub.Close()
		delete(ps.subscribers, userID)
		ps.logger.Infof("Closed subscription for channel: %s", ChannelName(userID))
	}
}
