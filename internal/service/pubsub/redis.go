package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/pkg/logger"
)

const (
	channelPrefix = "designs:"
)

// RedisPubSub fans completed designs out across API instances so every
// connected stream client sees them, no matter which node generated them.
type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // Map of account ID to subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func (ps *RedisPubSub) getChannelName(accountID string) string {
	return channelPrefix + accountID
}

// Publish publishes a completed design to the account's Redis channel
func (ps *RedisPubSub) Publish(ctx context.Context, design *dto.DesignResponse) error {
	message, err := json.Marshal(design)
	if err != nil {
		return fmt.Errorf("failed to marshal design: %w", err)
	}

	channel := ps.getChannelName(design.AccountID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe subscribes to completed designs for a specific account
func (ps *RedisPubSub) Subscribe(ctx context.Context, accountID string, callback func(*dto.DesignResponse)) error {
	channel := ps.getChannelName(accountID)

	// Check if we're already subscribed to this account's channel
	ps.subscriberMu.RLock()
	_, exists := ps.subscribers[accountID]
	ps.subscriberMu.RUnlock()
	if exists {
		ps.logger.Infof("Already subscribed to account channel: %s", channel)
		return nil
	}

	// Create new subscription
	pubsub := ps.client.Subscribe(ctx, channel)

	// Store the subscriber
	ps.subscriberMu.Lock()
	ps.subscribers[accountID] = pubsub
	ps.subscriberMu.Unlock()

	// Start receiving messages
	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for account channel: %s", channel)
			pubsub.Close()
			ps.subscriberMu.Lock()
			delete(ps.subscribers, accountID)
			ps.subscriberMu.Unlock()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case msg := <-ch:
				var design dto.DesignResponse
				if err := json.Unmarshal([]byte(msg.Payload), &design); err != nil {
					ps.logger.Errorf("Failed to unmarshal design from channel %s: %v", channel, err)
					continue
				}
				callback(&design)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to account channel: %s", channel)
	return nil
}

// Unsubscribe removes subscription for an account
func (ps *RedisPubSub) Unsubscribe(accountID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if pubsub, exists := ps.subscribers[accountID]; exists {
		pubsub.Close()
		delete(ps.subscribers, accountID)
		ps.logger.Infof("Unsubscribed from account channel: %s", ps.getChannelName(accountID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for accountID, pubsub := range ps.subscribers {
		pubsub.Close()
		delete(ps.subscribers, accountID)
		ps.logger.Infof("Closed subscription for account channel: %s", ps.getChannelName(accountID))
	}
}
