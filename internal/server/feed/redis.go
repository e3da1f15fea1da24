package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBroker carries events over a Redis pub/sub channel so that every
// server instance sees changes made through any other instance.
type RedisBroker struct {
	client  *redis.Client
	channel string
}

// NewRedisBroker parses the URL, verifies the connection, and returns a
// broker publishing on the given channel.
func NewRedisBroker(ctx context.Context, url, channel string) (*RedisBroker, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisBroker{client: client, channel: channel}, nil
}

func (b *RedisBroker) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

func (b *RedisBroker) Subscribe(ctx context.Context) (<-chan Event, func(), error) {
	sub := b.client.Subscribe(ctx, b.channel)

	// Force the subscription to be established before returning.
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, nil, fmt.Errorf("subscribe: %w", err)
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() { _ = sub.Close() }
	return out, cancel, nil
}

// Health checks the Redis connection.
func (b *RedisBroker) Health(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (b *RedisBroker) Close() error {
	return b.client.Close()
}
