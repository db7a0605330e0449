package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"note-lab/domain/event"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "notes:"

// RedisSink broadcasts events across instances via Redis Pub/Sub. The channel
// name is derived from the event name, so subscribers can pick the events
// they care about.
type RedisSink struct {
	rdb *redis.Client
}

func NewRedisSink(rdb *redis.Client) *RedisSink {
	return &RedisSink{rdb: rdb}
}

func (s *RedisSink) Publish(ctx context.Context, e event.DomainEvent) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", e.Name(), err)
	}
	return s.rdb.Publish(ctx, channelPrefix+e.Name(), data).Err()
}
