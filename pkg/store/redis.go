package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// DefaultRedisURL is used when no redis_url is configured.
	DefaultRedisURL = "redis://localhost:6379/0"

	redisKeyPrefix = "mood:"
	redisChannel   = "mood:changes"
	redisScanCount = 100
)

// RedisSink stores blobs as redis strings and announces every write on a
// pub/sub channel so other processes sharing the database see it.
type RedisSink struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisSink connects to the database named by redisURL.
func NewRedisSink(redisURL string, log *zap.Logger) (*RedisSink, error) {
	if redisURL == "" {
		redisURL = DefaultRedisURL
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("store: parse redis url: %w", err)
	}
	opts.DialTimeout = 2 * time.Second
	opts.ReadTimeout = 2 * time.Second
	opts.WriteTimeout = 2 * time.Second
	return NewRedisSinkFromClient(redis.NewClient(opts), log), nil
}

// NewRedisSinkFromClient wraps an existing client. The sink owns it and
// closes it on Close.
func NewRedisSinkFromClient(client *redis.Client, log *zap.Logger) *RedisSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisSink{client: client, log: log}
}

func (s *RedisSink) Read(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: redis get %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisSink) Write(ctx context.Context, key string, data []byte) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisKeyPrefix+key, data, 0)
		pipe.Publish(ctx, redisChannel, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store: redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisSink) Delete(ctx context.Context, key string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, redisKeyPrefix+key)
		pipe.Publish(ctx, redisChannel, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store: redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisSink) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		key := strings.TrimPrefix(iter.Val(), redisKeyPrefix)
		if hasKindPrefix(key) {
			keys = append(keys, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("store: redis scan: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Watch subscribes to the change channel.
func (s *RedisSink) Watch(ctx context.Context) (<-chan Event, error) {
	pubsub := s.client.Subscribe(ctx, redisChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("store: redis subscribe: %w", err)
	}

	events := make(chan Event, 64)
	go func() {
		defer close(events)
		defer func() {
			if err := pubsub.Close(); err != nil {
				s.log.Warn("redis unsubscribe", zap.Error(err))
			}
		}()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				ev := Event{Type: EventKeyChanged, Key: msg.Payload}
				if _, _, err := ParseKey(msg.Payload); err != nil {
					ev = Event{Type: EventInvalidated}
				}
				select {
				case events <- ev:
				default:
				}
			}
		}
	}()
	return events, nil
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}
