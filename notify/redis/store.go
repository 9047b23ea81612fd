package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marcelsud/locadora-web/notify"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of notify.Store
 * One list per session (flash:{session_id}); pushes refresh the TTL so
 * toasts of an abandoned session disappear by themselves
 */

const keyPrefix = "flash" // List naming: flash:{session_id}

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore connects to Redis and checks the connection
func NewStore(addr, password string, db int, ttl time.Duration) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &Store{
		client: client,
		ttl:    ttl,
	}, nil
}

// Push appends n to the session list
func (s *Store) Push(ctx context.Context, session string, n notify.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshaling notification: %w", err)
	}

	key := getKey(session)
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("pushing notification: %w", err)
	}
	return nil
}

// Pop reads and deletes the session list in one transaction
func (s *Store) Pop(ctx context.Context, session string) ([]notify.Notification, error) {
	key := getKey(session)

	var items *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("popping notifications: %w", err)
	}

	var notes []notify.Notification
	for _, raw := range items.Val() {
		var n notify.Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			// skip entries we cannot read instead of losing the whole queue
			continue
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Pending counts queued notifications across all sessions
func (s *Store) Pending(ctx context.Context) (int64, error) {
	pattern := fmt.Sprintf("%s:*", keyPrefix)

	var total int64
	var cursor uint64
	for {
		keys, nextCursor, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return 0, fmt.Errorf("scanning notification keys: %w", err)
		}

		for _, key := range keys {
			n, err := s.client.LLen(ctx, key).Result()
			if err != nil {
				continue
			}
			total += n
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return total, nil
}

// Close closes the Redis connection
func (s *Store) Close(ctx context.Context) error {
	return s.client.Close()
}

func getKey(session string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, session)
}
