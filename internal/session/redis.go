package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists session state in Redis so a restarted service can show
// the last known live matches list until the first refresh completes.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if ttl <= 0 {
		ttl = time.Hour
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// Save stores the session snapshot under its key with the configured TTL.
func (r *RedisStore) Save(ctx context.Context, sess *Session) error {
	state := sess.State()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	return r.client.Set(ctx, Key(sess.ID()), data, r.ttl).Err()
}

// Load reads a persisted session state. Returns found=false when the key is
// missing or expired.
func (r *RedisStore) Load(ctx context.Context, id string) (State, bool, error) {
	data, err := r.client.Get(ctx, Key(id)).Result()
	if err == redis.Nil {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("failed to get session state: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return State{}, false, fmt.Errorf("failed to unmarshal session state: %w", err)
	}

	return state, true, nil
}

// Close closes the connection to Redis
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Key builds the Redis key for a session ID.
func Key(id string) string {
	return fmt.Sprintf("session:%s:live_matches", id)
}
