package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CartStore persists cart builders in Redis with a sliding TTL.
// Carts are the only local state of the whole service; losing one
// costs the user a re-add, never an order.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore constructs a CartStore.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

// Create opens a new empty cart and returns its id.
func (cs *CartStore) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := cs.Save(ctx, id, NewBuilder()); err != nil {
		return "", err
	}
	return id, nil
}

// Get loads the builder for a cart id.
func (cs *CartStore) Get(ctx context.Context, id string) (*Builder, error) {
	payload, err := cs.client.Get(ctx, cs.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("order: load cart: %w", err)
	}

	var builder Builder
	if err := json.Unmarshal(payload, &builder); err != nil {
		return nil, fmt.Errorf("order: decode cart: %w", err)
	}
	return &builder, nil
}

// Save persists the builder and refreshes its TTL.
func (cs *CartStore) Save(ctx context.Context, id string, builder *Builder) error {
	payload, err := json.Marshal(builder)
	if err != nil {
		return fmt.Errorf("order: encode cart: %w", err)
	}
	if err := cs.client.Set(ctx, cs.key(id), payload, cs.ttl).Err(); err != nil {
		return fmt.Errorf("order: save cart: %w", err)
	}
	return nil
}

// Delete removes a cart, typically after a successful checkout.
func (cs *CartStore) Delete(ctx context.Context, id string) error {
	if err := cs.client.Del(ctx, cs.key(id)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("order: delete cart: %w", err)
	}
	return nil
}

func (cs *CartStore) key(id string) string {
	return "cart:" + id
}
