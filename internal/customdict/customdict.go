// Package customdict keeps user-added dictionary words in a Redis set so they
// survive restarts and are shared between server instances.
package customdict

import (
	"context"
	"sort"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis set holding custom words.
const DefaultKey = "hindispell:custom_words"

// CustomDict wraps a Redis client to store custom dictionary words.
type CustomDict struct {
	client redis.UniversalClient
	key    string
}

// New creates a CustomDict on DefaultKey.
func New(client redis.UniversalClient) *CustomDict {
	return NewWithKey(client, DefaultKey)
}

// NewWithKey creates a CustomDict on the given set key.
func NewWithKey(client redis.UniversalClient, key string) *CustomDict {
	return &CustomDict{client: client, key: key}
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.SAdd(ctx, cd.key, word).Err()
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, cd.key, word).Err()
}

// Has reports whether word is stored.
func (cd *CustomDict) Has(ctx context.Context, word string) (bool, error) {
	return cd.client.SIsMember(ctx, cd.key, word).Result()
}

// All returns every stored word in ascending order.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	words, err := cd.client.SMembers(ctx, cd.key).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(words)
	return words, nil
}

// Ping checks the connection, for health reporting.
func (cd *CustomDict) Ping(ctx context.Context) error {
	return cd.client.Ping(ctx).Err()
}
