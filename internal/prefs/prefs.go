// Package prefs stores per-user UI preferences in Redis.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Preferences are the client display settings. They never affect pricing or
// itinerary content.
type Preferences struct {
	Theme string `json:"theme"`
	View  string `json:"view"`
}

// Defaults returns the preferences for a user who has never saved any.
func Defaults() Preferences {
	return Preferences{Theme: "light", View: "timeline"}
}

// Store reads and writes a user's preferences.
type Store interface {
	Get(ctx context.Context, userID uuid.UUID) (Preferences, error)
	Set(ctx context.Context, userID uuid.UUID, p Preferences) error
}

// RedisStore keeps preferences as JSON under one key per user.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(userID uuid.UUID) string {
	return "prefs:" + userID.String()
}

// Get returns the stored preferences, or Defaults when none are saved.
func (s *RedisStore) Get(ctx context.Context, userID uuid.UUID) (Preferences, error) {
	raw, err := s.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Defaults(), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("prefs: get: %w", err)
	}
	var p Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return Preferences{}, fmt.Errorf("prefs: decode: %w", err)
	}
	return p, nil
}

func (s *RedisStore) Set(ctx context.Context, userID uuid.UUID, p Preferences) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := s.client.Set(ctx, key(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("prefs: set: %w", err)
	}
	return nil
}
