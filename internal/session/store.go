// Package session maps the tokens this app issues to browsers onto the
// hosted backend's session secrets. Redis is the only state the app itself
// keeps, and losing it merely forces a re-login.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL matches the hosted backend's session lifetime.
const TTL = 30 * 24 * time.Hour

var ErrNotFound = errors.New("session not found")

// Stored is one browser session: which user it belongs to and the backend
// secret that acts on their behalf.
type Stored struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	BackendSecret string    `json:"backend_secret"`
	CreatedAt     time.Time `json:"created_at"`
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
	}
}

func (s *Store) Save(ctx context.Context, stored Stored) error {
	storedJSON, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, Key(stored.ID), storedJSON, TTL).Err()
}

func (s *Store) Find(ctx context.Context, sessionID string) (*Stored, error) {
	value, err := s.rdb.Get(ctx, Key(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var stored Stored
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		return nil, err
	}

	return &stored, nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, Key(sessionID)).Err()
}
