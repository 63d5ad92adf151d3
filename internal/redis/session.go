package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
)

// SessionStore persists in-progress booking selections in Redis so they
// survive page reloads and navigation. One namespaced JSON key per session
// holds the whole selection including the current wizard step.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

const (
	sessionKeyPrefix = "booking:session:"

	// Abandoned sessions expire after a week.
	SessionTTL = 7 * 24 * time.Hour
)

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// Save serializes the selection under the session's key. Called after
// every mutation; last write wins across concurrent tabs.
func (s *SessionStore) Save(ctx context.Context, sessionID string, sel *domain.BookingSelection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sessionID), data, SessionTTL).Err()
}

// Load rehydrates the selection for a session. Returns (nil, nil) when no
// selection has been saved yet.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*domain.BookingSelection, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var sel domain.BookingSelection
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, err
	}
	return &sel, nil
}

// Delete removes the session's selection, e.g. after a successful
// reservation submission.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
