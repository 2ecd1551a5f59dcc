// File: services/wizard/session.go
package wizard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"salonbook/models"
)

const sessionKeyPrefix = "wizard:"

// WizardSession is the transient state of one booking attempt: the
// draft, the current stage, and the slot sequence computed for the
// draft's date and aggregate duration. Wizard instances are single-use;
// the session is deleted after a successful submission.
type WizardSession struct {
	ID        string              `json:"id"`
	Stage     Stage               `json:"stage"`
	Direction Direction           `json:"direction"`
	Draft     models.BookingDraft `json:"draft"`
	Slots     []models.TimeSlot   `json:"slots,omitempty"`

	// Revision increments on every mutation. Slot sequences computed
	// against an older revision are discarded on save so a stale
	// generation pass never overwrites newer selections.
	Revision int64 `json:"revision"`

	// Submitting is set while a submission is in flight so re-entrant
	// submit calls are refused even if the caller fails to disable the
	// action.
	Submitting bool `json:"submitting"`

	CreatedAt time.Time `json:"createdAt"`
}

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, id string) (*WizardSession, error)
	Save(ctx context.Context, session *WizardSession) error
	Delete(ctx context.Context, id string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore returns a SessionStore backed by Redis. Each save
// refreshes the TTL, so abandoned drafts expire on their own.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (*WizardSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *redisSessionStore) Save(ctx context.Context, session *WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl).Err()
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
