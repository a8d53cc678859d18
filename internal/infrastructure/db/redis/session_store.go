package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
	"github.com/bakery-saas/superadmin-console/internal/infrastructure/session"
)

var _ ports.SessionRepository = (*SessionStore)(nil)

// SessionStore keeps the console session in one Redis key so several
// console instances can share a login. The key expires with the token.
type SessionStore struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

// NewSessionStore stores the session under prefix + "auth-storage".
func NewSessionStore(client *redis.Client, prefix string) *SessionStore {
	return &SessionStore{client: client, key: prefix + session.EntryName, now: time.Now}
}

func (s *SessionStore) Load(ctx context.Context) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session.Decode(data)
}

func (s *SessionStore) Save(ctx context.Context, sess domain.Session) error {
	data, err := session.Encode(sess)
	if err != nil {
		return err
	}
	var ttl time.Duration
	if !sess.ExpiresAt.IsZero() {
		ttl = sess.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.Delete(ctx)
		}
	}
	if err := s.client.Set(ctx, s.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
