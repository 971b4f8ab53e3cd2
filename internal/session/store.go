package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"voxform/internal/cache"
)

const sessionKeyPrefix = "session:"

// CookieName is the cookie carrying the opaque session identifier.
const CookieName = "voxform_session"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level   string `json:"level"` // success, error, info
	Message string `json:"message"`
}

// Session associates an HTTP client with a user. UserID is zero for
// anonymous sessions, which exist only to carry flash messages.
type Session struct {
	ID      string  `json:"id"`
	UserID  uint    `json:"user_id"`
	Flashes []Flash `json:"flashes,omitempty"`
}

// AddFlash queues a flash message on the session.
func (s *Session) AddFlash(level, message string) {
	s.Flashes = append(s.Flashes, Flash{Level: level, Message: message})
}

// PopFlashes returns and clears queued flash messages.
func (s *Session) PopFlashes() []Flash {
	f := s.Flashes
	s.Flashes = nil
	return f
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s *Session) LoggedIn() bool {
	return s != nil && s.UserID != 0
}

// Store defines session storage operations.
type Store interface {
	Create(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps sessions in Redis as JSON with a TTL. Redis outages
// degrade to "no session" via the fail-safe cache wrapper.
type RedisStore struct {
	cache *cache.Client
	ttl   time.Duration
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a session store with the given TTL.
func NewRedisStore(cache *cache.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: cache, ttl: ttl}
}

// Create allocates a new anonymous session.
func (s *RedisStore) Create(ctx context.Context) (*Session, error) {
	sess := &Session{ID: uuid.NewString()}
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the session for id, or nil when missing or expired.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+id)
	if err != nil || data == nil {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// Save writes the session back, refreshing its TTL.
func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sess.ID, payload, s.ttl)
}

// Delete destroys a session, ending the login.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+id)
}
