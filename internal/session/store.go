package session

import (
    "context"
    "encoding/json"
    "time"
)

// DefaultKey matches the localStorage key the web frontend uses, so the
// two stores name the same record.
const DefaultKey = "cinecatch_auth"

// Store persists one AuthSession in a durable KV under a fixed key.
type Store struct {
    kv  KV
    key string
    now func() time.Time
}

// NewStore builds a Store over kv.  An empty key falls back to DefaultKey.
func NewStore(kv KV, key string) *Store {
    if key == "" {
        key = DefaultKey
    }
    return &Store{kv: kv, key: key, now: time.Now}
}

// Save serializes the session and writes it under the fixed key.
func (s *Store) Save(ctx context.Context, sess AuthSession) error {
    raw, err := json.Marshal(sess)
    if err != nil {
        return err
    }
    return s.kv.Set(ctx, s.key, string(raw))
}

// Load returns the stored session, or nil when none is usable.  A record
// that fails to decode or has expired is erased as a side effect of the
// read: the next Load sees a clean slate without any background timer.
func (s *Store) Load(ctx context.Context) (*AuthSession, error) {
    raw, ok, err := s.kv.Get(ctx, s.key)
    if err != nil {
        return nil, err
    }
    if !ok {
        return nil, nil
    }

    var sess AuthSession
    if err := json.Unmarshal([]byte(raw), &sess); err != nil {
        _ = s.kv.Del(ctx, s.key)
        return nil, nil
    }
    if !sess.IsValidAt(s.now()) {
        _ = s.kv.Del(ctx, s.key)
        return nil, nil
    }
    return &sess, nil
}

// Clear removes the stored session.  Clearing an absent record is a no-op.
func (s *Store) Clear(ctx context.Context) error {
    return s.kv.Del(ctx, s.key)
}

// AuthorizationHeader returns the header value for the stored session, or
// "" when the user is effectively logged out.  Errors reading the store
// are treated as logged out; an unauthenticated request is the safe state.
func (s *Store) AuthorizationHeader(ctx context.Context) string {
    sess, err := s.Load(ctx)
    if err != nil || sess == nil {
        return ""
    }
    return sess.Header()
}
