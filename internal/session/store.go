package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jewelhub/internal/database"
)

const keyPrefix = "auth-storage:"

// persisted, depoya yazılan tek alan token'dır; kullanıcı ve bayi her
// istekte yeniden alınır.
type persisted struct {
	Token string `json:"token"`
}

// Store, oturumları ziyaretçi kimliğine göre saklar.
type Store struct {
	db  database.Store
	ttl time.Duration
}

func NewStore(db database.Store, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

func key(visitorID string) string {
	return keyPrefix + visitorID
}

// Load, kayıtlı token ile yeni bir oturum döndürür. Kayıt yoksa boş oturum döner.
func (s *Store) Load(ctx context.Context, visitorID string) (*Session, error) {
	sess := New()
	raw, err := s.db.Get(ctx, key(visitorID))
	if errors.Is(err, database.ErrNotFound) {
		return sess, nil
	}
	if err != nil {
		return sess, fmt.Errorf("load session: %w", err)
	}
	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return sess, fmt.Errorf("decode session: %w", err)
	}
	sess.Token = p.Token
	return sess, nil
}

// Save, yalnızca token'ı kaydeder. Token boşsa kayıt silinir.
func (s *Store) Save(ctx context.Context, visitorID string, sess *Session) error {
	if sess.Token == "" {
		return s.db.Delete(ctx, key(visitorID))
	}
	raw, err := json.Marshal(persisted{Token: sess.Token})
	if err != nil {
		return err
	}
	return s.db.Set(ctx, key(visitorID), raw, s.ttl)
}
