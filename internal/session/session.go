// Package session persists the trainee identity and access token between
// invocations.
package session

import (
	"fmt"

	"github.com/amishk599/stagiaire/internal/model"
)

// Store is a string key/value store that survives process restarts.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// Load reads both session values from the store. It is called at the start
// of every operation so a login in another process is picked up.
func Load(s Store) (model.Session, error) {
	identity, _, err := s.Get(model.KeyIdentity)
	if err != nil {
		return model.Session{}, fmt.Errorf("loading session: %w", err)
	}
	token, _, err := s.Get(model.KeyToken)
	if err != nil {
		return model.Session{}, fmt.Errorf("loading session: %w", err)
	}
	return model.Session{Identity: identity, Token: token}, nil
}

// SaveToken persists a freshly issued access token.
func SaveToken(s Store, token string) error {
	return s.Set(model.KeyToken, token)
}

// SaveIdentity persists the trainee identifier.
func SaveIdentity(s Store, id string) error {
	return s.Set(model.KeyIdentity, id)
}

// Clear forgets both session values.
func Clear(s Store) error {
	if err := s.Delete(model.KeyToken); err != nil {
		return err
	}
	return s.Delete(model.KeyIdentity)
}
