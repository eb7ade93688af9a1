package session

import (
	"encoding/json"
	"errors"
	"log/slog"

	"campus-connect-client/localstore"
	"campus-connect-client/model"
)

// Store is the persisted credential pair: the bearer token and the cached
// user record, kept under fixed keys so the session survives restarts.
type Store struct {
	local  *localstore.Store
	logger *slog.Logger
}

func NewStore(local *localstore.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{local: local, logger: logger}
}

// Token returns the persisted bearer token. Absence is not an error.
func (s *Store) Token() (string, bool) {
	value, err := s.local.Get(localstore.KeyAuthToken)
	if err != nil {
		if !errors.Is(err, model.ErrKeyNotFound) {
			s.logger.Warn("failed to read stored token", "error", err.Error())
		}
		return "", false
	}

	return value, true
}

// User returns the persisted user record, absent when missing or
// undecodable.
func (s *Store) User() (*model.User, bool) {
	value, err := s.local.Get(localstore.KeyUserData)
	if err != nil {
		if !errors.Is(err, model.ErrKeyNotFound) {
			s.logger.Warn("failed to read stored user", "error", err.Error())
		}
		return nil, false
	}

	var user model.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		s.logger.Warn("stored user record is corrupt", "error", err.Error())
		return nil, false
	}

	return &user, true
}

// SetSession persists both halves of the credential pair. The two writes are
// not transactional; a failure on the second leaves the first in place.
func (s *Store) SetSession(tok string, user model.User) error {
	if err := s.local.Set(localstore.KeyAuthToken, tok); err != nil {
		return err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return s.local.Set(localstore.KeyUserData, string(raw))
}

// Clear removes both entries. Clearing an empty store is a no-op, which lets
// the HTTP gateway purge unconditionally on auth failures.
func (s *Store) Clear() {
	if err := s.local.Delete(localstore.KeyAuthToken); err != nil {
		s.logger.Warn("failed to clear stored token", "error", err.Error())
	}
	if err := s.local.Delete(localstore.KeyUserData); err != nil {
		s.logger.Warn("failed to clear stored user", "error", err.Error())
	}
}
